/*
Copyright 2024 Dala Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"github.com/spf13/cobra"

	"github.com/dala-io/pawapay-go/model"
)

func depositCommands(app *cliInstance) *cobra.Command {
	var intent model.DepositIntent

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "submit a deposit (collect funds from a payer's wallet)",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.svc.Deposit(cmd.Context(), intent)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	depositCmd.Flags().StringVar(&intent.Amount, "amount", "", "amount as a decimal string, e.g. 1000")
	depositCmd.Flags().StringVar(&intent.Currency, "currency", "", "ISO 4217 currency code, e.g. UGX")
	depositCmd.Flags().StringVar(&intent.PhoneNumber, "phone", "", "payer phone number")
	depositCmd.Flags().StringVar(&intent.Provider, "provider", "", "correspondent code, e.g. MTN_MOMO_UGA")
	depositCmd.Flags().StringVar(&intent.CustomerMessage, "message", "", "statement message shown to the payer")

	return depositCmd
}

func payoutCommands(app *cliInstance) *cobra.Command {
	var intent model.PayoutIntent

	payoutCmd := &cobra.Command{
		Use:   "payout",
		Short: "submit a payout (send funds to a recipient's wallet)",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.svc.Payout(cmd.Context(), intent)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	payoutCmd.Flags().StringVar(&intent.Amount, "amount", "", "amount as a decimal string")
	payoutCmd.Flags().StringVar(&intent.Currency, "currency", "", "ISO 4217 currency code")
	payoutCmd.Flags().StringVar(&intent.PhoneNumber, "phone", "", "recipient phone number")
	payoutCmd.Flags().StringVar(&intent.Provider, "provider", "", "correspondent code")
	payoutCmd.Flags().StringVar(&intent.Description, "description", "", "statement description")

	return payoutCmd
}

func refundCommands(app *cliInstance) *cobra.Command {
	var intent model.RefundIntent

	refundCmd := &cobra.Command{
		Use:   "refund",
		Short: "refund a completed deposit",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.svc.Refund(cmd.Context(), intent)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	refundCmd.Flags().StringVar(&intent.DepositID, "deposit-id", "", "id of the deposit being refunded")
	refundCmd.Flags().StringVar(&intent.Amount, "amount", "", "amount as a decimal string")
	refundCmd.Flags().StringVar(&intent.Currency, "currency", "", "ISO 4217 currency code")

	return refundCmd
}

func statusCommands(app *cliInstance) *cobra.Command {
	var kind string

	statusCmd := &cobra.Command{
		Use:   "status <transaction-id>",
		Short: "single-shot status lookup for a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := app.svc.GetTransactionStatus(cmd.Context(), args[0], model.TransactionKind(kind))
			if err != nil {
				return err
			}
			return printJSON(envelope)
		},
	}
	statusCmd.Flags().StringVar(&kind, "kind", string(model.KindDeposit), "transaction kind: DEPOSIT, PAYOUT or REFUND")

	return statusCmd
}

func resolveCommands(app *cliInstance) *cobra.Command {
	var kind string

	resolveCmd := &cobra.Command{
		Use:   "resolve <transaction-id>",
		Short: "poll a transaction until it reaches a final status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := app.svc.ResolveTransaction(cmd.Context(), args[0], model.TransactionKind(kind), app.svc.DefaultResolvePolicy())
			if err != nil {
				return err
			}
			return printJSON(envelope)
		},
	}
	resolveCmd.Flags().StringVar(&kind, "kind", string(model.KindDeposit), "transaction kind: DEPOSIT, PAYOUT or REFUND")

	return resolveCmd
}

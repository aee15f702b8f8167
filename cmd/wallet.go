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
)

func balancesCommands(app *cliInstance) *cobra.Command {
	var country string

	balancesCmd := &cobra.Command{
		Use:   "balances",
		Short: "list wallet balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := app.svc.WalletBalances(cmd.Context(), country)
			if err != nil {
				return err
			}
			return printJSON(balances)
		},
	}
	balancesCmd.Flags().StringVar(&country, "country", "", "optional ISO 3166-1 alpha-3 country filter, e.g. UGA")

	return balancesCmd
}

func predictCommands(app *cliInstance) *cobra.Command {
	predictCmd := &cobra.Command{
		Use:   "predict <phone-number>",
		Short: "predict which correspondent operates a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prediction, err := app.svc.PredictProvider(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(prediction)
		},
	}

	return predictCmd
}

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

package pawapay

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/model"
)

const payerTypeMobileMoney = "MMO"

// Deposit submits a collection: the provider pulls funds from the payer's
// mobile-money wallet. A REJECTED result is a business outcome, not an
// error: the submission itself succeeded and the caller must check
// result.Rejected() before polling.
func (p *PawaPay) Deposit(ctx context.Context, intent model.DepositIntent) (*model.SubmissionResult, error) {
	ctx, span := tracer.Start(ctx, "Submitting deposit")
	defer span.End()

	if err := intent.Validate(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrValidation, err.Error(), nil)
	}

	submissionID := intent.SubmissionID
	if submissionID == "" {
		submissionID = model.GenerateTransactionID()
	}
	customerMessage := intent.CustomerMessage
	if customerMessage == "" {
		customerMessage = fmt.Sprintf("Payment of %s %s", intent.Amount, intent.Currency)
	}

	req := &model.DepositRequest{
		DepositID: submissionID,
		Amount:    intent.Amount,
		Currency:  intent.Currency,
		Payer: model.Payer{
			Type: payerTypeMobileMoney,
			AccountDetails: model.AccountDetails{
				PhoneNumber: intent.PhoneNumber,
				Provider:    intent.Provider,
			},
		},
		CustomerMessage: customerMessage,
	}

	resp, err := p.api.InitiateDeposit(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "deposit submission failed")
	}

	result := submissionResult(model.KindDeposit, resp.DepositID, submissionID, resp.Status, resp.Reason)
	logrus.WithFields(logrus.Fields{
		"deposit_id": result.Reference.ID,
		"status":     result.Status,
		"provider":   intent.Provider,
	}).Info("deposit submitted")
	return result, nil
}

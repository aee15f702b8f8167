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
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/model"
)

// Payout submits a disbursement: the provider pushes funds to the recipient's
// mobile-money wallet. The customer timestamp is stamped at submission time
// and passed through as an RFC 3339 string.
func (p *PawaPay) Payout(ctx context.Context, intent model.PayoutIntent) (*model.SubmissionResult, error) {
	ctx, span := tracer.Start(ctx, "Submitting payout")
	defer span.End()

	if err := intent.Validate(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrValidation, err.Error(), nil)
	}

	submissionID := intent.SubmissionID
	if submissionID == "" {
		submissionID = model.GenerateTransactionID()
	}

	req := &model.PayoutRequest{
		PayoutID: submissionID,
		Amount:   intent.Amount,
		Currency: intent.Currency,
		Recipient: model.Recipient{
			Type: payerTypeMobileMoney,
			AccountDetails: model.AccountDetails{
				PhoneNumber: intent.PhoneNumber,
				Provider:    intent.Provider,
			},
		},
		StatementDescription: intent.Description,
		CustomerTimestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	resp, err := p.api.InitiatePayout(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "payout submission failed")
	}

	result := submissionResult(model.KindPayout, resp.PayoutID, submissionID, resp.Status, resp.Reason)
	logrus.WithFields(logrus.Fields{
		"payout_id": result.Reference.ID,
		"status":    result.Status,
		"provider":  intent.Provider,
	}).Info("payout submitted")
	return result, nil
}

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

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/model"
)

// Refund submits a refund against a completed deposit. The refund gets its
// own idempotency ID; the original deposit ID identifies what is being
// reversed.
func (p *PawaPay) Refund(ctx context.Context, intent model.RefundIntent) (*model.SubmissionResult, error) {
	ctx, span := tracer.Start(ctx, "Submitting refund")
	defer span.End()

	if err := intent.Validate(); err != nil {
		return nil, apierror.NewAPIError(apierror.ErrValidation, err.Error(), nil)
	}

	submissionID := intent.SubmissionID
	if submissionID == "" {
		submissionID = model.GenerateTransactionID()
	}

	req := &model.RefundRequest{
		RefundID:  submissionID,
		DepositID: intent.DepositID,
		Amount:    intent.Amount,
		Currency:  intent.Currency,
	}

	resp, err := p.api.InitiateRefund(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "refund submission failed")
	}

	result := submissionResult(model.KindRefund, resp.RefundID, submissionID, resp.Status, resp.Reason)
	logrus.WithFields(logrus.Fields{
		"refund_id":  result.Reference.ID,
		"deposit_id": intent.DepositID,
		"status":     result.Status,
	}).Info("refund submitted")
	return result, nil
}

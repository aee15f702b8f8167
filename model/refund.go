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

package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RefundRequest is the provider-shaped body for POST /refunds. DepositID
// names the original deposit being refunded.
type RefundRequest struct {
	RefundID  string `json:"refundId"`
	DepositID string `json:"depositId"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency,omitempty"`
}

// RefundResponse is the provider's acceptance response for a refund
// submission.
type RefundResponse struct {
	RefundID string `json:"refundId"`
	Status   string `json:"status"`
	Created  string `json:"created,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// RefundIntent is what a caller supplies to refund a completed deposit.
type RefundIntent struct {
	DepositID    string `json:"deposit_id"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	SubmissionID string `json:"submission_id,omitempty"`
}

func (r *RefundIntent) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DepositID, validation.Required),
		validation.Field(&r.Amount, validation.Required),
		validation.Field(&r.Currency, validation.Required, validation.Length(3, 3)),
	)
}

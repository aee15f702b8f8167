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

// Recipient is the receiving side of a payout.
type Recipient struct {
	Type           string         `json:"type"`
	AccountDetails AccountDetails `json:"accountDetails"`
}

// PayoutRequest is the provider-shaped body for POST /payouts.
// CustomerTimestamp is an ISO-8601 string passed through opaquely.
type PayoutRequest struct {
	PayoutID             string    `json:"payoutId"`
	Amount               string    `json:"amount"`
	Currency             string    `json:"currency"`
	Recipient            Recipient `json:"recipient"`
	StatementDescription string    `json:"statementDescription,omitempty"`
	CustomerTimestamp    string    `json:"customerTimestamp,omitempty"`
}

// PayoutResponse is the provider's acceptance response for a payout
// submission.
type PayoutResponse struct {
	PayoutID           string `json:"payoutId"`
	Status             string `json:"status"`
	AcceptanceDateTime string `json:"acceptanceDateTime,omitempty"`
	Reason             string `json:"reason,omitempty"`
}

// PayoutIntent is what a caller supplies to submit a payout.
type PayoutIntent struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	PhoneNumber  string `json:"phone_number"`
	Provider     string `json:"provider"`
	SubmissionID string `json:"submission_id,omitempty"`
	Description  string `json:"description,omitempty"`
}

func (p *PayoutIntent) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Amount, validation.Required),
		validation.Field(&p.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&p.PhoneNumber, validation.Required),
		validation.Field(&p.Provider, validation.Required),
	)
}

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

// AccountDetails identifies a mobile-money wallet: a phone number plus the
// correspondent code of the network that operates it (e.g. MTN_MOMO_UGA).
type AccountDetails struct {
	PhoneNumber string `json:"phoneNumber"`
	Provider    string `json:"provider"`
}

// Payer is the funding side of a deposit. Type is always "MMO" for
// mobile-money wallets.
type Payer struct {
	Type           string         `json:"type"`
	AccountDetails AccountDetails `json:"accountDetails"`
}

// DepositRequest is the provider-shaped body for POST /deposits. Amount is an
// opaque decimal string and must reach the provider byte-for-byte as given.
type DepositRequest struct {
	DepositID       string `json:"depositId"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Payer           Payer  `json:"payer"`
	CustomerMessage string `json:"customerMessage"`
}

// DepositResponse is the provider's acceptance response for a deposit
// submission. Reason is only set on REJECTED.
type DepositResponse struct {
	DepositID string `json:"depositId"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// DepositIntent is what a caller supplies to submit a deposit. SubmissionID
// is minted when empty; CustomerMessage defaults to a description built from
// amount and currency.
type DepositIntent struct {
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	PhoneNumber     string `json:"phone_number"`
	Provider        string `json:"provider"`
	SubmissionID    string `json:"submission_id,omitempty"`
	CustomerMessage string `json:"customer_message,omitempty"`
}

func (d *DepositIntent) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Amount, validation.Required),
		validation.Field(&d.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&d.PhoneNumber, validation.Required),
		validation.Field(&d.Provider, validation.Required),
	)
}

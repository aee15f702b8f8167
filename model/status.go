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
	"encoding/json"
)

// StatusData is the normalized transaction status payload. The provider
// reports the transaction ID in a kind-specific field; parsing resolves it
// into a single TransactionReference so downstream code never inspects three
// optional fields.
type StatusData struct {
	Reference             TransactionReference `json:"reference"`
	Status                string               `json:"status"`
	Amount                string               `json:"amount,omitempty"`
	Currency              string               `json:"currency,omitempty"`
	Country               string               `json:"country,omitempty"`
	Created               string               `json:"created,omitempty"`
	ProviderTransactionID string               `json:"providerTransactionId,omitempty"`
	FailureReason         *FailureReason       `json:"failureReason,omitempty"`
}

// StatusEnvelope wraps the outcome of a status lookup. Data is nil exactly
// when Status is not OK (the transaction is not visible yet, or the lookup
// itself errored).
type StatusEnvelope struct {
	Status string      `json:"status"`
	Data   *StatusData `json:"data,omitempty"`
}

// NotFound reports whether the lookup did not find the transaction.
func (e *StatusEnvelope) NotFound() bool {
	return e.Status == LookupNotFound || e.Data == nil
}

// NotFoundEnvelope builds the envelope for a transaction the provider cannot
// see yet.
func NotFoundEnvelope() *StatusEnvelope {
	return &StatusEnvelope{Status: LookupNotFound}
}

// statusWire mirrors the provider's raw status payload, with the polymorphic
// depositId/payoutId/refundId fields kept separate. Unknown fields are
// dropped by the decoder.
type statusWire struct {
	Status string `json:"status"`
	Data   *struct {
		DepositID             string         `json:"depositId"`
		PayoutID              string         `json:"payoutId"`
		RefundID              string         `json:"refundId"`
		Status                string         `json:"status"`
		Amount                string         `json:"amount"`
		Currency              string         `json:"currency"`
		Country               string         `json:"country"`
		Created               string         `json:"created"`
		ProviderTransactionID string         `json:"providerTransactionId"`
		FailureReason         *FailureReason `json:"failureReason"`
	} `json:"data"`
}

// ParseStatusEnvelope decodes a provider status response body and normalizes
// it. The kind argument settles the reference kind when the payload carries
// no ID at all; when an ID field is present it wins, since it tells us which
// system actually answered.
func ParseStatusEnvelope(body []byte, kind TransactionKind) (*StatusEnvelope, error) {
	var wire statusWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, err
	}

	envelope := &StatusEnvelope{Status: wire.Status}
	if wire.Data == nil {
		return envelope, nil
	}

	ref := TransactionReference{Kind: kind}
	switch {
	case wire.Data.DepositID != "":
		ref = TransactionReference{Kind: KindDeposit, ID: wire.Data.DepositID}
	case wire.Data.PayoutID != "":
		ref = TransactionReference{Kind: KindPayout, ID: wire.Data.PayoutID}
	case wire.Data.RefundID != "":
		ref = TransactionReference{Kind: KindRefund, ID: wire.Data.RefundID}
	}

	envelope.Data = &StatusData{
		Reference:             ref,
		Status:                wire.Data.Status,
		Amount:                wire.Data.Amount,
		Currency:              wire.Data.Currency,
		Country:               wire.Data.Country,
		Created:               wire.Data.Created,
		ProviderTransactionID: wire.Data.ProviderTransactionID,
		FailureReason:         wire.Data.FailureReason,
	}
	return envelope, nil
}

// SubmissionResult is the normalized acceptance outcome of a submit call.
// Reference prefers the provider-assigned ID, falling back to the submitted
// one when the provider omits it. A REJECTED status here is terminal; no
// polling should follow.
type SubmissionResult struct {
	Reference TransactionReference `json:"reference"`
	Status    string               `json:"status"`
	Reason    string               `json:"reason,omitempty"`
}

// Rejected reports whether the provider refused the submission outright.
func (r *SubmissionResult) Rejected() bool {
	return r.Status == StatusRejected
}

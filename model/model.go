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
	"fmt"

	"github.com/google/uuid"
)

// TransactionKind identifies which of the provider's transaction resources a
// request or status lookup targets.
type TransactionKind string

const (
	KindDeposit TransactionKind = "DEPOSIT"
	KindPayout  TransactionKind = "PAYOUT"
	KindRefund  TransactionKind = "REFUND"
)

// Lifecycle statuses reported by the provider. ENQUEUED means the downstream
// correspondent is temporarily unavailable and the provider is retrying on
// its own; it is not an error.
const (
	StatusSubmitted        = "SUBMITTED"
	StatusAccepted         = "ACCEPTED"
	StatusEnqueued         = "ENQUEUED"
	StatusCompleted        = "COMPLETED"
	StatusFailed           = "FAILED"
	StatusRejected         = "REJECTED"
	StatusDuplicateIgnored = "DUPLICATE_IGNORED"
)

// Envelope statuses for a status lookup.
const (
	LookupOK       = "OK"
	LookupNotFound = "NOT_FOUND"
)

// kindPaths maps each transaction kind to its provider resource path.
var kindPaths = map[TransactionKind]string{
	KindDeposit: "deposits",
	KindPayout:  "payouts",
	KindRefund:  "refunds",
}

// ResourcePath returns the provider resource path for the kind, e.g.
// "deposits" for KindDeposit.
func (k TransactionKind) ResourcePath() string {
	return kindPaths[k]
}

// Valid reports whether the kind is one of the supported transaction kinds.
func (k TransactionKind) Valid() bool {
	_, ok := kindPaths[k]
	return ok
}

func (k TransactionKind) String() string {
	return string(k)
}

// IsTerminalStatus reports whether a lifecycle status admits no further
// transitions.
func IsTerminalStatus(status string) bool {
	switch status {
	case StatusCompleted, StatusFailed, StatusRejected:
		return true
	}
	return false
}

// TransactionReference pairs a provider-assigned transaction ID with the kind
// of resource it belongs to. The provider's status payload carries the ID in
// a kind-specific field (depositId, payoutId or refundId); parsing collapses
// those into one reference.
type TransactionReference struct {
	Kind TransactionKind `json:"kind"`
	ID   string          `json:"id"`
}

func (r TransactionReference) String() string {
	return fmt.Sprintf("%s/%s", r.Kind.ResourcePath(), r.ID)
}

// GenerateTransactionID mints a fresh idempotency identifier for a
// submission. The provider treats the ID as the idempotency key, so a retry
// of a failed submission must call this again rather than reuse the old ID.
func GenerateTransactionID() string {
	return uuid.New().String()
}

// FailureReason carries the provider's machine code and human message for a
// failed or rejected transaction.
type FailureReason struct {
	Code    string `json:"failureCode"`
	Message string `json:"failureMessage"`
}

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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/model"
)

func TestDepositSubmission(t *testing.T) {
	p := newTestService(t)

	var captured model.DepositRequest
	httpmock.RegisterResponder("POST", testBaseURL+"deposits",
		func(req *http.Request) (*http.Response, error) {
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&captured))
			return httpmock.NewStringResponse(200, fmt.Sprintf(`{"depositId":%q,"status":"ACCEPTED"}`, captured.DepositID)), nil
		})

	result, err := p.Deposit(context.Background(), model.DepositIntent{
		Amount:      "1000",
		Currency:    "UGX",
		PhoneNumber: "+256700000000",
		Provider:    "MTN_MOMO_UGA",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.KindDeposit, result.Reference.Kind)
	assert.Equal(t, captured.DepositID, result.Reference.ID)
	assert.Equal(t, model.StatusAccepted, result.Status)
	assert.False(t, result.Rejected())

	// The request is fully provider-shaped
	assert.NotEmpty(t, captured.DepositID)
	assert.Equal(t, "1000", captured.Amount)
	assert.Equal(t, "UGX", captured.Currency)
	assert.Equal(t, "MMO", captured.Payer.Type)
	assert.Equal(t, "+256700000000", captured.Payer.AccountDetails.PhoneNumber)
	assert.Equal(t, "MTN_MOMO_UGA", captured.Payer.AccountDetails.Provider)
	assert.Equal(t, "Payment of 1000 UGX", captured.CustomerMessage)
}

func TestDepositGeneratesUniqueSubmissionIDs(t *testing.T) {
	p := newTestService(t)

	var ids []string
	httpmock.RegisterResponder("POST", testBaseURL+"deposits",
		func(req *http.Request) (*http.Response, error) {
			var body model.DepositRequest
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			ids = append(ids, body.DepositID)
			return httpmock.NewStringResponse(200, `{"depositId":"","status":"ACCEPTED"}`), nil
		})

	intent := model.DepositIntent{
		Amount:      "1000",
		Currency:    "UGX",
		PhoneNumber: gofakeit.Phone(),
		Provider:    "MTN_MOMO_UGA",
	}
	for i := 0; i < 5; i++ {
		_, err := p.Deposit(context.Background(), intent)
		assert.NoError(t, err)
	}

	assert.Len(t, ids, 5)
	seen := make(map[string]bool)
	for _, id := range ids {
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "submission IDs must be pairwise distinct")
		seen[id] = true
	}
}

func TestDepositFallsBackToSubmittedID(t *testing.T) {
	p := newTestService(t)

	// Provider omits its reference; the submitted ID is used instead
	httpmock.RegisterResponder("POST", testBaseURL+"deposits",
		httpmock.NewStringResponder(200, `{"status":"ACCEPTED"}`))

	result, err := p.Deposit(context.Background(), model.DepositIntent{
		Amount:       "1000",
		Currency:     "UGX",
		PhoneNumber:  "+256700000000",
		Provider:     "MTN_MOMO_UGA",
		SubmissionID: "my-id-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, "my-id-1", result.Reference.ID)
}

func TestDepositPrefersProviderReference(t *testing.T) {
	p := newTestService(t)

	httpmock.RegisterResponder("POST", testBaseURL+"deposits",
		httpmock.NewStringResponder(200, `{"depositId":"provider-id","status":"ACCEPTED"}`))

	result, err := p.Deposit(context.Background(), model.DepositIntent{
		Amount:       "1000",
		Currency:     "UGX",
		PhoneNumber:  "+256700000000",
		Provider:     "MTN_MOMO_UGA",
		SubmissionID: "my-id-2",
	})
	assert.NoError(t, err)
	assert.Equal(t, "provider-id", result.Reference.ID)
}

func TestDepositRejectionIsABusinessOutcome(t *testing.T) {
	p := newTestService(t)

	// Scenario: submission itself is rejected. The HTTP call succeeded, so
	// the orchestrator returns a result, not an error; no polling follows.
	httpmock.RegisterResponder("POST", testBaseURL+"deposits",
		httpmock.NewStringResponder(200, `{"depositId":"d-rej","status":"REJECTED","reason":"Insufficient funds"}`))

	result, err := p.Deposit(context.Background(), model.DepositIntent{
		Amount:      "10000",
		Currency:    "UGX",
		PhoneNumber: "+256700000000",
		Provider:    "MTN_MOMO_UGA",
	})
	assert.NoError(t, err)
	assert.True(t, result.Rejected())
	assert.Equal(t, "Insufficient funds", result.Reason)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestDepositValidationFailsBeforeNetwork(t *testing.T) {
	p := newTestService(t)

	_, err := p.Deposit(context.Background(), model.DepositIntent{
		Currency:    "UGX",
		PhoneNumber: "+256700000000",
		Provider:    "MTN_MOMO_UGA",
	})
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrValidation, apierror.CodeOf(err))
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestDepositAmountPassesThroughVerbatim(t *testing.T) {
	p := newTestService(t)

	// Amounts are opaque strings; "0100.50" must not be reformatted
	var captured model.DepositRequest
	httpmock.RegisterResponder("POST", testBaseURL+"deposits",
		func(req *http.Request) (*http.Response, error) {
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&captured))
			return httpmock.NewStringResponse(200, `{"depositId":"d1","status":"ACCEPTED"}`), nil
		})

	_, err := p.Deposit(context.Background(), model.DepositIntent{
		Amount:      "0100.50",
		Currency:    "UGX",
		PhoneNumber: "+256700000000",
		Provider:    "MTN_MOMO_UGA",
	})
	assert.NoError(t, err)
	assert.Equal(t, "0100.50", captured.Amount)
}

func TestPayoutSubmission(t *testing.T) {
	p := newTestService(t)

	var captured model.PayoutRequest
	httpmock.RegisterResponder("POST", testBaseURL+"payouts",
		func(req *http.Request) (*http.Response, error) {
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&captured))
			return httpmock.NewStringResponse(200, fmt.Sprintf(`{"payoutId":%q,"status":"ENQUEUED"}`, captured.PayoutID)), nil
		})

	result, err := p.Payout(context.Background(), model.PayoutIntent{
		Amount:      "5000",
		Currency:    "KES",
		PhoneNumber: "+254700000000",
		Provider:    "SAFARICOM_KEN",
		Description: "Salary",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.KindPayout, result.Reference.Kind)
	assert.Equal(t, model.StatusEnqueued, result.Status)

	assert.NotEmpty(t, captured.PayoutID)
	assert.Equal(t, "MMO", captured.Recipient.Type)
	assert.Equal(t, "Salary", captured.StatementDescription)
	assert.NotEmpty(t, captured.CustomerTimestamp)
}

func TestPayoutValidation(t *testing.T) {
	p := newTestService(t)

	_, err := p.Payout(context.Background(), model.PayoutIntent{Amount: "5000"})
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrValidation, apierror.CodeOf(err))
}

func TestRefundSubmission(t *testing.T) {
	p := newTestService(t)

	var captured model.RefundRequest
	httpmock.RegisterResponder("POST", testBaseURL+"refunds",
		func(req *http.Request) (*http.Response, error) {
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&captured))
			return httpmock.NewStringResponse(200, fmt.Sprintf(`{"refundId":%q,"status":"ACCEPTED"}`, captured.RefundID)), nil
		})

	result, err := p.Refund(context.Background(), model.RefundIntent{
		DepositID: "d1",
		Amount:    "1000",
		Currency:  "UGX",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.KindRefund, result.Reference.Kind)
	assert.Equal(t, "d1", captured.DepositID)
	assert.NotEmpty(t, captured.RefundID)
}

func TestRefundValidation(t *testing.T) {
	p := newTestService(t)

	_, err := p.Refund(context.Background(), model.RefundIntent{Amount: "1000", Currency: "UGX"})
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrValidation, apierror.CodeOf(err))
}

func TestGetTransactionStatusValidation(t *testing.T) {
	p := newTestService(t)

	_, err := p.GetTransactionStatus(context.Background(), "", model.KindDeposit)
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrValidation, apierror.CodeOf(err))

	_, err = p.GetTransactionStatus(context.Background(), "d1", model.TransactionKind("TRANSFER"))
	assert.Error(t, err)
	assert.Equal(t, apierror.ErrValidation, apierror.CodeOf(err))
}

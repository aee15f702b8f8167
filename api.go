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
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dala-io/pawapay-go/config"
	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/internal/request"
	"github.com/dala-io/pawapay-go/model"
)

// Client is a thin typed wrapper over the provider's REST endpoints. Each
// method performs exactly one HTTP round trip and never retries; retrying is
// the polling engine's job. Transport and non-2xx failures surface as
// TRANSPORT_ERROR carrying the raw provider body when one was returned.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a client for the configured environment.
func NewClient(cnf *config.Configuration) *Client {
	return &Client{
		baseURL: cnf.BaseURL,
		token:   cnf.APIToken,
		http: &http.Client{
			Timeout: time.Duration(cnf.HTTPTimeoutSeconds) * time.Second,
		},
	}
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}

// do sends one request and decodes a 2xx JSON body into out when out is
// non-nil. The raw body is returned for callers that need the provider's
// exact payload.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) ([]byte, *http.Response, error) {
	var req *http.Request
	var err error

	if payload != nil {
		body, err := request.ToJsonReq(payload)
		if err != nil {
			return nil, nil, apierror.NewAPIError(apierror.ErrTransport, fmt.Sprintf("failed to encode request: %v", err), nil)
		}
		req, err = http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
		if err != nil {
			return nil, nil, apierror.NewAPIError(apierror.ErrTransport, fmt.Sprintf("failed to create request: %v", err), nil)
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.endpoint(path), nil)
		if err != nil {
			return nil, nil, apierror.NewAPIError(apierror.ErrTransport, fmt.Sprintf("failed to create request: %v", err), nil)
		}
	}
	req.Header.Set("Authorization", request.BearerAuth(c.token))

	resp, body, err := request.Call(c.http, req, nil)
	if err != nil {
		if ctx.Err() != nil {
			return nil, resp, ctx.Err()
		}
		return nil, resp, apierror.NewAPIError(apierror.ErrTransport, err.Error(), nil)
	}

	logrus.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
	}).Debug("provider response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, resp, apierror.NewAPIError(
			apierror.ErrTransport,
			fmt.Sprintf("provider returned status %d for %s %s", resp.StatusCode, method, path),
			string(body),
		)
	}

	if out != nil && len(body) > 0 {
		if err := request.DecodeJSON(body, out); err != nil {
			return body, resp, apierror.NewAPIError(apierror.ErrTransport, fmt.Sprintf("failed to decode response: %v", err), string(body))
		}
	}
	return body, resp, nil
}

// InitiateDeposit submits a deposit (collection) request.
func (c *Client) InitiateDeposit(ctx context.Context, req *model.DepositRequest) (*model.DepositResponse, error) {
	var out model.DepositResponse
	if _, _, err := c.do(ctx, http.MethodPost, model.KindDeposit.ResourcePath(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiatePayout submits a payout (disbursement) request.
func (c *Client) InitiatePayout(ctx context.Context, req *model.PayoutRequest) (*model.PayoutResponse, error) {
	var out model.PayoutResponse
	if _, _, err := c.do(ctx, http.MethodPost, model.KindPayout.ResourcePath(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InitiateRefund submits a refund against an earlier deposit.
func (c *Client) InitiateRefund(ctx context.Context, req *model.RefundRequest) (*model.RefundResponse, error) {
	var out model.RefundResponse
	if _, _, err := c.do(ctx, http.MethodPost, model.KindRefund.ResourcePath(), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStatus fetches the current status of a transaction. A 404 from the
// provider is a lookup outcome, not a failure: the write path and read path
// are not strongly consistent, so a just-accepted transaction may not be
// visible yet. Such responses come back as a NOT_FOUND envelope.
func (c *Client) GetStatus(ctx context.Context, id string, kind model.TransactionKind) (*model.StatusEnvelope, error) {
	path := fmt.Sprintf("%s/%s", kind.ResourcePath(), url.PathEscape(id))
	body, resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return model.NotFoundEnvelope(), nil
		}
		return nil, err
	}
	return model.ParseStatusEnvelope(body, kind)
}

// GetWalletBalances fetches the account's wallet balances, optionally
// filtered by ISO 3166-1 alpha-3 country code.
func (c *Client) GetWalletBalances(ctx context.Context, country string) (*model.WalletBalanceList, error) {
	path := "wallet-balances"
	if country != "" {
		path += "?country=" + url.QueryEscape(country)
	}
	var out model.WalletBalanceList
	if _, _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PredictProvider asks the provider which correspondent operates a phone
// number.
func (c *Client) PredictProvider(ctx context.Context, phoneNumber string) (*model.ProviderPrediction, error) {
	payload := map[string]string{"phoneNumber": phoneNumber}
	var out model.ProviderPrediction
	if _, _, err := c.do(ctx, http.MethodPost, "predict-provider", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

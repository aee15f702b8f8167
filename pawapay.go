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
	"errors"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/dala-io/pawapay-go/config"
	"github.com/dala-io/pawapay-go/model"
)

var tracer = otel.Tracer("pawapay.sdk")

// PawaPay is the main entry point of the SDK. It owns a typed API client and
// the configured polling defaults. A single instance is safe for concurrent
// use; every operation is stateless apart from the shared HTTP connection
// pool.
type PawaPay struct {
	api *Client
	cnf *config.Configuration
}

// New builds a PawaPay service from an explicit configuration. Construction
// is explicit rather than pulled from a global registry so hosts can run
// several environments side by side.
func New(cnf *config.Configuration) (*PawaPay, error) {
	if cnf == nil {
		return nil, errors.New("configuration is required")
	}
	return &PawaPay{api: NewClient(cnf), cnf: cnf}, nil
}

// Client exposes the underlying typed API client for callers that want raw
// endpoint access without the orchestration layer.
func (p *PawaPay) Client() *Client {
	return p.api
}

// DefaultResolvePolicy returns the polling policy from configuration:
// 30 attempts at a fixed 4s interval with a 5-attempt NOT_FOUND grace window
// unless overridden.
func (p *PawaPay) DefaultResolvePolicy() ResolvePolicy {
	return ResolvePolicy{
		MaxAttempts:           p.cnf.Poller.MaxAttempts,
		Interval:              time.Duration(p.cnf.Poller.IntervalSeconds) * time.Second,
		NotFoundGraceAttempts: p.cnf.Poller.NotFoundGraceAttempts,
	}
}

// submissionResult normalizes a provider acceptance response. The provider's
// reference ID wins; the submitted ID is the fallback when the provider
// omits one.
func submissionResult(kind model.TransactionKind, providerID, submittedID, status, reason string) *model.SubmissionResult {
	id := providerID
	if id == "" {
		id = submittedID
	}
	return &model.SubmissionResult{
		Reference: model.TransactionReference{Kind: kind, ID: id},
		Status:    status,
		Reason:    reason,
	}
}

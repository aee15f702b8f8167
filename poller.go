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
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/model"
)

// ResolvePolicy controls the polling engine. The interval is fixed: no
// exponential growth, so the worst case is bounded at MaxAttempts × Interval
// and matches UI "please wait" expectations. NotFoundGraceAttempts is how
// many leading attempts may see NOT_FOUND before it becomes terminal; the
// provider's accept path and status path are not strongly consistent, so a
// fresh transaction is often invisible for the first few seconds.
type ResolvePolicy struct {
	MaxAttempts           int
	Interval              time.Duration
	NotFoundGraceAttempts int
}

// withDefaults fills zero fields from the configured defaults.
func (rp ResolvePolicy) withDefaults(fallback ResolvePolicy) ResolvePolicy {
	if rp.MaxAttempts <= 0 {
		rp.MaxAttempts = fallback.MaxAttempts
	}
	if rp.Interval <= 0 {
		rp.Interval = fallback.Interval
	}
	if rp.NotFoundGraceAttempts <= 0 {
		rp.NotFoundGraceAttempts = fallback.NotFoundGraceAttempts
	}
	return rp
}

// Sentinel errors for non-terminal poll outcomes. They only steer the retry
// loop and never escape ResolveTransaction.
var (
	errNotVisibleYet = errors.New("transaction not visible yet")
	errStillPending  = errors.New("transaction still in flight")
)

// ResolveTransaction polls the transaction's status until it reaches a
// terminal state, the attempts run out, or ctx is cancelled. Cancellation
// takes effect at the next attempt boundary; it stops the observation, not
// the provider-side transaction.
//
// A transport error on an individual poll consumes the attempt and the loop
// continues: the status GET is idempotent, and a network blip must not
// abandon a payment the provider already accepted.
func (p *PawaPay) ResolveTransaction(ctx context.Context, id string, kind model.TransactionKind, policy ResolvePolicy) (*model.StatusEnvelope, error) {
	ctx, span := tracer.Start(ctx, "Resolving transaction")
	defer span.End()

	if id == "" {
		return nil, apierror.NewAPIError(apierror.ErrValidation, "transaction id is required", nil)
	}
	if !kind.Valid() {
		return nil, apierror.NewAPIError(apierror.ErrValidation, "unknown transaction kind", nil)
	}
	policy = policy.withDefaults(p.DefaultResolvePolicy())

	log := logrus.WithFields(logrus.Fields{
		"transaction_id": id,
		"kind":           kind,
	})
	log.Infof("resolving transaction: up to %d attempts every %v", policy.MaxAttempts, policy.Interval)

	var final *model.StatusEnvelope
	attempt := 0

	operation := func() error {
		attempt++

		envelope, err := p.GetTransactionStatus(ctx, id, kind)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			log.WithField("attempt", attempt).WithError(err).Warn("status check failed, attempt consumed")
			return err
		}

		if envelope.NotFound() {
			if attempt > policy.NotFoundGraceAttempts {
				return backoff.Permanent(apierror.NewAPIError(
					apierror.ErrNotFoundExhausted,
					fmt.Sprintf("transaction %s not found in %s system", id, strings.ToLower(kind.String())),
					nil,
				))
			}
			log.WithField("attempt", attempt).Debug("transaction not visible yet, inside grace window")
			return errNotVisibleYet
		}

		switch envelope.Data.Status {
		case model.StatusCompleted:
			final = envelope
			return nil
		case model.StatusFailed, model.StatusRejected:
			return backoff.Permanent(apierror.NewAPIError(
				apierror.ErrRejected,
				failureMessage(kind, envelope.Data),
				envelope.Data.FailureReason,
			))
		case model.StatusEnqueued:
			// Correspondent temporarily unavailable; the provider is already
			// retrying on its side.
			log.WithField("attempt", attempt).Debug("transaction enqueued at provider, still waiting")
			return errStillPending
		default:
			log.WithFields(logrus.Fields{"attempt": attempt, "status": envelope.Data.Status}).Debug("transaction still in flight")
			return errStillPending
		}
	}

	pacing := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(policy.Interval), uint64(policy.MaxAttempts-1)),
		ctx,
	)

	if err := backoff.Retry(operation, pacing); err != nil {
		if ctx.Err() != nil {
			log.WithField("attempt", attempt).Info("resolve cancelled by caller")
			return nil, ctx.Err()
		}
		var apiErr apierror.APIError
		if errors.As(err, &apiErr) && apierror.IsTerminal(apiErr) {
			log.WithFields(logrus.Fields{"attempt": attempt, "code": apiErr.Code}).Info("transaction resolved to failure")
			return nil, apiErr
		}
		log.WithField("attempt", attempt).Warn("transaction did not reach a final status")
		return nil, apierror.NewAPIError(
			apierror.ErrPollTimeout,
			fmt.Sprintf("timed out waiting for %s to reach a final status", id),
			nil,
		)
	}

	log.WithFields(logrus.Fields{"attempt": attempt, "status": final.Data.Status}).Info("transaction resolved")
	return final, nil
}

// failureMessage implements the message precedence for terminal failures:
// the provider's own failure message wins; otherwise a kind-specific default.
func failureMessage(kind model.TransactionKind, data *model.StatusData) string {
	if data.FailureReason != nil && data.FailureReason.Message != "" {
		return data.FailureReason.Message
	}
	if data.Status == model.StatusRejected {
		return fmt.Sprintf("%s was rejected by the provider", strings.ToLower(kind.String()))
	}
	return "transaction failed"
}

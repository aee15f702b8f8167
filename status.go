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

	"github.com/dala-io/pawapay-go/internal/apierror"
	"github.com/dala-io/pawapay-go/model"
)

// GetTransactionStatus performs a single-shot status lookup. It never
// retries; a NOT_FOUND envelope is a normal outcome during the provider's
// read-after-write lag and is left to the polling engine to interpret.
func (p *PawaPay) GetTransactionStatus(ctx context.Context, id string, kind model.TransactionKind) (*model.StatusEnvelope, error) {
	if id == "" {
		return nil, apierror.NewAPIError(apierror.ErrValidation, "transaction id is required", nil)
	}
	if !kind.Valid() {
		return nil, apierror.NewAPIError(apierror.ErrValidation, "unknown transaction kind", nil)
	}
	envelope, err := p.api.GetStatus(ctx, id, kind)
	if err != nil {
		return nil, errors.Wrapf(err, "status check for %s failed", id)
	}
	return envelope, nil
}

// WalletBalances fetches the account's wallet balances, optionally filtered
// by ISO 3166-1 alpha-3 country code.
func (p *PawaPay) WalletBalances(ctx context.Context, country string) (*model.WalletBalanceList, error) {
	balances, err := p.api.GetWalletBalances(ctx, country)
	if err != nil {
		return nil, errors.Wrap(err, "wallet balance lookup failed")
	}
	return balances, nil
}

// PredictProvider asks the provider which correspondent most likely operates
// the given phone number.
func (p *PawaPay) PredictProvider(ctx context.Context, phoneNumber string) (*model.ProviderPrediction, error) {
	if phoneNumber == "" {
		return nil, apierror.NewAPIError(apierror.ErrValidation, "phone number is required", nil)
	}
	prediction, err := p.api.PredictProvider(ctx, phoneNumber)
	if err != nil {
		return nil, errors.Wrap(err, "provider prediction failed")
	}
	return prediction, nil
}

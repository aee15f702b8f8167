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

// WalletBalance is one provider wallet balance. Balance is an opaque decimal
// string, like every monetary amount on this API.
type WalletBalance struct {
	Country  string `json:"country"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
	Provider string `json:"provider,omitempty"`
}

// WalletBalanceList is the response of GET /wallet-balances.
type WalletBalanceList struct {
	Balances []WalletBalance `json:"balances"`
}

// ProviderPrediction is the response of POST /predict-provider: the
// correspondent the provider believes operates the given phone number.
type ProviderPrediction struct {
	Country     string `json:"country"`
	Provider    string `json:"provider"`
	PhoneNumber string `json:"phoneNumber"`
}

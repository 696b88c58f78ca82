// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package goecash

import (
	"log/slog"

	"github.com/blinklabs-io/goecash/currency"
)

// ValidatorOptionFunc is a type that represents functions that modify the Validator config
type ValidatorOptionFunc func(*Validator)

// WithCurrency specifies the currency to validate against. The default is XEC
func WithCurrency(cur currency.Currency) ValidatorOptionFunc {
	return func(v *Validator) {
		v.currency = cur.Clone()
	}
}

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ValidatorOptionFunc {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithUtxoBucketKeys specifies the keys unwrapped from nested UTXO batch elements
func WithUtxoBucketKeys(keys ...string) ValidatorOptionFunc {
	return func(v *Validator) {
		v.currency = v.currency.Clone()
		v.currency.UtxoBucketKeys = append([]string{}, keys...)
	}
}

// WithFiatCurrencies replaces the fiat allow-list used for settings validation
func WithFiatCurrencies(codes ...string) ValidatorOptionFunc {
	return func(v *Validator) {
		v.currency = v.currency.Clone()
		v.currency.FiatCurrencies = append([]string{}, codes...)
	}
}

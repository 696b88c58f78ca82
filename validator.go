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
	"errors"
	"log/slog"

	"github.com/blinklabs-io/goecash/address"
	"github.com/blinklabs-io/goecash/amount"
	"github.com/blinklabs-io/goecash/currency"
	"github.com/blinklabs-io/goecash/settings"
	"github.com/blinklabs-io/goecash/token"
	"github.com/blinklabs-io/goecash/utxo"
	"github.com/shopspring/decimal"
)

const (
	componentAmount   = "amount"
	componentAddress  = "address"
	componentToken    = "token"
	componentUtxo     = "utxo"
	componentSettings = "settings"
)

// Validator binds the validators of this module to a currency and a logger
type Validator struct {
	currency currency.Currency
	logger   *slog.Logger
}

// New returns a Validator for XEC unless another currency is given
func New(opts ...ValidatorOptionFunc) *Validator {
	v := &Validator{
		currency: currency.CurrencyXEC.Clone(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Currency returns a copy of the currency the validator checks against
func (v *Validator) Currency() currency.Currency {
	return v.currency.Clone()
}

// ShouldRejectAmountInput returns nil for an acceptable send amount, or an
// *amount.RejectionError whose message is meant for the user
func (v *Validator) ShouldRejectAmountInput(
	amt string,
	currencyCode string,
	exchangeRate decimal.Decimal,
	availableBalance decimal.Decimal,
) error {
	err := amount.ShouldRejectAmountInput(
		v.currency,
		amt,
		currencyCode,
		exchangeRate,
		availableBalance,
	)
	return v.rejected(componentAmount, err, "amount", amt, "currency_code", currencyCode)
}

// FiatToCrypto converts a fiat amount at the given exchange rate, formatted with
// the native unit's decimal places
func (v *Validator) FiatToCrypto(fiatAmount string, exchangeRate decimal.Decimal) (string, error) {
	ret, err := amount.FiatToCrypto(fiatAmount, exchangeRate, v.currency.CashDecimals)
	return ret, v.rejected(componentAmount, err, "fiat_amount", fiatAmount)
}

// IsValidSendAmount reports whether amt is a number no smaller than the dust floor
func (v *Validator) IsValidSendAmount(amt string) bool {
	return amount.IsValidSendAmount(v.currency, amt)
}

// DecodeAddress classifies addr for the validator's currency
func (v *Validator) DecodeAddress(addr string) (address.Address, error) {
	ret, err := address.Decode(v.currency, addr)
	return ret, v.rejected(componentAddress, err, "address", addr)
}

// ClassifyAddress returns the kind of addr
func (v *Validator) ClassifyAddress(addr string) address.Kind {
	return address.Classify(v.currency, addr)
}

func (v *Validator) IsValidXecAddress(addr string) bool {
	return address.IsValidXecAddress(v.currency, addr)
}

func (v *Validator) IsValidEtokenAddress(addr string) bool {
	return address.IsValidEtokenAddress(v.currency, addr)
}

func (v *Validator) ToTokenAddress(addr string) (string, error) {
	return address.ToTokenAddress(v.currency, addr)
}

func (v *Validator) ToXecAddress(addr string) (string, error) {
	return address.ToXecAddress(v.currency, addr)
}

func (v *Validator) IsValidTokenName(name string) bool {
	return token.IsValidTokenName(name)
}

func (v *Validator) IsValidTokenTicker(ticker string) bool {
	return token.IsValidTokenTicker(ticker)
}

func (v *Validator) IsValidTokenDecimals(decimals string) bool {
	return token.IsValidTokenDecimals(decimals)
}

func (v *Validator) IsValidTokenInitialQty(qty string, decimals string) bool {
	return token.IsValidTokenInitialQty(qty, decimals)
}

func (v *Validator) IsValidTokenDocumentUrl(url string) bool {
	return token.IsValidTokenDocumentUrl(url)
}

// ValidateGenesis decodes and validates a JSON token genesis form
func (v *Validator) ValidateGenesis(raw []byte) (token.GenesisParams, error) {
	params, err := token.ParseGenesisParams(raw)
	if err == nil {
		err = params.Validate()
	}
	if err != nil {
		return token.GenesisParams{}, v.rejected(componentToken, err)
	}
	return params, nil
}

// ParseTokenStats decodes a token stats record
func (v *Validator) ParseTokenStats(raw []byte) (token.Stats, error) {
	ret, err := token.ParseStats(v.currency, raw)
	return ret, v.rejected(componentToken, err)
}

func (v *Validator) IsValidTokenStats(raw []byte) bool {
	_, err := v.ParseTokenStats(raw)
	return err == nil
}

// ParseUtxo decodes a single UTXO record
func (v *Validator) ParseUtxo(raw []byte) (utxo.Utxo, error) {
	ret, err := utxo.ParseUtxo(raw)
	return ret, v.rejected(componentUtxo, err)
}

func (v *Validator) IsValidUtxo(raw []byte) bool {
	_, err := v.ParseUtxo(raw)
	return err == nil
}

// ParseUtxoBatch decodes a JSON UTXO batch using the currency's bucket keys
func (v *Validator) ParseUtxoBatch(raw []byte) (utxo.Batch, error) {
	ret, err := utxo.ParseBatch(raw, v.batchOptions()...)
	return ret, v.rejected(componentUtxo, err)
}

// ParseUtxoBatchCbor decodes a CBOR UTXO batch using the currency's bucket keys
func (v *Validator) ParseUtxoBatchCbor(data []byte) (utxo.Batch, error) {
	ret, err := utxo.ParseBatchCbor(data, v.batchOptions()...)
	return ret, v.rejected(componentUtxo, err, "encoding", "cbor")
}

func (v *Validator) IsValidBchApiUtxoObject(raw []byte) bool {
	_, err := v.ParseUtxoBatch(raw)
	return err == nil
}

func (v *Validator) batchOptions() []utxo.BatchOption {
	if len(v.currency.UtxoBucketKeys) == 0 {
		return nil
	}
	return []utxo.BatchOption{
		utxo.WithBucketKeys(v.currency.UtxoBucketKeys...),
	}
}

// ParseSettings decodes a settings object against the currency's fiat allow-list
func (v *Validator) ParseSettings(raw []byte) (settings.Settings, error) {
	ret, err := settings.Parse(v.currency, raw)
	return ret, v.rejected(componentSettings, err)
}

func (v *Validator) IsValidCashtabSettings(raw []byte) bool {
	_, err := v.ParseSettings(raw)
	return err == nil
}

// rejected logs a rejection at debug level and returns err unchanged
func (v *Validator) rejected(component string, err error, args ...any) error {
	if err == nil {
		return nil
	}
	attrs := append(
		[]any{
			"component", component,
			"error", err,
		},
		args...,
	)
	var rejection *amount.RejectionError
	if errors.As(err, &rejection) {
		attrs = append(attrs, "reason", rejection.Reason.String())
	}
	v.logger.Debug("input rejected", attrs...)
	return err
}

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

// Package currency holds the read-only asset parameters that every validator
// in this module is evaluated against.
package currency

import (
	"slices"

	"github.com/jinzhu/copier"
)

// Currency definitions
var (
	CurrencyXEC = Currency{
		Name:          "eCash",
		Ticker:        "XEC",
		TokenTicker:   "eToken",
		Prefixes:      []string{"ecash"},
		TokenPrefixes: []string{"etoken"},
		ForeignPrefixes: []string{
			"bitcoincash",
			"simpleledger",
			"ectest",
			"ecregtest",
			"bchtest",
			"bchreg",
		},
		CashDecimals:        2,
		DustSats:            550,
		ForkHeight:          661648,
		DefaultFiatCurrency: "usd",
		FiatCurrencies: []string{
			"usd", "idr", "krw", "cny", "zar", "vnd", "cad", "nok",
			"eur", "gbp", "jpy", "try", "rub", "inr", "brl", "php",
			"ils", "clp", "twd", "hkd", "bhd", "sar", "aud", "nzd",
		},
		UtxoBucketKeys: []string{"utxos"},
	}

	CurrencyInvalid = Currency{
		Name: "invalid",
	} // CurrencyInvalid is used as a return value for lookup functions when a currency isn't found
)

// List of known currencies for use in lookup functions
var currencies = []Currency{
	CurrencyXEC,
}

// ByTicker returns a predefined currency by ticker
func ByTicker(ticker string) Currency {
	for _, c := range currencies {
		if c.Ticker == ticker {
			return c.Clone()
		}
	}
	return CurrencyInvalid
}

// Currency describes a wallet asset and the address formats it accepts
type Currency struct {
	Name        string
	Ticker      string
	TokenTicker string
	// Prefixes are the cash address prefixes of the native asset. The first entry is canonical
	Prefixes []string
	// TokenPrefixes are the cash address prefixes used for token-aware addresses
	TokenPrefixes []string
	// ForeignPrefixes are sibling networks whose addresses share the cash address charset
	ForeignPrefixes []string
	// CashDecimals is the number of fractional digits of the native unit
	CashDecimals int32
	// DustSats is the smallest spendable output in base units
	DustSats int64
	// ForkHeight is the first block height of the post-fork chain
	ForkHeight          int64
	DefaultFiatCurrency string
	FiatCurrencies      []string
	// UtxoBucketKeys are the keys unwrapped from legacy nested UTXO batch elements
	UtxoBucketKeys []string
}

func (c Currency) String() string {
	return c.Ticker
}

// Clone returns a deep copy of the currency so that callers can derive a
// modified copy without touching the package-level definitions
func (c Currency) Clone() Currency {
	var ret Currency
	if err := copier.CopyWithOption(&ret, &c, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which can't happen for a same-type copy
		return c
	}
	return ret
}

// Prefix returns the canonical native address prefix
func (c Currency) Prefix() string {
	if len(c.Prefixes) == 0 {
		return ""
	}
	return c.Prefixes[0]
}

// TokenPrefix returns the canonical token address prefix
func (c Currency) TokenPrefix() string {
	if len(c.TokenPrefixes) == 0 {
		return ""
	}
	return c.TokenPrefixes[0]
}

// SupportsFiat reports whether the fiat code is in the allow-list. Codes are
// matched exactly as stored, which is lower case for the predefined currencies
func (c Currency) SupportsFiat(code string) bool {
	return slices.Contains(c.FiatCurrencies, code)
}

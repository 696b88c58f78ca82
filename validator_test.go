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

package goecash_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	goecash "github.com/blinklabs-io/goecash"
	"github.com/blinklabs-io/goecash/address"
	"github.com/blinklabs-io/goecash/amount"
	"github.com/blinklabs-io/goecash/cbor"
	"github.com/blinklabs-io/goecash/currency"
	"github.com/blinklabs-io/goecash/utxo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testXecAddress    = "ecash:qz2708636snqhsxu8wnlka78h6fdp77ar59jrf5035"
	testEtokenAddress = "etoken:qz2708636snqhsxu8wnlka78h6fdp77ar5tv2tzg4r"
	testP2shAddress   = "ecash:pz2708636snqhsxu8wnlka78h6fdp77ar5jh7xnv2f"
)

func newTestValidator(t *testing.T, opts ...goecash.ValidatorOptionFunc) (*goecash.Validator, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	opts = append([]goecash.ValidatorOptionFunc{goecash.WithLogger(logger)}, opts...)
	return goecash.New(opts...), &buf
}

func TestNewDefaults(t *testing.T) {
	v := goecash.New()
	cur := v.Currency()
	assert.Equal(t, "XEC", cur.Ticker)
	// The returned currency is a copy
	cur.Prefixes[0] = "changed"
	assert.Equal(t, "ecash", v.Currency().Prefix())
	assert.Equal(t, "ecash", currency.CurrencyXEC.Prefix())
}

func TestValidatorAmount(t *testing.T) {
	v, logs := newTestValidator(t)
	require.NoError(
		t,
		v.ShouldRejectAmountInput("10", "XEC", decimal.NewFromInt(20), decimal.NewFromInt(300)),
	)
	assert.Empty(t, logs.String())

	err := v.ShouldRejectAmountInput("17", "XEC", decimal.NewFromInt(20), decimal.NewFromInt(3))
	require.Error(t, err)
	assert.Equal(t, "Amount cannot exceed your XEC balance", err.Error())
	assert.ErrorIs(t, err, amount.ErrExceedsBalance)
	assert.Contains(t, logs.String(), "component=amount")
	assert.Contains(t, logs.String(), "reason=exceeds-balance")

	converted, err := v.FiatToCrypto("170", decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.Equal(t, "8.50", converted)

	assert.True(t, v.IsValidSendAmount("5.5"))
	assert.False(t, v.IsValidSendAmount("5.49"))
}

func TestValidatorAddress(t *testing.T) {
	v, logs := newTestValidator(t)
	assert.True(t, v.IsValidXecAddress(testXecAddress))
	assert.True(t, v.IsValidXecAddress(testP2shAddress))
	assert.False(t, v.IsValidXecAddress(testEtokenAddress))
	assert.True(t, v.IsValidEtokenAddress(testEtokenAddress))
	assert.False(t, v.IsValidEtokenAddress(testXecAddress))
	assert.Equal(t, address.KindLegacy, v.ClassifyAddress("1Efd9z9GRVJK2r73nUpFmBnsKUmfXNm2y2"))

	tokenAddr, err := v.ToTokenAddress(testXecAddress)
	require.NoError(t, err)
	assert.Equal(t, testEtokenAddress, tokenAddr)
	xecAddr, err := v.ToXecAddress(testEtokenAddress)
	require.NoError(t, err)
	assert.Equal(t, testXecAddress, xecAddr)

	_, err = v.DecodeAddress("ecash:qz2708636snqhsxu8wnlka78h6fdp77ar59jrf5036")
	assert.Error(t, err)
	assert.Contains(t, logs.String(), "component=address")
}

func TestValidatorToken(t *testing.T) {
	v, _ := newTestValidator(t)
	assert.True(t, v.IsValidTokenName("Valid token name"))
	assert.True(t, v.IsValidTokenTicker("DOGE"))
	assert.True(t, v.IsValidTokenDecimals("9"))
	assert.True(t, v.IsValidTokenInitialQty("0.001", "3"))
	assert.True(t, v.IsValidTokenDocumentUrl("cashtabapp.com"))

	params, err := v.ValidateGenesis(
		[]byte(`{"name":"Valid token name","ticker":"VTN","decimals":"2","initialQty":"100.5"}`),
	)
	require.NoError(t, err)
	assert.Equal(t, "VTN", params.Ticker)
	_, err = v.ValidateGenesis(
		[]byte(`{"name":"Valid token name","ticker":"VTN","decimals":"2","initialQty":"100.555"}`),
	)
	assert.Error(t, err)

	assert.False(t, v.IsValidTokenStats([]byte(`{}`)))
}

func TestValidatorUtxoBucketKeys(t *testing.T) {
	raw := []byte(`[{"slpUtxos":[{"tx_hash":"ab","tx_pos":0,"height":1,"value":546}]}]`)
	v, _ := newTestValidator(t)
	assert.False(t, v.IsValidBchApiUtxoObject(raw))

	v, _ = newTestValidator(t, goecash.WithUtxoBucketKeys("slpUtxos"))
	batch, err := v.ParseUtxoBatch(raw)
	require.NoError(t, err)
	assert.Equal(t, utxo.BatchNested, batch.Shape)
	// The option doesn't leak into the package-level currency
	assert.Equal(t, []string{"utxos"}, currency.CurrencyXEC.UtxoBucketKeys)

	cborData, err := cbor.Encode([]any{
		map[string]any{
			"slpUtxos": []any{
				map[string]any{"tx_hash": "ab", "tx_pos": 0, "height": 1, "value": 546},
			},
		},
	})
	require.NoError(t, err)
	batch, err = v.ParseUtxoBatchCbor(cborData)
	require.NoError(t, err)
	assert.Len(t, batch.Utxos, 1)

	assert.True(t, v.IsValidUtxo([]byte(`{"tx_hash":"ab","tx_pos":0,"height":1,"value":546}`)))
	assert.False(t, v.IsValidUtxo([]byte(`null`)))
}

func TestValidatorSettings(t *testing.T) {
	v, logs := newTestValidator(t)
	assert.True(t, v.IsValidCashtabSettings([]byte(`{"fiatCurrency":"usd"}`)))
	assert.False(t, v.IsValidCashtabSettings([]byte(`{"fiatCurrency":"xau"}`)))
	assert.Contains(t, logs.String(), "component=settings")

	v, _ = newTestValidator(t, goecash.WithFiatCurrencies("xau"))
	assert.True(t, v.IsValidCashtabSettings([]byte(`{"fiatCurrency":"xau"}`)))
	assert.False(t, v.IsValidCashtabSettings([]byte(`{"fiatCurrency":"usd"}`)))
	assert.True(t, currency.CurrencyXEC.SupportsFiat("usd"))
}

func TestWithCurrency(t *testing.T) {
	cur := currency.CurrencyXEC.Clone()
	cur.Ticker = "TST"
	cur.Prefixes = []string{"ectest"}
	cur.ForeignPrefixes = []string{"ecash"}
	v, _ := newTestValidator(t, goecash.WithCurrency(cur))
	assert.False(t, v.IsValidXecAddress(testXecAddress))
	assert.True(t, v.IsValidXecAddress("ectest:qz2708636snqhsxu8wnlka78h6fdp77ar5reafnzj9"))

	err := v.ShouldRejectAmountInput("1", "TST", decimal.NewFromInt(1), decimal.NewFromInt(100))
	require.Error(t, err)
	assert.Equal(t, "Send amount must be at least 5.5 TST", err.Error())
}

func TestValidatorConcurrentUse(t *testing.T) {
	v, _ := newTestValidator(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.True(t, v.IsValidXecAddress(testXecAddress))
				assert.Error(
					t,
					v.ShouldRejectAmountInput("0", "XEC", decimal.NewFromInt(1), decimal.NewFromInt(1)),
				)
			}
		}()
	}
	wg.Wait()
}

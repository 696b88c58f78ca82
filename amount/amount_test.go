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

package amount

import (
	"errors"
	"strings"
	"testing"

	"github.com/blinklabs-io/goecash/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShouldRejectAmountInput(t *testing.T) {
	cur := currency.CurrencyXEC
	testDefs := []struct {
		name     string
		amount   string
		code     string
		rate     string
		balance  string
		expected string
	}{
		{name: "valid send amount", amount: "10", code: "XEC", rate: "20", balance: "300"},
		{
			// $170 at $20 per XEC is 8.5 XEC against a balance of 15 XEC
			name: "valid send amount in USD", amount: "170", code: "USD", rate: "20", balance: "15",
		},
		{
			name: "not a number", amount: "Not a number", code: "XEC", rate: "20", balance: "3",
			expected: "Amount must be a number",
		},
		{
			name: "zero", amount: "0", code: "XEC", rate: "20", balance: "3",
			expected: "Amount must be greater than 0",
		},
		{
			name: "negative", amount: "-0.031", code: "XEC", rate: "20", balance: "3",
			expected: "Amount must be greater than 0",
		},
		{
			name: "greater than balance", amount: "17", code: "XEC", rate: "20", balance: "3",
			expected: "Amount cannot exceed your XEC balance",
		},
		{
			name: "below dust", amount: "5.49999999", code: "XEC", rate: "20", balance: "3",
			expected: "Send amount must be at least 5.5 XEC",
		},
		{
			name: "below dust in fiat", amount: "0.0000005", code: "USD", rate: "0.00005", balance: "1000000",
			expected: "Send amount must be at least 5.5 XEC",
		},
		{
			// $170 at $20 per XEC is 8.5 XEC against a balance of 5 XEC
			name: "greater than balance in fiat", amount: "170", code: "USD", rate: "20", balance: "5",
			expected: "Amount cannot exceed your XEC balance",
		},
		{
			name: "too many decimal places", amount: "17.123456789", code: "XEC", rate: "20", balance: "35",
			expected: "XEC transactions do not support more than 2 decimal places",
		},
		{name: "trailing zeros are not excess precision", amount: "17.1000", code: "XEC", rate: "20", balance: "35"},
		{name: "exactly the dust floor", amount: "5.5", code: "XEC", rate: "20", balance: "35"},
		{name: "exactly the balance", amount: "35", code: "XEC", rate: "20", balance: "35"},
		{
			name: "fiat with zero exchange rate", amount: "10", code: "USD", rate: "0", balance: "35",
			expected: "Amount must be a number",
		},
		{
			name: "fiat not a number", amount: "ten", code: "USD", rate: "20", balance: "35",
			expected: "Amount must be a number",
		},
		{
			name: "empty", amount: "", code: "XEC", rate: "20", balance: "35",
			expected: "Amount must be a number",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			err := ShouldRejectAmountInput(
				cur,
				testDef.amount,
				testDef.code,
				dec(testDef.rate),
				dec(testDef.balance),
			)
			if testDef.expected == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, testDef.expected, err.Error())
		})
	}
}

func TestRejectionPrecedence(t *testing.T) {
	cur := currency.CurrencyXEC
	// Non-positive and below-dust take precedence over the balance check
	err := ShouldRejectAmountInput(cur, "-5", "XEC", dec("20"), dec("0"))
	assert.ErrorIs(t, err, ErrNotPositive)
	err = ShouldRejectAmountInput(cur, "1", "XEC", dec("20"), dec("0"))
	assert.ErrorIs(t, err, ErrBelowDust)
	// Balance takes precedence over precision
	err = ShouldRejectAmountInput(cur, "100.001", "XEC", dec("20"), dec("10"))
	assert.ErrorIs(t, err, ErrExceedsBalance)

	var rejection *RejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, ReasonExceedsBalance, rejection.Reason)
	assert.Equal(t, "exceeds-balance", rejection.Reason.String())
}

func TestNonNumericAlwaysNotANumber(t *testing.T) {
	cur := currency.CurrencyXEC
	for _, input := range []string{"abc", "1..2", "NaN", "Infinity", "-Infinity", "12abc", " ", "1,000"} {
		for _, code := range []string{"XEC", "USD"} {
			err := ShouldRejectAmountInput(cur, input, code, dec("20"), dec("1000"))
			assert.ErrorIs(t, err, ErrNotANumber, "input %q code %s", input, code)
			assert.Equal(t, "Amount must be a number", err.Error())
		}
	}
}

func TestFiatToCrypto(t *testing.T) {
	testDefs := []struct {
		fiat      string
		rate      string
		precision int32
		expected  string
	}{
		{fiat: "10.97231694823432", rate: "20.3231342349234234", precision: 8, expected: "0.53989295"},
		{fiat: "10.97231694823432", rate: "20.3231342349234234", precision: 2, expected: "0.54"},
		{fiat: "10.94", rate: "10", precision: 8, expected: "1.09400000"},
		{fiat: "170", rate: "20", precision: 2, expected: "8.50"},
		{fiat: "0.0000005", rate: "0.00005", precision: 2, expected: "0.01"},
		// Half-up rounding
		{fiat: "0.125", rate: "1", precision: 2, expected: "0.13"},
		{fiat: "0.124", rate: "1", precision: 2, expected: "0.12"},
		{fiat: "1", rate: "3", precision: 0, expected: "0"},
	}
	for _, testDef := range testDefs {
		got, err := FiatToCrypto(testDef.fiat, dec(testDef.rate), testDef.precision)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, got)
	}

	_, err := FiatToCrypto("abc", dec("10"), 2)
	assert.ErrorIs(t, err, ErrNotANumber)
	_, err = FiatToCrypto("10", dec("0"), 2)
	assert.ErrorIs(t, err, ErrInvalidExchangeRate)
	_, err = FiatToCrypto("10", dec("-1"), 2)
	assert.ErrorIs(t, err, ErrInvalidExchangeRate)
}

func TestFiatToCryptoFixedDigits(t *testing.T) {
	for precision := int32(1); precision <= 12; precision++ {
		for _, fiat := range []string{"1", "0.5", "123456.789", "10.97231694823432"} {
			got, err := FiatToCrypto(fiat, dec("3.7"), precision)
			require.NoError(t, err)
			parts := strings.Split(got, ".")
			require.Len(t, parts, 2, got)
			assert.Len(t, parts[1], int(precision), got)
		}
	}
}

func TestIsValidSendAmount(t *testing.T) {
	cur := currency.CurrencyXEC
	dust := DustFloor(cur)
	testDefs := []struct {
		amount   string
		expected bool
	}{
		{amount: dust.String(), expected: true},
		{amount: dust.Add(dec("1.75")).String(), expected: true},
		{amount: "7.25", expected: true},
		{amount: "0", expected: false},
		{amount: "5.49", expected: false},
		{amount: "not a number", expected: false},
		{amount: "", expected: false},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, IsValidSendAmount(cur, testDef.amount), testDef.amount)
	}
}

func TestDenominations(t *testing.T) {
	assert.Equal(t, "5.5", FromSmallestDenomination(550, 2).String())
	assert.Equal(t, "0.00000546", FromSmallestDenomination(546, 8).String())

	sats, err := ToSmallestDenomination(dec("5.5"), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(550), sats)

	sats, err = ToSmallestDenomination(dec("12.340"), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), sats)

	_, err = ToSmallestDenomination(dec("1.234"), 2)
	assert.ErrorIs(t, err, ErrExcessPrecision)

	_, err = ToSmallestDenomination(dec("1e30"), 2)
	assert.Error(t, err)
}

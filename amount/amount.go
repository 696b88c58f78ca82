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
	"fmt"
	"math"

	"github.com/blinklabs-io/goecash/currency"
	"github.com/shopspring/decimal"
)

var maxSats = decimal.NewFromInt(math.MaxInt64)

// FromSmallestDenomination converts base units into a native unit amount
func FromSmallestDenomination(sats int64, decimals int32) decimal.Decimal {
	return decimal.New(sats, -decimals)
}

// ToSmallestDenomination converts a native unit amount into base units. Amounts
// finer than one base unit are rejected rather than rounded
func ToSmallestDenomination(amt decimal.Decimal, decimals int32) (int64, error) {
	if HasExcessPrecision(amt, decimals) {
		return 0, fmt.Errorf("%w: %s has more than %d decimal places", ErrExcessPrecision, amt, decimals)
	}
	sats := amt.Shift(decimals)
	if sats.Abs().GreaterThan(maxSats) {
		return 0, fmt.Errorf("amount %s is out of range", amt)
	}
	return sats.IntPart(), nil
}

// HasExcessPrecision reports whether amt has more significant fractional digits than
// precision. Trailing zeros are not significant
func HasExcessPrecision(amt decimal.Decimal, precision int32) bool {
	return !amt.Equal(amt.Truncate(precision))
}

// DustFloor returns the smallest spendable amount of cur in native units
func DustFloor(cur currency.Currency) decimal.Decimal {
	return FromSmallestDenomination(cur.DustSats, cur.CashDecimals)
}

// FiatToCrypto converts a fiat amount to native units at the given fiat-per-unit
// exchange rate. The result is rounded half-up and always has exactly precision
// fractional digits
func FiatToCrypto(fiatAmount string, exchangeRate decimal.Decimal, precision int32) (string, error) {
	converted, err := fiatToCrypto(fiatAmount, exchangeRate, precision)
	if err != nil {
		return "", err
	}
	return converted.StringFixed(precision), nil
}

func fiatToCrypto(fiatAmount string, exchangeRate decimal.Decimal, precision int32) (decimal.Decimal, error) {
	fiat, err := Parse(fiatAmount)
	if err != nil {
		return decimal.Zero, err
	}
	if exchangeRate.Sign() <= 0 || !inExponentRange(exchangeRate) {
		return decimal.Zero, ErrInvalidExchangeRate
	}
	if precision < 0 || precision > MaxExponent {
		return decimal.Zero, fmt.Errorf("precision %d is out of range", precision)
	}
	return fiat.DivRound(exchangeRate, precision), nil
}

// ShouldRejectAmountInput checks a user-entered send amount. If currencyCode is
// not the ticker of cur, the amount is taken to be fiat and converted at
// exchangeRate first. It returns nil if the amount is acceptable, or a
// *RejectionError for the first failing check in this order: not a number, not
// positive, below dust, exceeds availableBalance, too many decimal places
func ShouldRejectAmountInput(
	cur currency.Currency,
	amount string,
	currencyCode string,
	exchangeRate decimal.Decimal,
	availableBalance decimal.Decimal,
) error {
	var tested decimal.Decimal
	var err error
	if currencyCode != cur.Ticker {
		tested, err = fiatToCrypto(amount, exchangeRate, cur.CashDecimals)
	} else {
		tested, err = Parse(amount)
	}
	reject := func(reason Reason) error {
		return &RejectionError{
			Reason:    reason,
			Ticker:    cur.Ticker,
			DustFloor: DustFloor(cur),
			Precision: cur.CashDecimals,
		}
	}
	switch {
	case err != nil:
		return reject(ReasonNotANumber)
	case tested.Sign() <= 0:
		return reject(ReasonNotPositive)
	case tested.LessThan(DustFloor(cur)):
		return reject(ReasonBelowDust)
	case tested.GreaterThan(availableBalance):
		return reject(ReasonExceedsBalance)
	case HasExcessPrecision(tested, cur.CashDecimals):
		return reject(ReasonExcessPrecision)
	}
	return nil
}

// IsValidSendAmount reports whether amount is a number no smaller than the dust floor of cur
func IsValidSendAmount(cur currency.Currency, amount string) bool {
	tested, err := Parse(amount)
	if err != nil {
		return false
	}
	return tested.GreaterThanOrEqual(DustFloor(cur))
}

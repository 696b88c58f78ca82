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
	"fmt"

	"github.com/shopspring/decimal"
)

// Reason identifies why an amount was rejected
type Reason int

const (
	ReasonNotANumber Reason = iota + 1
	ReasonNotPositive
	ReasonBelowDust
	ReasonExceedsBalance
	ReasonExcessPrecision
)

func (r Reason) String() string {
	switch r {
	case ReasonNotANumber:
		return "not-a-number"
	case ReasonNotPositive:
		return "not-positive"
	case ReasonBelowDust:
		return "below-dust"
	case ReasonExceedsBalance:
		return "exceeds-balance"
	case ReasonExcessPrecision:
		return "excess-precision"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Sentinel errors so callers can use errors.Is against a RejectionError
var (
	ErrNotANumber          = errors.New("amount is not a number")
	ErrNotPositive         = errors.New("amount is not positive")
	ErrBelowDust           = errors.New("amount is below the dust floor")
	ErrExceedsBalance      = errors.New("amount exceeds balance")
	ErrExcessPrecision     = errors.New("amount has too many decimal places")
	ErrInvalidExchangeRate = errors.New("exchange rate must be greater than 0")
)

// RejectionError is returned for a rejected send amount. Its message is meant to be shown
// to the user as-is
type RejectionError struct {
	Reason    Reason
	Ticker    string
	DustFloor decimal.Decimal
	Precision int32
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case ReasonNotANumber:
		return "Amount must be a number"
	case ReasonNotPositive:
		return "Amount must be greater than 0"
	case ReasonBelowDust:
		return fmt.Sprintf(
			"Send amount must be at least %s %s",
			e.DustFloor.String(),
			e.Ticker,
		)
	case ReasonExceedsBalance:
		return fmt.Sprintf("Amount cannot exceed your %s balance", e.Ticker)
	case ReasonExcessPrecision:
		return fmt.Sprintf(
			"%s transactions do not support more than %d decimal places",
			e.Ticker,
			e.Precision,
		)
	default:
		return "Invalid amount"
	}
}

func (e *RejectionError) Is(target error) bool {
	switch e.Reason {
	case ReasonNotANumber:
		return target == ErrNotANumber
	case ReasonNotPositive:
		return target == ErrNotPositive
	case ReasonBelowDust:
		return target == ErrBelowDust
	case ReasonExceedsBalance:
		return target == ErrExceedsBalance
	case ReasonExcessPrecision:
		return target == ErrExcessPrecision
	}
	return false
}

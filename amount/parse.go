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

	"github.com/shopspring/decimal"
)

// MaxExponent bounds the decimal exponent of a parsed amount in both directions.
// Arithmetic on a decimal rescales to its exponent, so an unbounded exponent lets
// a short input such as "1e-20000000" allocate a number with millions of digits
const MaxExponent = 64

// Parse parses a user-entered decimal number. Exponent notation is accepted, but
// any value whose exponent falls outside [-MaxExponent, MaxExponent] is rejected
// with ErrNotANumber before any arithmetic happens
func Parse(s string) (decimal.Decimal, error) {
	ret, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrNotANumber, err)
	}
	if !inExponentRange(ret) {
		return decimal.Zero, fmt.Errorf(
			"%w: exponent %d is out of range",
			ErrNotANumber,
			ret.Exponent(),
		)
	}
	return ret, nil
}

func inExponentRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -MaxExponent && exp <= MaxExponent
}

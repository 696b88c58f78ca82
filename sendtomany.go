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
	"fmt"
	"strings"

	"github.com/blinklabs-io/goecash/amount"
	"github.com/shopspring/decimal"
)

var (
	ErrNoRecipients     = errors.New("no recipients")
	ErrInvalidRecipient = errors.New("invalid recipient")
)

// Recipient is one output of a multi-recipient send
type Recipient struct {
	Address string
	Amount  decimal.Decimal
}

// SendToManyError identifies the line of a multi-recipient send that failed validation
type SendToManyError struct {
	// 1-based line number
	Line int
	Text string
	Err  error
}

func (e *SendToManyError) Error() string {
	return fmt.Sprintf("line %d (%q): %s", e.Line, e.Text, e.Err)
}

func (e *SendToManyError) Unwrap() error { return e.Err }

// ParseSendToMany parses and validates a multi-recipient send. Each non-blank line
// holds an address and an amount in native units, separated by a comma. Every
// address must be a native address, every amount a valid send amount with no
// more decimal places than the native unit, and the total must not exceed
// availableBalance
func (v *Validator) ParseSendToMany(
	lines string,
	availableBalance decimal.Decimal,
) ([]Recipient, error) {
	var ret []Recipient
	total := decimal.Zero
	for idx, line := range strings.Split(lines, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		recipient, err := v.parseRecipient(line)
		if err != nil {
			return nil, v.rejected(
				componentAmount,
				&SendToManyError{Line: idx + 1, Text: line, Err: err},
			)
		}
		total = total.Add(recipient.Amount)
		ret = append(ret, recipient)
	}
	if len(ret) == 0 {
		return nil, v.rejected(componentAmount, ErrNoRecipients)
	}
	if total.GreaterThan(availableBalance) {
		return nil, v.rejected(
			componentAmount,
			&amount.RejectionError{
				Reason:    amount.ReasonExceedsBalance,
				Ticker:    v.currency.Ticker,
				DustFloor: amount.DustFloor(v.currency),
				Precision: v.currency.CashDecimals,
			},
			"total", total.String(),
		)
	}
	return ret, nil
}

// ValidateSendToMany reports the first invalid line of a multi-recipient send
func (v *Validator) ValidateSendToMany(lines string, availableBalance decimal.Decimal) error {
	_, err := v.ParseSendToMany(lines, availableBalance)
	return err
}

func (v *Validator) parseRecipient(line string) (Recipient, error) {
	addr, amt, found := strings.Cut(line, ",")
	if !found {
		return Recipient{}, fmt.Errorf("%w: expected address and amount", ErrInvalidRecipient)
	}
	addr = strings.TrimSpace(addr)
	amt = strings.TrimSpace(amt)
	if !v.IsValidXecAddress(addr) {
		return Recipient{}, fmt.Errorf(
			"%w: %q is not a valid %s address",
			ErrInvalidRecipient,
			addr,
			v.currency.Ticker,
		)
	}
	parsed, err := amount.Parse(amt)
	if err != nil {
		return Recipient{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidRecipient, amt)
	}
	if !v.IsValidSendAmount(amt) {
		return Recipient{}, fmt.Errorf(
			"%w: send amount must be at least %s %s",
			ErrInvalidRecipient,
			amount.DustFloor(v.currency),
			v.currency.Ticker,
		)
	}
	if amount.HasExcessPrecision(parsed, v.currency.CashDecimals) {
		return Recipient{}, fmt.Errorf(
			"%w: %s transactions do not support more than %d decimal places",
			ErrInvalidRecipient,
			v.currency.Ticker,
			v.currency.CashDecimals,
		)
	}
	return Recipient{Address: addr, Amount: parsed}, nil
}

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
	"errors"
	"testing"

	goecash "github.com/blinklabs-io/goecash"
	"github.com/blinklabs-io/goecash/amount"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSendToMany(t *testing.T) {
	v, _ := newTestValidator(t)
	lines := testXecAddress + ", 5.5\n\n  " + testP2shAddress + ",100.25  \n"
	recipients, err := v.ParseSendToMany(lines, decimal.NewFromInt(1000))
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, testXecAddress, recipients[0].Address)
	assert.Equal(t, "5.5", recipients[0].Amount.String())
	assert.Equal(t, testP2shAddress, recipients[1].Address)
	assert.Equal(t, "100.25", recipients[1].Amount.String())
}

func TestValidateSendToManyRejects(t *testing.T) {
	v, _ := newTestValidator(t)
	testDefs := []struct {
		name  string
		lines string
		line  int
	}{
		{name: "missing amount", lines: testXecAddress, line: 1},
		{name: "token address", lines: testXecAddress + ",10\n" + testEtokenAddress + ",10", line: 2},
		{name: "below dust", lines: testXecAddress + ",10\n\n" + testXecAddress + ",5.49", line: 3},
		{name: "not a number", lines: testXecAddress + ",ten", line: 1},
		{name: "too many decimal places", lines: testXecAddress + ",10.001", line: 1},
		{name: "legacy address", lines: "1Efd9z9GRVJK2r73nUpFmBnsKUmfXNm2y2,10", line: 1},
		{name: "huge negative exponent", lines: testXecAddress + ",10\n" + testXecAddress + ",1e-20000000", line: 2},
		{name: "huge positive exponent", lines: testXecAddress + ",1e20000000", line: 1},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			err := v.ValidateSendToMany(testDef.lines, decimal.NewFromInt(1000))
			require.Error(t, err)
			assert.ErrorIs(t, err, goecash.ErrInvalidRecipient)
			var lineErr *goecash.SendToManyError
			require.True(t, errors.As(err, &lineErr))
			assert.Equal(t, testDef.line, lineErr.Line)
		})
	}
}

func TestValidateSendToManyTotals(t *testing.T) {
	v, _ := newTestValidator(t)
	lines := testXecAddress + ",600\n" + testP2shAddress + ",500"
	err := v.ValidateSendToMany(lines, decimal.NewFromInt(1000))
	require.Error(t, err)
	assert.ErrorIs(t, err, amount.ErrExceedsBalance)
	assert.Equal(t, "Amount cannot exceed your XEC balance", err.Error())
	assert.NoError(t, v.ValidateSendToMany(lines, decimal.NewFromInt(1100)))

	assert.ErrorIs(t, v.ValidateSendToMany(" \n\n", decimal.NewFromInt(1)), goecash.ErrNoRecipients)
}

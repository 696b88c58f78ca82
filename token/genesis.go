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

package token

import (
	"regexp"
	"unicode/utf16"

	"github.com/blinklabs-io/goecash/amount"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	MaxNameLength        = 68
	MaxTickerLength      = 12
	MaxDecimals          = 9
	MaxDocumentUrlLength = 68

	FieldName        = "name"
	FieldTicker      = "ticker"
	FieldDecimals    = "decimals"
	FieldInitialQty  = "initialQty"
	FieldDocumentUrl = "documentUrl"
)

// MaxInitialQty is the exclusive upper bound on a genesis quantity
var MaxInitialQty = decimal.New(1, 11)

var documentUrlPattern = regexp.MustCompile(
	`(?i)^(https?://)?` + // protocol
		`((([a-z\d]([a-z\d-]*[a-z\d])*)\.)+[a-z]{2,}|` + // domain name
		`((\d{1,3}\.){3}\d{1,3}))` + // or IPv4 address
		`(:\d+)?(/[-a-z\d%_.~+]*)*` + // port and path
		`(\?[;&a-z\d%_.~+=-]*)?` + // query string
		`(#[-a-z\d_]*)?$`, // fragment
)

// utf16Length counts UTF-16 code units, so a character outside the basic
// multilingual plane counts twice
func utf16Length(s string) int {
	var ret int
	for _, r := range s {
		ret += utf16.RuneLen(r)
	}
	return ret
}

// IsValidTokenName reports whether name is between 1 and 68 UTF-16 code units
func IsValidTokenName(name string) bool {
	n := utf16Length(name)
	return n > 0 && n <= MaxNameLength
}

// IsValidTokenTicker reports whether ticker is between 1 and 12 UTF-16 code units
func IsValidTokenTicker(ticker string) bool {
	n := utf16Length(ticker)
	return n > 0 && n <= MaxTickerLength
}

// IsValidTokenDecimals reports whether decimals is a single digit string
func IsValidTokenDecimals(decimals string) bool {
	_, ok := parseDecimals(decimals)
	return ok
}

func parseDecimals(decimals string) (int32, bool) {
	if len(decimals) != 1 || decimals[0] < '0' || decimals[0] > '0'+MaxDecimals {
		return 0, false
	}
	return int32(decimals[0] - '0'), true
}

// IsValidTokenInitialQty reports whether qty is a usable genesis quantity for a token
// with the given decimals: positive, below MaxInitialQty, and no finer than one
// base unit
func IsValidTokenInitialQty(qty string, decimals string) bool {
	places, ok := parseDecimals(decimals)
	if !ok {
		return false
	}
	amt, err := amount.Parse(qty)
	if err != nil {
		return false
	}
	return amt.Sign() > 0 &&
		amt.LessThan(MaxInitialQty) &&
		amt.Equal(amt.Truncate(places))
}

// IsValidTokenDocumentUrl reports whether url is empty or a domain-shaped URL of at
// most 68 UTF-16 code units
func IsValidTokenDocumentUrl(url string) bool {
	if url == "" {
		return true
	}
	return utf16Length(url) <= MaxDocumentUrlLength &&
		documentUrlPattern.MatchString(url)
}

// GenesisParams are the user-supplied fields of a token genesis
type GenesisParams struct {
	Name        string `json:"name"`
	Ticker      string `json:"ticker"`
	Decimals    string `json:"decimals"`
	InitialQty  string `json:"initialQty"`
	DocumentUrl string `json:"documentUrl"`
}

// Validate checks every field in form order and returns a *FieldError for the first invalid one
func (p GenesisParams) Validate() error {
	checks := []struct {
		field string
		value string
		valid bool
	}{
		{field: FieldName, value: p.Name, valid: IsValidTokenName(p.Name)},
		{field: FieldTicker, value: p.Ticker, valid: IsValidTokenTicker(p.Ticker)},
		{field: FieldDecimals, value: p.Decimals, valid: IsValidTokenDecimals(p.Decimals)},
		{field: FieldInitialQty, value: p.InitialQty, valid: IsValidTokenInitialQty(p.InitialQty, p.Decimals)},
		{field: FieldDocumentUrl, value: p.DocumentUrl, valid: IsValidTokenDocumentUrl(p.DocumentUrl)},
	}
	for _, check := range checks {
		if !check.valid {
			return &FieldError{Field: check.field, Value: check.value}
		}
	}
	return nil
}

// ParseGenesisParams decodes a JSON genesis form. Every field must be a JSON string;
// documentUrl may be omitted
func ParseGenesisParams(raw []byte) (GenesisParams, error) {
	if !gjson.ValidBytes(raw) {
		return GenesisParams{}, ErrInvalidJSON
	}
	form := gjson.ParseBytes(raw)
	if !form.IsObject() {
		return GenesisParams{}, ErrNotAnObject
	}
	var ret GenesisParams
	fields := []struct {
		name     string
		dest     *string
		optional bool
	}{
		{name: FieldName, dest: &ret.Name},
		{name: FieldTicker, dest: &ret.Ticker},
		{name: FieldDecimals, dest: &ret.Decimals},
		{name: FieldInitialQty, dest: &ret.InitialQty},
		{name: FieldDocumentUrl, dest: &ret.DocumentUrl, optional: true},
	}
	for _, field := range fields {
		value := form.Get(field.name)
		if !value.Exists() && field.optional {
			continue
		}
		if value.Type != gjson.String {
			return GenesisParams{}, &FieldError{
				Field:  field.name,
				Value:  value.Raw,
				Reason: "must be a string",
			}
		}
		*field.dest = value.Str
	}
	return ret, nil
}

// IsValidGenesis reports whether raw decodes to a fully valid genesis form
func IsValidGenesis(raw []byte) bool {
	params, err := ParseGenesisParams(raw)
	if err != nil {
		return false
	}
	return params.Validate() == nil
}

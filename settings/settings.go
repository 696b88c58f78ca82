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

// Package settings validates persisted wallet settings
package settings

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/goecash/currency"
	"github.com/tidwall/gjson"
)

const KeyFiatCurrency = "fiatCurrency"

var (
	ErrInvalidSettings     = errors.New("invalid wallet settings")
	ErrUnsupportedCurrency = errors.New("unsupported fiat currency")
)

// Settings are the user preferences stored by the wallet
type Settings struct {
	FiatCurrency string `json:"fiatCurrency"`
}

// Default returns the settings a new wallet starts with
func Default(cur currency.Currency) Settings {
	return Settings{
		FiatCurrency: cur.DefaultFiatCurrency,
	}
}

// Validate checks that the fiat currency is in the allow-list of cur
func (s Settings) Validate(cur currency.Currency) error {
	if !cur.SupportsFiat(s.FiatCurrency) {
		return fmt.Errorf(
			"%w: %w: %q",
			ErrInvalidSettings,
			ErrUnsupportedCurrency,
			s.FiatCurrency,
		)
	}
	return nil
}

// Parse decodes a settings object. The object must hold exactly one key,
// fiatCurrency, with a supported fiat code as its string value
func Parse(cur currency.Currency, raw []byte) (Settings, error) {
	if !gjson.ValidBytes(raw) {
		return Settings{}, fmt.Errorf("%w: invalid JSON", ErrInvalidSettings)
	}
	obj := gjson.ParseBytes(raw)
	if !obj.IsObject() {
		return Settings{}, fmt.Errorf("%w: not an object", ErrInvalidSettings)
	}
	var keys []string
	var fiat gjson.Result
	obj.ForEach(func(key, value gjson.Result) bool {
		keys = append(keys, key.Str)
		if key.Str == KeyFiatCurrency {
			fiat = value
		}
		return true
	})
	if len(keys) != 1 || keys[0] != KeyFiatCurrency {
		return Settings{}, fmt.Errorf(
			"%w: expected only the %s key, found %q",
			ErrInvalidSettings,
			KeyFiatCurrency,
			keys,
		)
	}
	if fiat.Type != gjson.String {
		return Settings{}, fmt.Errorf(
			"%w: %s must be a string",
			ErrInvalidSettings,
			KeyFiatCurrency,
		)
	}
	ret := Settings{FiatCurrency: fiat.Str}
	if err := ret.Validate(cur); err != nil {
		return Settings{}, err
	}
	return ret, nil
}

// IsValidCashtabSettings reports whether raw is a valid settings object
func IsValidCashtabSettings(cur currency.Currency, raw []byte) bool {
	_, err := Parse(cur, raw)
	return err == nil
}

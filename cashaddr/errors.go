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

package cashaddr

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty            = errors.New("empty address")
	ErrMixedCase        = errors.New("address has mixed case")
	ErrInvalidCharacter = errors.New("invalid character in address")
	ErrInvalidCharset   = errors.New("charset must have 32 characters")
	ErrInvalidChecksum  = errors.New("invalid address checksum")
	ErrInvalidLength    = errors.New("invalid address length")
	ErrInvalidPadding   = errors.New("invalid address padding")
	ErrInvalidVersion   = errors.New("invalid address version")
	ErrPrefixMismatch   = errors.New("address prefix mismatch")
)

// PrefixMismatchError indicates an explicit prefix other than the one being decoded for
type PrefixMismatchError struct {
	Expected string
	Found    string
}

func (e PrefixMismatchError) Error() string {
	return fmt.Sprintf(
		"address prefix mismatch: expected %q, found %q",
		e.Expected,
		e.Found,
	)
}

func (PrefixMismatchError) Is(target error) bool {
	return target == ErrPrefixMismatch
}

// InvalidCharacterError indicates a character outside of the charset
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf(
		"invalid character in address: %q at position %d",
		e.Char,
		e.Pos,
	)
}

func (InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

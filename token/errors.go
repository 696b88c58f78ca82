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
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidJSON     = errors.New("invalid JSON")
	ErrNotAnObject     = errors.New("value is not an object")
	ErrInvalidField    = errors.New("invalid token field")
	ErrIncompleteStats = errors.New("token stats are missing required keys")
)

// FieldError identifies the first invalid field of a token genesis
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid token %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid token %s %q", e.Field, e.Value)
}

func (*FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// StatsError describes a token stats record that doesn't satisfy its generation
type StatsError struct {
	Generation Generation
	Missing    []string
	Err        error
}

func (e *StatsError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf(
			"%s token stats are missing required keys: %s",
			e.Generation,
			strings.Join(e.Missing, ", "),
		)
	}
	return fmt.Sprintf("invalid %s token stats: %v", e.Generation, e.Err)
}

func (e *StatsError) Unwrap() error { return e.Err }

func (e *StatsError) Is(target error) bool {
	return target == ErrIncompleteStats && len(e.Missing) > 0
}

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

package utxo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidJSON    = errors.New("invalid JSON")
	ErrNotAnObject    = errors.New("value is not an object")
	ErrNotAnArray     = errors.New("value is not an array")
	ErrEmptyBatch     = errors.New("batch is empty")
	ErrUnknownShape   = errors.New("unrecognized UTXO shape")
	ErrMissingKeys    = errors.New("UTXO is missing required keys")
	ErrInvalidField   = errors.New("invalid UTXO field")
	ErrInvalidElement = errors.New("invalid batch element")
)

// ShapeError describes a record or batch element that doesn't match any accepted shape
type ShapeError struct {
	// Index of the offending batch element, or -1 for a standalone record
	Index int
	// Index within a nested bucket, or -1
	Inner   int
	Missing []string
	Err     error
}

func (e *ShapeError) Error() string {
	var sb strings.Builder
	switch {
	case e.Index >= 0 && e.Inner >= 0:
		fmt.Fprintf(&sb, "batch element %d, UTXO %d: ", e.Index, e.Inner)
	case e.Index >= 0:
		fmt.Fprintf(&sb, "batch element %d: ", e.Index)
	}
	if len(e.Missing) > 0 {
		fmt.Fprintf(&sb, "%s: %s", ErrMissingKeys, strings.Join(e.Missing, ", "))
		return sb.String()
	}
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *ShapeError) Unwrap() error { return e.Err }

func (e *ShapeError) Is(target error) bool {
	return target == ErrMissingKeys && len(e.Missing) > 0
}

func newShapeError(err error) *ShapeError {
	return &ShapeError{Index: -1, Inner: -1, Err: err}
}

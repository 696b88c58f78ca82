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

	"github.com/blinklabs-io/goecash/cbor"
	"github.com/tidwall/gjson"
)

// DefaultBucketKey holds the UTXO list of each element in a nested batch
const DefaultBucketKey = "utxos"

// BatchShape is the layout of a UTXO batch
type BatchShape int

const (
	BatchUnknown BatchShape = iota
	// A plain array of UTXO records
	BatchFlat
	// An array of per-address buckets, each holding an array of UTXO records
	BatchNested
)

func (s BatchShape) String() string {
	switch s {
	case BatchFlat:
		return "flat"
	case BatchNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Batch is a decoded UTXO batch. Utxos holds every record in input order, with
// nested buckets flattened
type Batch struct {
	Shape BatchShape
	Utxos []Utxo
}

type batchConfig struct {
	bucketKeys []string
}

// BatchOption configures batch decoding
type BatchOption func(*batchConfig)

// WithBucketKeys sets the keys that mark an element of a nested batch. The first key
// present on an element is used
func WithBucketKeys(keys ...string) BatchOption {
	return func(c *batchConfig) {
		if len(keys) > 0 {
			c.bucketKeys = append([]string{}, keys...)
		}
	}
}

func newBatchConfig(opts []BatchOption) batchConfig {
	cfg := batchConfig{
		bucketKeys: []string{DefaultBucketKey},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ParseBatch decodes a UTXO batch. The top level must be a non-empty array whose
// elements are either all UTXO records or all buckets
func ParseBatch(raw []byte, opts ...BatchOption) (Batch, error) {
	if !gjson.ValidBytes(raw) {
		return Batch{}, newShapeError(ErrInvalidJSON)
	}
	return parseBatch(gjson.ParseBytes(raw), newBatchConfig(opts))
}

// ParseBatchCbor decodes a CBOR-encoded UTXO batch. It follows the same shape rules
// as ParseBatch
func ParseBatchCbor(data []byte, opts ...BatchOption) (Batch, error) {
	// Skip the full decode for an empty top-level list. Anything that is not a
	// list is classified after conversion
	if length, err := cbor.ListLength(data); err == nil && length == 0 {
		return Batch{}, newShapeError(ErrEmptyBatch)
	}
	jsonData, err := cbor.ToJSON(data)
	if err != nil {
		return Batch{}, newShapeError(fmt.Errorf("decode CBOR batch: %w", err))
	}
	return ParseBatch(jsonData, opts...)
}

// IsValidBchApiUtxoObject reports whether raw is a structurally valid UTXO batch
func IsValidBchApiUtxoObject(raw []byte, opts ...BatchOption) bool {
	_, err := ParseBatch(raw, opts...)
	return err == nil
}

func parseBatch(batch gjson.Result, cfg batchConfig) (Batch, error) {
	if !batch.IsArray() {
		return Batch{}, newShapeError(ErrNotAnArray)
	}
	elements := batch.Array()
	if len(elements) == 0 {
		return Batch{}, newShapeError(ErrEmptyBatch)
	}
	var ret Batch
	for idx, elem := range elements {
		shape := BatchFlat
		bucket, isBucket := cfg.bucket(elem)
		if isBucket {
			shape = BatchNested
		}
		if ret.Shape == BatchUnknown {
			ret.Shape = shape
		} else if ret.Shape != shape {
			return Batch{}, &ShapeError{
				Index: idx,
				Inner: -1,
				Err: fmt.Errorf(
					"%w: %s element in %s batch",
					ErrInvalidElement,
					shape,
					ret.Shape,
				),
			}
		}
		if !isBucket {
			tmpUtxo, err := parseRecord(elem)
			if err != nil {
				return Batch{}, withPosition(err, idx, -1)
			}
			ret.Utxos = append(ret.Utxos, tmpUtxo)
			continue
		}
		if !bucket.IsArray() {
			return Batch{}, &ShapeError{Index: idx, Inner: -1, Err: ErrNotAnArray}
		}
		// A wallet path with no coins has an empty bucket
		for innerIdx, record := range bucket.Array() {
			tmpUtxo, err := parseRecord(record)
			if err != nil {
				return Batch{}, withPosition(err, idx, innerIdx)
			}
			ret.Utxos = append(ret.Utxos, tmpUtxo)
		}
	}
	return ret, nil
}

func (c batchConfig) bucket(elem gjson.Result) (gjson.Result, bool) {
	if !elem.IsObject() {
		return gjson.Result{}, false
	}
	// Keys are matched literally, not as gjson paths
	fields := map[string]gjson.Result{}
	elem.ForEach(func(key, value gjson.Result) bool {
		fields[key.Str] = value
		return true
	})
	for _, key := range c.bucketKeys {
		if value, ok := fields[key]; ok {
			return value, true
		}
	}
	return gjson.Result{}, false
}

func withPosition(err error, idx int, innerIdx int) error {
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		shapeErr.Index = idx
		shapeErr.Inner = innerIdx
		return shapeErr
	}
	return &ShapeError{Index: idx, Inner: innerIdx, Err: err}
}

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
	"fmt"
	"math"
	"strconv"

	"github.com/tidwall/gjson"
)

// Shape identifies which API produced a UTXO record
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeElectrum
	ShapeInsight
)

func (s Shape) String() string {
	switch s {
	case ShapeElectrum:
		return "electrum"
	case ShapeInsight:
		return "insight"
	default:
		return "unknown"
	}
}

type shapeDef struct {
	shape  Shape
	txId   string
	outIdx string
	height string
	value  string
}

// Shapes in the order they are tried. A record takes the first shape whose
// transaction ID key is present
var shapes = []shapeDef{
	{
		shape:  ShapeElectrum,
		txId:   "tx_hash",
		outIdx: "tx_pos",
		height: "height",
		value:  "value",
	},
	{
		shape:  ShapeInsight,
		txId:   "txid",
		outIdx: "vout",
		height: "height",
		value:  "satoshis",
	},
}

// Utxo is an unspent output as reported by an indexer API
type Utxo struct {
	Shape  Shape
	TxId   string
	OutIdx uint32
	// Zero or negative for unconfirmed outputs
	Height int64
	Value  int64
}

func (u Utxo) String() string {
	return fmt.Sprintf("%s:%d", u.TxId, u.OutIdx)
}

// ParseUtxo decodes a single UTXO record
func ParseUtxo(raw []byte) (Utxo, error) {
	if !gjson.ValidBytes(raw) {
		return Utxo{}, newShapeError(ErrInvalidJSON)
	}
	return parseRecord(gjson.ParseBytes(raw))
}

// IsValidUtxo reports whether raw is a structurally valid UTXO record
func IsValidUtxo(raw []byte) bool {
	_, err := ParseUtxo(raw)
	return err == nil
}

func parseRecord(record gjson.Result) (Utxo, error) {
	if !record.IsObject() {
		return Utxo{}, newShapeError(ErrNotAnObject)
	}
	var def *shapeDef
	for idx := range shapes {
		if record.Get(shapes[idx].txId).Exists() {
			def = &shapes[idx]
			break
		}
	}
	if def == nil {
		// Report against the primary shape
		err := newShapeError(ErrUnknownShape)
		err.Missing = missingKeys(record, shapes[0])
		return Utxo{}, err
	}
	if missing := missingKeys(record, *def); len(missing) > 0 {
		err := newShapeError(ErrUnknownShape)
		err.Missing = missing
		return Utxo{}, err
	}
	txId := record.Get(def.txId)
	if txId.Type != gjson.String || txId.Str == "" {
		return Utxo{}, newShapeError(
			fmt.Errorf("%w: %s must be a non-empty string", ErrInvalidField, def.txId),
		)
	}
	ret := Utxo{
		Shape: def.shape,
		TxId:  txId.Str,
	}
	outIdx, err := intField(record, def.outIdx)
	if err != nil {
		return Utxo{}, newShapeError(err)
	}
	if outIdx < 0 || outIdx > math.MaxUint32 {
		return Utxo{}, newShapeError(
			fmt.Errorf("%w: %s out of range", ErrInvalidField, def.outIdx),
		)
	}
	ret.OutIdx = uint32(outIdx)
	if ret.Height, err = intField(record, def.height); err != nil {
		return Utxo{}, newShapeError(err)
	}
	if ret.Value, err = intField(record, def.value); err != nil {
		return Utxo{}, newShapeError(err)
	}
	if ret.Value < 0 {
		return Utxo{}, newShapeError(
			fmt.Errorf("%w: %s must not be negative", ErrInvalidField, def.value),
		)
	}
	return ret, nil
}

func missingKeys(record gjson.Result, def shapeDef) []string {
	var ret []string
	for _, key := range []string{def.txId, def.outIdx, def.height, def.value} {
		if !record.Get(key).Exists() {
			ret = append(ret, key)
		}
	}
	return ret
}

func intField(record gjson.Result, key string) (int64, error) {
	value := record.Get(key)
	if value.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidField, key)
	}
	ret, err := strconv.ParseInt(value.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidField, key)
	}
	return ret, nil
}

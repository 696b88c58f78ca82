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

package cbor

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

var ErrUnsupportedType = errors.New("CBOR value has no JSON representation")

// ToJSON converts a single CBOR item into the equivalent JSON document. Bytestrings
// become hex strings. Tags, non-finite floats and maps with non-string keys are
// rejected, as is any data following the first item
func ToJSON(cborData []byte) ([]byte, error) {
	if len(cborData) == 0 {
		return nil, errors.New("empty CBOR data")
	}
	var tmp any
	bytesRead, err := Decode(cborData, &tmp)
	if err != nil {
		return nil, err
	}
	if bytesRead != len(cborData) {
		return nil, fmt.Errorf(
			"found %d trailing bytes after CBOR item",
			len(cborData)-bytesRead,
		)
	}
	value, err := jsonValue(tmp)
	if err != nil {
		return nil, err
	}
	return json.Marshal(value)
}

func jsonValue(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, uint64, int64:
		return v, nil
	case float32:
		return jsonFloat(float64(v))
	case float64:
		return jsonFloat(v)
	case []byte:
		return hex.EncodeToString(v), nil
	case []any:
		ret := make([]any, 0, len(v))
		for _, item := range v {
			tmpItem, err := jsonValue(item)
			if err != nil {
				return nil, err
			}
			ret = append(ret, tmpItem)
		}
		return ret, nil
	case map[string]any:
		ret := make(map[string]any, len(v))
		for key, item := range v {
			tmpItem, err := jsonValue(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			ret[key] = tmpItem
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func jsonFloat(v float64) (any, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, v)
	}
	return v, nil
}

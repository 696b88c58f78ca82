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

// Package cbor wraps github.com/fxamacker/cbor/v2 for binary UTXO snapshots.
//
// Snapshots are decoded with a single cached decoder mode that produces
// map[string]any for CBOR maps, and ToJSON turns them into JSON documents so that
// the JSON validators apply unchanged:
//
//	jsonData, err := cbor.ToJSON(snapshot)
//	if err != nil {
//	    return err
//	}
//	batch, err := utxo.ParseBatch(jsonData)
//
// Encoding uses core deterministic ordering, so equal values always produce equal
// bytes.
package cbor

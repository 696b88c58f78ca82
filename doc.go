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

// Package goecash is the pre-transaction validation core of an eCash wallet.
//
// It checks user input and indexer data before anything is signed or
// broadcast: send amounts (including fiat-denominated input), recipient
// addresses, token genesis parameters, token stats records, wallet settings
// and UTXO records. Nothing in the module performs network I/O or keeps
// mutable state, and every function is safe for concurrent use.
//
// The subpackages can be used directly with an explicit currency.Currency.
// Validator binds a currency and a logger once:
//
//	v := goecash.New(
//	    goecash.WithLogger(logger),
//	)
//	if err := v.ShouldRejectAmountInput("10", "USD", rate, balance); err != nil {
//	    // err.Error() is the message to show the user
//	}
//	ok := v.IsValidXecAddress("ecash:qz2708636snqhsxu8wnlka78h6fdp77ar59jrf5035")
//
// Package layout:
//   - currency: asset parameters (prefixes, decimals, dust, fiat allow-list)
//   - cashaddr: checksummed cash address codec shared by all prefixes
//   - address: address classification for a currency
//   - amount: send amount rejection and fiat conversion
//   - token: genesis parameter predicates and token stats decoding
//   - utxo: UTXO record and batch shape decoding
//   - settings: wallet settings validation
//   - cbor: CBOR to JSON normalization for binary UTXO snapshots
package goecash

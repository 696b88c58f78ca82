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

package address

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/blinklabs-io/goecash/cashaddr"
	"github.com/blinklabs-io/goecash/currency"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const legacyHashSize = 20

// Kind is the classification of an address string for a given currency
type Kind int

const (
	KindMalformed Kind = iota
	KindNative
	KindToken
	KindForeign
	KindLegacy
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindToken:
		return "token"
	case KindForeign:
		return "foreign"
	case KindLegacy:
		return "legacy"
	default:
		return "malformed"
	}
}

var ErrWrongKind = errors.New("address is not of the expected kind")

// WrongKindError indicates an address that decoded, but not as the requested kind
type WrongKindError struct {
	Expected Kind
	Found    Kind
}

func (e WrongKindError) Error() string {
	return fmt.Sprintf("expected %s address, found %s", e.Expected, e.Found)
}

func (WrongKindError) Is(target error) bool {
	return target == ErrWrongKind
}

// Address is a decoded address together with its classification
type Address struct {
	Kind    Kind
	Payload cashaddr.Payload
}

// Decode classifies addr for the given currency. An explicit prefix pins the
// network the checksum is verified against. Without a prefix, the checksum is
// tried against the native prefixes, then the token prefixes, then the foreign
// prefixes, and finally the string is checked as a legacy base58 address
func Decode(cur currency.Currency, addr string) (Address, error) {
	if addr == "" {
		return Address{}, cashaddr.ErrEmpty
	}
	prefix, _, hasPrefix := cashaddr.Split(addr)
	if hasPrefix {
		prefix = strings.ToLower(prefix)
		kind := KindForeign
		switch {
		case slices.Contains(cur.Prefixes, prefix):
			kind = KindNative
		case slices.Contains(cur.TokenPrefixes, prefix):
			kind = KindToken
		}
		payload, err := cashaddr.Decode(addr, cashaddr.NewParams(prefix))
		if err != nil {
			return Address{}, err
		}
		return Address{Kind: kind, Payload: payload}, nil
	}
	candidates := []struct {
		kind     Kind
		prefixes []string
	}{
		{kind: KindNative, prefixes: cur.Prefixes},
		{kind: KindToken, prefixes: cur.TokenPrefixes},
		{kind: KindForeign, prefixes: cur.ForeignPrefixes},
	}
	var firstErr error
	for _, candidate := range candidates {
		for _, p := range candidate.prefixes {
			payload, err := cashaddr.Decode(addr, cashaddr.NewParams(p))
			if err == nil {
				return Address{Kind: candidate.kind, Payload: payload}, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if hash, version, err := base58.CheckDecode(addr); err == nil && len(hash) == legacyHashSize {
		addrType := cashaddr.AddressTypeP2PKH
		// Mainnet and testnet P2SH version bytes
		if version == 0x05 || version == 0xc4 {
			addrType = cashaddr.AddressTypeP2SH
		}
		return Address{
			Kind: KindLegacy,
			Payload: cashaddr.Payload{
				Type: addrType,
				Hash: hash,
			},
		}, nil
	}
	if firstErr == nil {
		firstErr = cashaddr.ErrInvalidChecksum
	}
	return Address{}, firstErr
}

// Classify returns the kind of addr, or KindMalformed if it can't be decoded
func Classify(cur currency.Currency, addr string) Kind {
	decoded, err := Decode(cur, addr)
	if err != nil {
		return KindMalformed
	}
	return decoded.Kind
}

// IsValidXecAddress reports whether addr is a native asset address of cur
func IsValidXecAddress(cur currency.Currency, addr string) bool {
	return Classify(cur, addr) == KindNative
}

// IsValidEtokenAddress reports whether addr is a token address of cur
func IsValidEtokenAddress(cur currency.Currency, addr string) bool {
	return Classify(cur, addr) == KindToken
}

// ToTokenAddress converts a native address into the token address for the same hash
func ToTokenAddress(cur currency.Currency, addr string) (string, error) {
	return convert(cur, addr, KindNative, cur.TokenPrefix())
}

// ToXecAddress converts a token address into the native address for the same hash
func ToXecAddress(cur currency.Currency, addr string) (string, error) {
	return convert(cur, addr, KindToken, cur.Prefix())
}

func convert(cur currency.Currency, addr string, from Kind, prefix string) (string, error) {
	decoded, err := Decode(cur, addr)
	if err != nil {
		return "", err
	}
	if decoded.Kind != from {
		return "", WrongKindError{Expected: from, Found: decoded.Kind}
	}
	return cashaddr.Encode(
		cashaddr.NewParams(prefix),
		decoded.Payload.Type,
		decoded.Payload.Hash,
	)
}

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
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// Charset is the 32 character alphabet used by cash addresses
	Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

	Separator = ':'

	ChecksumLength = 8

	VersionReservedMask = 0x80
	VersionTypeMask     = 0x78
	VersionSizeMask     = 0x07

	AddressTypeP2PKH AddressType = 0
	AddressTypeP2SH  AddressType = 1
)

// Generator is the BCH code generator for the 40-bit cash address checksum
var Generator = [5]uint64{
	0x98f2bc8e61,
	0x79b76d99e2,
	0xf33e5fb3c4,
	0xae2eabe2a8,
	0x1e4f43e470,
}

// Hash sizes in bytes, indexed by the size bits of the version byte
var hashSizes = [8]int{20, 24, 28, 32, 40, 48, 56, 64}

type AddressType uint8

func (t AddressType) String() string {
	switch t {
	case AddressTypeP2PKH:
		return "P2PKH"
	case AddressTypeP2SH:
		return "P2SH"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}

// Params selects the network a string is decoded against
type Params struct {
	Prefix    string
	Charset   string
	Generator [5]uint64
}

// NewParams returns Params for the given prefix using the standard charset and generator
func NewParams(prefix string) Params {
	return Params{
		Prefix:    prefix,
		Charset:   Charset,
		Generator: Generator,
	}
}

// Payload is the decoded content of a cash address
type Payload struct {
	Prefix string
	Type   AddressType
	Hash   []byte
}

// Split separates an optional network prefix from the data part
func Split(addr string) (string, string, bool) {
	idx := strings.LastIndexByte(addr, Separator)
	if idx < 0 {
		return "", addr, false
	}
	return addr[:idx], addr[idx+1:], true
}

// Decode verifies the checksum of addr against params and returns its payload.
// A prefix in addr, when present, must match params.Prefix
func Decode(addr string, params Params) (Payload, error) {
	if addr == "" {
		return Payload{}, ErrEmpty
	}
	lower := strings.ToLower(addr)
	if lower != addr && strings.ToUpper(addr) != addr {
		return Payload{}, ErrMixedCase
	}
	prefix, data, hasPrefix := Split(lower)
	if hasPrefix && prefix != params.Prefix {
		return Payload{}, PrefixMismatchError{
			Expected: params.Prefix,
			Found:    prefix,
		}
	}
	if len(data) <= ChecksumLength {
		return Payload{}, fmt.Errorf("%w: data part has %d characters", ErrInvalidLength, len(data))
	}
	values, err := toValues(data, params.Charset)
	if err != nil {
		return Payload{}, err
	}
	if !verifyChecksum(params, values) {
		return Payload{}, ErrInvalidChecksum
	}
	raw, err := bech32.ConvertBits(values[:len(values)-ChecksumLength], 5, 8, false)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrInvalidPadding, err)
	}
	if len(raw) == 0 {
		return Payload{}, ErrInvalidLength
	}
	version := raw[0]
	if version&VersionReservedMask != 0 {
		return Payload{}, fmt.Errorf("%w: reserved bit set in 0x%02x", ErrInvalidVersion, version)
	}
	hash := raw[1:]
	if expected := hashSizes[version&VersionSizeMask]; len(hash) != expected {
		return Payload{}, fmt.Errorf(
			"%w: hash is %d bytes, version 0x%02x expects %d",
			ErrInvalidLength,
			len(hash),
			version,
			expected,
		)
	}
	return Payload{
		Prefix: params.Prefix,
		Type:   AddressType((version & VersionTypeMask) >> 3),
		Hash:   hash,
	}, nil
}

// Encode builds the prefixed cash address string for the given type and hash
func Encode(params Params, addrType AddressType, hash []byte) (string, error) {
	sizeCode := -1
	for i, size := range hashSizes {
		if size == len(hash) {
			sizeCode = i
			break
		}
	}
	if sizeCode < 0 {
		return "", fmt.Errorf("%w: unsupported hash size %d", ErrInvalidLength, len(hash))
	}
	if addrType > 0x0f {
		return "", fmt.Errorf("%w: address type %d out of range", ErrInvalidVersion, addrType)
	}
	if len(params.Charset) != 32 {
		return "", ErrInvalidCharset
	}
	raw := make([]byte, 0, len(hash)+1)
	raw = append(raw, byte(addrType)<<3|byte(sizeCode))
	raw = append(raw, hash...)
	values, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", err
	}
	checksum := createChecksum(params, values)
	var sb strings.Builder
	sb.WriteString(params.Prefix)
	sb.WriteByte(Separator)
	for _, v := range append(values, checksum...) {
		sb.WriteByte(params.Charset[v])
	}
	return sb.String(), nil
}

func toValues(data string, charset string) ([]byte, error) {
	if len(charset) != 32 {
		return nil, ErrInvalidCharset
	}
	ret := make([]byte, len(data))
	for i := 0; i < len(data); i++ {
		idx := strings.IndexByte(charset, data[i])
		if idx < 0 {
			return nil, InvalidCharacterError{Char: data[i], Pos: i}
		}
		ret[i] = byte(idx)
	}
	return ret, nil
}

// expandPrefix maps each prefix character to its low 5 bits followed by a zero separator
func expandPrefix(prefix string) []byte {
	ret := make([]byte, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		ret[i] = prefix[i] & 0x1f
	}
	return ret
}

func polyMod(values []byte, gen [5]uint64) uint64 {
	c := uint64(1)
	for _, d := range values {
		c0 := c >> 35
		c = ((c & 0x07ffffffff) << 5) ^ uint64(d)
		for i := range gen {
			if (c0>>uint(i))&1 == 1 {
				c ^= gen[i]
			}
		}
	}
	return c ^ 1
}

func verifyChecksum(params Params, values []byte) bool {
	return polyMod(append(expandPrefix(params.Prefix), values...), params.Generator) == 0
}

func createChecksum(params Params, values []byte) []byte {
	buf := append(expandPrefix(params.Prefix), values...)
	buf = append(buf, make([]byte, ChecksumLength)...)
	mod := polyMod(buf, params.Generator)
	ret := make([]byte, ChecksumLength)
	for i := range ret {
		ret[i] = byte((mod >> (5 * uint(ChecksumLength-1-i))) & 0x1f)
	}
	return ret
}

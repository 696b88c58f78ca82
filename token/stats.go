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
	"strconv"

	"github.com/blinklabs-io/goecash/amount"
	"github.com/blinklabs-io/goecash/currency"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// Generation is the shape family of a token stats record
type Generation int

const (
	GenerationUnknown Generation = iota
	GenerationPreFork
	GenerationPostFork
	GenerationBatonless
)

func (g Generation) String() string {
	switch g {
	case GenerationPreFork:
		return "pre-fork"
	case GenerationPostFork:
		return "post-fork"
	case GenerationBatonless:
		return "baton-less"
	default:
		return "unknown"
	}
}

const (
	keyBlockCreated  = "blockCreated"
	keyContainsBaton = "containsBaton"
)

var (
	preForkKeys = []string{
		"id",
		"name",
		"symbol",
		"decimals",
		"documentUri",
		"documentHash",
		"versionType",
		"initialTokenQty",
		"totalMinted",
		"totalBurned",
		"circulatingSupply",
		"timestamp",
		"timestamp_unix",
		keyBlockCreated,
		keyContainsBaton,
	}
	batonlessKeys = append(
		append([]string{}, preForkKeys...),
		"blockLastActiveSend",
		"txnsSinceGenesis",
	)
	postForkKeys = append(
		append([]string{}, batonlessKeys...),
		"blockLastActiveMint",
		"mintingBatonStatus",
	)
)

type generationDef struct {
	generation Generation
	keys       []string
	match      func(blockCreated int64, containsBaton bool, forkHeight int64) bool
}

// Generations in the order they are tried. The first match decides which key set a
// record must satisfy
var generations = []generationDef{
	{
		generation: GenerationPreFork,
		keys:       preForkKeys,
		match: func(blockCreated int64, _ bool, forkHeight int64) bool {
			return blockCreated < forkHeight
		},
	},
	{
		generation: GenerationBatonless,
		keys:       batonlessKeys,
		match: func(_ int64, containsBaton bool, _ int64) bool {
			return !containsBaton
		},
	},
	{
		generation: GenerationPostFork,
		keys:       postForkKeys,
		match: func(int64, bool, int64) bool {
			return true
		},
	},
}

// RequiredKeys returns the keys a record of the given generation must contain
func RequiredKeys(g Generation) []string {
	for _, def := range generations {
		if def.generation == g {
			return append([]string{}, def.keys...)
		}
	}
	return nil
}

// Stats is a decoded token stats record
type Stats struct {
	Generation         Generation
	TokenId            string
	Name               string
	Symbol             string
	Decimals           int64
	DocumentUri        string
	DocumentHash       string
	VersionType        int64
	InitialTokenQty    decimal.Decimal
	TotalMinted        decimal.Decimal
	TotalBurned        decimal.Decimal
	CirculatingSupply  decimal.Decimal
	BlockCreated       int64
	ContainsBaton      bool
	TimestampUnix      int64
	MintingBatonStatus string
}

// ParseStats decodes a token stats record. The generation is picked from the
// creation height and baton flag, and the record must then contain every key of
// that generation. Records with missing keys are rejected as a whole
func ParseStats(cur currency.Currency, raw []byte) (Stats, error) {
	if !gjson.ValidBytes(raw) {
		return Stats{}, &StatsError{Err: ErrInvalidJSON}
	}
	record := gjson.ParseBytes(raw)
	if !record.IsObject() {
		return Stats{}, &StatsError{Err: ErrNotAnObject}
	}
	var missing []string
	for _, key := range []string{keyBlockCreated, keyContainsBaton} {
		if !record.Get(key).Exists() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Stats{}, &StatsError{Missing: missing}
	}
	blockCreated, err := intValue(record, keyBlockCreated)
	if err != nil {
		return Stats{}, &StatsError{Err: err}
	}
	containsBaton := record.Get(keyContainsBaton)
	if containsBaton.Type != gjson.True && containsBaton.Type != gjson.False {
		return Stats{}, &StatsError{
			Err: fmt.Errorf("%s must be a boolean", keyContainsBaton),
		}
	}
	for _, def := range generations {
		if !def.match(blockCreated, containsBaton.Bool(), cur.ForkHeight) {
			continue
		}
		return decodeStats(record, def)
	}
	return Stats{}, &StatsError{Err: errors.New("no matching generation")}
}

// IsValidTokenStats reports whether raw is a complete token stats record
func IsValidTokenStats(cur currency.Currency, raw []byte) bool {
	_, err := ParseStats(cur, raw)
	return err == nil
}

func decodeStats(record gjson.Result, def generationDef) (Stats, error) {
	var missing []string
	for _, key := range def.keys {
		if !record.Get(key).Exists() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Stats{}, &StatsError{Generation: def.generation, Missing: missing}
	}
	ret := Stats{
		Generation:         def.generation,
		TokenId:            record.Get("id").String(),
		Name:               record.Get("name").String(),
		Symbol:             record.Get("symbol").String(),
		DocumentUri:        record.Get("documentUri").String(),
		DocumentHash:       record.Get("documentHash").String(),
		ContainsBaton:      record.Get(keyContainsBaton).Bool(),
		MintingBatonStatus: record.Get("mintingBatonStatus").String(),
	}
	var err error
	ints := []struct {
		key  string
		dest *int64
	}{
		{key: "decimals", dest: &ret.Decimals},
		{key: "versionType", dest: &ret.VersionType},
		{key: keyBlockCreated, dest: &ret.BlockCreated},
		{key: "timestamp_unix", dest: &ret.TimestampUnix},
	}
	for _, field := range ints {
		if *field.dest, err = intValue(record, field.key); err != nil {
			return Stats{}, &StatsError{Generation: def.generation, Err: err}
		}
	}
	if ret.Decimals < 0 || ret.Decimals > MaxDecimals {
		return Stats{}, &StatsError{
			Generation: def.generation,
			Err:        fmt.Errorf("decimals %d out of range", ret.Decimals),
		}
	}
	quantities := []struct {
		key  string
		dest *decimal.Decimal
	}{
		{key: "initialTokenQty", dest: &ret.InitialTokenQty},
		{key: "totalMinted", dest: &ret.TotalMinted},
		{key: "totalBurned", dest: &ret.TotalBurned},
		{key: "circulatingSupply", dest: &ret.CirculatingSupply},
	}
	for _, field := range quantities {
		if *field.dest, err = decimalValue(record, field.key); err != nil {
			return Stats{}, &StatsError{Generation: def.generation, Err: err}
		}
	}
	return ret, nil
}

func intValue(record gjson.Result, key string) (int64, error) {
	value := record.Get(key)
	if value.Type != gjson.Number {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	ret, err := strconv.ParseInt(value.Raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return ret, nil
}

// decimalValue accepts both JSON numbers and numeric strings, as API versions differ
func decimalValue(record gjson.Result, key string) (decimal.Decimal, error) {
	value := record.Get(key)
	var text string
	switch value.Type {
	case gjson.Number:
		text = value.Raw
	case gjson.String:
		text = value.Str
	default:
		return decimal.Zero, fmt.Errorf("%s must be numeric", key)
	}
	ret, err := amount.Parse(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be numeric: %w", key, err)
	}
	return ret, nil
}

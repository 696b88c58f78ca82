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

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/goecash/utxo"
	"github.com/urfave/cli/v2"
)

func utxoCommand() *cli.Command {
	return &cli.Command{
		Name:      "utxo",
		Usage:     "validate a single JSON UTXO record",
		ArgsUsage: "[JSON|-]",
		Action: func(c *cli.Context) error {
			v, err := newValidator(c)
			if err != nil {
				return err
			}
			raw, err := readInput(c)
			if err != nil {
				return err
			}
			u, err := v.ParseUtxo(raw)
			if err != nil {
				return reject(err)
			}
			printValid(c, "%s UTXO %s", u.Shape, u)
			return nil
		},
	}
}

func utxosCommand() *cli.Command {
	return &cli.Command{
		Name:      "utxos",
		Usage:     "validate a UTXO batch",
		ArgsUsage: "[JSON|HEX|-]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "cbor",
				Usage: "input is hex-encoded CBOR",
			},
		},
		Action: func(c *cli.Context) error {
			v, err := newValidator(c)
			if err != nil {
				return err
			}
			raw, err := readInput(c)
			if err != nil {
				return err
			}
			var batch utxo.Batch
			if c.Bool("cbor") {
				data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
				if err != nil {
					return cli.Exit(fmt.Sprintf("invalid hex input: %s", err), 1)
				}
				batch, err = v.ParseUtxoBatchCbor(data)
				if err != nil {
					return reject(err)
				}
			} else {
				batch, err = v.ParseUtxoBatch(raw)
				if err != nil {
					return reject(err)
				}
			}
			printValid(c, "%s batch of %d UTXOs", batch.Shape, len(batch.Utxos))
			return nil
		},
	}
}

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
	"github.com/blinklabs-io/goecash/address"
	"github.com/urfave/cli/v2"
)

func addressCommand() *cli.Command {
	return &cli.Command{
		Name:      "address",
		Usage:     "check that an address is a native (or, with --token, a token) address",
		ArgsUsage: "ADDRESS",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "token",
				Usage: "require a token address",
			},
		},
		Action: func(c *cli.Context) error {
			v, err := newValidator(c)
			if err != nil {
				return err
			}
			addr := c.Args().First()
			if addr == "" {
				return cli.Exit("an address is required", 1)
			}
			want := address.KindNative
			if c.Bool("token") {
				want = address.KindToken
			}
			decoded, err := v.DecodeAddress(addr)
			if err != nil {
				return reject(err)
			}
			if decoded.Kind != want {
				return reject(address.WrongKindError{Expected: want, Found: decoded.Kind})
			}
			printValid(
				c,
				"%s %s address, hash %x",
				decoded.Kind,
				decoded.Payload.Type,
				decoded.Payload.Hash,
			)
			return nil
		},
	}
}

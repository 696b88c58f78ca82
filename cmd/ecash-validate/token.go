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
	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:      "token",
		Usage:     "validate a JSON token genesis form",
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
			params, err := v.ValidateGenesis(raw)
			if err != nil {
				return reject(err)
			}
			printValid(c, "token genesis %s (%s)", params.Ticker, params.Name)
			return nil
		},
	}
}

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "validate a JSON token stats record",
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
			stats, err := v.ParseTokenStats(raw)
			if err != nil {
				return reject(err)
			}
			printValid(c, "%s token stats for %s", stats.Generation, stats.TokenId)
			return nil
		},
	}
}

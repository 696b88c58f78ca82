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

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:      "settings",
		Usage:     "validate a JSON wallet settings object",
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
			s, err := v.ParseSettings(raw)
			if err != nil {
				return reject(err)
			}
			printValid(c, "settings, fiat currency %s", s.FiatCurrency)
			return nil
		},
	}
}

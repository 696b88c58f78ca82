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

func sendToManyCommand() *cli.Command {
	return &cli.Command{
		Name:      "send-to-many",
		Usage:     "validate one \"address, amount\" pair per line",
		ArgsUsage: "[TEXT|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagBalance,
				Usage:    "available balance in native units",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			v, err := newValidator(c)
			if err != nil {
				return err
			}
			balance, err := decimalFlag(c, flagBalance)
			if err != nil {
				return err
			}
			raw, err := readInput(c)
			if err != nil {
				return err
			}
			recipients, err := v.ParseSendToMany(string(raw), balance)
			if err != nil {
				return reject(err)
			}
			printValid(c, "send to %d recipients", len(recipients))
			return nil
		},
	}
}

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
	"fmt"

	"github.com/blinklabs-io/goecash/amount"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
)

const (
	flagCode    = "code"
	flagRate    = "rate"
	flagBalance = "balance"
)

func amountCommand() *cli.Command {
	return &cli.Command{
		Name:      "amount",
		Usage:     "check a send amount against the dust floor and available balance",
		ArgsUsage: "AMOUNT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagCode,
				Usage: "currency code of the amount; anything but the ticker is treated as fiat (default: the ticker)",
			},
			&cli.StringFlag{
				Name:  flagRate,
				Value: "0",
				Usage: "fiat price of one native unit",
			},
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
			rate, err := decimalFlag(c, flagRate)
			if err != nil {
				return err
			}
			balance, err := decimalFlag(c, flagBalance)
			if err != nil {
				return err
			}
			code := c.String(flagCode)
			if code == "" {
				code = v.Currency().Ticker
			}
			amt := c.Args().First()
			if err := v.ShouldRejectAmountInput(amt, code, rate, balance); err != nil {
				return reject(err)
			}
			printValid(c, "%s %s", amt, code)
			return nil
		},
	}
}

func fiatCommand() *cli.Command {
	return &cli.Command{
		Name:      "fiat",
		Usage:     "convert a fiat amount into native units",
		ArgsUsage: "FIAT_AMOUNT",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagRate,
				Usage:    "fiat price of one native unit",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			v, err := newValidator(c)
			if err != nil {
				return err
			}
			rate, err := decimalFlag(c, flagRate)
			if err != nil {
				return err
			}
			converted, err := v.FiatToCrypto(c.Args().First(), rate)
			if err != nil {
				return reject(err)
			}
			fmt.Fprintln(c.App.Writer, converted)
			return nil
		},
	}
}

func decimalFlag(c *cli.Context, name string) (decimal.Decimal, error) {
	ret, err := amount.Parse(c.String(name))
	if err != nil {
		return decimal.Zero, cli.Exit(
			fmt.Sprintf("invalid --%s %q: %s", name, c.String(name), err),
			1,
		)
	}
	return ret, nil
}

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
	"io"
	"log/slog"
	"os"
	"strings"

	goecash "github.com/blinklabs-io/goecash"
	"github.com/blinklabs-io/goecash/currency"
	"github.com/urfave/cli/v2"
)

const (
	flagDebug     = "debug"
	flagCurrency  = "currency"
	flagBucketKey = "utxo-bucket-key"
)

func main() {
	// Rejections exit from within Run. Anything returned here is a usage error
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "ecash-validate",
		Usage: "validate eCash wallet input before building a transaction",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Usage:   "log rejections at debug level",
				EnvVars: []string{"ECASH_VALIDATE_DEBUG"},
			},
			&cli.StringFlag{
				Name:    flagCurrency,
				Value:   currency.CurrencyXEC.Ticker,
				Usage:   "ticker of the currency to validate against",
				EnvVars: []string{"ECASH_VALIDATE_CURRENCY"},
			},
			&cli.StringSliceFlag{
				Name:    flagBucketKey,
				Usage:   "key unwrapped from nested UTXO batch elements (repeatable)",
				EnvVars: []string{"ECASH_VALIDATE_UTXO_BUCKET_KEYS"},
			},
		},
		Commands: []*cli.Command{
			addressCommand(),
			amountCommand(),
			fiatCommand(),
			tokenCommand(),
			statsCommand(),
			utxoCommand(),
			utxosCommand(),
			settingsCommand(),
			sendToManyCommand(),
		},
	}
}

// newValidator builds a Validator from the global flags
func newValidator(c *cli.Context) (*goecash.Validator, error) {
	level := slog.LevelInfo
	if c.Bool(flagDebug) {
		level = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}),
	)
	cur := currency.ByTicker(c.String(flagCurrency))
	if cur.Name == currency.CurrencyInvalid.Name {
		return nil, cli.Exit(
			fmt.Sprintf("unknown currency: %s", c.String(flagCurrency)),
			1,
		)
	}
	opts := []goecash.ValidatorOptionFunc{
		goecash.WithLogger(logger),
		goecash.WithCurrency(cur),
	}
	if keys := c.StringSlice(flagBucketKey); len(keys) > 0 {
		opts = append(opts, goecash.WithUtxoBucketKeys(keys...))
	}
	return goecash.New(opts...), nil
}

// readInput returns the first argument, or stdin if there is none or it is "-"
func readInput(c *cli.Context) ([]byte, error) {
	arg := c.Args().First()
	if arg != "" && arg != "-" {
		return []byte(arg), nil
	}
	data, err := io.ReadAll(c.App.Reader)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("failed to read input: %s", err), 1)
	}
	return data, nil
}

// reject turns a validation failure into exit status 1 with the message on stderr
func reject(err error) error {
	return cli.Exit(err.Error(), 1)
}

func printValid(c *cli.Context, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(c.App.Writer, strings.TrimSpace("valid "+msg))
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"cart/applog"
	"cart/cart"
	"cart/cli"
	"cart/config"

	"github.com/go-faker/faker/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// longest input line accepted at any prompt
const maxLineSize = 1 << 20

func main() {
	cmd := config.CreateCommand(run)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cfg *config.Config) error {
	baseLogger := applog.NewLogger(os.Stderr, cfg.Debug)

	c := cart.New(cfg.KeyMode(), cfg.Capacity, applog.WithScope(baseLogger, "CART"))
	logger := applog.WithScope(baseLogger, "MAIN")
	logger.Debug().
		Str("mode", c.Mode().String()).
		Int("capacity", c.Capacity()).
		Msg("cart created")

	if cfg.Seed > 0 {
		if err := seedCartWithRandomItems(c, cfg.Seed, applog.WithScope(baseLogger, "SEED")); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	demo := cli.NewCli(scanner, os.Stdout, c, cfg.NoColor, applog.WithScope(baseLogger, "CLI"))
	return demo.Start()
}

// seedCartWithRandomItems adds up to n random items, stopping early once the cart is full.
func seedCartWithRandomItems(c *cart.Cart, n int, logger zerolog.Logger) error {
	for i := 0; i < n; i++ {
		ids, err := faker.RandomInt(1, 999, 1)
		if err != nil {
			return err
		}
		cents, err := faker.RandomInt(100, 99999, 1)
		if err != nil {
			return err
		}

		_, err = c.Add(ids[0], faker.Word(), decimal.New(int64(cents[0]), -2))
		if errors.Is(err, cart.ErrCapacityExceeded) {
			logger.Info().Int("added", i).Msg("cart is full, seeding stopped")
			return nil
		}
		if err != nil {
			return err
		}
	}
	logger.Debug().Int("added", n).Msg("seeding done")
	return nil
}

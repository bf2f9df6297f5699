package config

import (
	"context"

	"github.com/urfave/cli/v3"
)

func CreateCommand(runFunc func(ctx context.Context, cfg *Config) error) *cli.Command {
	return &cli.Command{
		Name:        "cart",
		Usage:       "interactive shopping cart backed by a binary search tree",
		Description: "Items are kept in a binary search tree ordered by price and managed from a text menu.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "TOML file to load. Flags given on the command line override its values.",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "debug",
				Usage:    "log cart operations at debug level",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:      "capacity",
				Usage:     "maximum number of items the cart holds",
				Value:     int64(Default().Capacity),
				OnlyOnce:  true,
				Validator: func(v int64) error { return validateCapacity(int(v)) },
			},
			&cli.StringFlag{
				Name:      "mode",
				Usage:     `order id lookup: "faithful" walks the price tree by order id, "fixed" uses an order id index`,
				Value:     Default().Mode,
				OnlyOnce:  true,
				Validator: validateMode,
			},
			&cli.BoolFlag{
				Name:     "no-color",
				Usage:    "disable colored output",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:      "seed",
				Usage:     "number of random items added before the menu starts",
				OnlyOnce:  true,
				Validator: func(v int64) error { return validateSeed(int(v)) },
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := parseConfig(cmd)
			if err != nil {
				return err
			}
			return runFunc(ctx, cfg)
		},
	}
}

func parseConfig(cmd *cli.Command) (*Config, error) {
	cfg := Default()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = fromTomlFile(path); err != nil {
			return nil, err
		}
	}

	if cmd.IsSet("mode") {
		cfg.Mode = cmd.String("mode")
	}
	if cmd.IsSet("capacity") {
		cfg.Capacity = int(cmd.Int("capacity"))
	}
	if cmd.IsSet("seed") {
		cfg.Seed = int(cmd.Int("seed"))
	}
	if cmd.IsSet("no-color") {
		cfg.NoColor = cmd.Bool("no-color")
	}
	if cmd.IsSet("debug") {
		cfg.Debug = cmd.Bool("debug")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

package config

import (
	"fmt"

	"cart/cart"
)

const maxCapacity = 1000

type Config struct {
	Mode     string `toml:"mode"`
	Capacity int    `toml:"capacity"`
	Seed     int    `toml:"seed"`
	NoColor  bool   `toml:"no_color"`
	Debug    bool   `toml:"debug"`
}

func Default() *Config {
	return &Config{
		Mode:     cart.Faithful.String(),
		Capacity: cart.DefaultCapacity,
	}
}

// KeyMode returns the parsed mode; Validate guarantees it succeeds.
func (c *Config) KeyMode() cart.KeyMode {
	m, _ := cart.ParseKeyMode(c.Mode)
	return m
}

func (c *Config) Validate() error {
	if err := validateMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if err := validateCapacity(c.Capacity); err != nil {
		return fmt.Errorf("capacity: %w", err)
	}
	if err := validateSeed(c.Seed); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}

func validateMode(v string) error {
	_, err := cart.ParseKeyMode(v)
	return err
}

func validateCapacity(v int) error {
	if v < 1 || maxCapacity < v {
		return fmt.Errorf("out of range[%d-%d]", 1, maxCapacity)
	}
	return nil
}

func validateSeed(v int) error {
	if v < 0 || maxCapacity < v {
		return fmt.Errorf("out of range[%d-%d]", 0, maxCapacity)
	}
	return nil
}

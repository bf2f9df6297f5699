package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cart/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToml(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var got *Config
	cmd := CreateCommand(func(_ context.Context, cfg *Config) error {
		got = cfg
		return nil
	})
	err := cmd.Run(context.Background(), append([]string{"cart"}, args...))
	return got, err
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"fixed mode", func(c *Config) { c.Mode = "fixed" }, false},
		{"unknown mode", func(c *Config) { c.Mode = "strict" }, true},
		{"zero capacity", func(c *Config) { c.Capacity = 0 }, true},
		{"capacity too large", func(c *Config) { c.Capacity = maxCapacity + 1 }, true},
		{"negative seed", func(c *Config) { c.Seed = -1 }, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFromTomlFile(t *testing.T) {
	cfg, err := fromTomlFile(writeToml(t, "mode = \"fixed\"\nseed = 3\n"))
	require.NoError(t, err)
	assert.Equal(t, cart.Fixed, cfg.KeyMode())
	assert.Equal(t, 3, cfg.Seed)
	assert.Equal(t, cart.DefaultCapacity, cfg.Capacity)

	_, err = fromTomlFile(writeToml(t, "colour = true\n"))
	assert.Error(t, err)

	_, err = fromTomlFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestCommandDefaults(t *testing.T) {
	cfg, err := runCommand(t)
	require.NoError(t, err)
	assert.Equal(t, cart.Faithful, cfg.KeyMode())
	assert.Equal(t, cart.DefaultCapacity, cfg.Capacity)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.NoColor)
	assert.Zero(t, cfg.Seed)
}

func TestCommandIgnoresEnvironment(t *testing.T) {
	t.Setenv("CART_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := runCommand(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCommandFlags(t *testing.T) {
	cfg, err := runCommand(t, "--mode", "fixed", "--capacity", "3", "--seed", "2", "--no-color", "--debug")
	require.NoError(t, err)
	assert.Equal(t, cart.Fixed, cfg.KeyMode())
	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, 2, cfg.Seed)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Debug)
}

func TestCommandFlagsOverrideFile(t *testing.T) {
	path := writeToml(t, "mode = \"fixed\"\ncapacity = 8\nno_color = true\n")

	cfg, err := runCommand(t, "--config", path, "--capacity", "4")
	require.NoError(t, err)
	assert.Equal(t, cart.Fixed, cfg.KeyMode())
	assert.Equal(t, 4, cfg.Capacity)
	assert.True(t, cfg.NoColor)
}

func TestCommandRejectsInvalidValues(t *testing.T) {
	tcs := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"--mode", "strict"}},
		{"capacity out of range", []string{"--capacity", "0"}},
		{"invalid file value", []string{"--config", writeToml(t, "capacity = 5000\n")}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := runCommand(t, tc.args...)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

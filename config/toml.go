package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// fromTomlFile overlays the values found in path on top of the defaults.
func fromTomlFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no such file: %s", path)
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}

	return cfg, nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ostools/mounttab/pkg/mounttab"
)

// DefaultConfigPath is the default location for the config file
const DefaultConfigPath = "/etc/mounttab.conf"

// Config holds the CLI configuration
type Config struct {
	// MountsPath is the mount table to read
	MountsPath string `toml:"mounts_path"`
	// SwapsPath is the swap table to read
	SwapsPath string `toml:"swaps_path"`
	// FstabPath is the filesystem table to read and edit
	FstabPath string `toml:"fstab_path"`
	// Strict makes the first malformed line fail the whole parse
	Strict bool `toml:"strict"`
}

// Load loads configuration from a TOML file
// Returns an empty config if the file doesn't exist
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// Merge merges CLI flags into the config, with CLI flags taking precedence
// over config file values. Empty CLI values are ignored; strict can only
// be switched on from the CLI, never back off.
func (c *Config) Merge(mountsPath, swapsPath, fstabPath string, strict bool) {
	if mountsPath != "" {
		c.MountsPath = mountsPath
	}
	if swapsPath != "" {
		c.SwapsPath = swapsPath
	}
	if fstabPath != "" {
		c.FstabPath = fstabPath
	}
	if strict {
		c.Strict = true
	}
}

// ApplyDefaults applies the well-known table paths for any unset fields
func (c *Config) ApplyDefaults() {
	if c.MountsPath == "" {
		c.MountsPath = mounttab.ProcMountsPath
	}
	if c.SwapsPath == "" {
		c.SwapsPath = mounttab.ProcSwapsPath
	}
	if c.FstabPath == "" {
		c.FstabPath = mounttab.FstabPath
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	paths := []struct {
		name  string
		value string
	}{
		{"mounts_path", c.MountsPath},
		{"swaps_path", c.SwapsPath},
		{"fstab_path", c.FstabPath},
	}
	for _, p := range paths {
		if !filepath.IsAbs(p.value) {
			return fmt.Errorf("%s must be an absolute path, got %q", p.name, p.value)
		}
	}
	return nil
}

// Mode returns the parse mode selected by the configuration
func (c *Config) Mode() mounttab.Mode {
	if c.Strict {
		return mounttab.Strict
	}
	return mounttab.Permissive
}

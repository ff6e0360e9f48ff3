package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the config file.
// Every field is a default that the matching command-line flag overrides.
type Config struct {
	// Indent pretty-prints layout output by default.
	Indent bool `toml:"indent"`

	// NoCache disables the local layout cache by default.
	NoCache bool `toml:"no_cache"`

	// Addr is the default listen address for the serve command.
	Addr string `toml:"addr"`

	// Redis is the default Redis address for the serve command.
	// When empty, serve uses the file cache.
	Redis string `toml:"redis"`
}

// configPath returns the config file path using XDG standard
// (~/.config/spantable/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the user config file. A missing file is not an error;
// it yields the zero Config so built-in defaults apply.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return loadConfigFile(path)
}

// loadConfigFile reads and decodes a TOML config file at path.
func loadConfigFile(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Package config loads the tool's optional YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the structure of ~/.cosenote/config.yaml. Every field has
// a usable default; the file itself is optional.
type Config struct {
	// Project is the Scrapbox project the tool maintains.
	Project string `yaml:"project"`
	// BaseURL overrides the API root.
	BaseURL string `yaml:"base_url"`
	// SiteURL overrides the edit endpoint root.
	SiteURL string `yaml:"site_url"`
	// Concurrency bounds parallel page fetches.
	Concurrency int `yaml:"concurrency"`
	// Model selects the text-generation model.
	Model string `yaml:"model"`
	// Feeds lists RSS/Atom feed URLs for the reading-list digest.
	Feeds []string `yaml:"feeds"`
	// DigestDSN is the path of the digest's seen-items database.
	DigestDSN string `yaml:"digest_dsn"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Concurrency: 5,
		DigestDSN:   "digest.db",
	}
}

// Load reads ~/.cosenote/config.yaml, overlaying it on the defaults.
// A missing file is not an error; a file that exists but cannot be
// parsed is.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return LoadFile(filepath.Join(homeDir, ".cosenote", "config.yaml"))
}

// LoadFile reads the configuration from the given path, overlaying it
// on the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = Default().Concurrency
	}
	if cfg.DigestDSN == "" {
		cfg.DigestDSN = Default().DigestDSN
	}
	return cfg, nil
}

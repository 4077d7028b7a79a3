package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/oandacl/oanda"
)

// Config holds everything needed to construct an OANDA client.
type Config struct {
	Environment string        `json:"environment" yaml:"environment" envconfig:"ENV" default:"practice"`
	APIKey      string        `json:"api_key" yaml:"api_key" envconfig:"TOKEN"`
	AccountID   string        `json:"account_id" yaml:"account_id" envconfig:"ACCOUNT_ID"`
	Journal     JournalConfig `json:"journal" yaml:"journal"`
}

// JournalConfig controls the SQLite call journal.
type JournalConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" envconfig:"JOURNAL_ENABLED"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty" envconfig:"JOURNAL_DB"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on
// content). Call Validate before using the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	return cfg, nil
}

// FromEnv builds a config from OANDA_* environment variables
// (OANDA_ENV, OANDA_TOKEN, OANDA_ACCOUNT_ID, OANDA_JOURNAL_ENABLED,
// OANDA_JOURNAL_DB). Call Validate before using the result.
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := envconfig.Process("oanda", cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := oanda.ParseEnvironment(c.Environment); err != nil {
		return err
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (or set OANDA_TOKEN)")
	}
	if c.Journal.Enabled && c.Journal.DBPath == "" {
		return fmt.Errorf("journal db_path required when journal is enabled")
	}
	return nil
}

// Default returns a configuration with sensible defaults. The API key must
// still be supplied by the caller.
func Default() *Config {
	return &Config{
		Environment: string(oanda.Practice),
		Journal: JournalConfig{
			Enabled: false,
			DBPath:  "./oanda-calls.db",
		},
	}
}

// Package config loads the application configuration from environment
// variables and the config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "NVIEW"

	// ConfigFileName is the name of the config file.
	ConfigFileName = "config"
	// ConfigFileType is the type of the config file.
	ConfigFileType = "toml"
)

// Config holds the application configuration.
type Config struct {
	Token    string `mapstructure:"token"`
	LogLevel string `mapstructure:"log_level"`
}

// Load loads configuration from environment variables and the config file.
// NVIEW_TOKEN takes precedence, then NOTION_TOKEN, then the config file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if token := os.Getenv("NVIEW_TOKEN"); token != "" {
		return &Config{Token: token, LogLevel: v.GetString("log_level")}, nil
	}
	if token := os.Getenv("NOTION_TOKEN"); token != "" {
		return &Config{Token: token, LogLevel: v.GetString("log_level")}, nil
	}

	configDir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, return empty config
		return &Config{}, nil
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Dir returns the configuration directory path.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "nview"), nil
}

// EnsureDir ensures the configuration directory exists.
func EnsureDir() (string, error) {
	configDir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return configDir, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required. Set NVIEW_TOKEN/NOTION_TOKEN environment variable or configure token in ~/.config/nview/config.toml")
	}
	return nil
}

// Package config provides centralized configuration management for the application.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/danielolaszy/trello-cli/internal/trello"
)

// DefaultEnvFile is the dotfile consulted before the process environment.
const DefaultEnvFile = ".env"

// DefaultBaseURL is the Trello API root used when TRELLO_BASE_URL is unset.
const DefaultBaseURL = trello.DefaultBaseURL

// Config holds all configuration parameters for the application.
type Config struct {
	Trello   TrelloConfig
	LogLevel string
}

// TrelloConfig holds Trello specific configuration.
type TrelloConfig struct {
	APIKey  string
	Token   string
	BaseURL string
}

// LoadConfig loads configuration from envFile (when it exists) and the
// process environment, then validates the Trello credentials. Variables
// already set in the environment take precedence over the dotfile.
func LoadConfig(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("trello.api_key", "TRELLO_API_KEY")
	v.BindEnv("trello.token", "TRELLO_TOKEN")
	v.BindEnv("trello.base_url", "TRELLO_BASE_URL")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.SetDefault("trello.base_url", DefaultBaseURL)

	config := &Config{
		Trello: TrelloConfig{
			APIKey:  strings.TrimSpace(v.GetString("trello.api_key")),
			Token:   strings.TrimSpace(v.GetString("trello.token")),
			BaseURL: v.GetString("trello.base_url"),
		},
		LogLevel: v.GetString("log_level"),
	}

	if err := ValidateTrelloConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateTrelloConfig ensures both Trello credentials are provided.
// The returned *trello.ConfigError names both variables whichever one is
// missing.
func ValidateTrelloConfig(config *Config) error {
	if config.Trello.APIKey == "" || config.Trello.Token == "" {
		return &trello.ConfigError{Missing: []string{trello.EnvAPIKey, trello.EnvToken}}
	}
	return nil
}

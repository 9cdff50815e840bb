// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	minererrors "github.com/ucp4496/data-collection-pipeline/internal/errors"
)

// Config holds all configuration for the application.
type Config struct {
	GithubToken string `mapstructure:"GITHUB_TOKEN"`
	PageSize    int    `mapstructure:"REPO_MINER_PAGE_SIZE"`
}

// Load reads configuration from the environment, with an optional .env file
// in the working directory. The GitHub token is validated here so that a
// missing credential fails before any client is constructed.
func Load() (*Config, error) {
	viper.SetDefault("REPO_MINER_PAGE_SIZE", 100)

	// Load from .env file if it exists.
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig() // Ignore error if file not found.

	// Bind environment variables.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("GITHUB_TOKEN")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GithubToken == "" {
		return nil, minererrors.ErrMissingCredential
	}
	if cfg.PageSize < 1 || cfg.PageSize > 100 {
		return nil, fmt.Errorf("REPO_MINER_PAGE_SIZE must be between 1 and 100, got %d", cfg.PageSize)
	}

	return &cfg, nil
}

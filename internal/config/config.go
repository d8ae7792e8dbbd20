// Package config loads runtime settings for the TourMate client.
//
// Sources, in increasing precedence: built-in defaults, an optional
// config.yaml (current directory or ./config), environment variables.
package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	// APIBaseURL is the base URL of the backend REST API,
	// e.g. "https://api.tourmate.example".
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// SessionDBPath is the sqlite file holding the persisted session.
	SessionDBPath string `mapstructure:"SESSION_DB_PATH"`

	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from file and environment.
// A missing config file is not an error; environment variables and
// defaults still apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("SESSION_DB_PATH", "tourmate.db")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsProduction reports whether the client runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

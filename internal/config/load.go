package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all configuration environment variables,
// e.g. LAUNCHKIT_SERVER_PORT or LAUNCHKIT_AUTH_ACCESS_TOKEN_SECRET.
const envPrefix = "LAUNCHKIT"

// Load reads configuration from environment variables, applies
// defaults, and validates the result. A missing or malformed required
// value returns an error so the process fails before serving any
// request.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults double as key registrations so AutomaticEnv picks the
	// variables up during Unmarshal. Required values default to the
	// zero value and are caught by validation when left unset.
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origin", "")
	v.SetDefault("database.url", "")
	v.SetDefault("auth.access_token_secret", "")
	v.SetDefault("auth.refresh_token_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 15)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 10080) // 7 days
	v.SetDefault("auth.bcrypt_cost", 12)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the endpoint used when no API base URL is configured.
// It points at a local development instance of the catalog API.
const DefaultBaseURL = "http://localhost:8000/api"

// apiPathSuffix is the path segment every resolved base URL must end with.
const apiPathSuffix = "/api"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// CATALOG_ prefix and take precedence over file values. The resulting
// Config is validated before being returned.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the binary runnable with zero configuration.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("api.base_url", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// ResolveBaseURL normalizes a raw base-URL value into a fully-qualified
// catalog API endpoint:
//
//   - an empty value falls back to DefaultBaseURL
//   - a value without an http:// or https:// scheme gets https:// prepended
//   - a value not ending in the API path segment gets it appended, with
//     exactly one separating slash
//
// The function is idempotent: resolving an already-resolved URL returns
// it unchanged.
func ResolveBaseURL(raw string) string {
	resolved := strings.TrimSpace(raw)
	if resolved == "" {
		return DefaultBaseURL
	}

	if !strings.HasPrefix(resolved, "http://") && !strings.HasPrefix(resolved, "https://") {
		resolved = "https://" + resolved
	}

	resolved = strings.TrimRight(resolved, "/")
	if !strings.HasSuffix(resolved, apiPathSuffix) {
		resolved += apiPathSuffix
	}

	return resolved
}

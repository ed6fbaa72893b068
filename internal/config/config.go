package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	API    APIConfig    `mapstructure:"api" validate:"required"`
}

// ServerConfig contains all settings for the admin frontend server itself.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// APIConfig contains the settings for the remote services-catalog API.
// BaseURL holds the raw, possibly partial configured value; call
// ResolveBaseURL to obtain the fully-qualified endpoint.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	API    APIConfig    `mapstructure:"api" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1,lte=300"`
	ReadTimeoutSeconds     int    `mapstructure:"read_timeout_seconds" validate:"gte=1,lte=300"`
	WriteTimeoutSeconds    int    `mapstructure:"write_timeout_seconds" validate:"gte=1,lte=300"`
}

// APIConfig contains settings for the HTTP API surface.
type APIConfig struct {
	// BasePath is the prefix every resource route is mounted under.
	BasePath string `mapstructure:"base_path" validate:"required,startswith=/"`
}

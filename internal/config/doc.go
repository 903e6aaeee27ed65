// Package config handles configuration loading, parsing, and validation
// from environment variables (prefixed HBNB_) and an optional config.yaml.
// It provides type-safe access to server and API settings while keeping
// configuration details separate from business logic.
package config

package config

import "errors"

var (
	// ErrReadConfig is returned when the config file cannot be read
	ErrReadConfig = errors.New("config: failed to read file")

	// ErrParseConfig is returned for malformed TOML
	ErrParseConfig = errors.New("config: failed to parse file")

	// ErrInvalidConfig is returned when values fail validation
	ErrInvalidConfig = errors.New("config: invalid values")
)

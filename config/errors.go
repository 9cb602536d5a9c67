package config

import "errors"

var (
	ErrInvalidRounds      = errors.New("config: rounds must be positive")
	ErrInvalidShuffleSize = errors.New("config: shuffle size must be non-negative")
)

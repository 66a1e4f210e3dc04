package config

import "errors"

var (
	// ErrNilConfig is returned when Load receives a nil pointer.
	ErrNilConfig = errors.New("config: nil destination")

	// ErrParse wraps errors from environment parsing.
	ErrParse = errors.New("config: failed to parse environment")
)

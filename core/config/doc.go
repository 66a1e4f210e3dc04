// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/reactive/core/config"
//
//	type CounterConfig struct {
//		Limit       int    `env:"COUNTER_LIMIT" envDefault:"5"`
//		Placeholder string `env:"COUNTER_PLACEHOLDER" envDefault:"---"`
//	}
//
//	func main() {
//		var cfg CounterConfig
//
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 CounterConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 CounterConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type LogConfig struct {
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&CounterConfig{})
//	config.MustLoad(&LogConfig{})
package config

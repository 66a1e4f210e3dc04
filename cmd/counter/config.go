package main

import (
	"time"

	"github.com/dmitrymomot/reactive/app/counter"
)

type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"counter"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	ShutdownTimeout time.Duration `env:"DISPATCH_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	Counter counter.Config
}

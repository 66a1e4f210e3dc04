package counter

// Config holds the counter model and presenter settings.
type Config struct {
	Limit       int    `env:"COUNTER_LIMIT" envDefault:"5"`
	Placeholder string `env:"COUNTER_PLACEHOLDER" envDefault:"---"`
	Lang        string `env:"COUNTER_LANG" envDefault:"en"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Limit:       5,
		Placeholder: "---",
		Lang:        "en",
	}
}

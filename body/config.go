package body

import "github.com/arloliu/udf/internal/options"

// Config controls BodyParser behaviour.
type Config struct {
	strict bool
}

func defaultConfig() *Config {
	return &Config{strict: true}
}

// Option configures a body parse via the functional-options pattern.
type Option = options.Option[*Config]

// WithStrict selects strict mode (the default) when true: a TruncatedEvent
// aborts the whole parse. When false (lenient mode), a TruncatedEvent
// returns everything parsed so far as a successful result, with the
// truncation recorded in Result.Warnings instead of propagated as an error.
func WithStrict(strict bool) Option {
	return options.NoError(func(c *Config) {
		c.strict = strict
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

// Config defines how Atomically drives attempts.
type Config struct {
	// MaxAttempts bounds the number of attempts. Zero means unlimited.
	MaxAttempts int
	Logger      Logger
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts < 0 {
		c.MaxAttempts = 0
	}
	if c.Logger == nil {
		c.Logger = NopLogger{}
	}
	return c
}

// Option configures Atomically.
type Option func(*Config)

// WithMaxAttempts sets the attempt limit. Zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithLogger sets the logger for retry and commit events.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

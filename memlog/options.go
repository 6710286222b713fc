// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memlog

import "code.hybscloud.com/txn/internal/logging"

const defaultCapacity = 64

// Logger receives commit and rollback events.
type Logger = logging.Logger

// Config defines journal behavior.
type Config struct {
	// Capacity bounds the number of entries one batch can stage.
	Capacity int
	Logger   Logger
}

func (c Config) withDefaults() Config {
	if c.Capacity == 0 {
		c.Capacity = defaultCapacity
	}
	if c.Logger == nil {
		c.Logger = logging.NopLogger{}
	}
	return c
}

// Option configures a Journal.
type Option func(*Config)

// WithCapacity sets the staging capacity of each batch.
func WithCapacity(n int) Option {
	return func(c *Config) {
		c.Capacity = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

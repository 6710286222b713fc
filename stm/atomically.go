// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/txn"
)

// Atomically runs tx until an attempt commits and returns its value.
//
// Each attempt gets a fresh Log. An attempt failing with ErrConflict or
// ErrRetry, or whose reads are stale at commit time, is discarded and
// run again after an adaptive backoff (iox.Backoff). Any other failure
// is returned as is and nothing is written.
func Atomically[A any](tx txn.Transaction[Log, error, A], opts ...Option) (A, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.withDefaults()

	var zero A
	var bo iox.Backoff
	for attempt := 1; ; attempt++ {
		if cfg.MaxAttempts > 0 && attempt > cfg.MaxAttempts {
			cfg.Logger.Warn("stm: giving up", "attempts", cfg.MaxAttempts)
			return zero, fmt.Errorf("%w: %d", ErrTooManyAttempts, cfg.MaxAttempts)
		}
		l := NewLog()
		l.attempt = attempt
		r := txn.Exec(l, tx)
		if err, ok := r.GetLeft(); ok {
			if errors.Is(err, ErrConflict) || errors.Is(err, ErrRetry) {
				cfg.Logger.Debug("stm: attempt abandoned", "attempt", attempt, "error", err)
				bo.Wait()
				continue
			}
			return zero, err
		}
		if !l.commit() {
			cfg.Logger.Debug("stm: commit validation failed", "attempt", attempt)
			bo.Wait()
			continue
		}
		v, _ := r.GetRight()
		if attempt > 1 {
			cfg.Logger.Info("stm: committed after retry", "attempts", attempt)
		}
		return v, nil
	}
}

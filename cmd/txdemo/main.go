// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command txdemo runs the reference backends end to end: two STM
// counters incremented together, and a journal commit followed by an
// aborted one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"code.hybscloud.com/txn"
	"code.hybscloud.com/txn/internal/logging"
	"code.hybscloud.com/txn/memlog"
	"code.hybscloud.com/txn/stm"
)

var errRejected = errors.New("txdemo: batch rejected")

func main() {
	level := flag.String("level", "info", "log level (debug, info, warn, error)")
	format := flag.String("format", "console", "log format (json, console)")
	rounds := flag.Int("rounds", 1, "number of incXY transactions")
	flag.Parse()

	logger, err := logging.NewZap(logging.Config{Level: *level, Format: *format})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger, *rounds); err != nil {
		logger.Error("txdemo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, rounds int) error {
	hook := logging.Zap(logger)

	c := newCounters()
	for range rounds {
		if _, err := stm.Atomically(c.incXY(), stm.WithLogger(hook)); err != nil {
			return err
		}
	}
	total, err := stm.Atomically(c.sum(), stm.WithLogger(hook))
	if err != nil {
		return err
	}
	logger.Info("counters",
		zap.Int("x", c.x.Snapshot()),
		zap.Int("y", c.y.Snapshot()),
		zap.Int("sum", total),
	)

	j, err := memlog.New[string](memlog.WithLogger(hook))
	if err != nil {
		return err
	}
	both := txn.Join(memlog.Append("opened"), memlog.Append("credited"))
	if _, err := memlog.Commit(j, both); err != nil {
		return err
	}
	rejected := txn.Abort[int](memlog.Append("overdrawn"), func(int) error {
		return errRejected
	})
	if _, err := memlog.Commit(j, rejected); !errors.Is(err, errRejected) {
		return fmt.Errorf("txdemo: expected rejection, got %v", err)
	}
	for _, e := range j.Entries() {
		logger.Info("journal", zap.Uint32("seq", e.Seq), zap.String("value", e.Value))
	}
	return nil
}

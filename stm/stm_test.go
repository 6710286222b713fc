// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
	"code.hybscloud.com/txn/stm"
)

func inc(v int) int { return v + 1 }

func TestLoadStore(t *testing.T) {
	x := stm.NewTVar(1)
	tx := txn.AndThen(stm.Load(x), func(v int) stm.Tx[struct{}] {
		return stm.Store(x, v*10)
	})
	if _, err := stm.Atomically(tx); err != nil {
		t.Fatalf("Atomically: %v", err)
	}
	if got := x.Snapshot(); got != 10 {
		t.Fatalf("x = %d, want 10", got)
	}
	if got := x.Version(); got != 1 {
		t.Fatalf("version = %d, want 1", got)
	}
}

func TestReadYourWrites(t *testing.T) {
	x := stm.NewTVar("a")
	tx := txn.AndThen(stm.Store(x, "b"), func(struct{}) stm.Tx[string] {
		return stm.Load(x)
	})
	got, err := stm.Atomically(tx)
	if err != nil {
		t.Fatalf("Atomically: %v", err)
	}
	if got != "b" {
		t.Fatalf("got %q, want %q", got, "b")
	}
}

func TestFailureDiscardsWrites(t *testing.T) {
	x := stm.NewTVar(0)
	errOverdrawn := errors.New("overdrawn")
	tx := txn.Abort[int](stm.Modify(x, inc), func(int) error { return errOverdrawn })
	_, err := stm.Atomically(tx)
	if !errors.Is(err, errOverdrawn) {
		t.Fatalf("got %v, want %v", err, errOverdrawn)
	}
	if got := x.Snapshot(); got != 0 {
		t.Fatalf("x = %d, want 0: aborted write was committed", got)
	}
}

func TestRetryGivesUp(t *testing.T) {
	runs := 0
	tx := txn.AndThen(txn.Lazy[stm.Log](func() kont.Either[error, int] {
		runs++
		return kont.Right[error](runs)
	}), func(int) stm.Tx[int] { return stm.Retry[int]() })

	_, err := stm.Atomically(tx, stm.WithMaxAttempts(3))
	if !errors.Is(err, stm.ErrTooManyAttempts) {
		t.Fatalf("got %v, want ErrTooManyAttempts", err)
	}
	if runs != 3 {
		t.Fatalf("runs = %d, want 3", runs)
	}
}

func TestRetryUntilReady(t *testing.T) {
	x := stm.NewTVar(0)
	tx := txn.WithCtx(func(l *stm.Log) kont.Either[error, int] {
		if l.Attempt() < 3 {
			return kont.Left[error, int](stm.ErrRetry)
		}
		v, err := stm.Read(l, x)
		if err != nil {
			return kont.Left[error, int](err)
		}
		return kont.Right[error](v + l.Attempt())
	})
	got, err := stm.Atomically(tx)
	if err != nil {
		t.Fatalf("Atomically: %v", err)
	}
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestCommitValidationRetries(t *testing.T) {
	x := stm.NewTVar(0)
	y := stm.NewTVar(0)
	var attempts []int
	tx := txn.WithCtx(func(l *stm.Log) kont.Either[error, int] {
		attempts = append(attempts, l.Attempt())
		v, err := stm.Read(l, x)
		if err != nil {
			return kont.Left[error, int](err)
		}
		if l.Attempt() == 1 {
			// Another transaction commits to x behind this attempt's back.
			if _, err := stm.Atomically(stm.Store(x, 100)); err != nil {
				return kont.Left[error, int](err)
			}
		}
		stm.Write(l, y, v+1)
		return kont.Right[error](v + 1)
	})
	got, err := stm.Atomically(tx)
	if err != nil {
		t.Fatalf("Atomically: %v", err)
	}
	if got != 101 || y.Snapshot() != 101 {
		t.Fatalf("got %d, y = %d, want 101", got, y.Snapshot())
	}
	if len(attempts) != 2 {
		t.Fatalf("attempts = %v, want [1 2]", attempts)
	}
}

func TestReadDetectsConflict(t *testing.T) {
	x := stm.NewTVar(0)
	l := stm.NewLog()
	if _, err := stm.Read(l, x); err != nil {
		t.Fatalf("first read: %v", err)
	}
	if _, err := stm.Atomically(stm.Store(x, 1)); err != nil {
		t.Fatalf("concurrent commit: %v", err)
	}
	if _, err := stm.Read(l, x); !errors.Is(err, stm.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}

	// Reading another variable also revalidates earlier reads.
	y := stm.NewTVar(0)
	l = stm.NewLog()
	if _, err := stm.Read(l, x); err != nil {
		t.Fatalf("read x: %v", err)
	}
	if _, err := stm.Atomically(stm.Store(x, 2)); err != nil {
		t.Fatalf("concurrent commit: %v", err)
	}
	if _, err := stm.Read(l, y); !errors.Is(err, stm.ErrConflict) {
		t.Fatalf("got %v, want ErrConflict", err)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	const workers, rounds = 8, 500
	x := stm.NewTVar(0)
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				if _, err := stm.Atomically(stm.Modify(x, inc)); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
	if got := x.Snapshot(); got != workers*rounds {
		t.Fatalf("x = %d, want %d", got, workers*rounds)
	}
}

func TestConcurrentTransfersPreserveTotal(t *testing.T) {
	const workers, rounds, total = 4, 300, 1000
	a := stm.NewTVar(total)
	b := stm.NewTVar(0)
	move := func(from, to *stm.TVar[int]) stm.Tx[struct{}] {
		return txn.AndThen(stm.Load(from), func(v int) stm.Tx[struct{}] {
			if v == 0 {
				return txn.Ok[stm.Log, error](struct{}{})
			}
			return txn.Map(txn.Join(stm.Store(from, v-1), stm.Modify(to, inc)),
				func(txn.Tuple2[struct{}, int]) struct{} { return struct{}{} })
		})
	}
	audit := txn.Map(txn.Join(stm.Load(a), stm.Load(b)), func(v txn.Tuple2[int, int]) int {
		return v.V1 + v.V2
	})

	var wg sync.WaitGroup
	bad := make(chan string, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rounds {
				var err error
				if (i+j)%2 == 0 {
					_, err = stm.Atomically(move(a, b))
				} else {
					_, err = stm.Atomically(move(b, a))
				}
				if err != nil {
					bad <- err.Error()
					return
				}
				sum, err := stm.Atomically(audit)
				if err != nil || sum != total {
					bad <- fmt.Sprintf("audit saw %d (%v)", sum, err)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(bad)
	for msg := range bad {
		t.Fatal(msg)
	}
	if got := a.Snapshot() + b.Snapshot(); got != total {
		t.Fatalf("total = %d, want %d", got, total)
	}
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) record(msg string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.record(msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.record(msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.record(msg) }

func TestLoggerReceivesRetries(t *testing.T) {
	logger := &recordingLogger{}
	_, err := stm.Atomically(stm.Retry[int](), stm.WithMaxAttempts(2), stm.WithLogger(logger))
	if !errors.Is(err, stm.ErrTooManyAttempts) {
		t.Fatalf("got %v, want ErrTooManyAttempts", err)
	}
	want := []string{"stm: attempt abandoned", "stm: attempt abandoned", "stm: giving up"}
	if len(logger.msgs) != len(want) {
		t.Fatalf("logged %q, want %q", logger.msgs, want)
	}
	for i := range want {
		if logger.msgs[i] != want[i] {
			t.Fatalf("logged %q, want %q", logger.msgs, want)
		}
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memlog

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/txn"
)

// Entry is a committed journal record.
type Entry[T any] struct {
	// Seq is the 1-based position of the entry in the journal.
	Seq   uint32
	Value T
}

// Journal is an append-only in-memory log.
// Commits are serialized; readers see whole batches only and are not
// blocked while a commit runs its transaction.
type Journal[T any] struct {
	commitMu sync.Mutex
	mu       sync.RWMutex
	seq      atomix.Uint32
	entries  []Entry[T]
	cfg      Config
}

// New creates an empty journal.
// A zero capacity selects the default; a negative one is
// ErrInvalidCapacity.
func New[T any](opts ...Option) (*Journal[T], error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg = cfg.withDefaults()
	if cfg.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Journal[T]{cfg: cfg}, nil
}

// Commit runs tx against a fresh batch.
// On success the staged entries are appended to the journal in order;
// on failure they are discarded and the error is returned.
//
// Leaves of tx may read j with Len, Entries or LastSeq and see the
// state before this commit. Calling Commit on j from inside tx
// deadlocks.
func Commit[T, A any](j *Journal[T], tx txn.Transaction[Batch[T], error, A]) (A, error) {
	j.commitMu.Lock()
	defer j.commitMu.Unlock()

	b := newBatch[T](j.cfg.Capacity)
	r := txn.Exec(b, tx)
	if err, ok := r.GetLeft(); ok {
		discarded := b.Len()
		b.drain(func(T) {})
		j.cfg.Logger.Debug("memlog: batch rolled back", "discarded", discarded, "error", err)
		var zero A
		return zero, err
	}
	n := b.Len()
	j.mu.Lock()
	b.drain(func(v T) {
		j.entries = append(j.entries, Entry[T]{Seq: j.seq.Add(1), Value: v})
	})
	j.mu.Unlock()
	j.cfg.Logger.Debug("memlog: batch committed", "entries", n, "last", j.seq.Load())
	v, _ := r.GetRight()
	return v, nil
}

// LastSeq returns the sequence number of the last committed entry, or
// zero for an empty journal. It takes no lock.
func (j *Journal[T]) LastSeq() uint32 {
	return j.seq.Load()
}

// Len returns the number of committed entries.
func (j *Journal[T]) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Entries returns a copy of the committed entries.
func (j *Journal[T]) Entries() []Entry[T] {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Entry[T], len(j.entries))
	copy(out, j.entries)
	return out
}

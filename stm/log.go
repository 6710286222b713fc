// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

import (
	"sync"
)

// commitMu serializes commits against each other and against reads:
// a commit writes all of its TVars before any reader sees one of them.
var commitMu sync.RWMutex

type readEntry struct {
	v       tvar
	version uint32
}

type writeEntry struct {
	v     tvar
	value any
}

// Log is the context of one transaction attempt.
// It is created by Atomically and must not be retained after the
// attempt returns.
type Log struct {
	attempt int
	reads   map[Serial]readEntry
	writes  map[Serial]writeEntry
}

// NewLog returns an empty log. Atomically creates one per attempt;
// NewLog is exported for drivers that run transactions themselves.
func NewLog() *Log {
	return &Log{
		attempt: 1,
		reads:   make(map[Serial]readEntry),
		writes:  make(map[Serial]writeEntry),
	}
}

// Attempt returns the 1-based attempt number this log belongs to.
func (l *Log) Attempt() int {
	return l.attempt
}

// Read returns the value of tv as seen by this attempt.
// Values written earlier in the attempt are returned as written.
// Returns ErrConflict if any TVar read so far has been committed to by
// another attempt in the meantime.
func Read[T any](l *Log, tv *TVar[T]) (T, error) {
	if w, ok := l.writes[tv.id]; ok {
		return w.value.(T), nil
	}
	commitMu.RLock()
	defer commitMu.RUnlock()
	v, version := tv.load()
	if r, ok := l.reads[tv.id]; ok && r.version != version {
		var zero T
		return zero, ErrConflict
	}
	l.reads[tv.id] = readEntry{v: tv, version: version}
	if !l.valid() {
		var zero T
		return zero, ErrConflict
	}
	return v, nil
}

// Write records v as the pending value of tv.
// Nothing is visible to other attempts until commit.
func Write[T any](l *Log, tv *TVar[T], v T) {
	l.writes[tv.id] = writeEntry{v: tv, value: v}
}

// valid reports whether every recorded read is still current.
func (l *Log) valid() bool {
	for _, r := range l.reads {
		if r.v.currentVersion() != r.version {
			return false
		}
	}
	return true
}

// commit validates the reads and applies the writes atomically with
// respect to other commits. Returns false if validation failed; no write
// is applied in that case.
func (l *Log) commit() bool {
	commitMu.Lock()
	defer commitMu.Unlock()
	if !l.valid() {
		return false
	}
	for _, w := range l.writes {
		w.v.apply(w.value)
	}
	return true
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
)

// store is a minimal mutable context: a named-slot map plus a trace of
// the leaves that ran, in order.
type store struct {
	slots map[string]int
	trace []string
}

func newStore() *store {
	return &store{slots: make(map[string]int)}
}

// Tx is the transaction shape most tests use.
type Tx[A any] = txn.Transaction[store, string, A]

// set writes v into slot k and yields v.
func set(k string, v int) txn.CtxTx[store, string, int] {
	return txn.WithCtx(func(s *store) kont.Either[string, int] {
		s.trace = append(s.trace, "set "+k)
		s.slots[k] = v
		return kont.Right[string](v)
	})
}

// get reads slot k, failing with "missing k" when it is absent.
func get(k string) txn.CtxTx[store, string, int] {
	return txn.WithCtx(func(s *store) kont.Either[string, int] {
		s.trace = append(s.trace, "get "+k)
		v, ok := s.slots[k]
		if !ok {
			return kont.Left[string, int]("missing " + k)
		}
		return kont.Right[string](v)
	})
}

// fail records its name and fails with e.
func fail(name, e string) txn.CtxTx[store, string, int] {
	return txn.WithCtx(func(s *store) kont.Either[string, int] {
		s.trace = append(s.trace, "fail "+name)
		return kont.Left[string, int](e)
	})
}

func wantRight[E, A comparable](t *testing.T, r kont.Either[E, A], want A) {
	t.Helper()
	if !r.IsRight() {
		e, _ := r.GetLeft()
		t.Fatalf("expected Right(%v), got Left(%v)", want, e)
	}
	got, _ := r.GetRight()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func wantLeft[E, A comparable](t *testing.T, r kont.Either[E, A], want E) {
	t.Helper()
	if !r.IsLeft() {
		a, _ := r.GetRight()
		t.Fatalf("expected Left(%v), got Right(%v)", want, a)
	}
	got, _ := r.GetLeft()
	if got != want {
		t.Fatalf("got error %v, want %v", got, want)
	}
}

func wantTrace(t *testing.T, s *store, want ...string) {
	t.Helper()
	if len(s.trace) != len(want) {
		t.Fatalf("trace %q, want %q", s.trace, want)
	}
	for i := range want {
		if s.trace[i] != want[i] {
			t.Fatalf("trace %q, want %q", s.trace, want)
		}
	}
}

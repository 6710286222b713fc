// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
)

func TestAbort(t *testing.T) {
	toErr := func(v int) string { return "aborted at " + strconv.Itoa(v) }

	wantLeft(t, txn.Abort[int](txn.Ok[store, string](3), toErr).Run(newStore()), "aborted at 3")
	wantLeft(t, txn.Abort[int](txn.Err[store, string, int]("boom"), toErr).Run(newStore()), "boom")
}

func TestAbortKeepsSideEffectsInContext(t *testing.T) {
	// Abort only changes the outcome; rolling back is the backend's job.
	s := newStore()
	tx := txn.Abort[struct{}](set("a", 1), func(int) string { return "no" })
	if !tx.Run(s).IsLeft() {
		t.Fatal("expected Left")
	}
	if s.slots["a"] != 1 {
		t.Fatal("leaf did not run")
	}
}

func TestTryAbort(t *testing.T) {
	nonNegative := func(v int) kont.Either[string, uint] {
		if v < 0 {
			return kont.Left[string, uint]("negative")
		}
		return kont.Right[string](uint(v))
	}
	wantRight(t, txn.TryAbort(txn.Ok[store, string](4), nonNegative).Run(newStore()), uint(4))
	wantLeft(t, txn.TryAbort(txn.Ok[store, string](-4), nonNegative).Run(newStore()), "negative")
	wantLeft(t, txn.TryAbort(get("a"), nonNegative).Run(newStore()), "missing a")
}

func TestRecover(t *testing.T) {
	fallback := func(e string) int { return len(e) }

	wantRight(t, txn.Recover(txn.Err[store, string, int]("boom"), fallback).Run(newStore()), 4)
	wantRight(t, txn.Recover(txn.Ok[store, string](7), fallback).Run(newStore()), 7)
}

func TestTryRecover(t *testing.T) {
	onlyMissing := func(e string) kont.Either[error, int] {
		if e == "missing a" {
			return kont.Right[error](0)
		}
		return kont.Left[error, int](errString(e))
	}
	wantRight(t, txn.TryRecover(get("a"), onlyMissing).Run(newStore()), 0)

	r := txn.TryRecover(fail("x", "other"), onlyMissing).Run(newStore())
	e, ok := r.GetLeft()
	if !ok || e.Error() != "other" {
		t.Fatalf("got %v, want Left(other)", e)
	}

	s := newStore()
	s.slots["a"] = 5
	r = txn.TryRecover(get("a"), onlyMissing).Run(s)
	if v, ok := r.GetRight(); !ok || v != 5 {
		t.Fatalf("got %v, want Right(5)", v)
	}
}

type errString string

func (e errString) Error() string { return string(e) }

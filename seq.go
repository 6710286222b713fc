// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// MapTx is the result of Map.
type MapTx[C, E, A, B any] struct {
	tx Transaction[C, E, A]
	f  func(A) B
}

// Map transforms the successful value of tx with f.
// A failure of tx passes through unchanged.
func Map[C, E, A, B any](tx Transaction[C, E, A], f func(A) B) MapTx[C, E, A, B] {
	return MapTx[C, E, A, B]{tx: tx, f: f}
}

// Run implements Transaction.
func (t MapTx[C, E, A, B]) Run(ctx *C) kont.Either[E, B] {
	r := t.tx.Run(ctx)
	if a, ok := r.GetRight(); ok {
		return kont.Right[E](t.f(a))
	}
	e, _ := r.GetLeft()
	return kont.Left[E, B](e)
}

// ThenTx is the result of Then.
type ThenTx[C, E, A, B any] struct {
	tx Transaction[C, E, A]
	f  func(kont.Either[E, A]) Transaction[C, E, B]
}

// Then runs tx to completion, success or failure, hands the whole
// result to f and runs the transaction f returns.
func Then[C, E, A, B any](tx Transaction[C, E, A], f func(kont.Either[E, A]) Transaction[C, E, B]) ThenTx[C, E, A, B] {
	return ThenTx[C, E, A, B]{tx: tx, f: f}
}

// Run implements Transaction.
func (t ThenTx[C, E, A, B]) Run(ctx *C) kont.Either[E, B] {
	return t.f(t.tx.Run(ctx)).Run(ctx)
}

// AndThenTx is the result of AndThen.
type AndThenTx[C, E, A, B any] struct {
	tx Transaction[C, E, A]
	f  func(A) Transaction[C, E, B]
}

// AndThen takes the successful value of tx and continues with the
// transaction f returns. A failure of tx short-circuits: f is not called.
func AndThen[C, E, A, B any](tx Transaction[C, E, A], f func(A) Transaction[C, E, B]) AndThenTx[C, E, A, B] {
	return AndThenTx[C, E, A, B]{tx: tx, f: f}
}

// Run implements Transaction.
func (t AndThenTx[C, E, A, B]) Run(ctx *C) kont.Either[E, B] {
	r := t.tx.Run(ctx)
	if a, ok := r.GetRight(); ok {
		return t.f(a).Run(ctx)
	}
	e, _ := r.GetLeft()
	return kont.Left[E, B](e)
}

// MapErrTx is the result of MapErr.
type MapErrTx[C, E, F, A any] struct {
	tx Transaction[C, E, A]
	f  func(E) F
}

// MapErr transforms the error of tx with f.
// A success of tx passes through unchanged.
func MapErr[C, E, F, A any](tx Transaction[C, E, A], f func(E) F) MapErrTx[C, E, F, A] {
	return MapErrTx[C, E, F, A]{tx: tx, f: f}
}

// Run implements Transaction.
func (t MapErrTx[C, E, F, A]) Run(ctx *C) kont.Either[F, A] {
	r := t.tx.Run(ctx)
	if e, ok := r.GetLeft(); ok {
		return kont.Left[F, A](t.f(e))
	}
	a, _ := r.GetRight()
	return kont.Right[F](a)
}

// OrElseTx is the result of OrElse.
type OrElseTx[C, E, F, A any] struct {
	tx Transaction[C, E, A]
	f  func(E) Transaction[C, F, A]
}

// OrElse takes the error of tx and falls back to the transaction f
// returns. A success of tx short-circuits: f is not called.
func OrElse[C, E, F, A any](tx Transaction[C, E, A], f func(E) Transaction[C, F, A]) OrElseTx[C, E, F, A] {
	return OrElseTx[C, E, F, A]{tx: tx, f: f}
}

// Run implements Transaction.
func (t OrElseTx[C, E, F, A]) Run(ctx *C) kont.Either[F, A] {
	r := t.tx.Run(ctx)
	if e, ok := r.GetLeft(); ok {
		return t.f(e).Run(ctx)
	}
	a, _ := r.GetRight()
	return kont.Right[F](a)
}

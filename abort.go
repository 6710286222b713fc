// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// AbortTx is the result of Abort.
type AbortTx[C, E, A, B any] struct {
	tx Transaction[C, E, A]
	f  func(A) E
}

// Abort turns every success of tx into a failure: Right(v) becomes
// Left(f(v)). A failure of tx passes through unchanged.
// B is free because an aborted transaction never yields a value; it
// comes first so callers can write Abort[B](tx, f) and infer the rest.
func Abort[B, C, E, A any](tx Transaction[C, E, A], f func(A) E) AbortTx[C, E, A, B] {
	return AbortTx[C, E, A, B]{tx: tx, f: f}
}

// Run implements Transaction.
func (t AbortTx[C, E, A, B]) Run(ctx *C) kont.Either[E, B] {
	r := t.tx.Run(ctx)
	if a, ok := r.GetRight(); ok {
		return kont.Left[E, B](t.f(a))
	}
	e, _ := r.GetLeft()
	return kont.Left[E, B](e)
}

// TryAbortTx is the result of TryAbort.
type TryAbortTx[C, E, A, B any] struct {
	tx Transaction[C, E, A]
	f  func(A) kont.Either[E, B]
}

// TryAbort lets f decide the outcome of a successful tx: f may abort
// with Left or continue with Right. A failure of tx passes through.
func TryAbort[C, E, A, B any](tx Transaction[C, E, A], f func(A) kont.Either[E, B]) TryAbortTx[C, E, A, B] {
	return TryAbortTx[C, E, A, B]{tx: tx, f: f}
}

// Run implements Transaction.
func (t TryAbortTx[C, E, A, B]) Run(ctx *C) kont.Either[E, B] {
	r := t.tx.Run(ctx)
	if a, ok := r.GetRight(); ok {
		return t.f(a)
	}
	e, _ := r.GetLeft()
	return kont.Left[E, B](e)
}

// RecoverTx is the result of Recover.
type RecoverTx[C, E, A any] struct {
	tx Transaction[C, E, A]
	f  func(E) A
}

// Recover turns every failure of tx into a success: Left(e) becomes
// Right(f(e)). A success of tx passes through unchanged.
func Recover[C, E, A any](tx Transaction[C, E, A], f func(E) A) RecoverTx[C, E, A] {
	return RecoverTx[C, E, A]{tx: tx, f: f}
}

// Run implements Transaction.
func (t RecoverTx[C, E, A]) Run(ctx *C) kont.Either[E, A] {
	r := t.tx.Run(ctx)
	if e, ok := r.GetLeft(); ok {
		return kont.Right[E](t.f(e))
	}
	return r
}

// TryRecoverTx is the result of TryRecover.
type TryRecoverTx[C, E, F, A any] struct {
	tx Transaction[C, E, A]
	f  func(E) kont.Either[F, A]
}

// TryRecover lets f decide the outcome of a failed tx: f may recover
// with Right or fail again with Left, possibly of another error type.
// A success of tx passes through.
func TryRecover[C, E, F, A any](tx Transaction[C, E, A], f func(E) kont.Either[F, A]) TryRecoverTx[C, E, F, A] {
	return TryRecoverTx[C, E, F, A]{tx: tx, f: f}
}

// Run implements Transaction.
func (t TryRecoverTx[C, E, F, A]) Run(ctx *C) kont.Either[F, A] {
	r := t.tx.Run(ctx)
	if e, ok := r.GetLeft(); ok {
		return t.f(e)
	}
	a, _ := r.GetRight()
	return kont.Right[F](a)
}

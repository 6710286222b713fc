// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// ResultTx is the leaf built by Result.
type ResultTx[C, E, A any] struct {
	r kont.Either[E, A]
}

// Result makes a leaf transaction that yields r on every run.
func Result[C, E, A any](r kont.Either[E, A]) ResultTx[C, E, A] {
	return ResultTx[C, E, A]{r: r}
}

// Run returns a copy of the stored result.
func (t ResultTx[C, E, A]) Run(*C) kont.Either[E, A] {
	return t.r
}

// OkTx is the leaf built by Ok.
type OkTx[C, E, A any] struct {
	ok A
}

// Ok makes a leaf transaction that always succeeds with v.
func Ok[C, E, A any](v A) OkTx[C, E, A] {
	return OkTx[C, E, A]{ok: v}
}

// Run returns Right(v).
func (t OkTx[C, E, A]) Run(*C) kont.Either[E, A] {
	return kont.Right[E](t.ok)
}

// ErrTx is the leaf built by Err.
type ErrTx[C, E, A any] struct {
	err E
}

// Err makes a leaf transaction that always fails with e.
func Err[C, E, A any](e E) ErrTx[C, E, A] {
	return ErrTx[C, E, A]{err: e}
}

// Run returns Left(e).
func (t ErrTx[C, E, A]) Run(*C) kont.Either[E, A] {
	return kont.Left[E, A](t.err)
}

// LazyTx is the leaf built by Lazy.
type LazyTx[C, E, A any] struct {
	f func() kont.Either[E, A]
}

// Lazy makes a leaf transaction evaluated on demand.
// f is called once per Run and never memoized: running the same
// transaction twice calls f twice.
func Lazy[C, E, A any](f func() kont.Either[E, A]) LazyTx[C, E, A] {
	return LazyTx[C, E, A]{f: f}
}

// Run calls f.
func (t LazyTx[C, E, A]) Run(*C) kont.Either[E, A] {
	return t.f()
}

// CtxTx is the leaf built by WithCtx.
type CtxTx[C, E, A any] struct {
	f func(*C) kont.Either[E, A]
}

// WithCtx makes a leaf transaction that receives the context of the
// executing transaction. It is the only leaf that may read or write the
// context; backends enter the algebra through it.
func WithCtx[C, E, A any](f func(ctx *C) kont.Either[E, A]) CtxTx[C, E, A] {
	return CtxTx[C, E, A]{f: f}
}

// Run calls f(ctx).
func (t CtxTx[C, E, A]) Run(ctx *C) kont.Either[E, A] {
	return t.f(ctx)
}

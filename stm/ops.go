// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
)

// Tx is a transaction over the STM log.
type Tx[A any] = txn.Transaction[Log, error, A]

// Load reads tv.
func Load[T any](tv *TVar[T]) txn.CtxTx[Log, error, T] {
	return txn.WithCtx(func(l *Log) kont.Either[error, T] {
		v, err := Read(l, tv)
		if err != nil {
			return kont.Left[error, T](err)
		}
		return kont.Right[error](v)
	})
}

// Store writes v to tv.
func Store[T any](tv *TVar[T], v T) txn.CtxTx[Log, error, struct{}] {
	return txn.WithCtx(func(l *Log) kont.Either[error, struct{}] {
		Write(l, tv, v)
		return kont.Right[error](struct{}{})
	})
}

// Modify replaces the value of tv with f(old) and yields old.
func Modify[T any](tv *TVar[T], f func(T) T) txn.CtxTx[Log, error, T] {
	return txn.WithCtx(func(l *Log) kont.Either[error, T] {
		old, err := Read(l, tv)
		if err != nil {
			return kont.Left[error, T](err)
		}
		Write(l, tv, f(old))
		return kont.Right[error](old)
	})
}

// Retry abandons the current attempt. Atomically backs off and runs the
// transaction again from scratch; it does not wait for a TVar that was
// read to change. With unlimited attempts, a transaction that always
// retries never returns: bound it with WithMaxAttempts.
func Retry[A any]() txn.ErrTx[Log, error, A] {
	return txn.Err[Log, error, A](ErrRetry)
}

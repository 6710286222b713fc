// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Perform lifts tx into a Cont-world effect.
// The resulting Eff yields the Either produced by running tx.
func Perform[C, E, A any](tx Transaction[C, E, A]) kont.Eff[kont.Either[E, A]] {
	return kont.Perform(Atomic[C, E, A]{Tx: tx})
}

// PerformExpr lifts tx into an Expr-world effect.
func PerformExpr[C, E, A any](tx Transaction[C, E, A]) kont.Expr[kont.Either[E, A]] {
	return kont.ExprPerform(Atomic[C, E, A]{Tx: tx})
}

// Handle runs a Cont-world program, dispatching every Atomic effect
// against ctx. Transactions run one after another on the calling
// goroutine, sharing ctx.
func Handle[C, R any](ctx *C, program kont.Eff[R]) R {
	h := txnHandler[C, R]{ctx: ctx}
	return kont.Handle(program, h)
}

// HandleExpr runs an Expr-world program, dispatching every Atomic
// effect against ctx.
func HandleExpr[C, R any](ctx *C, program kont.Expr[R]) R {
	h := txnHandler[C, R]{ctx: ctx}
	return kont.HandleExpr(program, h)
}

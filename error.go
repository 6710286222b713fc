// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// txnErrorHandler handles both transaction and error effects.
// Transactions run against ctx. Error ops short-circuit on Throw.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type txnErrorHandler[C, E, A any] struct {
	ctx    *C
	errCtx *kont.ErrorContext[E]
}

// Dispatch implements kont.Handler for the composed Txn+Error handler.
// Dispatch order: Txn → Error.
func (h txnErrorHandler[C, E, A]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if top, ok := op.(txnDispatcher[C]); ok {
		return top.DispatchTxn(h.ctx), true
	}
	if eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	}); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[E, A](h.errCtx.Err), false
		}
		return v, true
	}
	panic("txn: unhandled effect in txnErrorHandler")
}

// HandleError runs a program that mixes transaction effects with
// kont error effects. Returns Right on success, Left on Throw.
//
// A Throw aborts the program, not the transactions already run: undoing
// their writes to ctx is the backend's business.
func HandleError[C, E, R any](ctx *C, program kont.Eff[R]) kont.Either[E, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[E, R]](program, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := txnErrorHandler[C, E, R]{ctx: ctx, errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// HandleErrorExpr is HandleError for Expr-world programs.
func HandleErrorExpr[C, E, R any](ctx *C, program kont.Expr[R]) kont.Either[E, R] {
	wrapped := kont.ExprMap(program, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	var errCtx kont.ErrorContext[E]
	h := txnErrorHandler[C, E, R]{ctx: ctx, errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}

// Must performs tx and throws its error as a kont error effect, so the
// program continues with the bare success value. Run it under
// HandleError or HandleErrorExpr.
func Must[C, E, A any](tx Transaction[C, E, A]) kont.Eff[A] {
	return kont.Bind(Perform(tx), func(r kont.Either[E, A]) kont.Eff[A] {
		if e, ok := r.GetLeft(); ok {
			return kont.ThrowError[E, A](e)
		}
		a, _ := r.GetRight()
		return kont.Pure(a)
	})
}

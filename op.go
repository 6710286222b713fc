// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Atomic is the effect operation for running a transaction.
// Perform(Atomic[C, E, A]{Tx: tx}) runs tx against the context owned by
// the handler and resumes with its result.
type Atomic[C, E, A any] struct {
	kont.Phantom[kont.Either[E, A]]
	Tx Transaction[C, E, A]
}

// DispatchTxn handles Atomic on ctx.
// Never blocks: the transaction runs to completion synchronously.
func (o Atomic[C, E, A]) DispatchTxn(ctx *C) kont.Resumed {
	return o.Tx.Run(ctx)
}

// txnDispatcher is the structural interface for transaction effects
// over a context of type C.
type txnDispatcher[C any] interface {
	DispatchTxn(ctx *C) kont.Resumed
}

// txnHandler implements kont.Handler for transaction effects.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type txnHandler[C, R any] struct {
	ctx *C
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h txnHandler[C, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	top, ok := op.(txnDispatcher[C])
	if !ok {
		panic("txn: unhandled effect in txnHandler")
	}
	return top.DispatchTxn(h.ctx), true
}

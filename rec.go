// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// LoopTx is the result of Loop.
type LoopTx[C, E, S, A any] struct {
	initial S
	step    func(S) Transaction[C, E, kont.Either[S, A]]
}

// Loop runs a recursive transaction.
// step returns Left(nextState) to continue or Right(result) to finish;
// a failed step stops the loop with its error.
// Iterations run in a plain loop, so the stack does not grow with the
// number of steps.
func Loop[C, E, S, A any](initial S, step func(S) Transaction[C, E, kont.Either[S, A]]) LoopTx[C, E, S, A] {
	return LoopTx[C, E, S, A]{initial: initial, step: step}
}

// Run implements Transaction.
func (t LoopTx[C, E, S, A]) Run(ctx *C) kont.Either[E, A] {
	s := t.initial
	for {
		r := t.step(s).Run(ctx)
		if e, ok := r.GetLeft(); ok {
			return kont.Left[E, A](e)
		}
		next, _ := r.GetRight()
		if left, ok := next.GetLeft(); ok {
			s = left
			continue
		}
		a, _ := next.GetRight()
		return kont.Right[E](a)
	}
}

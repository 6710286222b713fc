// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a program until its first effect suspension.
// Returns (result, nil) on completion, or (zero, suspension) if pending.
func Step[R any](program kont.Expr[R]) (R, *kont.Suspension[R]) {
	return kont.StepExpr(program)
}

// Advance runs the suspended Atomic transaction against ctx and
// resumes the program up to its next suspension or completion.
//
// The caller chooses ctx per step, so a driver may hand each pending
// transaction its own context. The suspension is consumed.
func Advance[C, R any](ctx *C, susp *kont.Suspension[R]) (R, *kont.Suspension[R]) {
	top, ok := susp.Op().(txnDispatcher[C])
	if !ok {
		panic("txn: unhandled effect in Advance")
	}
	return susp.Resume(top.DispatchTxn(ctx))
}

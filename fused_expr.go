// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Pre-allocated return frame to avoid boxing an empty struct into
// kont.Frame on every fused call.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// ExprPerformThen runs tx, discards its result and continues with next.
// Fuses ExprPerform(Atomic{Tx: tx}) + ExprThen.
func ExprPerformThen[C, E, A, B any](tx Transaction[C, E, A], next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = Atomic[C, E, A]{Tx: tx}
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func performBindUnwind[E, A, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(kont.Either[E, A]) kont.Expr[B])
	result := f(current.(kont.Either[E, A]))
	return kont.Erased(result.Value), result.Frame
}

// ExprPerformBind runs tx and passes its result to f.
// Fuses ExprPerform(Atomic{Tx: tx}) + ExprBind.
func ExprPerformBind[C, E, A, B any](tx Transaction[C, E, A], f func(kont.Either[E, A]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = performBindUnwind[E, A, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Atomic[C, E, A]{Tx: tx}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

func performDoneUnwind[E, A any](_, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	r := current.(kont.Either[E, A])
	return kont.Erased(r.IsRight()), exprReturnFrame
}

// ExprPerformDone runs tx and finishes with whether it succeeded.
// Fuses ExprPerform(Atomic{Tx: tx}) + ExprMap.
func ExprPerformDone[C, E, A any](tx Transaction[C, E, A]) kont.Expr[bool] {
	bf := kont.AcquireUnwindFrame()
	bf.Unwind = performDoneUnwind[E, A]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Atomic[C, E, A]{Tx: tx}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[bool](ef)
}

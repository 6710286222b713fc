// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Tuple2 is the success value of Join.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 is the success value of Join3.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 is the success value of Join4.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// JoinTx is the result of Join.
type JoinTx[C, E, A1, A2 any] struct {
	tx1 Transaction[C, E, A1]
	tx2 Transaction[C, E, A2]
}

// Join combines two independent transactions.
//
// Both are always run, tx1 then tx2, on the same context: there is no
// short-circuit and no parallelism, so writes made by tx1 are visible
// to tx2. If either failed, the error of the first failing one in
// argument order is returned.
func Join[C, E, A1, A2 any](tx1 Transaction[C, E, A1], tx2 Transaction[C, E, A2]) JoinTx[C, E, A1, A2] {
	return JoinTx[C, E, A1, A2]{tx1: tx1, tx2: tx2}
}

// Run implements Transaction.
func (t JoinTx[C, E, A1, A2]) Run(ctx *C) kont.Either[E, Tuple2[A1, A2]] {
	r1 := t.tx1.Run(ctx)
	r2 := t.tx2.Run(ctx)
	if e, ok := r1.GetLeft(); ok {
		return kont.Left[E, Tuple2[A1, A2]](e)
	}
	if e, ok := r2.GetLeft(); ok {
		return kont.Left[E, Tuple2[A1, A2]](e)
	}
	v1, _ := r1.GetRight()
	v2, _ := r2.GetRight()
	return kont.Right[E](Tuple2[A1, A2]{V1: v1, V2: v2})
}

// Join3Tx is the result of Join3.
type Join3Tx[C, E, A1, A2, A3 any] struct {
	tx1 Transaction[C, E, A1]
	tx2 Transaction[C, E, A2]
	tx3 Transaction[C, E, A3]
}

// Join3 combines three independent transactions.
// Execution and error selection follow Join.
func Join3[C, E, A1, A2, A3 any](tx1 Transaction[C, E, A1], tx2 Transaction[C, E, A2], tx3 Transaction[C, E, A3]) Join3Tx[C, E, A1, A2, A3] {
	return Join3Tx[C, E, A1, A2, A3]{tx1: tx1, tx2: tx2, tx3: tx3}
}

// Run implements Transaction.
func (t Join3Tx[C, E, A1, A2, A3]) Run(ctx *C) kont.Either[E, Tuple3[A1, A2, A3]] {
	r1 := t.tx1.Run(ctx)
	r2 := t.tx2.Run(ctx)
	r3 := t.tx3.Run(ctx)
	if e, ok := r1.GetLeft(); ok {
		return kont.Left[E, Tuple3[A1, A2, A3]](e)
	}
	if e, ok := r2.GetLeft(); ok {
		return kont.Left[E, Tuple3[A1, A2, A3]](e)
	}
	if e, ok := r3.GetLeft(); ok {
		return kont.Left[E, Tuple3[A1, A2, A3]](e)
	}
	v1, _ := r1.GetRight()
	v2, _ := r2.GetRight()
	v3, _ := r3.GetRight()
	return kont.Right[E](Tuple3[A1, A2, A3]{V1: v1, V2: v2, V3: v3})
}

// Join4Tx is the result of Join4.
type Join4Tx[C, E, A1, A2, A3, A4 any] struct {
	tx1 Transaction[C, E, A1]
	tx2 Transaction[C, E, A2]
	tx3 Transaction[C, E, A3]
	tx4 Transaction[C, E, A4]
}

// Join4 combines four independent transactions.
// Execution and error selection follow Join.
func Join4[C, E, A1, A2, A3, A4 any](tx1 Transaction[C, E, A1], tx2 Transaction[C, E, A2], tx3 Transaction[C, E, A3], tx4 Transaction[C, E, A4]) Join4Tx[C, E, A1, A2, A3, A4] {
	return Join4Tx[C, E, A1, A2, A3, A4]{tx1: tx1, tx2: tx2, tx3: tx3, tx4: tx4}
}

// Run implements Transaction.
func (t Join4Tx[C, E, A1, A2, A3, A4]) Run(ctx *C) kont.Either[E, Tuple4[A1, A2, A3, A4]] {
	r1 := t.tx1.Run(ctx)
	r2 := t.tx2.Run(ctx)
	r3 := t.tx3.Run(ctx)
	r4 := t.tx4.Run(ctx)
	if e, ok := r1.GetLeft(); ok {
		return kont.Left[E, Tuple4[A1, A2, A3, A4]](e)
	}
	if e, ok := r2.GetLeft(); ok {
		return kont.Left[E, Tuple4[A1, A2, A3, A4]](e)
	}
	if e, ok := r3.GetLeft(); ok {
		return kont.Left[E, Tuple4[A1, A2, A3, A4]](e)
	}
	if e, ok := r4.GetLeft(); ok {
		return kont.Left[E, Tuple4[A1, A2, A3, A4]](e)
	}
	v1, _ := r1.GetRight()
	v2, _ := r2.GetRight()
	v3, _ := r3.GetRight()
	v4, _ := r4.GetRight()
	return kont.Right[E](Tuple4[A1, A2, A3, A4]{V1: v1, V2: v2, V3: v3, V4: v4})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// Transaction is a unit of work over a context of type C.
// Run returns Right(item) on success or Left(err) on failure.
//
// Transactions sharing the same C and E compose with the combinators
// of this package. Constructing a transaction has no side effects;
// Run may be called any number of times and re-invokes wrapped
// closures on every call.
type Transaction[C, E, A any] interface {
	Run(ctx *C) kont.Either[E, A]
}

// Func adapts a plain function to a Transaction.
type Func[C, E, A any] func(ctx *C) kont.Either[E, A]

// Run calls f(ctx).
func (f Func[C, E, A]) Run(ctx *C) kont.Either[E, A] {
	return f(ctx)
}

// Box is the erased form of a transaction: any concrete combinator tree
// with the same C, E and A stored behind one type.
// Use it to return heterogeneous trees from one function signature
// or to keep named transactions in a struct field.
// The zero Box holds no transaction; running it panics.
type Box[C, E, A any] struct {
	tx Transaction[C, E, A]
}

// Boxed erases the concrete type of tx.
// Boxing a Box returns it unchanged. tx must not be nil.
func Boxed[C, E, A any](tx Transaction[C, E, A]) Box[C, E, A] {
	if tx == nil {
		panic("txn: Boxed nil transaction")
	}
	if b, ok := tx.(Box[C, E, A]); ok {
		return b
	}
	if b, ok := tx.(*Box[C, E, A]); ok {
		if b == nil {
			panic("txn: Boxed nil transaction")
		}
		return *b
	}
	return Box[C, E, A]{tx: tx}
}

// Run forwards to the wrapped transaction.
func (b Box[C, E, A]) Run(ctx *C) kont.Either[E, A] {
	if b.tx == nil {
		panic("txn: run of empty Box")
	}
	return b.tx.Run(ctx)
}

// Unbox returns the wrapped transaction.
func (b Box[C, E, A]) Unbox() Transaction[C, E, A] {
	return b.tx
}

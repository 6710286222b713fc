// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stm is a software transactional memory backend for
// [code.hybscloud.com/txn].
//
// The context type is [Log]: one Log records the reads and pending
// writes of a single attempt. Transactions are built from [Load],
// [Store] and [Modify] leaves plus the txn combinators, and run with
// [Atomically], which retries on conflict and commits the writes of the
// first attempt whose reads are still current.
//
// # Example
//
//	x, y := stm.NewTVar(0), stm.NewTVar(0)
//	incXY := txn.AndThen(stm.Modify(x, inc), func(int) stm.Tx[int] {
//		return stm.Modify(y, inc)
//	})
//	_, err := stm.Atomically(incXY)
package stm

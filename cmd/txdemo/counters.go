// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/txn"
	"code.hybscloud.com/txn/stm"
)

// counters holds two independently incrementable STM variables.
// Each method returns an erased transaction so the graph can be
// rebuilt from named parts.
type counters struct {
	x *stm.TVar[int]
	y *stm.TVar[int]
}

func newCounters() *counters {
	return &counters{x: stm.NewTVar(0), y: stm.NewTVar(0)}
}

func inc(v int) int { return v + 1 }

func (c *counters) incX() stm.Tx[int] {
	return txn.Boxed(stm.Modify(c.x, inc))
}

func (c *counters) incY() stm.Tx[int] {
	return txn.Boxed(stm.Modify(c.y, inc))
}

func (c *counters) incXY() stm.Tx[int] {
	return txn.Boxed(txn.AndThen(c.incX(), func(int) stm.Tx[int] {
		return c.incY()
	}))
}

func (c *counters) sum() stm.Tx[int] {
	return txn.Boxed(txn.WithCtx(func(l *stm.Log) kont.Either[error, int] {
		x, err := stm.Read(l, c.x)
		if err != nil {
			return kont.Left[error, int](err)
		}
		y, err := stm.Read(l, c.y)
		if err != nil {
			return kont.Left[error, int](err)
		}
		return kont.Right[error](x + y)
	}))
}

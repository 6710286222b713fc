// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memlog

import (
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
	"code.hybscloud.com/txn"
)

// Batch is the context of one commit.
// Staging is a single-producer single-consumer bounded queue: the
// transaction produces, Commit consumes, both on the same goroutine.
// The queue may round its size up; capacity is the exact bound.
type Batch[T any] struct {
	q        lfq.SPSC[T]
	slot     T
	staged   int
	capacity int
}

// minQueueSize is the smallest size lfq.SPSC accepts.
const minQueueSize = 2

func newBatch[T any](capacity int) *Batch[T] {
	b := &Batch[T]{capacity: capacity}
	b.q.Init(max(minQueueSize, capacity))
	return b
}

// Len returns the number of staged entries.
func (b *Batch[T]) Len() int {
	return b.staged
}

// stage enqueues v. Non-blocking: returns ErrBatchFull when capacity
// entries are already staged or the queue has no room.
func (b *Batch[T]) stage(v T) error {
	if b.staged >= b.capacity {
		return ErrBatchFull
	}
	b.slot = v
	if err := b.q.Enqueue(&b.slot); err != nil {
		if iox.IsWouldBlock(err) {
			return ErrBatchFull
		}
		return fmt.Errorf("memlog: stage: %w", err)
	}
	b.staged++
	return nil
}

// drain dequeues every staged entry in order and passes it to f.
func (b *Batch[T]) drain(f func(T)) {
	for b.staged > 0 {
		v, err := b.q.Dequeue()
		if err != nil {
			return
		}
		b.staged--
		f(v)
	}
}

// Append stages v and yields its 0-based position in the batch.
func Append[T any](v T) txn.CtxTx[Batch[T], error, int] {
	return txn.WithCtx(func(b *Batch[T]) kont.Either[error, int] {
		if err := b.stage(v); err != nil {
			return kont.Left[error, int](err)
		}
		return kont.Right[error](b.staged - 1)
	})
}

// Staged yields the number of entries staged so far in the batch.
func Staged[T any]() txn.CtxTx[Batch[T], error, int] {
	return txn.WithCtx(func(b *Batch[T]) kont.Either[error, int] {
		return kont.Right[error](b.staged)
	})
}

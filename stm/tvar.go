// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

import (
	"code.hybscloud.com/atomix"
)

// TVar is a transactional variable.
// Its value changes only when an attempt that wrote it commits; every
// commit bumps the version so concurrent readers can detect it.
type TVar[T any] struct {
	id      Serial
	version atomix.Uint32
	value   T
}

// NewTVar creates a transactional variable holding v.
func NewTVar[T any](v T) *TVar[T] {
	return &TVar[T]{id: nextSerial(), value: v}
}

// Serial returns the identifier of tv.
func (tv *TVar[T]) Serial() Serial {
	return tv.id
}

// Version returns the number of commits that wrote tv.
func (tv *TVar[T]) Version() uint32 {
	return tv.version.Load()
}

// Snapshot returns the committed value of tv outside any transaction.
func (tv *TVar[T]) Snapshot() T {
	commitMu.RLock()
	defer commitMu.RUnlock()
	return tv.value
}

// load returns the committed value and the version it belongs to.
// Called under commitMu.RLock.
func (tv *TVar[T]) load() (T, uint32) {
	return tv.value, tv.version.Load()
}

func (tv *TVar[T]) currentVersion() uint32 {
	return tv.version.Load()
}

// apply installs a pending write. Called under commitMu.Lock.
func (tv *TVar[T]) apply(value any) {
	tv.value = value.(T)
	tv.version.Add(1)
}

// tvar is the type-erased view of a TVar held by a Log.
type tvar interface {
	currentVersion() uint32
	apply(value any)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"sync"
	"unsafe"

	"code.hybscloud.com/kont"
)

// active holds the contexts currently inside Exec, keyed by pointer.
var active sync.Map

// Exec runs tx against ctx on the calling goroutine.
//
// At most one Exec may be in flight per context. A leaf that calls Exec
// again on the context it was handed panics instead of interleaving two
// runs over the same state. Retrying is the caller's business: call
// Exec again with a fresh or rolled-back context.
func Exec[C, E, A any](ctx *C, tx Transaction[C, E, A]) kont.Either[E, A] {
	if ctx == nil {
		panic("txn: nil context")
	}
	// Zero-size contexts hold no state and may share one address.
	if unsafe.Sizeof(*ctx) == 0 {
		return tx.Run(ctx)
	}
	if _, busy := active.LoadOrStore(ctx, struct{}{}); busy {
		panic("txn: reentrant Exec on active context")
	}
	defer active.Delete(ctx)
	return tx.Run(ctx)
}

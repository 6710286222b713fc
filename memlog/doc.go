// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package memlog is an in-memory journal backend for
// [code.hybscloud.com/txn].
//
// The context type is [Batch]: entries appended by a transaction are
// staged in a bounded lock-free queue ([code.hybscloud.com/lfq]) and only
// reach the [Journal] if the whole transaction succeeds. A failed
// transaction discards its batch.
package memlog

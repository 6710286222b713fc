// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package memlog

import "errors"

var (
	// ErrBatchFull indicates that the staging buffer of a batch is full.
	ErrBatchFull = errors.New("memlog batch is full")
	// ErrInvalidCapacity indicates that the requested capacity is negative.
	ErrInvalidCapacity = errors.New("memlog capacity must not be negative")
)

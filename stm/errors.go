// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

import "errors"

var (
	// ErrConflict reports that a TVar read by the attempt was changed by
	// a concurrent commit. Atomically retries the attempt.
	ErrConflict = errors.New("stm: conflicting commit")
	// ErrRetry is returned by Retry to abandon the attempt and rerun it.
	ErrRetry = errors.New("stm: retry requested")
	// ErrTooManyAttempts is returned by Atomically once MaxAttempts
	// attempts ended in a conflict or retry.
	ErrTooManyAttempts = errors.New("stm: too many attempts")
)

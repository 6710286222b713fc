// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stm

import "code.hybscloud.com/txn/internal/logging"

// Logger receives driver events from Atomically.
type Logger = logging.Logger

// NopLogger is a no-op logger.
type NopLogger = logging.NopLogger

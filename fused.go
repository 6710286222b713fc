// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package txn

import (
	"code.hybscloud.com/kont"
)

// PerformBind performs tx and passes its result to f.
// Fuses Perform(tx) + Bind.
func PerformBind[C, E, A, B any](tx Transaction[C, E, A], f func(kont.Either[E, A]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(Perform(tx), f)
}

// PerformThen performs tx, discards its result and continues with next.
// Fuses Perform(tx) + Then.
func PerformThen[C, E, A, B any](tx Transaction[C, E, A], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(Perform(tx), next)
}

// PerformDone performs tx and finishes with whether it succeeded.
// Fuses Perform(tx) + Map.
func PerformDone[C, E, A any](tx Transaction[C, E, A]) kont.Eff[bool] {
	return kont.Map(Perform(tx), func(r kont.Either[E, A]) bool {
		return r.IsRight()
	})
}

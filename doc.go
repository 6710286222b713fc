// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package txn provides composable unit-of-work transactions over an
// abstract, caller-owned context.
//
// A [Transaction] is inert data until its Run method is called with a
// context pointer. Leaves read or write the context; combinators only
// orchestrate their children and apply pure functions to their results.
// The same vocabulary works for any backend: an STM log, a SQL
// connection, an in-memory journal.
//
// # Architecture
//
//   - Result channel: every run returns [code.hybscloud.com/kont.Either], Left for failure and Right for success.
//   - Execution: one synchronous recursive call on the caller's goroutine, threading one *C through the tree.
//   - Erasure: [Boxed] hides the concrete combinator type behind [Box]; any Transaction value, pointer or [Func] forwards Run.
//   - Backends: the algebra never constructs a context and never retries. Drivers own both.
//
// # API Topologies
//
//   - Leaves: [Result], [Ok], [Err], [Lazy], [WithCtx], [Func].
//   - Sequencing: [Map], [Then], [AndThen], [MapErr], [OrElse].
//   - Error transmutation: [Abort], [TryAbort], [Recover], [TryRecover].
//   - Joins: [Join], [Join3], [Join4]. All children run left to right, unconditionally; the first failure in argument order wins.
//   - Recursive: [Loop] for iterative transactions.
//
// # Integration
//
//   - Direct: call Run, or [Exec] which rejects reentrant use of a context.
//   - Effects: [Perform] lifts a transaction into a kont program; [Handle]/[HandleExpr] supply the context, [Step]/[Advance] drive it one transaction at a time.
//   - Fused: [PerformBind], [PerformThen], [PerformDone] and their Expr forms [ExprPerformBind], [ExprPerformThen], [ExprPerformDone].
//   - Errors: [Must] rethrows a failure as a kont error effect; [HandleError]/[HandleErrorExpr] run such programs and return Either.
//
// # Example
//
//	type Counter struct{ n int }
//
//	inc := txn.WithCtx(func(c *Counter) kont.Either[string, int] {
//		c.n++
//		return kont.Right[string](c.n)
//	})
//	twice := txn.AndThen(inc, func(int) txn.Transaction[Counter, string, int] {
//		return inc
//	})
//	r := txn.Exec(&Counter{}, twice) // Right(2)
package txn

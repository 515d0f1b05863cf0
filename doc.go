// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bounce provides a stack-safe trampoline for recursive
// computations in Go.
//
// The core type [Result] is the outcome of one computation step: either
// a terminal value (Done) or a deferred continuation (Pending, holding
// a [Thunk]). The evaluator repeatedly invokes pending thunks until a
// terminal value is produced, so recursion depth in the source
// computation becomes iteration count in a flat loop. Control-stack use
// is O(1) regardless of how many bounces execute.
//
// # Background
//
// Go performs no tail-call optimization: a recursive function in tail
// position still pushes a frame per call and overflows on deep inputs.
// Rewriting the recursion in continuation-passing style moves "what
// happens next" into an explicit callable, and trampolining then turns
// the chain of callables into data the loop in [Run] can consume one
// step at a time. Of the three techniques only the trampoline is a
// reusable component; the other two are a compiler behavior and a
// calling convention, and appear here only as the shape computation
// steps take.
//
// # Data Model
//
// Exactly two states, with Done terminal and classification total by
// construction:
//
//   - [Done]: terminal Result holding the final value
//   - [More]: pending Result deferring to a thunk
//   - [Delay]: lift a deferred pure computation as a single bounce
//   - [Result.IsDone], [Result.Value], [Result.Invoke]: classification
//     and single-bounce advance
//
// A thunk is invoked at most once, yields exactly one new Result, and
// is discarded after invocation.
//
// # Evaluation
//
//   - [Run]: drive a computation to completion
//   - [RunWith]: drive to completion, then apply a final continuation
//   - [RunBounded]: completion within a bounce budget, or [ErrBudgetExceeded]
//   - [RunContext]: completion or context cancellation
//   - [Step]: advance one bounce for externally driven evaluation
//
// A computation whose steps never reach Done loops forever under [Run];
// that is the semantic equivalent of genuine infinite recursion, and
// bounding it is the caller's choice via [RunBounded] or [RunContext].
// Panics raised inside a thunk propagate out of every runner; [Attempt]
// is the opt-in boundary that settles them into an [Outcome].
//
// # Combinators
//
// Minimal monad operations over Result:
//
//   - [FlatMap]: sequence two computations
//   - [Map]: apply a pure function to the terminal value
//   - [Then]: sequence, discarding the first result
//
// Combinators defer their work as data: applying one to a pending
// computation pushes a frame onto the Result instead of wrapping its
// thunk, and the evaluator consumes frames iteratively, re-associating
// nested chains as it goes. Arbitrarily long and arbitrarily nested
// chains evaluate without stack growth. Each frame application counts
// as one bounce under the stepping and bounded runners.
//
// # One-Shot Thunks
//
// [OnceThunk] wraps a thunk with affine enforcement for when a deferred
// step escapes the evaluator, such as a scheduler driving [Step]:
//
//   - [Once]: create a one-shot thunk
//   - [OnceThunk.Invoke]: run (panics on reuse)
//   - [OnceThunk.TryInvoke]: non-panicking variant
//   - [OnceThunk.Discard]: drop without running
//
// # Failure Boundary
//
// The plain runners never recover; these settle failure into a value:
//
//   - [Outcome]: settled success-or-failure of one evaluation
//   - [Attempt]: evaluate, converting a panicking bounce into a failed Outcome
//   - [Recover]: evaluate, substituting a replacement computation on failure
//   - [Match]: branch on an Outcome
//
// # Example
//
//	func factorial(n, acc uint64) bounce.Result[uint64] {
//		if n <= 1 {
//			return bounce.Done(acc)
//		}
//		return bounce.More(func() bounce.Result[uint64] {
//			return factorial(n-1, acc*n)
//		})
//	}
//
//	result := bounce.Run(factorial(20, 1))
//	// result == 2432902008176640000, with 20 stack frames never live at once
package bounce

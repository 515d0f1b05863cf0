// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Run evaluates a trampolined computation to completion.
// It iteratively invokes the pending thunk and replaces the current
// Result until the Result is terminal, then returns the held value.
// Combinator-built results hand off to the frame evaluator, which is
// equally iterative.
//
// The loop allocates nothing on the plain thunk path and uses O(1)
// control stack regardless of how many bounces execute; recursion depth
// in the source computation becomes iteration count here.
//
// A computation that never reaches a terminal Result loops forever.
// That is the semantic equivalent of genuine infinite recursion and is
// the caller's responsibility to rule out; use [RunBounded] or
// [RunContext] to impose an external limit. A panic raised inside a
// thunk propagates to the caller unrecovered.
func Run[A any](r Result[A]) A {
	for {
		if r.frame != nil {
			return runFrames(*r.src, r.frame).(A)
		}
		if r.thunk == nil {
			return r.value
		}
		r = r.thunk()
	}
}

// RunWith evaluates a trampolined computation and applies a final
// continuation to the terminal value.
func RunWith[A, R any](r Result[A], k func(A) R) R {
	return k(Run(r))
}

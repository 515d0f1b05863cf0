// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Stepping boundary for external runtimes.
// Step advances a computation one bounce at a time, unlike Run which
// drives the trampoline to completion. External schedulers and event
// loops interleave other work between bounces.

// Step advances a trampolined computation by at most one bounce.
// A terminal Result is returned unchanged as (value, r, true) without
// invoking anything, so stepping a completed computation is idempotent.
// A pending Result is invoked once, returning (zero, next, false).
//
// Driving Step in a loop until done is equivalent to [Run]:
//
//	v, next, done := Step(r)
//	for !done {
//	    v, next, done = Step(next)
//	}
func Step[A any](r Result[A]) (A, Result[A], bool) {
	if r.IsDone() {
		return r.value, r, true
	}
	var zero A
	return zero, r.advance(), false
}

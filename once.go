// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import (
	"sync/atomic"
)

// OnceThunk attaches consume-once enforcement to a thunk.
// A wrapped thunk runs at most once: Invoke panics on reuse, TryInvoke
// reports it, and Discard burns the thunk unrun.
//
// Inside [Run] single consumption holds by construction, so the wrapper
// earns its keep only when a deferred step leaves the evaluator, for
// example handed to a scheduler that drives [Step] and may retry.
type OnceThunk[A any] struct {
	used  atomic.Uintptr
	thunk Thunk[A]
}

// Once wraps t with consume-once enforcement.
// OnceThunk.Invoke has the [Thunk] shape, so More(o.Invoke) re-enters
// the trampoline with the guard attached.
func Once[A any](t Thunk[A]) *OnceThunk[A] {
	if t == nil {
		panic("bounce: Once called with nil thunk")
	}
	return &OnceThunk[A]{thunk: t}
}

// Invoke consumes the thunk and returns the Result it produced.
// A second call panics: the step was already taken.
func (o *OnceThunk[A]) Invoke() Result[A] {
	if o.used.Add(1) != 1 {
		panic("bounce: thunk invoked twice")
	}
	return o.thunk()
}

// Discard consumes the thunk without running it, for dropping a
// deferred step that lost its turn.
func (o *OnceThunk[A]) Discard() {
	o.used.Store(1)
}

// TryInvoke consumes and runs the thunk when it is still unconsumed,
// reporting false once the step has already been taken or discarded.
func (o *OnceThunk[A]) TryInvoke() (Result[A], bool) {
	if o.used.Add(1) != 1 {
		var zero Result[A]
		return zero, false
	}
	return o.thunk(), true
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Thunk is a zero-argument deferred computation step.
// Invoking a Thunk performs exactly one unit of work and yields the
// next Result. The evaluator invokes each Thunk at most once and holds
// no reference to it afterwards.
type Thunk[A any] func() Result[A]

// Result is the outcome of one computation step: either a terminal
// value or a deferred continuation of the computation.
//
// The two states are encoded in a single struct so that classification
// is total: a Result is pending exactly when it still holds deferred
// work, either a thunk or a chain of combinator frames over an erased
// source. There is no representable third state.
type Result[A any] struct {
	value A
	thunk Thunk[A]

	// Combinator-built results carry frames to apply over an erased
	// source instead of a thunk. frame == nil means a plain
	// value-or-thunk result; frame != nil implies src != nil.
	frame frame
	src   *Result[erased]
}

// Done creates a terminal Result holding the final value.
func Done[A any](a A) Result[A] {
	return Result[A]{value: a}
}

// More creates a pending Result deferring to the given thunk.
// Panics on a nil thunk: a pending step with nothing to run is a
// programmer error, not a representable state.
func More[A any](t Thunk[A]) Result[A] {
	if t == nil {
		panic("bounce: More called with nil thunk")
	}
	return Result[A]{thunk: t}
}

// Delay lifts a deferred pure computation into a single-bounce Result.
// The function f runs when the evaluator invokes the bounce, not when
// Delay is called.
func Delay[A any](f func() A) Result[A] {
	if f == nil {
		panic("bounce: Delay called with nil function")
	}
	return Result[A]{thunk: func() Result[A] {
		return Done(f())
	}}
}

// IsDone reports whether the Result is terminal.
func (r Result[A]) IsDone() bool {
	return r.thunk == nil && r.frame == nil
}

// Value returns the terminal value.
// Panics if the Result is still pending; callers decide via IsDone or
// use one of the runners, which never misclassify.
func (r Result[A]) Value() A {
	if !r.IsDone() {
		panic("bounce: Value called on pending result")
	}
	return r.value
}

// Invoke advances a pending Result by one bounce: one thunk invocation
// or one deferred combinator application, whichever is next.
// Panics if the Result is terminal.
func (r Result[A]) Invoke() Result[A] {
	if r.IsDone() {
		panic("bounce: Invoke called on done result")
	}
	return r.advance()
}

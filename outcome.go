// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import (
	"fmt"
)

// Outcome is the settled result of one evaluation at the failure
// boundary: a terminal value, or the failure that interrupted the
// computation before it reached one.
type Outcome[A any] struct {
	value A
	err   error
}

// Success creates an Outcome holding a terminal value.
func Success[A any](a A) Outcome[A] {
	return Outcome[A]{value: a}
}

// Failure creates an Outcome holding the failure that interrupted
// evaluation. Panics on a nil error: an Outcome is settled one way or
// the other, never both.
func Failure[A any](err error) Outcome[A] {
	if err == nil {
		panic("bounce: Failure called with nil error")
	}
	return Outcome[A]{err: err}
}

// Succeeded reports whether evaluation reached a terminal value.
func (o Outcome[A]) Succeeded() bool {
	return o.err == nil
}

// Failed reports whether evaluation was interrupted by a failure.
func (o Outcome[A]) Failed() bool {
	return o.err != nil
}

// Get returns the terminal value and true, or zero and false when the
// evaluation failed.
func (o Outcome[A]) Get() (A, bool) {
	if o.err != nil {
		var zero A
		return zero, false
	}
	return o.value, true
}

// Err returns the failure that interrupted evaluation, or nil.
func (o Outcome[A]) Err() error {
	return o.err
}

// Match branches on an Outcome, calling onFailure or onSuccess.
func Match[A, T any](o Outcome[A], onFailure func(error) T, onSuccess func(A) T) T {
	if o.err != nil {
		return onFailure(o.err)
	}
	return onSuccess(o.value)
}

// Attempt evaluates a trampolined computation to completion, settling a
// panic raised during thunk invocation into a failed Outcome. A panic
// value that is not an error is wrapped. On normal completion the
// terminal value settles as a success.
//
// This is the opt-in failure boundary: [Run] and the other runners
// never recover, so recovery happens only where the caller asked for an
// Outcome.
func Attempt[A any](r Result[A]) (o Outcome[A]) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if err, ok := p.(error); ok {
			o = Failure[A](err)
			return
		}
		o = Failure[A](fmt.Errorf("bounce: thunk panicked: %v", p))
	}()
	return Success(Run(r))
}

// Recover evaluates a trampolined computation, substituting the
// handler's replacement computation when a bounce fails. A successful
// terminal value passes through untouched and the handler is never
// called. The replacement computation is evaluated unguarded, so its
// own failures propagate; nest Recover to guard it too.
func Recover[A any](r Result[A], handler func(error) Result[A]) A {
	return Match(Attempt(r),
		func(err error) A {
			return Run(handler(err))
		},
		func(a A) A {
			return a
		},
	)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import (
	"context"
	"errors"
	"fmt"
)

// ErrBudgetExceeded reports that a computation was still pending after
// its bounce budget was spent. Returned wrapped; test with [errors.Is].
var ErrBudgetExceeded = errors.New("bounce: bounce budget exceeded")

// RunBounded evaluates a trampolined computation for at most budget
// bounces. It returns the terminal value if the computation completes
// within the budget, or a wrapped [ErrBudgetExceeded] if it is still
// pending afterwards. A budget <= 0 admits no bounces: only an already
// terminal Result succeeds.
//
// The budget counts thunk invocations, so a computation needing n
// bounces completes with budget >= n.
func RunBounded[A any](r Result[A], budget int) (A, error) {
	for spent := 0; !r.IsDone(); spent++ {
		if spent >= budget {
			var zero A
			return zero, fmt.Errorf("still pending after %d bounces: %w", budget, ErrBudgetExceeded)
		}
		r = r.advance()
	}
	return r.value, nil
}

// RunContext evaluates a trampolined computation until it completes or
// ctx is cancelled, checking ctx before each bounce. On cancellation it
// returns ctx.Err().
//
// The check is cooperative: a single thunk that blocks internally is
// not interrupted.
func RunContext[A any](ctx context.Context, r Result[A]) (A, error) {
	for !r.IsDone() {
		if err := ctx.Err(); err != nil {
			var zero A
			return zero, err
		}
		r = r.advance()
	}
	return r.value, nil
}

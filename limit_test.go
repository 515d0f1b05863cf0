// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/bounce"
)

// forever never reaches a terminal Result.
func forever() bounce.Result[int] {
	return bounce.More(forever)
}

func TestRunBounded(t *testing.T) {
	// factorial(5) needs exactly 4 bounces
	v, err := bounce.RunBounded(factorial(5, 1), 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), v)

	_, err = bounce.RunBounded(factorial(5, 1), 3)
	require.ErrorIs(t, err, bounce.ErrBudgetExceeded)
}

func TestRunBoundedZeroBudget(t *testing.T) {
	// Zero budget admits no bounces; only a terminal input succeeds
	v, err := bounce.RunBounded(bounce.Done(7), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = bounce.RunBounded(forever(), 0)
	require.ErrorIs(t, err, bounce.ErrBudgetExceeded)
}

func TestRunBoundedDivergent(t *testing.T) {
	_, err := bounce.RunBounded(forever(), 10_000)
	require.ErrorIs(t, err, bounce.ErrBudgetExceeded)
	assert.ErrorContains(t, err, "still pending after 10000 bounces")
}

func TestRunBoundedFramedComputation(t *testing.T) {
	// The map application is the fifth bounce after factorial's four
	budgeted := func() bounce.Result[uint64] {
		return bounce.Map(factorial(5, 1), func(x uint64) uint64 { return x + 1 })
	}

	v, err := bounce.RunBounded(budgeted(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(121), v)

	_, err = bounce.RunBounded(budgeted(), 4)
	require.ErrorIs(t, err, bounce.ErrBudgetExceeded)
}

func TestRunContext(t *testing.T) {
	v, err := bounce.RunContext(context.Background(), factorial(5, 1))
	require.NoError(t, err)
	assert.Equal(t, uint64(120), v)
}

func TestRunContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bounce.RunContext(ctx, forever())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunContextCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// The computation cancels its own context after 100 bounces,
	// standing in for an external deadline firing mid-evaluation.
	var step func(n int) bounce.Result[int]
	step = func(n int) bounce.Result[int] {
		if n == 100 {
			cancel()
		}
		return bounce.More(func() bounce.Result[int] { return step(n + 1) })
	}

	_, err := bounce.RunContext(ctx, step(0))
	require.ErrorIs(t, err, context.Canceled)
}

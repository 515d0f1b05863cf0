// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/bounce"
)

func TestOutcomeAccessors(t *testing.T) {
	s := bounce.Success(42)
	assert.True(t, s.Succeeded())
	assert.False(t, s.Failed())
	require.NoError(t, s.Err())
	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	sentinel := errors.New("step failed")
	f := bounce.Failure[int](sentinel)
	assert.True(t, f.Failed())
	assert.False(t, f.Succeeded())
	assert.ErrorIs(t, f.Err(), sentinel)
	_, ok = f.Get()
	assert.False(t, ok)
}

func TestFailureNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Failure(nil) did not panic")
		}
	}()
	_ = bounce.Failure[int](nil)
}

func TestMatch(t *testing.T) {
	got := bounce.Match(bounce.Success(21),
		func(error) int { return -1 },
		func(v int) int { return v * 2 },
	)
	assert.Equal(t, 42, got)

	got = bounce.Match(bounce.Failure[int](errors.New("e")),
		func(error) int { return -1 },
		func(v int) int { return v * 2 },
	)
	assert.Equal(t, -1, got)
}

func TestAttemptSuccess(t *testing.T) {
	o := bounce.Attempt(factorial(5, 1))
	require.True(t, o.Succeeded())
	v, _ := o.Get()
	assert.Equal(t, uint64(120), v)
}

func TestAttemptPanicError(t *testing.T) {
	sentinel := errors.New("step failed")
	o := bounce.Attempt(bounce.More(func() bounce.Result[int] {
		panic(sentinel)
	}))
	require.True(t, o.Failed())
	assert.ErrorIs(t, o.Err(), sentinel)
}

func TestAttemptPanicNonError(t *testing.T) {
	o := bounce.Attempt(bounce.More(func() bounce.Result[int] {
		panic("boom")
	}))
	require.True(t, o.Failed())
	assert.ErrorContains(t, o.Err(), "boom")
}

func TestAttemptPanicMidway(t *testing.T) {
	// Failure surfaces from whichever bounce raises it
	var step func(n int) bounce.Result[int]
	step = func(n int) bounce.Result[int] {
		if n == 50 {
			panic(errors.New("bounce 50"))
		}
		return bounce.More(func() bounce.Result[int] { return step(n + 1) })
	}
	o := bounce.Attempt(step(0))
	require.True(t, o.Failed())
	assert.ErrorContains(t, o.Err(), "bounce 50")
}

func TestRecover(t *testing.T) {
	handled := false
	got := bounce.Recover(
		bounce.More(func() bounce.Result[uint64] {
			panic(errors.New("lost the accumulator"))
		}),
		func(err error) bounce.Result[uint64] {
			handled = true
			return factorial(5, 1)
		},
	)
	assert.Equal(t, uint64(120), got)
	assert.True(t, handled)
}

func TestRecoverSuccessBypassesHandler(t *testing.T) {
	got := bounce.Recover(factorial(5, 1), func(error) bounce.Result[uint64] {
		t.Fatal("handler called for a successful evaluation")
		return bounce.Done(uint64(0))
	})
	assert.Equal(t, uint64(120), got)
}

func TestRecoverReplacementUnguarded(t *testing.T) {
	// The replacement computation's own panic propagates
	defer func() {
		if recover() == nil {
			t.Error("replacement panic did not propagate")
		}
	}()
	bounce.Recover(
		bounce.More(func() bounce.Result[int] { panic(errors.New("first")) }),
		func(error) bounce.Result[int] {
			return bounce.More(func() bounce.Result[int] { panic("second") })
		},
	)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Monad operations for trampolined computations.
//
// Minimal definition: Done (unit) and FlatMap are necessary and
// sufficient. Map and Then are derived operations kept as optimizations
// to avoid the intermediate Done-wrapping bind frame.
//
// All three are stack safe: on a pending input they push a frame onto
// the Result instead of wrapping its thunk, and the evaluator consumes
// frames iteratively. Arbitrarily long and arbitrarily nested chains
// evaluate with O(1) control stack.

// FlatMap sequences two trampolined computations (monadic bind).
// It evaluates r, then passes the terminal value to f to obtain the
// next computation.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.IsDone() {
		return f(r.value)
	}
	bf := &bindFrame{
		f: func(v erased) Result[erased] {
			return f(v.(A)).eraseResult()
		},
		next: returnFrame{},
	}
	src, fr := r.split()
	return Result[B]{src: src, frame: chainFrames(fr, bf)}
}

// Map applies a pure function to the terminal value of a computation.
//
// Allocation note: Map is equivalent to FlatMap(r, compose(Done, f))
// but pushes a value-to-value frame, avoiding the erased intermediate
// Result a bind frame constructs. Preferred when the transformation
// cannot itself bounce.
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.IsDone() {
		return Done(f(r.value))
	}
	mf := &mapFrame{
		f: func(v erased) erased {
			return f(v.(A))
		},
		next: returnFrame{},
	}
	src, fr := r.split()
	return Result[B]{src: src, frame: chainFrames(fr, mf)}
}

// Then sequences two computations, discarding the first terminal value.
// This is more efficient than FlatMap when the second computation does
// not depend on the first result.
func Then[A, B any](r Result[A], n Result[B]) Result[B] {
	if r.IsDone() {
		return n
	}
	tf := &thenFrame{
		second: n.eraseResult(),
		next:   returnFrame{},
	}
	src, fr := r.split()
	return Result[B]{src: src, frame: chainFrames(fr, tf)}
}

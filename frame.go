// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Defunctionalized combinator frames.
//
// A combinator must not reconstitute its nesting on the control stack:
// wrapping the input's thunk in one closure per combinator would make a
// single bounce of an n-deep chain call through n wrappers before any
// of them unwinds. Frames record the deferred applications as data on
// the Result instead, and the evaluator consumes them iteratively,
// re-associating nested chains as bookkeeping between bounces.

// erased marks a type-erased intermediate value in a frame chain.
// Concrete types are recovered via type assertions at frame boundaries.
type erased = any

// frame is the marker interface for deferred combinator applications.
// Dispatch uses type switches, not tags.
type frame interface {
	frame() // unexported marker method
}

// returnFrame is the empty chain: nothing left to apply.
type returnFrame struct{}

func (returnFrame) frame() {}

// bindFrame defers FlatMap: apply f to the terminal value to obtain
// the next computation.
type bindFrame struct {
	f    func(erased) Result[erased]
	next frame
}

func (*bindFrame) frame() {}

// mapFrame defers Map: transform the terminal value.
type mapFrame struct {
	f    func(erased) erased
	next frame
}

func (*mapFrame) frame() {}

// thenFrame defers Then: discard the terminal value and continue with
// the second computation.
type thenFrame struct {
	second Result[erased]
	next   frame
}

func (*thenFrame) frame() {}

// chainedFrame is a frame followed by more frames.
// This enables composing frame chains without mutation.
type chainedFrame struct {
	first frame
	rest  frame
}

func (*chainedFrame) frame() {}

// chainFrames links two frame chains together.
// returnFrame is the identity element for frame composition, so linking
// with it returns the other operand without allocating.
func chainFrames(first, second frame) frame {
	if _, ok := first.(returnFrame); ok {
		return second
	}
	if _, ok := second.(returnFrame); ok {
		return first
	}
	return &chainedFrame{first: first, rest: second}
}

// eraseResult converts a typed Result into its erased form. A pending
// thunk is wrapped so each bounce erases the next step as it is
// produced; the wrapper returns before the following bounce runs, so
// depth per bounce stays constant.
func (r Result[A]) eraseResult() Result[erased] {
	if r.frame != nil {
		return Result[erased]{src: r.src, frame: r.frame}
	}
	if r.thunk == nil {
		return Result[erased]{value: erased(r.value)}
	}
	t := r.thunk
	return Result[erased]{thunk: func() Result[erased] {
		return t().eraseResult()
	}}
}

// split separates a non-terminal Result into its erased source and the
// frames already pending over it.
func (r Result[A]) split() (*Result[erased], frame) {
	if r.frame != nil {
		return r.src, r.frame
	}
	t := r.thunk
	return &Result[erased]{thunk: func() Result[erased] {
		return t().eraseResult()
	}}, returnFrame{}
}

// surface hoists the frames of nested framed sources into the outer
// chain, leaving cur a plain value-or-thunk result. Inner frames apply
// before the frames already pending outside them.
func surface(cur Result[erased], fr frame) (Result[erased], frame) {
	for cur.frame != nil {
		fr = chainFrames(cur.frame, fr)
		cur = *cur.src
	}
	return cur, fr
}

// popFrame applies the first concrete frame in the chain to a terminal
// value. Nested chains are flattened iteratively first, so deeply
// left-nested chains re-associate without stack growth.
func popFrame(v erased, fr frame) (Result[erased], frame) {
	for {
		cf, ok := fr.(*chainedFrame)
		if !ok {
			break
		}
		if nested, ok := cf.first.(*chainedFrame); ok {
			fr = &chainedFrame{
				first: nested.first,
				rest:  chainFrames(nested.rest, cf.rest),
			}
			continue
		}
		break
	}
	if cf, ok := fr.(*chainedFrame); ok {
		cur, rest := applyFrame(v, cf.first)
		return cur, chainFrames(rest, cf.rest)
	}
	return applyFrame(v, fr)
}

// applyFrame applies a single non-chained frame to a terminal value.
func applyFrame(v erased, fr frame) (Result[erased], frame) {
	switch f := fr.(type) {
	case *mapFrame:
		return Result[erased]{value: f.f(v)}, f.next
	case *bindFrame:
		return f.f(v), f.next
	case *thenFrame:
		return f.second, f.next
	default:
		panic("bounce: unknown frame type")
	}
}

// advance performs exactly one bounce: one thunk invocation or one
// frame application. Surfacing nested sources and re-associating chains
// is bookkeeping and costs no bounce.
func (r Result[A]) advance() Result[A] {
	if r.frame == nil {
		return r.thunk()
	}
	cur, fr := surface(*r.src, r.frame)
	if cur.thunk != nil {
		return repack[A](cur.thunk(), fr)
	}
	cur, fr = popFrame(cur.value, fr)
	return repack[A](cur, fr)
}

// repack rebuilds a typed Result from an erased result and its
// remaining frames, recovering the typed terminal value once the chain
// is spent.
func repack[A any](cur Result[erased], fr frame) Result[A] {
	cur, fr = surface(cur, fr)
	if _, empty := fr.(returnFrame); empty {
		if cur.thunk == nil {
			return Done(cur.value.(A))
		}
		t := cur.thunk
		return Result[A]{thunk: func() Result[A] {
			return repack[A](t(), returnFrame{})
		}}
	}
	c := cur
	return Result[A]{src: &c, frame: fr}
}

// runFrames is the iterative evaluator for framed results: drive the
// source to a terminal value, then consume frames until the chain is
// spent. Control-stack use is O(1) regardless of chain length or
// nesting shape.
func runFrames(cur Result[erased], fr frame) erased {
	for {
		cur, fr = surface(cur, fr)
		if cur.thunk != nil {
			cur = cur.thunk()
			continue
		}
		if _, empty := fr.(returnFrame); empty {
			return cur.value
		}
		cur, fr = popFrame(cur.value, fr)
	}
}

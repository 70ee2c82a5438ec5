package vec

import "iter"

// Values returns a lazy, forward sequence of the live elements in index
// order. Every call starts a fresh single-pass walk over the vector's state
// at walk time. The vector must not be mutated while a walk is in progress:
// growth relocates the elements out from under it.
func (v *Vec[T]) Values() iter.Seq[T] {
	v.panicIfReleased()
	return func(yield func(T) bool) {
		n := v.len
		for i := 0; i < n; i++ {
			if !yield(*v.buf.slot(i)) {
				return
			}
		}
	}
}

// All returns the live elements with their indices, in index order. The
// mutation contract of Values applies.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	v.panicIfReleased()
	return func(yield func(int, T) bool) {
		n := v.len
		for i := 0; i < n; i++ {
			if !yield(i, *v.buf.slot(i)) {
				return
			}
		}
	}
}

// Backward returns the live elements with their indices, from the highest
// index down to zero. The mutation contract of Values applies.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	v.panicIfReleased()
	return func(yield func(int, T) bool) {
		for i := v.len - 1; i >= 0; i-- {
			if !yield(i, *v.buf.slot(i)) {
				return
			}
		}
	}
}

// Drain empties the vector and returns a sequence delivering the removed
// elements in index order. Ownership transfers when Drain is called: the
// length drops to zero immediately, each delivered element leaves a zeroed
// slot, and abandoning the walk early zeroes the undelivered remainder at
// that point. Capacity is kept. A sequence that is never walked leaves its
// elements in dead slots until the buffer is overwritten, cleared, or
// released.
func (v *Vec[T]) Drain() iter.Seq[T] {
	v.panicIfReleased()
	n := v.len
	s := v.buf.view(n)
	v.len = 0
	var zero T
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		walk := s
		s = nil
		for i := 0; i < n; i++ {
			out := walk[i]
			walk[i] = zero
			if !yield(out) {
				clear(walk[i+1:])
				return
			}
		}
	}
}

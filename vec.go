package vec

import "fmt"

// Vec is a growable, contiguous, index-addressable container that manages
// its own backing storage instead of delegating to append. Slots [0, Len)
// hold live values; slots [Len, Cap) are allocated but dead and are never
// read or handed out. Not goroutine-safe: a Vec has a single owner.
//
// The zero value is an empty vector ready for use.
type Vec[T any] struct {
	buf      rawBuf[T]
	len      int
	grows    int
	released bool
}

// New returns an empty vector. No memory is allocated until the first
// insertion.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.len
}

// Cap returns the number of allocated element slots. Cap is never below Len.
func (v *Vec[T]) Cap() int {
	return v.buf.cap
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.len == 0
}

// Push appends a value, doubling the buffer when it is full.
func (v *Vec[T]) Push(val T) {
	v.panicIfReleased()
	v.ensureSlot()
	*v.buf.slot(v.len) = val
	v.len++
}

// Pop removes and returns the last element. The second result is false when
// the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	v.panicIfReleased()
	var zero T
	if v.len == 0 {
		return zero, false
	}
	p := v.buf.slot(v.len - 1)
	out := *p
	*p = zero
	v.len--
	return out, true
}

// Insert places val at index i, shifting elements at [i, Len) one slot to
// the right. i == Len appends, exactly like Push. Panics when i is out of
// range; the vector is left unchanged.
func (v *Vec[T]) Insert(i int, val T) {
	v.panicIfReleased()
	if i < 0 || i > v.len {
		panic(fmt.Sprintf("vec: Insert index out of range [%d] with length %d", i, v.len))
	}
	v.ensureSlot()
	if i < v.len {
		s := v.buf.view(v.len + 1)
		copy(s[i+1:], s[i:v.len])
	}
	*v.buf.slot(i) = val
	v.len++
}

// Remove deletes and returns the element at index i, shifting elements at
// (i, Len) one slot to the left. The vacated slot is zeroed. Panics when i
// is out of range; the vector is left unchanged.
func (v *Vec[T]) Remove(i int) T {
	v.panicIfReleased()
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: Remove index out of range [%d] with length %d", i, v.len))
	}
	var zero T
	s := v.buf.view(v.len)
	out := s[i]
	copy(s[i:], s[i+1:])
	s[v.len-1] = zero
	v.len--
	return out
}

// Get returns the element at index i. Panics when i is out of range.
func (v *Vec[T]) Get(i int) T {
	v.panicIfReleased()
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: Get index out of range [%d] with length %d", i, v.len))
	}
	return *v.buf.slot(i)
}

// Set overwrites the element at index i. Panics when i is out of range.
func (v *Vec[T]) Set(i int, val T) {
	v.panicIfReleased()
	if i < 0 || i >= v.len {
		panic(fmt.Sprintf("vec: Set index out of range [%d] with length %d", i, v.len))
	}
	*v.buf.slot(i) = val
}

// Slice returns the live elements as a slice sharing the vector's storage.
// Writes through the slice write through to the vector. The slice is valid
// only until the next mutation: growth moves the elements to a new buffer
// and clears the old one.
func (v *Vec[T]) Slice() []T {
	v.panicIfReleased()
	return v.buf.view(v.len)
}

// Clear removes every element but keeps the allocated capacity for reuse.
// All vacated slots are zeroed.
func (v *Vec[T]) Clear() {
	v.panicIfReleased()
	clear(v.buf.view(v.len))
	v.len = 0
}

// Release zeroes every live slot in index order and drops the backing
// buffer. Release is idempotent; any other use of the vector afterwards
// panics.
func (v *Vec[T]) Release() {
	if v.released {
		return
	}
	clear(v.buf.view(v.len))
	v.buf.release()
	v.len = 0
	v.released = true
}

// ensureSlot makes room for one more element. Growth failures panic with an
// error wrapping ErrCapacityOverflow or ErrAllocationTooLarge; the vector is
// not modified.
func (v *Vec[T]) ensureSlot() {
	if v.len < v.buf.cap {
		return
	}
	if err := v.buf.grow(v.len); err != nil {
		panic(fmt.Errorf("vec: grow from %d slots: %w", v.buf.cap, err))
	}
	v.grows++
}

// panicIfReleased panics if the vector has been released.
func (v *Vec[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}

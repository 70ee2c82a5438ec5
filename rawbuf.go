package vec

import (
	"math"
	"unsafe"
)

// rawBuf owns a contiguous region of cap element slots. The region is
// allocated as a real []T so the collector sees pointers stored in slots,
// but length and liveness are tracked entirely by the owning Vec: the buffer
// itself knows nothing about which slots hold values. ptr is nil exactly
// when cap == 0.
type rawBuf[T any] struct {
	ptr unsafe.Pointer // base of the backing array
	cap int            // slots allocated, live or not
}

// grow replaces the region with one twice the size, or a single slot when no
// region exists yet, and moves the first live slots into it preserving order.
// The move takes ownership: after the copy the old live region is cleared, so
// every element is reachable from exactly one buffer. On error the buffer is
// left untouched.
func (b *rawBuf[T]) grow(live int) error {
	var zero T
	size := unsafe.Sizeof(zero)

	// Zero-sized elements occupy no memory. A single dummy slot backs every
	// index; a second grow means the owner ran the length up to MaxInt.
	if size == 0 {
		if b.cap != 0 {
			return ErrCapacityOverflow
		}
		b.ptr = unsafe.Pointer(unsafe.SliceData(make([]T, 1)))
		b.cap = math.MaxInt
		return nil
	}

	newCap := 1
	if b.cap > 0 {
		if b.cap > math.MaxInt/2 {
			return ErrCapacityOverflow
		}
		newCap = b.cap * 2
	}
	if uintptr(newCap) > math.MaxInt/size {
		return ErrAllocationTooLarge
	}

	next := make([]T, newCap)
	if live > 0 {
		old := unsafe.Slice((*T)(b.ptr), live)
		copy(next, old)
		clear(old)
	}
	b.ptr = unsafe.Pointer(unsafe.SliceData(next))
	b.cap = newCap
	return nil
}

// slot returns the address of slot i. The caller guarantees 0 <= i < cap.
func (b *rawBuf[T]) slot(i int) *T {
	var zero T
	return (*T)(unsafe.Add(b.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

// view reinterprets the first n slots as a []T. The caller guarantees
// n <= cap. The slice aliases the buffer: it is invalidated by the next
// grow or release.
func (b *rawBuf[T]) view(n int) []T {
	if n <= 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.ptr), n)
}

// release drops the region. All slots must already be dead.
func (b *rawBuf[T]) release() {
	b.ptr = nil
	b.cap = 0
}

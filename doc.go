// Package vec implements a growable, contiguous vector that manages its own
// backing memory.
//
// # Overview
//
// Vec is a dynamic array built directly on a raw element buffer rather than
// on append: capacity, growth, and the boundary between live and dead slots
// are managed explicitly. This is useful for:
//
//   - Code that needs a stable, inspectable growth policy (exact 2x doubling)
//   - Containers whose removed slots must not pin heap objects for the GC
//   - Insert/remove at arbitrary indices without slice-trick boilerplate
//   - Workloads that reuse one allocation across many fill/drain cycles
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Clean up when done
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(0, 0)   // [0 1 2]
//	x := v.Remove(1) // x = 1, v = [0 2]
//
//	for e := range v.Values() {
//		fmt.Println(e)
//	}
//
// The zero value is an empty vector ready for use.
//
// # Memory Layout
//
// The buffer is one contiguous region of Cap element slots. Slots [0, Len)
// hold live values; slots [Len, Cap) are allocated but dead. Dead slots are
// never read, never yielded by iteration, and are zeroed the instant a value
// leaves them, so the collector never sees stale references. Length is the
// sole liveness boundary: there are no per-slot flags.
//
// # Growth
//
// Growth is lazy. An insertion into a full vector allocates a new buffer of
// exactly twice the capacity (one slot for the bootstrap from empty), moves
// the live elements across in index order, and clears the old region. The
// capacity walk from empty is therefore 0, 1, 2, 4, 8, ... Size arithmetic
// is checked before allocating: a doubling that would overflow int panics
// with an error wrapping ErrCapacityOverflow, a byte size beyond the
// addressable range with one wrapping ErrAllocationTooLarge, and the vector
// is left untouched in both cases. Exhausting physical memory aborts the
// process, as any Go allocation does.
//
// # Thread Safety
//
// Vec is not goroutine-safe. It is designed for a single owner; concurrent
// mutation, or mutation during an iteration walk, is out of contract and
// must be prevented by the caller.
//
// # Releasing
//
// Release zeroes the live slots in index order and drops the buffer. Any
// use after Release panics. Releasing is optional, since an unreachable Vec
// is collected like any other Go value, but it promptly severs references
// held in live slots:
//
//	v := vec.New[*Conn]()
//	defer v.Release()
//
// Clear does the same for the slots while keeping the capacity for reuse.
//
// # Serialization
//
// Vec implements json.Marshaler/Unmarshaler (an empty vector encodes as [],
// never null) and yaml.Marshaler/Unmarshaler (a YAML sequence). Unmarshal
// replaces the contents.
//
// # Metrics
//
// The vector reports its live and reserved byte sizes, reallocation count,
// and utilization:
//
//	m := v.Metrics()
//	fmt.Printf("in use: %d of %d bytes\n", m.SizeInUse, m.CapacityBytes)
//	fmt.Printf("reallocations: %d\n", m.Grows)
package vec

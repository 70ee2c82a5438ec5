package vec

import "unsafe"

// SizeInUse returns the number of bytes held by live elements.
func (v *Vec[T]) SizeInUse() int {
	var zero T
	return v.len * int(unsafe.Sizeof(zero))
}

// CapacityBytes returns the number of bytes reserved by the backing buffer,
// live or not.
func (v *Vec[T]) CapacityBytes() int {
	var zero T
	return v.buf.cap * int(unsafe.Sizeof(zero))
}

// Grows returns the number of reallocations performed over the vector's
// lifetime, counting the bootstrap allocation.
func (v *Vec[T]) Grows() int {
	return v.grows
}

// Utilization returns the ratio of live slots to allocated slots (0.0 to
// 1.0). Returns 0.0 when nothing is allocated.
func (v *Vec[T]) Utilization() float64 {
	if v.buf.cap == 0 {
		return 0
	}
	return float64(v.len) / float64(v.buf.cap)
}

// Metrics returns a snapshot of vector statistics. A released vector
// reports zero sizes; Grows keeps its lifetime count.
func (v *Vec[T]) Metrics() VecMetrics {
	var zero T
	return VecMetrics{
		Len:           v.len,
		Cap:           v.buf.cap,
		ElemSize:      int(unsafe.Sizeof(zero)),
		SizeInUse:     v.SizeInUse(),
		CapacityBytes: v.CapacityBytes(),
		Grows:         v.grows,
		Utilization:   v.Utilization(),
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len           int     // live elements
	Cap           int     // allocated slots
	ElemSize      int     // bytes per slot
	SizeInUse     int     // bytes held by live elements
	CapacityBytes int     // bytes reserved by the backing buffer
	Grows         int     // reallocations performed
	Utilization   float64 // ratio of live to allocated slots (0.0-1.0)
}

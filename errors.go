package vec

import "errors"

// Growth failures. Operations that grow the buffer (Push, Insert) panic with
// one of these values wrapped in the panic message chain; recover and use
// errors.Is to distinguish them. The buffer is never resized, truncated, or
// otherwise touched once a failure is detected.
var (
	// ErrCapacityOverflow indicates doubling the capacity would overflow int.
	ErrCapacityOverflow = errors.New("vec: capacity overflow")

	// ErrAllocationTooLarge indicates the grown buffer would exceed the
	// maximum addressable byte size.
	ErrAllocationTooLarge = errors.New("vec: allocation too large")
)

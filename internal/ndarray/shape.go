package ndarray

import "fmt"

// Shape lists the length of each axis, outermost first.
type Shape []int

// NumElements returns the product of the axis lengths.
// The empty shape describes a single element held by a rank-0 array.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
// Zero-length axes are allowed; they only come from empty literals or ranges.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: invalid dimension at index %d: %d (must be >= 0)", ErrShape, i, dim)
		}
	}
	return nil
}

// Equal reports whether both shapes have the same rank and axis lengths.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i, dim := range s {
		if other[i] != dim {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares nothing with s.
func (s Shape) Clone() Shape {
	return append(Shape{}, s...)
}

// ComputeStrides returns, for each axis, how many buffer positions one step
// along that axis skips in row-major storage. The last axis always has
// stride 1.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

package ndarray

import "fmt"

// Array is an immutable, shaped, contiguous numeric buffer.
//
// Exactly one of ints or floats holds the data, selected by dtype.
// Data is stored in row-major order (last axis fastest).
//
// Example:
//
//	a, _ := ndarray.New([][]int{{1, 2}, {3, 4}})
//	b, _ := a.Reshape(4)
//	fmt.Println(b) // [1, 2, 3, 4]
type Array struct {
	shape  Shape
	stride []int
	dtype  DType
	ints   []int64
	floats []float64
}

// newArray wraps already-owned storage. Callers must not retain the slices.
func newArray(shape Shape, dtype DType, ints []int64, floats []float64) *Array {
	return &Array{
		shape:  shape,
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		ints:   ints,
		floats: floats,
	}
}

// FromInts creates an Int array from a flat slice. The slice is copied.
// With no shape the result is rank-1.
func FromInts(data []int64, shape ...int) (*Array, error) {
	s, err := flatShape(len(data), shape)
	if err != nil {
		return nil, err
	}
	return newArray(s, Int, append([]int64{}, data...), nil), nil
}

// FromFloats creates a Float array from a flat slice. The slice is copied.
// With no shape the result is rank-1.
func FromFloats(data []float64, shape ...int) (*Array, error) {
	s, err := flatShape(len(data), shape)
	if err != nil {
		return nil, err
	}
	return newArray(s, Float, nil, append([]float64{}, data...)), nil
}

func flatShape(n int, shape []int) (Shape, error) {
	if len(shape) == 0 {
		return Shape{n}, nil
	}
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.NumElements() != n {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrShape, s, s.NumElements(), n)
	}
	return s, nil
}

// Zeros creates an array of the given kind and shape filled with zeros.
func Zeros(dtype DType, shape ...int) (*Array, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if dtype == Int {
		return newArray(s, Int, make([]int64, s.NumElements()), nil), nil
	}
	return newArray(s, Float, nil, make([]float64, s.NumElements())), nil
}

// ZerosLike returns a zero-filled array with the shape and kind of a.
func ZerosLike(a *Array) *Array {
	z, _ := Zeros(a.dtype, a.shape...) //nolint:errcheck // a's shape is already valid.
	return z
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// DType returns the array's element kind.
func (a *Array) DType() DType {
	return a.dtype
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// Len returns the length of the leading axis, or 0 for a rank-0 array.
func (a *Array) Len() int {
	if len(a.shape) == 0 {
		return 0
	}
	return a.shape[0]
}

// Ints returns a copy of the data of an Int array.
// Float arrays are converted element by element, truncating toward zero.
func (a *Array) Ints() []int64 {
	if a.dtype == Int {
		return append([]int64{}, a.ints...)
	}
	out := make([]int64, len(a.floats))
	for i, v := range a.floats {
		out[i] = int64(v)
	}
	return out
}

// Floats returns a copy of the data as float64 values.
func (a *Array) Floats() []float64 {
	if a.dtype == Float {
		return append([]float64{}, a.floats...)
	}
	out := make([]float64, len(a.ints))
	for i, v := range a.ints {
		out[i] = float64(v)
	}
	return out
}

// scalarAt returns the element at linear position i.
func (a *Array) scalarAt(i int) Scalar {
	if a.dtype == Int {
		return IntScalar(a.ints[i])
	}
	return FloatScalar(a.floats[i])
}

// Reshape returns an array with the same data and kind but a different shape.
// The new shape must have the same number of elements.
//
// Example:
//
//	a, _ := ndarray.Arange(12)  // Shape: [12]
//	b, _ := a.Reshape(3, 4)     // Shape: [3, 4]
func (a *Array) Reshape(shape ...int) (*Array, error) {
	s := Shape(shape).Clone()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if len(s) == 0 || s.NumElements() != a.NumElements() {
		return nil, fmt.Errorf("%w: reshape: cannot reshape %v (%d elements) into %v",
			ErrShape, a.shape, a.NumElements(), s)
	}
	if a.dtype == Int {
		return newArray(s, Int, append([]int64{}, a.ints...), nil), nil
	}
	return newArray(s, Float, nil, append([]float64{}, a.floats...)), nil
}

// Equal reports whether both arrays have the same shape, kind and elements.
// Float elements are compared exactly, so a NaN element never matches
// another array's NaN. An array is always equal to itself.
func (a *Array) Equal(other *Array) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	if !a.shape.Equal(other.shape) || a.dtype != other.dtype {
		return false
	}
	if a.dtype == Int {
		for i, v := range a.ints {
			if other.ints[i] != v {
				return false
			}
		}
		return true
	}
	for i, v := range a.floats {
		if other.floats[i] != v {
			return false
		}
	}
	return true
}

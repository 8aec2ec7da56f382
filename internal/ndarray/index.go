package ndarray

import "fmt"

// Index returns the element or sub-array selected by indices.
//
// With one index per axis the result is a rank-0 array holding that element.
// With fewer indices the leading axes are fixed and the result has the
// remaining trailing shape. Since storage is row-major, the selection is
// always a contiguous run of the buffer, which is copied.
//
// Example:
//
//	a, _ := ndarray.New([][]int{{1, 2, 3}, {4, 5, 6}})
//	row, _ := a.Index([]int{1})     // [4, 5, 6]
//	elem, _ := a.Index([]int{1, 2}) // 6 (rank 0)
func (a *Array) Index(indices []int) (*Array, error) {
	start, err := a.offset(indices)
	if err != nil {
		return nil, err
	}

	rest := a.shape[len(indices):].Clone()
	n := rest.NumElements()
	if a.dtype == Int {
		return newArray(rest, Int, append([]int64{}, a.ints[start:start+n]...), nil), nil
	}
	return newArray(rest, Float, nil, append([]float64{}, a.floats[start:start+n]...)), nil
}

// At is the variadic form of Index: a.At(1, 2) == a.Index([]int{1, 2}).
func (a *Array) At(indices ...int) (*Array, error) {
	return a.Index(indices)
}

// Item returns the scalar at a full multi-index.
// A rank-0 array takes no indices.
func (a *Array) Item(indices ...int) (Scalar, error) {
	if len(indices) != len(a.shape) {
		return Scalar{}, fmt.Errorf("%w: expected %d indices, got %d", ErrShape, len(a.shape), len(indices))
	}
	off, err := a.offset(indices)
	if err != nil {
		return Scalar{}, err
	}
	return a.scalarAt(off), nil
}

// offset flattens a (possibly partial) multi-index into a linear position.
func (a *Array) offset(indices []int) (int, error) {
	if len(indices) > len(a.shape) {
		return 0, fmt.Errorf("%w: too many indices: %d for array of rank %d", ErrShape, len(indices), len(a.shape))
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for axis %d (size %d)", ErrIndex, idx, i, a.shape[i])
		}
		off += idx * a.stride[i]
	}
	return off, nil
}

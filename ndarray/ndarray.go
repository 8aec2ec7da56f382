// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/rnumpy/internal/ndarray"
	"github.com/born-ml/rnumpy/internal/parallel"
)

// Array is an immutable N-dimensional numeric array.
type Array = ndarray.Array

// Shape represents the dimensions of an array.
// Example: Shape{2, 3} is a 2×3 matrix.
type Shape = ndarray.Shape

// DType is the element kind of an array.
type DType = ndarray.DType

// Element kinds.
const (
	Int   DType = ndarray.Int
	Float DType = ndarray.Float
)

// Scalar is a single element returned by Array.Item.
type Scalar = ndarray.Scalar

// Number is the set of Go types accepted by Arange.
type Number = ndarray.Number

// LinspaceOption configures Linspace.
type LinspaceOption = ndarray.LinspaceOption

// ParallelConfig controls how element-wise kernels split work.
type ParallelConfig = parallel.Config

// Error kinds.
var (
	ErrShape          = ndarray.ErrShape
	ErrIndex          = ndarray.ErrIndex
	ErrValue          = ndarray.ErrValue
	ErrDivisionByZero = ndarray.ErrDivisionByZero
	ErrType           = ndarray.ErrType
)

// New creates an array from a nested sequence such as [][]int{{1, 2}, {3, 4}}.
func New(v any) (*Array, error) {
	return ndarray.New(v)
}

// Parse creates an array from a nested JSON list.
func Parse(data []byte) (*Array, error) {
	return ndarray.Parse(data)
}

// FromInts creates an Int array from flat data and an optional shape.
func FromInts(data []int64, shape ...int) (*Array, error) {
	return ndarray.FromInts(data, shape...)
}

// FromFloats creates a Float array from flat data and an optional shape.
func FromFloats(data []float64, shape ...int) (*Array, error) {
	return ndarray.FromFloats(data, shape...)
}

// Zeros creates a zero-filled array.
func Zeros(dtype DType, shape ...int) (*Array, error) {
	return ndarray.Zeros(dtype, shape...)
}

// ZerosLike creates a zero-filled array with the shape and kind of a.
func ZerosLike(a *Array) *Array {
	return ndarray.ZerosLike(a)
}

// IntScalar returns an Int scalar.
func IntScalar(v int64) Scalar {
	return ndarray.IntScalar(v)
}

// FloatScalar returns a Float scalar.
func FloatScalar(v float64) Scalar {
	return ndarray.FloatScalar(v)
}

// Arange creates a rank-1 array over [start, stop).
//
//	Arange(stop)              // start = 0, step = 1
//	Arange(start, stop)       // step = 1
//	Arange(start, stop, step) // step != 0
//
// Integer T yields an Int array, float T a Float array.
func Arange[T Number](bounds ...T) (*Array, error) {
	return ndarray.Arange(bounds...)
}

// Linspace creates num evenly spaced Float samples between start and stop.
func Linspace(start, stop float64, num int, opts ...LinspaceOption) (*Array, error) {
	return ndarray.Linspace(start, stop, num, opts...)
}

// WithEndpoint controls whether Linspace includes stop (default true).
func WithEndpoint(endpoint bool) LinspaceOption {
	return ndarray.WithEndpoint(endpoint)
}

// SetParallelConfig replaces the chunking config of element-wise kernels.
func SetParallelConfig(cfg ParallelConfig) {
	ndarray.SetParallelConfig(cfg)
}

// DefaultParallelConfig returns the CPU-count based default config.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Package ndarray implements a minimal N-dimensional array engine.
package ndarray

import (
	"fmt"
	"math"
	"strconv"
)

// DType is the element kind of an Array.
// It is decided once at construction and never changes.
type DType int

// Supported element kinds.
const (
	Int DType = iota
	Float
)

// String returns a human-readable name for the data type.
func (dt DType) String() string {
	switch dt {
	case Int:
		return "int64"
	case Float:
		return "float64"
	default:
		return "unknown"
	}
}

// promote returns the result kind of a binary operation.
func promote(a, b DType) DType {
	if a == Float || b == Float {
		return Float
	}
	return Int
}

// Scalar is a single dtype-tagged element.
type Scalar struct {
	dtype DType
	i     int64
	f     float64
}

// IntScalar returns an Int scalar.
func IntScalar(v int64) Scalar {
	return Scalar{dtype: Int, i: v}
}

// FloatScalar returns a Float scalar.
func FloatScalar(v float64) Scalar {
	return Scalar{dtype: Float, f: v}
}

// DType returns the scalar's element kind.
func (s Scalar) DType() DType {
	return s.dtype
}

// Int returns the value as int64, truncating floats toward zero.
func (s Scalar) Int() int64 {
	if s.dtype == Float {
		return int64(s.f)
	}
	return s.i
}

// Float returns the value as float64.
func (s Scalar) Float() float64 {
	if s.dtype == Int {
		return float64(s.i)
	}
	return s.f
}

// Equal reports whether both scalars have the same kind and value.
func (s Scalar) Equal(other Scalar) bool {
	if s.dtype != other.dtype {
		return false
	}
	if s.dtype == Int {
		return s.i == other.i
	}
	return s.f == other.f
}

// String formats the scalar. Floats always carry a fractional part.
func (s Scalar) String() string {
	if s.dtype == Int {
		return strconv.FormatInt(s.i, 10)
	}
	return formatFloat(s.f)
}

func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Sprint(f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e16 {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

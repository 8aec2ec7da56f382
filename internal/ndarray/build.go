package ndarray

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

var jsonNumberType = reflect.TypeOf(json.Number(""))

// New creates an array from a nested Go sequence.
//
// Any mix of slices, arrays and []any is accepted; leaves may be any Go
// integer or float kind, or json.Number. Rank and shape are taken from the
// nesting, which must be rectangular. If every leaf is an integer the array
// is Int; a single float leaf makes the whole array Float. An empty literal
// yields a Float array of shape [0].
//
// Example:
//
//	a, err := ndarray.New([][]float64{{1, 2}, {3, 4}}) // Shape: [2, 2], Float
//	b, err := ndarray.New([]any{1, 2.5})              // Shape: [2], Float
func New(v any) (*Array, error) {
	rv := reflect.ValueOf(v)
	if !isSequence(rv) {
		return nil, fmt.Errorf("%w: expected a sequence, got %T", ErrShape, v)
	}

	b := &builder{leafDepth: -1}
	if err := b.walk(rv, 0); err != nil {
		return nil, err
	}

	shape := b.shape
	if b.leafDepth < 0 {
		// No leaves: every innermost sequence was empty.
		return newArray(shape, Float, nil, make([]float64, 0)), nil
	}
	if b.dtype == Int {
		return newArray(shape, Int, b.ints, nil), nil
	}
	return newArray(shape, Float, nil, b.floats), nil
}

// builder validates rectangularity and flattens leaves in a single
// depth-first pass.
type builder struct {
	shape     Shape
	leafDepth int // depth at which scalars live, -1 until the first one
	dtype     DType
	ints      []int64
	floats    []float64
}

func (b *builder) walk(v reflect.Value, depth int) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return fmt.Errorf("%w: nil element at depth %d", ErrType, depth)
		}
		v = v.Elem()
	}

	if !isSequence(v) {
		return b.leaf(v, depth)
	}

	if b.leafDepth >= 0 && depth >= b.leafDepth {
		return fmt.Errorf("%w: ragged nesting: sequence found at depth %d where scalars were expected", ErrShape, depth)
	}

	n := v.Len()
	switch {
	case depth == len(b.shape):
		b.shape = append(b.shape, n)
	case b.shape[depth] != n:
		return fmt.Errorf("%w: ragged nesting: length %d at depth %d, expected %d", ErrShape, n, depth, b.shape[depth])
	}

	for i := 0; i < n; i++ {
		if err := b.walk(v.Index(i), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) leaf(v reflect.Value, depth int) error {
	if len(b.shape) != depth || (b.leafDepth >= 0 && b.leafDepth != depth) {
		return fmt.Errorf("%w: ragged nesting: scalar found at depth %d", ErrShape, depth)
	}
	if b.leafDepth < 0 {
		b.leafDepth = depth
		b.dtype = Int
	}

	s, err := scalarOf(v)
	if err != nil {
		return err
	}

	if s.dtype == Float && b.dtype == Int {
		// First float leaf: coerce everything collected so far.
		b.dtype = Float
		b.floats = make([]float64, len(b.ints), cap(b.ints)+1)
		for i, x := range b.ints {
			b.floats[i] = float64(x)
		}
		b.ints = nil
	}

	if b.dtype == Int {
		b.ints = append(b.ints, s.i)
	} else {
		b.floats = append(b.floats, s.Float())
	}
	return nil
}

func scalarOf(v reflect.Value) (Scalar, error) {
	if v.Type() == jsonNumberType {
		return parseNumber(json.Number(v.String()))
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntScalar(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return Scalar{}, fmt.Errorf("%w: %d overflows int64", ErrValue, u)
		}
		return IntScalar(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FloatScalar(v.Float()), nil
	default:
		return Scalar{}, fmt.Errorf("%w: unsupported element type %s", ErrType, v.Type())
	}
}

// parseNumber keeps integer literals as Int and anything with a fraction or
// exponent as Float.
func parseNumber(n json.Number) (Scalar, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		i, err := n.Int64()
		if err == nil {
			return IntScalar(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Scalar{}, fmt.Errorf("%w: invalid number %q", ErrType, n.String())
	}
	return FloatScalar(f), nil
}

func isSequence(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

package ndarray

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// String renders the array as nested brackets, e.g. [[1, 2], [3, 4]].
// Float elements always carry a fractional part.
func (a *Array) String() string {
	var sb strings.Builder
	a.writeNested(&sb, 0, 0, ", ")
	return sb.String()
}

// GoString renders the array as Array([...]).
func (a *Array) GoString() string {
	return "Array(" + a.String() + ")"
}

// MarshalJSON encodes the array as a nested JSON list.
// Float elements keep a fractional part so the kind survives a round trip.
func (a *Array) MarshalJSON() ([]byte, error) {
	for _, f := range a.floats {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: cannot encode %v as JSON", ErrValue, f)
		}
	}

	var sb strings.Builder
	a.writeNested(&sb, 0, 0, ",")
	return []byte(sb.String()), nil
}

// UnmarshalJSON decodes a nested JSON list. Integer literals produce an Int
// array; any literal with a fraction or exponent makes it Float.
func (a *Array) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// Parse builds an array from a nested JSON list such as [[1, 2], [3, 4]].
// A bare number parses as a rank-0 array, the form MarshalJSON writes for
// the result of a full index.
func Parse(data []byte) (*Array, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrType, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: parse: trailing data after array literal", ErrType)
	}

	if n, ok := v.(json.Number); ok {
		sc, err := parseNumber(n)
		if err != nil {
			return nil, err
		}
		if sc.dtype == Int {
			return newArray(Shape{}, Int, []int64{sc.i}, nil), nil
		}
		return newArray(Shape{}, Float, nil, []float64{sc.f}), nil
	}
	return New(v)
}

func (a *Array) writeNested(sb *strings.Builder, axis, off int, sep string) {
	if axis == len(a.shape) {
		sb.WriteString(a.scalarAt(off).String())
		return
	}

	sb.WriteByte('[')
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(sep)
		}
		a.writeNested(sb, axis+1, off+i*a.stride[axis], sep)
	}
	sb.WriteByte(']')
}

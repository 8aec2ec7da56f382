package ndarray

import (
	"fmt"
	"math"
)

// Number is the set of Go types accepted by Arange.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Arange creates a rank-1 array over the half-open range [start, stop).
//
// Bounds follow the usual range overloads:
//
//	Arange(stop)              // start = 0, step = 1
//	Arange(start, stop)       // step = 1
//	Arange(start, stop, step) // step may be negative, never zero
//
// Integer T yields an Int array, float T a Float array. An empty range
// yields shape [0]. Unsigned bounds above math.MaxInt64 and ranges longer
// than 1<<40 elements fail with ErrValue.
//
// Example:
//
//	a, _ := ndarray.Arange(3)        // [0, 1, 2]
//	b, _ := ndarray.Arange(3, 7, 2)  // [3, 5]
//	c, _ := ndarray.Arange(0.0, 1.0, 0.25) // [0.0, 0.25, 0.5, 0.75]
func Arange[T Number](bounds ...T) (*Array, error) {
	var start, stop, step T
	step = 1
	switch len(bounds) {
	case 1:
		stop = bounds[0]
	case 2:
		start, stop = bounds[0], bounds[1]
	case 3:
		start, stop, step = bounds[0], bounds[1], bounds[2]
	default:
		return nil, fmt.Errorf("%w: arange: expected 1 to 3 bounds, got %d", ErrValue, len(bounds))
	}
	if step == 0 {
		return nil, fmt.Errorf("%w: arange: step must not be zero", ErrValue)
	}

	half := 0.5
	if T(half) != 0 {
		return arangeFloat(float64(start), float64(stop), float64(step))
	}

	// Unsigned bounds must fit in int64 like any other Int element.
	var zero T
	if zero-1 > 0 {
		for _, b := range []T{start, stop, step} {
			if uint64(b) > math.MaxInt64 {
				return nil, fmt.Errorf("%w: arange: bound %d overflows int64", ErrValue, uint64(b))
			}
		}
	}
	return arangeInt(int64(start), int64(stop), int64(step))
}

// maxArangeLen bounds the number of samples a range may produce.
const maxArangeLen uint64 = 1 << 40

func checkArangeLen(n uint64) (int, error) {
	if n > maxArangeLen || n > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: arange: range of %d elements is too large", ErrValue, n)
	}
	return int(n), nil
}

func arangeInt(start, stop, step int64) (*Array, error) {
	// Differences are taken in uint64 so that spans wider than int64 do not wrap.
	var n uint64
	switch {
	case step > 0 && stop > start:
		n = (uint64(stop)-uint64(start)-1)/uint64(step) + 1
	case step < 0 && start > stop:
		n = (uint64(start)-uint64(stop)-1)/(0-uint64(step)) + 1
	}
	size, err := checkArangeLen(n)
	if err != nil {
		return nil, err
	}

	// Every sample lies between start and stop, so wrapping additions
	// still land on the right value.
	data := make([]int64, size)
	v := start
	for i := range data {
		data[i] = v
		v += step
	}
	return newArray(Shape{size}, Int, data, nil), nil
}

func arangeFloat(start, stop, step float64) (*Array, error) {
	span := math.Ceil((stop - start) / step)
	if math.IsNaN(span) || math.IsInf(span, 0) {
		return nil, fmt.Errorf("%w: arange: invalid bounds %v, %v, %v", ErrValue, start, stop, step)
	}

	var n uint64
	if span > 0 {
		if span > float64(maxArangeLen) {
			return nil, fmt.Errorf("%w: arange: range of %v elements is too large", ErrValue, span)
		}
		n = uint64(span)
	}
	size, err := checkArangeLen(n)
	if err != nil {
		return nil, err
	}

	data := make([]float64, size)
	for i := range data {
		data[i] = start + float64(i)*step
	}
	return newArray(Shape{size}, Float, nil, data), nil
}

// LinspaceOption configures Linspace.
type LinspaceOption func(*linspaceOptions)

type linspaceOptions struct {
	endpoint bool
}

// WithEndpoint controls whether stop is the last sample (default true).
func WithEndpoint(endpoint bool) LinspaceOption {
	return func(o *linspaceOptions) {
		o.endpoint = endpoint
	}
}

// Linspace creates a rank-1 Float array of num evenly spaced samples.
//
// With the endpoint (the default) the spacing is (stop-start)/(num-1) and the
// last sample is exactly stop. Without it the spacing is (stop-start)/num and
// stop is excluded. num must be at least 1; a single sample is [start].
//
// Example:
//
//	a, _ := ndarray.Linspace(1, 10, 10)                     // [1.0, 2.0, ..., 10.0]
//	b, _ := ndarray.Linspace(0, 1, 4, ndarray.WithEndpoint(false)) // [0.0, 0.25, 0.5, 0.75]
func Linspace(start, stop float64, num int, opts ...LinspaceOption) (*Array, error) {
	options := &linspaceOptions{endpoint: true}
	for _, opt := range opts {
		opt(options)
	}
	if num < 1 {
		return nil, fmt.Errorf("%w: linspace: num must be >= 1, got %d", ErrValue, num)
	}

	div := num
	if options.endpoint {
		div = num - 1
	}

	data := make([]float64, num)
	data[0] = start
	if div > 0 {
		step := (stop - start) / float64(div)
		for i := 1; i < num; i++ {
			data[i] = start + float64(i)*step
		}
		if options.endpoint {
			data[num-1] = stop
		}
	}
	return newArray(Shape{num}, Float, nil, data), nil
}

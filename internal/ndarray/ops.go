package ndarray

import (
	"fmt"
	"sync/atomic"

	"github.com/born-ml/rnumpy/internal/parallel"
)

var parallelConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelConfig.Store(&cfg)
}

// SetParallelConfig replaces the chunking config used by elementwise kernels.
func SetParallelConfig(cfg parallel.Config) {
	parallelConfig.Store(&cfg)
}

// ParallelConfig returns the chunking config used by elementwise kernels.
func ParallelConfig() parallel.Config {
	return *parallelConfig.Load()
}

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

func (op binaryOp) String() string {
	switch op {
	case opAdd:
		return "add"
	case opSub:
		return "sub"
	case opMul:
		return "mul"
	case opDiv:
		return "div"
	default:
		return "unknown"
	}
}

// Add performs element-wise addition. Shapes must match exactly.
//
// Example:
//
//	a, _ := ndarray.New([]float64{1, 2})
//	b, _ := ndarray.New([]float64{3, 4})
//	c, _ := a.Add(b) // [4.0, 6.0]
func (a *Array) Add(other *Array) (*Array, error) {
	return a.binary(other, opAdd)
}

// Sub performs element-wise subtraction.
func (a *Array) Sub(other *Array) (*Array, error) {
	return a.binary(other, opSub)
}

// Mul performs element-wise multiplication.
func (a *Array) Mul(other *Array) (*Array, error) {
	return a.binary(other, opMul)
}

// Div performs element-wise division.
//
// Int / Int truncates toward zero and stays Int; if either side is Float the
// division is real-valued. Any zero in the divisor fails with
// ErrDivisionByZero before anything is computed.
func (a *Array) Div(other *Array) (*Array, error) {
	return a.binary(other, opDiv)
}

func (a *Array) binary(other *Array, op binaryOp) (*Array, error) {
	if !a.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %s: arrays don't have the same shape: %v vs %v", ErrShape, op, a.shape, other.shape)
	}

	cfg := ParallelConfig()
	n := a.NumElements()
	if op == opDiv {
		if err := other.checkNonZero(cfg); err != nil {
			return nil, err
		}
	}

	shape := a.shape.Clone()
	if promote(a.dtype, other.dtype) == Int {
		dst := make([]int64, n)
		parallel.Range(n, cfg, func(lo, hi int) {
			intKernel(op, dst[lo:hi], a.ints[lo:hi], other.ints[lo:hi])
		})
		return newArray(shape, Int, dst, nil), nil
	}

	x, y := a.asFloats(), other.asFloats()
	dst := make([]float64, n)
	parallel.Range(n, cfg, func(lo, hi int) {
		floatKernel(op, dst[lo:hi], x[lo:hi], y[lo:hi])
	})
	return newArray(shape, Float, nil, dst), nil
}

// asFloats returns the float data, converting Int data to a fresh buffer.
// The result must not be modified.
func (a *Array) asFloats() []float64 {
	if a.dtype == Float {
		return a.floats
	}
	return a.Floats()
}

func (a *Array) checkNonZero(cfg parallel.Config) error {
	return parallel.RangeErr(a.NumElements(), cfg, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if (a.dtype == Int && a.ints[i] == 0) || (a.dtype == Float && a.floats[i] == 0) {
				return fmt.Errorf("%w: divisor is zero at position %d", ErrDivisionByZero, i)
			}
		}
		return nil
	})
}

func intKernel(op binaryOp, dst, a, b []int64) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case opSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case opMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case opDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	}
}

func floatKernel(op binaryOp, dst, a, b []float64) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case opSub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case opMul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case opDiv:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	}
}

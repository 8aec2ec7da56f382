// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a minimal N-dimensional numeric array.
//
// # Overview
//
// An Array is an immutable, contiguous, row-major buffer with a shape and a
// fixed element kind (Int or Float). This package provides:
//   - Construction from nested Go sequences with shape inference
//   - Reshape and multi-index access
//   - Element-wise Add, Sub, Mul, Div on arrays of identical shape
//   - Exact structural equality
//   - Range generators: Arange and Linspace
//
// # Basic Usage
//
//	import "github.com/born-ml/rnumpy/ndarray"
//
//	func main() {
//	    x, _ := ndarray.New([][]int{{1, 2}, {3, 4}})
//	    y, _ := ndarray.New([][]int{{2, 1}, {3, 4}})
//
//	    q, _ := x.Div(y)       // [[0, 2], [1, 1]] (integer division)
//	    row, _ := q.At(0)      // [0, 2]
//	    v, _ := q.Item(1, 1)   // 1
//	}
//
// # Element Kinds
//
// The kind is inferred once at construction. Integer leaves give an Int
// array; any float leaf makes the whole array Float. Arithmetic between two
// Int arrays stays Int (division truncates toward zero); anything involving
// a Float array is Float.
//
// # Errors
//
// Every error wraps one of ErrShape, ErrIndex, ErrValue, ErrDivisionByZero
// or ErrType. Use errors.Is to match them.
//
// # Concurrency
//
// Arrays are never modified after construction, so they can be shared
// between goroutines freely. Large element-wise operations are split across
// workers according to SetParallelConfig.
package ndarray

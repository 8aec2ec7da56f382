package ndarray

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		shape  Shape
		dtype  DType
		ints   []int64
		floats []float64
	}{
		{"int rank1", []int{1, 2, 3}, Shape{3}, Int, []int64{1, 2, 3}, nil},
		{"float rank1", []float64{1, 2, 3}, Shape{3}, Float, nil, []float64{1, 2, 3}},
		{"single int", []int{1}, Shape{1}, Int, []int64{1}, nil},
		{"int rank2", [][]int{{1, 2}, {3, 4}, {5, 6}}, Shape{3, 2}, Int, []int64{1, 2, 3, 4, 5, 6}, nil},
		{"float rank2", [][]float64{{1, 2}, {3, 4}}, Shape{2, 2}, Float, nil, []float64{1, 2, 3, 4}},
		{"any nested", []any{[]any{1, 2}, []any{3, 4}}, Shape{2, 2}, Int, []int64{1, 2, 3, 4}, nil},
		{"mixed coerces to float", []any{1, 2.5, 3}, Shape{3}, Float, nil, []float64{1, 2.5, 3}},
		{"late float coerces", []any{[]any{1, 2}, []any{3, 4.0}}, Shape{2, 2}, Float, nil, []float64{1, 2, 3, 4}},
		{"rank3", [][][]int32{{{1}, {2}}, {{3}, {4}}}, Shape{2, 2, 1}, Int, []int64{1, 2, 3, 4}, nil},
		{"go array", [2][3]uint8{{1, 2, 3}, {4, 5, 6}}, Shape{2, 3}, Int, []int64{1, 2, 3, 4, 5, 6}, nil},
		{"float32 leaves", []float32{0.5, 1.5}, Shape{2}, Float, nil, []float64{0.5, 1.5}},
		{"json numbers", []any{json.Number("1"), json.Number("2")}, Shape{2}, Int, []int64{1, 2}, nil},
		{"json float numbers", []any{json.Number("1.0"), json.Number("2")}, Shape{2}, Float, nil, []float64{1, 2}},
		{"empty", []any{}, Shape{0}, Float, nil, []float64{}},
		{"empty rows", [][]int{{}, {}}, Shape{2, 0}, Float, nil, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.input)
			require.NoError(t, err)

			assertEqualShape(t, tt.shape, a.Shape())
			assert.Equal(t, tt.dtype, a.DType())
			assert.Equal(t, tt.shape.NumElements(), a.NumElements())
			if tt.dtype == Int {
				if diff := cmp.Diff(tt.ints, a.Ints()); diff != "" {
					t.Errorf("data mismatch (-want +got):\n%s", diff)
				}
			} else {
				if diff := cmp.Diff(tt.floats, a.Floats()); diff != "" {
					t.Errorf("data mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  error
	}{
		{"ragged lengths", [][]int{{1, 2}, {3}}, ErrShape},
		{"ragged depth", []any{[]any{1}, 2}, ErrShape},
		{"scalar then sequence", []any{1, []any{2}}, ErrShape},
		{"deeper sibling", []any{[]any{1}, []any{[]any{2}}}, ErrShape},
		{"empty then full", []any{[]any{}, []any{1}}, ErrShape},
		{"not a sequence", 5, ErrShape},
		{"nil", nil, ErrShape},
		{"string leaf", []any{"a"}, ErrType},
		{"bool leaf", []bool{true}, ErrType},
		{"nil leaf", []any{1, nil}, ErrType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.input)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	a := mustNew(t, src)
	src[0] = 100

	v, err := a.Item(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int())
}

func TestFromSlices(t *testing.T) {
	a, err := FromInts([]int64{1, 2, 3, 4}, 2, 2)
	require.NoError(t, err)
	assertArrayEqual(t, mustNew(t, [][]int{{1, 2}, {3, 4}}), a)

	f, err := FromFloats([]float64{1, 2, 3})
	require.NoError(t, err)
	assertArrayEqual(t, mustNew(t, []float64{1, 2, 3}), f)

	_, err = FromInts([]int64{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrShape)

	_, err = FromFloats([]float64{1, 2}, -1, -2)
	assert.ErrorIs(t, err, ErrShape)
}

func TestZeros(t *testing.T) {
	z, err := Zeros(Int, 2, 3)
	require.NoError(t, err)
	assertEqualShape(t, Shape{2, 3}, z.Shape())
	assert.Equal(t, make([]int64, 6), z.Ints())

	_, err = Zeros(Float, 2, -3)
	assert.ErrorIs(t, err, ErrShape)
}

func TestZerosLikeIsSelfDifference(t *testing.T) {
	for _, a := range []*Array{
		mustNew(t, [][]int{{1, -2}, {3, 4}}),
		mustNew(t, [][]float64{{1.5, 2}, {-3, 4}}),
		mustNew(t, []int{7}),
	} {
		diff, err := a.Sub(a)
		require.NoError(t, err)
		assertArrayEqual(t, ZerosLike(a), diff)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	a := mustNew(t, [][]int{{1, 2}, {3, 4}})

	s := a.Shape()
	s[0] = 99
	assertEqualShape(t, Shape{2, 2}, a.Shape())

	d := a.Ints()
	d[0] = 99
	assert.Equal(t, []int64{1, 2, 3, 4}, a.Ints())

	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, 2, a.Len())
}

func TestReshape(t *testing.T) {
	x := mustReshape(t, mustNew(t, []float64{1.0, 2.0, 3.0, 4.0}), 2, 2)
	assertEqualShape(t, Shape{2, 2}, x.Shape())
	assert.Equal(t, Float, x.DType())
	assert.Equal(t, []float64{1, 2, 3, 4}, x.Floats())

	y := mustReshape(t, x, 4, 1)
	assertEqualShape(t, Shape{4, 1}, y.Shape())
	assertEqualShape(t, Shape{2, 2}, x.Shape())

	_, err := x.Reshape(3)
	assert.ErrorIs(t, err, ErrShape)
	_, err = x.Reshape(-2, -2)
	assert.ErrorIs(t, err, ErrShape)
	_, err = x.Reshape()
	assert.ErrorIs(t, err, ErrShape)
}

func TestReshapeRoundTrip(t *testing.T) {
	for _, v := range []any{
		[]int{1, 2, 3},
		[][]float64{{1, 2, 3}, {4, 5, 6}},
		[][][]int{{{1, 2}}, {{3, 4}}, {{5, 6}}},
	} {
		a := mustNew(t, v)
		assertArrayEqual(t, a, mustReshape(t, a, a.Shape()...))
	}
}

func TestEqual(t *testing.T) {
	x := mustNew(t, []int{1, 2, 3, 4})
	y := mustNew(t, []int{1, 2, 3, 4})
	z := mustNew(t, []float64{1.0, 2.0, 3.0, 4.0})

	assert.True(t, x.Equal(y))
	assert.True(t, y.Equal(x))
	assert.True(t, x.Equal(x))
	assert.False(t, x.Equal(z), "int and float arrays must differ")
	assert.False(t, z.Equal(x))

	x2 := mustReshape(t, x, 2, 2)
	y2 := mustReshape(t, y, 2, 2)
	assert.True(t, x2.Equal(y2))

	y4 := mustReshape(t, y2, 4)
	assert.False(t, x2.Equal(y4), "different shapes must differ")

	assert.False(t, x.Equal(mustNew(t, []int{1, 2, 3, 5})))
	assert.False(t, x.Equal(nil))
	assert.True(t, (*Array)(nil).Equal(nil))
}

func TestEqualNaN(t *testing.T) {
	a := mustNew(t, []float64{1, math.NaN()})
	b := mustNew(t, []float64{1, math.NaN()})

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}

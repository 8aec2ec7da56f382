package ndarray

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{[]int{1, 2, 3}, "[1, 2, 3]"},
		{[][]int{{1, 2}, {3, 4}}, "[[1, 2], [3, 4]]"},
		{[]float64{1, 2.5}, "[1.0, 2.5]"},
		{[][][]int{{{1}}, {{2}}}, "[[[1]], [[2]]]"},
		{[]any{}, "[]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, mustNew(t, tt.input).String())
	}

	assert.Equal(t, "Array([1, 2])", mustNew(t, []int{1, 2}).GoString())
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "-4", IntScalar(-4).String())
	assert.Equal(t, "10.0", FloatScalar(10).String())
	assert.Equal(t, "0.1", FloatScalar(0.1).String())
	assert.Equal(t, "1e+20", FloatScalar(1e20).String())
	assert.Equal(t, "NaN", FloatScalar(math.NaN()).String())
}

func TestParse(t *testing.T) {
	a, err := Parse([]byte(`[[1, 2], [3, 4]]`))
	require.NoError(t, err)
	assertArrayEqual(t, mustNew(t, [][]int{{1, 2}, {3, 4}}), a)

	f, err := Parse([]byte(`[1.0, 2, 3e0]`))
	require.NoError(t, err)
	assertArrayEqual(t, mustNew(t, []float64{1, 2, 3}), f)

	_, err = Parse([]byte(`[[1, 2], [3]]`))
	assert.ErrorIs(t, err, ErrShape)

	_, err = Parse([]byte(`[1, 2`))
	assert.ErrorIs(t, err, ErrType)

	_, err = Parse([]byte(`[1] [2]`))
	assert.ErrorIs(t, err, ErrType)

	_, err = Parse([]byte(`["a"]`))
	assert.ErrorIs(t, err, ErrType)
}

func TestJSONRoundTripKeepsDType(t *testing.T) {
	for _, a := range []*Array{
		mustNew(t, [][]int{{1, 2}, {3, 4}}),
		mustNew(t, [][]float64{{1, 2}, {3, 4.5}}),
		mustNew(t, []float64{1e20, -0.125}),
	} {
		data, err := json.Marshal(a)
		require.NoError(t, err)

		var back Array
		require.NoError(t, json.Unmarshal(data, &back))
		assertArrayEqual(t, a, &back)
	}

	data, err := json.Marshal(mustNew(t, []int{1, 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(data))
}

func TestMarshalJSONRejectsNonFinite(t *testing.T) {
	a, err := FromFloats([]float64{1, math.Inf(1)})
	require.NoError(t, err)

	_, err = json.Marshal(a)
	assert.ErrorIs(t, err, ErrValue)
}

func TestJSONRoundTripRankZero(t *testing.T) {
	for _, v := range []any{[][]int{{10}}, [][]float64{{10}}, []float64{-0.5}} {
		a := mustNew(t, v)
		idx := make([]int, a.Rank())
		elem, err := a.Index(idx)
		require.NoError(t, err)

		data, err := json.Marshal(elem)
		require.NoError(t, err)

		var back Array
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, 0, back.Rank())
		assertArrayEqual(t, elem, &back)
	}

	_, err := Parse([]byte(`"10"`))
	assert.ErrorIs(t, err, ErrShape)
}

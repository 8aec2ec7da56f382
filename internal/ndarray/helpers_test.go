package ndarray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, v any) *Array {
	t.Helper()
	a, err := New(v)
	require.NoError(t, err)
	return a
}

func mustReshape(t *testing.T, a *Array, shape ...int) *Array {
	t.Helper()
	r, err := a.Reshape(shape...)
	require.NoError(t, err)
	return r
}

func assertEqualShape(t *testing.T, want, got Shape) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
}

func assertArrayEqual(t *testing.T, want, got *Array) {
	t.Helper()
	if !want.Equal(got) {
		t.Errorf("arrays differ:\nwant %#v (%s, %v)\n got %#v (%s, %v)",
			want, want.DType(), want.Shape(), got, got.DType(), got.Shape())
	}
}

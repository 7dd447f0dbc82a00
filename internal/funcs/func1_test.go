package funcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdd10_MutationVisibleToCaller(t *testing.T) {
	t.Parallel()

	v := int32(109)
	require.NoError(t, Add10(&v))
	require.Equal(t, int32(119), v)

	require.NoError(t, Add10(&v))
	require.Equal(t, int32(129), v)
}

func TestAdd10_OverflowLeavesValue(t *testing.T) {
	t.Parallel()

	v := int32(math.MaxInt32 - 5)
	err := Add10(&v)

	require.ErrorIs(t, err, ErrOverflow)
	require.Equal(t, int32(math.MaxInt32-5), v, "value must not change on overflow")
}

func TestAdd10_NilReference(t *testing.T) {
	t.Parallel()

	require.Error(t, Add10(nil))
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		fn      func(a, b int32) (int32, error)
		a, b    int32
		want    int32
		wantErr error
	}{
		{name: "add", fn: Add, a: 12, b: 119, want: 131},
		{name: "add negative", fn: Add, a: -3, b: 2, want: -1},
		{name: "add overflow", fn: Add, a: math.MaxInt32, b: 1, wantErr: ErrOverflow},
		{name: "add underflow", fn: Add, a: math.MinInt32, b: -1, wantErr: ErrOverflow},
		{name: "sub", fn: Sub, a: 10, b: 1, want: 9},
		{name: "sub underflow", fn: Sub, a: math.MinInt32, b: 1, wantErr: ErrOverflow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.fn(tc.a, tc.b)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

package basis

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisCount(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 8} {
		set, err := New(order, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, 3*order-1, set.Len(), "order %d", order)
	}
}

func TestInvalidInterval(t *testing.T) {
	_, err := New(2, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = New(2, 2, -2)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestInvalidOrderPropagates(t *testing.T) {
	_, err := New(0, 0, 1)
	require.Error(t, err)
}

func TestGridSizeReported(t *testing.T) {
	// Order 4: support width 7, so 1000 requested points round up to
	// 7*256 = 1792.
	set, err := New(4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1792, set.GridSize())

	set, err = New(4, 0, 1, WithGridSize(100))
	require.NoError(t, err)
	assert.Equal(t, 112, set.GridSize())
}

func TestConstantBasisFunction(t *testing.T) {
	set, err := New(3, -2, 2)
	require.NoError(t, err)

	values := make([]float64, set.Len())
	derivs := make([]float64, set.Len())

	for _, arg := range []float64{-5, -2, 0, 1.3, 2, 99} {
		set.EvalAll(arg, values, derivs)
		assert.Equal(t, 1.0, values[0], "arg %v", arg)
		assert.Equal(t, 0.0, derivs[0], "arg %v", arg)
	}
}

func TestOutsideIntervalZeroesDerivatives(t *testing.T) {
	set, err := New(2, 0, 1, WithScalingFunction())
	require.NoError(t, err)

	values := make([]float64, set.Len())
	derivs := make([]float64, set.Len())

	argT, inside := set.EvalAll(1.5, values, derivs)
	assert.False(t, inside)
	assert.Equal(t, 1.0, argT, "argT clamps to the interval")

	for i, d := range derivs {
		assert.Zero(t, d, "deriv %d", i)
	}

	// Values keep their computed magnitudes.
	assert.Equal(t, 1.0, values[0])

	argT, inside = set.EvalAll(-0.25, values, derivs)
	assert.False(t, inside)
	assert.Equal(t, 0.0, argT)
}

func TestInsideInterval(t *testing.T) {
	set, err := New(2, 0, 1, WithScalingFunction())
	require.NoError(t, err)

	values := make([]float64, set.Len())
	derivs := make([]float64, set.Len())

	argT, inside := set.EvalAll(0.5, values, derivs)
	assert.True(t, inside)
	assert.Equal(t, 0.5, argT)

	// At least one translate must contribute in the middle of the range.
	nonzero := 0
	for _, v := range values[1:] {
		if v != 0 {
			nonzero++
		}
	}
	assert.Positive(t, nonzero)
}

func TestTranslateSupport(t *testing.T) {
	// Order 3 over [0,1]: at arg = min the translate local coordinates
	// are x = -k for k = i-3, so i >= 4 (x < 0) and i = 3 (x = 0, where
	// the function vanishes) must all report zero.
	set, err := New(3, 0, 1, WithScalingFunction())
	require.NoError(t, err)

	values := make([]float64, set.Len())
	derivs := make([]float64, set.Len())

	_, inside := set.EvalAll(0, values, derivs)
	assert.True(t, inside)
	assert.Equal(t, 1.0, values[0])

	for i := 3; i < set.Len(); i++ {
		assert.Zero(t, values[i], "index %d", i)
	}

	// Translates k=-2 and k=-1 have local coordinates 2 and 1 inside
	// [0,5) and generally contribute.
	assert.NotZero(t, values[1])
	assert.NotZero(t, values[2])
}

func TestEvalAllPanicsOnSizeMismatch(t *testing.T) {
	set, err := New(2, 0, 1)
	require.NoError(t, err)

	assert.Panics(t, func() {
		set.EvalAll(0.5, make([]float64, 1), make([]float64, set.Len()))
	})
	assert.Panics(t, func() {
		set.EvalAll(0.5, make([]float64, set.Len()), nil)
	})
}

func TestDerivativeScaling(t *testing.T) {
	// Shrinking the interval by half doubles the reported derivatives:
	// same local coordinate, chain rule factor (3N-2)/(max-min).
	wide, err := New(4, 0, 2, WithScalingFunction())
	require.NoError(t, err)

	narrow, err := New(4, 0, 1, WithScalingFunction())
	require.NoError(t, err)

	n := wide.Len()
	wv := make([]float64, n)
	wd := make([]float64, n)
	nv := make([]float64, n)
	nd := make([]float64, n)

	wide.EvalAll(0.8, wv, wd)
	narrow.EvalAll(0.4, nv, nd)

	for i := range n {
		assert.InDelta(t, wv[i], nv[i], 1e-12, "value %d", i)
		assert.InDelta(t, 2*wd[i], nd[i], 1e-9, "deriv %d", i)
	}
}

func TestLabels(t *testing.T) {
	set, err := New(2, 0, 1)
	require.NoError(t, err)

	assert.Equal(t, "const", set.Label(0))
	assert.Equal(t, "i = 0", set.Label(1))
	assert.Equal(t, "i = 0.25", set.Label(2))
	assert.Equal(t, "i = 0.5", set.Label(3))
	assert.Equal(t, "i = 0.75", set.Label(4))
}

func TestGridDump(t *testing.T) {
	var buf bytes.Buffer

	set, err := New(2, 0, 1, WithGridSize(3), WithGridDump(&buf))
	require.NoError(t, err)

	assert.Equal(t, 3, set.GridSize())
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestScalingAndWaveletDiffer(t *testing.T) {
	var scalingDump, waveletDump bytes.Buffer

	_, err := New(3, 0, 1, WithScalingFunction(), WithGridDump(&scalingDump))
	require.NoError(t, err)

	_, err = New(3, 0, 1, WithGridDump(&waveletDump))
	require.NoError(t, err)

	assert.NotEqual(t, scalingDump.String(), waveletDump.String())
}

func TestEvalAllDoesNotAllocate(t *testing.T) {
	set, err := New(4, 0, 1)
	require.NoError(t, err)

	values := make([]float64, set.Len())
	derivs := make([]float64, set.Len())

	allocs := testing.AllocsPerRun(100, func() {
		set.EvalAll(0.37, values, derivs)
	})
	assert.Zero(t, allocs)
}

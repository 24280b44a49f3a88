package proj4rs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNormalizeScalars(t *testing.T) {
	cb, err := normalize(15.5, 47, nil, false)
	require.NoError(t, err)

	assert.Equal(t, kindScalar, cb.kind)
	assert.Equal(t, 1, cb.n)
	assert.Equal(t, 2, cb.nAxes)
	assert.Equal(t, sizeofDouble, cb.stride)
	assert.Equal(t, 15.5, cb.axes[0].buf.data[0])
	assert.Equal(t, 47.0, cb.axes[1].buf.data[0])
	assert.True(t, cb.axes[0].buf.owns)
}

func TestNormalizeScalarsWithZ(t *testing.T) {
	cb, err := normalize(float32(1), int64(2), 3.5, false)
	require.NoError(t, err)

	assert.Equal(t, 3, cb.nAxes)
	assert.Equal(t, 3.5, cb.axes[2].buf.data[0])
}

func TestNormalizeMissingAxes(t *testing.T) {
	_, err := normalize(nil, nil, nil, false)
	assert.ErrorIs(t, err, ErrMissingData)

	_, err = normalize(1.5, nil, nil, false)
	assert.ErrorIs(t, err, ErrMissingData)

	// z without y
	_, err = normalize(1.5, nil, 2.5, false)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestNormalizeSequenceCopies(t *testing.T) {
	x := []float32{1, 2}
	y := []int{3, 4}

	cb, err := normalize(x, y, nil, true)
	require.NoError(t, err)

	assert.Equal(t, 2, cb.n)
	assert.True(t, cb.axes[0].buf.owns, "sequences are never aliased")
	assert.True(t, cb.axes[1].buf.owns)
	assert.Empty(t, cmp.Diff([]float64{1, 2}, cb.axes[0].buf.data))
	assert.Empty(t, cmp.Diff([]float64{3, 4}, cb.axes[1].buf.data))
}

func TestNormalizeBufferAlias(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}

	cb, err := normalize(x, y, nil, true)
	require.NoError(t, err)

	assert.False(t, cb.axes[0].buf.owns)
	assert.Same(t, &x[0], &cb.axes[0].buf.data[0])
	assert.Same(t, &y[0], &cb.axes[1].buf.data[0])
}

func TestNormalizeBufferCopiesWithoutInPlace(t *testing.T) {
	x := []float64{1, 2}
	y := []float64{3, 4}

	cb, err := normalize(x, y, nil, false)
	require.NoError(t, err)

	assert.True(t, cb.axes[0].buf.owns)
	assert.NotSame(t, &x[0], &cb.axes[0].buf.data[0])
	assert.Empty(t, cmp.Diff(x, cb.axes[0].buf.data))
}

func TestNormalizeStridedVectorCopies(t *testing.T) {
	den := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	x := den.ColView(0).(*mat.VecDense)
	y := den.ColView(1).(*mat.VecDense)
	require.NotEqual(t, 1, x.RawVector().Inc)

	cb, err := normalize(x, y, nil, true)
	require.NoError(t, err)

	// not contiguous: fall back to copying even in place
	assert.True(t, cb.axes[0].buf.owns)
	assert.Empty(t, cmp.Diff([]float64{1, 3}, cb.axes[0].buf.data))
	assert.Empty(t, cmp.Diff([]float64{2, 4}, cb.axes[1].buf.data))
}

func TestNormalizeContiguousVectorAlias(t *testing.T) {
	x := mat.NewVecDense(2, []float64{1, 2})
	y := mat.NewVecDense(2, []float64{3, 4})

	cb, err := normalize(x, y, nil, true)
	require.NoError(t, err)

	assert.False(t, cb.axes[0].buf.owns)
	assert.Same(t, &x.RawVector().Data[0], &cb.axes[0].buf.data[0])
}

func TestNormalizeLengthMismatch(t *testing.T) {
	_, err := normalize([]float64{1, 2}, []float64{3}, nil, false)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	// mismatch only on z
	_, err = normalize([]float64{1, 2}, []float64{3, 4}, []float64{5}, false)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestNormalizeMixedScalarAndVector(t *testing.T) {
	_, err := normalize(1.5, []float64{3, 4}, nil, false)
	assert.ErrorIs(t, err, ErrShape)

	_, err = normalize([]float64{1, 2}, []float64{3, 4}, 5.0, false)
	assert.ErrorIs(t, err, ErrShape)
}

func TestNormalizeInvalidType(t *testing.T) {
	_, err := normalize("nope", nil, nil, false)
	assert.ErrorIs(t, err, ErrInvalidBufferType)

	_, err = normalize([]float64{1}, "nope", nil, false)
	assert.ErrorIs(t, err, ErrInvalidBufferType)
}

func TestNormalizeEmptyCoordinates(t *testing.T) {
	_, err := normalize([]float64{}, []float64{}, nil, false)
	assert.ErrorIs(t, err, ErrMissingData)
}

func TestNormalizePackedAlias(t *testing.T) {
	den := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	cb, err := normalize(den, nil, nil, true)
	require.NoError(t, err)

	assert.Equal(t, kindPacked, cb.kind)
	assert.Equal(t, 2, cb.n)
	assert.Equal(t, 2, cb.nAxes)
	assert.Equal(t, 2*sizeofDouble, cb.stride)

	raw := den.RawMatrix()
	assert.False(t, cb.axes[0].buf.owns)
	assert.Same(t, &raw.Data[0], &cb.axes[0].buf.data[cb.axes[0].buf.off])
	assert.Same(t, &raw.Data[1], &cb.axes[1].buf.data[cb.axes[1].buf.off])
}

func TestNormalizePackedCopied(t *testing.T) {
	den := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	cb, err := normalize(den, nil, nil, false)
	require.NoError(t, err)

	assert.Equal(t, 3, cb.nAxes)
	assert.Equal(t, sizeofDouble, cb.stride, "compact copies are tightly packed")
	assert.True(t, cb.axes[0].buf.owns)
	assert.Empty(t, cmp.Diff([]float64{1, 4}, cb.axes[0].buf.data))
	assert.Empty(t, cmp.Diff([]float64{2, 5}, cb.axes[1].buf.data))
	assert.Empty(t, cmp.Diff([]float64{3, 6}, cb.axes[2].buf.data))
}

func TestNormalizePackedNonContiguousCopies(t *testing.T) {
	base := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	sub := base.Slice(0, 2, 0, 2).(*mat.Dense)
	require.NotEqual(t, 2, sub.RawMatrix().Stride)

	cb, err := normalize(sub, nil, nil, true)
	require.NoError(t, err)

	assert.True(t, cb.axes[0].buf.owns)
	assert.Empty(t, cmp.Diff([]float64{1, 4}, cb.axes[0].buf.data))
	assert.Empty(t, cmp.Diff([]float64{2, 5}, cb.axes[1].buf.data))
}

func TestNormalizePackedWidth(t *testing.T) {
	_, err := normalize(mat.NewDense(1, 4, []float64{1, 2, 3, 4}), nil, nil, false)
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "dimensions of 2 or 3")

	_, err = normalize(mat.NewDense(1, 1, []float64{1}), nil, nil, false)
	assert.ErrorIs(t, err, ErrShape)
}

func TestNormalizeOneDimensionalWherePackedExpected(t *testing.T) {
	_, err := normalize([]float64{1, 2}, nil, nil, true)
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "two-dimensional")

	_, err = normalize(mat.NewVecDense(2, []float64{1, 2}), nil, nil, true)
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "two-dimensional")
}

func TestNormalizeMatrixWhereVectorExpected(t *testing.T) {
	den := mat.NewDense(1, 2, []float64{1, 2})
	_, err := normalize(den, []float64{3}, nil, false)
	assert.ErrorIs(t, err, ErrShape)
	assert.ErrorContains(t, err, "one-dimensional")
}

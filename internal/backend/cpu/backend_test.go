package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aspisov/depth/internal/tensor"
)

func raw64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float64)
	require.NoError(t, err)
	copy(r.AsFloat64(), data)
	return r
}

func raw32(t *testing.T, data []float32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, tensor.Float32)
	require.NoError(t, err)
	copy(r.AsFloat32(), data)
	return r
}

func rawIdx(t *testing.T, data []int64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Int64)
	require.NoError(t, err)
	copy(r.AsInt64(), data)
	return r
}

func TestAddSameShape(t *testing.T) {
	b := New()

	out := b.Add(raw64(t, []float64{1, 2, 3}, tensor.Shape{3}),
		raw64(t, []float64{10, 20, 30}, tensor.Shape{3}))
	assert.Equal(t, []float64{11, 22, 33}, out.AsFloat64())

	out32 := b.Add(raw32(t, []float32{1, 2}, tensor.Shape{2}),
		raw32(t, []float32{0.5, 0.5}, tensor.Shape{2}))
	assert.Equal(t, []float32{1.5, 2.5}, out32.AsFloat32())
}

func TestAddBroadcast(t *testing.T) {
	b := New()

	// (3,1) + (1,4) -> (3,4)
	a := raw64(t, []float64{1, 2, 3}, tensor.Shape{3, 1})
	c := raw64(t, []float64{10, 20, 30, 40}, tensor.Shape{1, 4})
	out := b.Add(a, c)

	require.True(t, out.Shape().Equal(tensor.Shape{3, 4}))
	assert.Equal(t, []float64{
		11, 21, 31, 41,
		12, 22, 32, 42,
		13, 23, 33, 43,
	}, out.AsFloat64())
}

func TestAddScalarBroadcast(t *testing.T) {
	b := New()

	s := raw64(t, []float64{5}, tensor.Shape{})
	x := raw64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	out := b.Add(x, s)

	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{6, 7, 8, 9}, out.AsFloat64())
}

func TestMulDiv(t *testing.T) {
	b := New()

	x := raw64(t, []float64{2, 4, 8}, tensor.Shape{3})
	y := raw64(t, []float64{3, 2, 4}, tensor.Shape{3})

	assert.Equal(t, []float64{6, 8, 32}, b.Mul(x, y).AsFloat64())
	assert.Equal(t, []float64{2.0 / 3.0, 2, 2}, b.Div(x, y).AsFloat64())
}

func TestComparisonMasks(t *testing.T) {
	b := New()

	x := raw64(t, []float64{1, 5, 3}, tensor.Shape{3})
	y := raw64(t, []float64{1, 2, 4}, tensor.Shape{3})

	assert.Equal(t, []float64{1, 0, 0}, b.Equal(x, y).AsFloat64())
	assert.Equal(t, []float64{0, 1, 0}, b.Greater(x, y).AsFloat64())
}

func TestScalarAndUnaryKernels(t *testing.T) {
	b := New()
	x := raw64(t, []float64{1, 2, 3}, tensor.Shape{3})

	assert.Equal(t, []float64{2, 4, 6}, b.MulScalar(x, 2).AsFloat64())
	assert.Equal(t, []float64{1, 4, 9}, b.Pow(x, 2).AsFloat64())

	exp := b.Exp(x).AsFloat64()
	log := b.Log(x).AsFloat64()
	for i, v := range []float64{1, 2, 3} {
		assert.InDelta(t, math.Exp(v), exp[i], 1e-12)
		assert.InDelta(t, math.Log(v), log[i], 1e-12)
	}
}

func TestMatMul(t *testing.T) {
	b := New()

	// (2,3) @ (3,2) -> (2,2)
	a := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	c := raw64(t, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})
	out := b.MatMul(a, c)

	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{58, 64, 139, 154}, out.AsFloat64())
}

func TestMatMulFloat32(t *testing.T) {
	b := New()

	a := raw32(t, []float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	c := raw32(t, []float32{5, 6, 7, 8}, tensor.Shape{2, 2})
	out := b.MatMul(a, c)

	assert.Equal(t, []float32{19, 22, 43, 50}, out.AsFloat32())
}

func TestTranspose(t *testing.T) {
	b := New()

	x := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	out := b.Transpose(x)

	require.True(t, out.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, out.AsFloat64())
}

func TestSumMax(t *testing.T) {
	b := New()
	x := raw64(t, []float64{3, 1, 4, 1, 5}, tensor.Shape{5})

	sum := b.Sum(x)
	require.True(t, sum.Shape().Equal(tensor.Shape{}))
	assert.Equal(t, 14.0, sum.AsFloat64()[0])

	assert.Equal(t, 5.0, b.Max(x).AsFloat64()[0])
}

func TestSumDim(t *testing.T) {
	b := New()
	x := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	d0 := b.SumDim(x, 0, false)
	require.True(t, d0.Shape().Equal(tensor.Shape{3}))
	assert.Equal(t, []float64{5, 7, 9}, d0.AsFloat64())

	d1 := b.SumDim(x, 1, true)
	require.True(t, d1.Shape().Equal(tensor.Shape{2, 1}))
	assert.Equal(t, []float64{6, 15}, d1.AsFloat64())
}

func TestMaxDim(t *testing.T) {
	b := New()
	x := raw64(t, []float64{1, 9, 3, 7, 5, 6}, tensor.Shape{2, 3})

	d1 := b.MaxDim(x, 1, false)
	require.True(t, d1.Shape().Equal(tensor.Shape{2}))
	assert.Equal(t, []float64{9, 7}, d1.AsFloat64())

	d0 := b.MaxDim(x, 0, true)
	require.True(t, d0.Shape().Equal(tensor.Shape{1, 3}))
	assert.Equal(t, []float64{7, 9, 6}, d0.AsFloat64())
}

func TestReshape(t *testing.T) {
	b := New()
	x := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	out := b.Reshape(x, tensor.Shape{3, 2})
	require.True(t, out.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, out.AsFloat64())
}

func TestBroadcastTo(t *testing.T) {
	b := New()

	x := raw64(t, []float64{1, 2, 3}, tensor.Shape{3, 1})
	out := b.BroadcastTo(x, tensor.Shape{3, 2})

	require.True(t, out.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{1, 1, 2, 2, 3, 3}, out.AsFloat64())

	s := raw64(t, []float64{7}, tensor.Shape{})
	sc := b.BroadcastTo(s, tensor.Shape{2, 2})
	assert.Equal(t, []float64{7, 7, 7, 7}, sc.AsFloat64())
}

func TestGather(t *testing.T) {
	b := New()

	// Select rows 2, 0, 2 of a (3,2) matrix.
	x := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	idx := rawIdx(t, []int64{2, 0, 2})
	out := b.Gather(x, 0, idx)

	require.True(t, out.Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{5, 6, 1, 2, 5, 6}, out.AsFloat64())
}

func TestGatherInnerDim(t *testing.T) {
	b := New()

	x := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	idx := rawIdx(t, []int64{2, 1})
	out := b.Gather(x, 1, idx)

	require.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{3, 2, 6, 5}, out.AsFloat64())
}

func TestScatterAddDuplicates(t *testing.T) {
	b := New()

	dst := raw64(t, make([]float64, 6), tensor.Shape{3, 2})
	src := raw64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{3, 2})
	idx := rawIdx(t, []int64{0, 2, 0})

	b.ScatterAdd(dst, 0, idx, src)
	// Rows 0 and 2 of src both land on destination row 0.
	assert.Equal(t, []float64{6, 8, 0, 0, 3, 4}, dst.AsFloat64())
}

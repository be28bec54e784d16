package autodiff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aspisov/depth/internal/tensor"
)

// checkGradients compares analytic gradients against central differences.
// f must reduce its inputs to a single-element tensor; inputs are rebuilt
// fresh for every evaluation so each pass records its own graph.
func checkGradients(t *testing.T, f func([]*tensor.Tensor) (*tensor.Tensor, error),
	data [][]float64, shapes []tensor.Shape) {
	t.Helper()
	const eps = 1e-6

	eval := func(vals [][]float64, track bool) (*tensor.Tensor, []*tensor.Tensor) {
		leaves := make([]*tensor.Tensor, len(vals))
		for i, v := range vals {
			x, err := tensor.FromSlice(v, shapes[i], backend)
			require.NoError(t, err)
			if track {
				x.RequireGrad()
			}
			leaves[i] = x
		}
		out, err := f(leaves)
		require.NoError(t, err)
		require.Equal(t, 1, out.Size(), "gradient check needs a scalar output")
		return out, leaves
	}

	out, leaves := eval(data, true)
	require.NoError(t, Backward(out))

	for i := range data {
		analytic := leaves[i].Grad().AsFloat64()
		for j := range data[i] {
			perturbed := make([][]float64, len(data))
			for k := range data {
				perturbed[k] = append([]float64(nil), data[k]...)
			}

			perturbed[i][j] = data[i][j] + eps
			plus, _ := eval(perturbed, false)
			perturbed[i][j] = data[i][j] - eps
			minus, _ := eval(perturbed, false)

			numeric := (plus.Item() - minus.Item()) / (2 * eps)
			require.InDeltaf(t, numeric, analytic[j], 1e-5,
				"input %d element %d: analytic %v vs numeric %v", i, j, analytic[j], numeric)
		}
	}
}

func TestGradCheckAdd(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		c, err := Add(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return Sum(c)
	},
		[][]float64{{1, 2, 3}, {10, 20, 30, 40}},
		[]tensor.Shape{{3, 1}, {1, 4}})
}

func TestGradCheckMul(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		c, err := Mul(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return Sum(c)
	},
		[][]float64{{0.5, -1.5, 2}, {3, 0.25, -2}},
		[]tensor.Shape{{3}, {3}})
}

func TestGradCheckDiv(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		c, err := Div(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return Sum(c)
	},
		[][]float64{{1, 4, 9}, {2, 0.5, 3}},
		[]tensor.Shape{{3}, {3}})
}

func TestGradCheckMatMul(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		c, err := MatMul(in[0], in[1])
		if err != nil {
			return nil, err
		}
		return Sum(c)
	},
		[][]float64{{1, 2, 3, 4, 5, 6}, {0.5, -1, 2, 1.5, -0.5, 1}},
		[]tensor.Shape{{2, 3}, {3, 2}})
}

func TestGradCheckPow(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		c, err := Pow(in[0], 3)
		if err != nil {
			return nil, err
		}
		return Sum(c)
	},
		[][]float64{{0.5, 1.5, 2}},
		[]tensor.Shape{{3}})
}

func TestGradCheckExpLog(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		e, err := Exp(in[0])
		if err != nil {
			return nil, err
		}
		l, err := Log(in[1])
		if err != nil {
			return nil, err
		}
		c, err := Add(e, l)
		if err != nil {
			return nil, err
		}
		return Sum(c)
	},
		[][]float64{{0.1, 0.5, 1}, {0.5, 2, 4}},
		[]tensor.Shape{{3}, {3}})
}

func TestGradCheckSqrt(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		s, err := Sqrt(in[0])
		if err != nil {
			return nil, err
		}
		return Sum(s)
	},
		[][]float64{{1, 4, 9, 16}},
		[]tensor.Shape{{4}})
}

func TestGradCheckSumDim(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		s, err := SumDim(in[0], 1, true)
		if err != nil {
			return nil, err
		}
		sq, err := Mul(s, s)
		if err != nil {
			return nil, err
		}
		return Sum(sq)
	},
		[][]float64{{1, 2, 3, 4, 5, 6}},
		[]tensor.Shape{{2, 3}})
}

func TestGradCheckMeanVar(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		return Var(in[0], false)
	},
		[][]float64{{0.5, 1.5, -2, 3}},
		[]tensor.Shape{{4}})

	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		m, err := MeanDim(in[0], 0, false)
		if err != nil {
			return nil, err
		}
		sq, err := Mul(m, m)
		if err != nil {
			return nil, err
		}
		return Sum(sq)
	},
		[][]float64{{1, 2, 3, 4, 5, 6}},
		[]tensor.Shape{{2, 3}})
}

// Max is piecewise linear; checked away from ties where it is smooth.
func TestGradCheckMax(t *testing.T) {
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		return Max(in[0])
	},
		[][]float64{{1, 7, 3, 5}},
		[]tensor.Shape{{4}})
}

func TestGradCheckComposite(t *testing.T) {
	// f(a, b) = sum((a*b + a)^2) exercises shared operands and the chain
	// through mul, add and pow in one graph.
	checkGradients(t, func(in []*tensor.Tensor) (*tensor.Tensor, error) {
		p, err := Mul(in[0], in[1])
		if err != nil {
			return nil, err
		}
		s, err := Add(p, in[0])
		if err != nil {
			return nil, err
		}
		sq, err := Pow(s, 2)
		if err != nil {
			return nil, err
		}
		return Sum(sq)
	},
		[][]float64{{0.5, -1, 2}, {1.5, 2, -0.5}},
		[]tensor.Shape{{3}, {3}})
}

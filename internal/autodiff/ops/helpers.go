// Package ops defines the closed set of operation variants recorded in the
// computation graph. Each variant carries its operand nodes and the constants
// its gradient rule needs, and implements tensor.Operation: given the
// output's fully accumulated gradient it returns one contribution per input,
// already reduced to that input's shape.
package ops

import "github.com/aspisov/depth/internal/tensor"

// reduceBroadcast reduces a gradient to the target operand shape, undoing
// implicit broadcast expansion from the forward pass: extra leading
// dimensions are summed away, then every dimension where the operand's size
// is 1 but the gradient's is not is summed with the dimension retained.
//
// Example:
//
//	forward:  a[3,1] + b[3,4] -> c[3,4]
//	backward: grad_c[3,4] -> grad_a[3,1] (summed over the broadcast axis)
func reduceBroadcast(grad *tensor.RawTensor, target tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	g := grad
	for len(g.Shape()) > len(target) {
		g = backend.SumDim(g, 0, false)
	}
	for i, dim := range target {
		if dim == 1 && g.Shape()[i] != 1 {
			g = backend.SumDim(g, i, true)
		}
	}
	return g
}

// keepDims reshapes a reduced gradient back to the keep-dims form of the
// original shape, so it broadcasts correctly along the reduced axis.
func keepDims(grad *tensor.RawTensor, orig tensor.Shape, dim int, backend tensor.Backend) *tensor.RawTensor {
	shape := orig.Clone()
	shape[dim] = 1
	return backend.Reshape(grad, shape)
}

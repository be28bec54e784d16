package tensor

// Backend is the external dense-array math library behind the engine. The
// autodiff layer consumes it for forward kernels and for the buffer algebra
// its gradient rules need (broadcast reductions, transposes, scatter-add).
//
// Kernels assume operands that the operator layer has already validated:
// matching float dtypes, broadcastable shapes, in-range indices. A violated
// assumption is an engine bug and panics.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise operations against a scalar constant.
	MulScalar(x *RawTensor, s float64) *RawTensor
	Pow(x *RawTensor, exponent float64) *RawTensor

	// Element-wise unary math.
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor

	// Matrix operations (2-D).
	MatMul(a, b *RawTensor) *RawTensor
	Transpose(x *RawTensor) *RawTensor

	// Reductions. The Dim variants reduce a single axis; the plain variants
	// reduce everything to a scalar-shaped tensor.
	Sum(x *RawTensor) *RawTensor
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	Max(x *RawTensor) *RawTensor
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Comparisons producing 0/1 masks in the operands' float dtype.
	Equal(a, b *RawTensor) *RawTensor
	Greater(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, shape Shape) *RawTensor
	BroadcastTo(x *RawTensor, shape Shape) *RawTensor

	// Advanced indexing. Gather selects along dim with a 1-D int64 index;
	// ScatterAdd is its adjoint and accumulates duplicate indices.
	Gather(x *RawTensor, dim int, index *RawTensor) *RawTensor
	ScatterAdd(dst *RawTensor, dim int, index, src *RawTensor)

	// Metadata.
	Name() string
}

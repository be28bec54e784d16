package tensor

import "fmt"

// Operation is one recorded step of the computation graph: the closed set of
// operation variants (add, mul, matmul, ...) each implement it, carrying the
// operand nodes and whatever constants their gradient rule needs. The
// backward engine dispatches on the variant instead of on stored closures.
type Operation interface {
	// Inputs returns the operand nodes consumed by the operation, in order.
	Inputs() []*Tensor

	// Backward computes the gradient contribution for each input given the
	// output's fully accumulated gradient. The result is aligned with
	// Inputs(); entries for inputs that do not require grad are nil. Every
	// returned buffer already matches its input's shape (broadcast
	// reductions are resolved here, not deferred).
	Backward(outputGrad *RawTensor, backend Backend) []*RawTensor
}

// Tensor is a node of the computation graph: an immutable value plus its
// differentiation metadata. Leaves are built directly from raw data;
// derived nodes are produced by the operator library and remember the
// operation that made them.
type Tensor struct {
	raw     *RawTensor
	backend Backend

	// grad is nil exactly when requiresGrad is false. It matches raw's
	// shape and accumulates contributions additively during backward.
	grad         *RawTensor
	requiresGrad bool

	// op is non-nil only for derived nodes that require grad. Its Inputs()
	// are this node's parents; construction is strictly forward so the
	// parent links never form a cycle.
	op Operation
}

// New creates a leaf tensor from a RawTensor. The tensor does not require
// gradients; call RequireGrad to opt in.
func New(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{raw: raw, backend: b}
}

// NewNode creates a derived node wrapping the result of op. The node
// requires grad when any input does and gradient tracking is enabled;
// only then is the op retained and a zero gradient buffer allocated.
func NewNode(raw *RawTensor, b Backend, op Operation) *Tensor {
	t := &Tensor{raw: raw, backend: b}

	if !GradEnabled() {
		return t
	}
	for _, in := range op.Inputs() {
		if in.requiresGrad {
			t.requiresGrad = true
			break
		}
	}
	if t.requiresGrad {
		t.op = op
		t.grad = mustNewRaw(raw.Shape(), raw.DType())
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.raw.DType()
}

// Raw returns the underlying RawTensor. The buffer is shared, read-only by
// convention: operations never mutate their operands.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the math backend the tensor was created with.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Grad returns the gradient buffer, or nil when the tensor does not require
// gradients.
func (t *Tensor) Grad() *RawTensor {
	return t.grad
}

// Op returns the operation that produced this node, or nil for leaves and
// untracked nodes.
func (t *Tensor) Op() Operation {
	return t.op
}

// RequiresGrad reports whether gradients are tracked for this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// RequireGrad marks a leaf for gradient tracking and allocates its zero
// gradient buffer. The request is masked while a no-grad scope is active.
// Only float tensors can be differentiated. Returns the tensor for chaining.
func (t *Tensor) RequireGrad() *Tensor {
	if !GradEnabled() || t.requiresGrad {
		return t
	}
	if !t.raw.DType().IsFloat() {
		panic(fmt.Sprintf("RequireGrad: %s tensors are not differentiable", t.raw.DType()))
	}
	t.requiresGrad = true
	t.grad = mustNewRaw(t.raw.Shape(), t.raw.DType())
	return t
}

// Detach returns a tensor sharing the same data with no gradient tracking.
// Operations on the detached tensor build no graph edges.
func (t *Tensor) Detach() *Tensor {
	return &Tensor{raw: t.raw, backend: t.backend}
}

// ZeroGrad resets the accumulated gradient to zero. It is the caller's
// responsibility to clear gradients between independent backward passes;
// accumulation across passes is deliberate.
func (t *Tensor) ZeroGrad() {
	if t.grad != nil {
		t.grad.Zero()
	}
}

// SeedGrad overwrites the gradient with ones, the implicit cotangent for the
// root of a backward pass. Non-scalar roots get an all-ones seed too.
func (t *Tensor) SeedGrad() {
	t.grad.Fill(1)
}

// AccumulateGrad adds a contribution into the gradient buffer. Contributions
// are strictly additive; the shape must already match (broadcast reductions
// happen in the op's Backward).
func (t *Tensor) AccumulateGrad(contribution *RawTensor) {
	if !t.grad.Shape().Equal(contribution.Shape()) {
		panic(fmt.Sprintf("gradient shape %v does not match tensor shape %v",
			contribution.Shape(), t.grad.Shape()))
	}
	switch t.grad.DType() {
	case Float32:
		dst, src := t.grad.AsFloat32(), contribution.AsFloat32()
		for i := range dst {
			dst[i] += src[i]
		}
	case Float64:
		dst, src := t.grad.AsFloat64(), contribution.AsFloat64()
		for i := range dst {
			dst[i] += src[i]
		}
	default:
		panic("gradient buffers must be float tensors")
	}
}

// Size returns the total number of elements.
func (t *Tensor) Size() int {
	return t.raw.NumElements()
}

// Dim returns the number of dimensions.
func (t *Tensor) Dim() int {
	return len(t.raw.Shape())
}

// Item returns the value of a single-element tensor as float64.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if t.raw.NumElements() != 1 {
		panic(fmt.Sprintf("Item: tensor of shape %v has more than one element", t.raw.Shape()))
	}
	return t.raw.At(0)
}

// String returns a short description; element formatting is out of scope.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v", t.raw.DType(), t.raw.Shape())
}

// mustNewRaw allocates a zero buffer for a shape that is already valid.
func mustNewRaw(shape Shape, dtype DataType) *RawTensor {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	return raw
}

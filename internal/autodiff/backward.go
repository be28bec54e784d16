package autodiff

import (
	"fmt"

	"github.com/aspisov/depth/internal/tensor"
)

// Backward computes gradients for every ancestor of root that requires them.
//
// The root's gradient is seeded with ones (non-scalar roots get an all-ones
// cotangent). The subgraph reachable through parent links is linearized with
// a depth-first post-order keyed by node identity, so a node shared by
// several consumers is processed exactly once. Executing that order in
// reverse guarantees a node's own gradient is fully accumulated before it
// propagates to its parents. Accumulation is strictly additive: stale
// gradients from a previous pass are added into, not replaced, unless the
// caller clears them with ZeroGrad.
//
// Backward fails with tensor.ErrGradientDisabled when root does not require
// gradients; no traversal is performed.
func Backward(root *tensor.Tensor) error {
	if !root.RequiresGrad() {
		return fmt.Errorf("backward: %w", tensor.ErrGradientDisabled)
	}
	root.SeedGrad()

	order := topoSort(root)
	logger.Trace().Int("nodes", len(order)).Msg("backward pass")

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		op := node.Op()
		if op == nil {
			continue
		}
		grads := op.Backward(node.Grad(), node.Backend())
		for j, parent := range op.Inputs() {
			if grads[j] != nil {
				parent.AccumulateGrad(grads[j])
			}
		}
	}
	return nil
}

// topoSort returns a post-order over the parent relation: every node appears
// after all of its parents. The visited set is keyed by node identity, which
// collapses diamond-shaped sharing to a single visit.
func topoSort(root *tensor.Tensor) []*tensor.Tensor {
	var order []*tensor.Tensor
	visited := make(map[*tensor.Tensor]struct{})

	var visit func(*tensor.Tensor)
	visit = func(t *tensor.Tensor) {
		if _, ok := visited[t]; ok {
			return
		}
		visited[t] = struct{}{}
		if op := t.Op(); op != nil {
			for _, parent := range op.Inputs() {
				visit(parent)
			}
		}
		order = append(order, t)
	}
	visit(root)
	return order
}

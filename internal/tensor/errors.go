package tensor

import (
	"errors"
	"fmt"
)

// ErrGradientDisabled is returned when backward propagation is requested on a
// tensor that does not require gradients. It is a programming error, never a
// silent no-op.
var ErrGradientDisabled = errors.New("tensor does not require gradients")

// ShapeError reports operand shapes that are incompatible for an operation.
// It is raised at graph-construction time, before any node is created.
type ShapeError struct {
	Op     string  // operation being constructed, e.g. "matmul"
	Shapes []Shape // offending operand shapes
	Msg    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: incompatible shapes %v: %s", e.Op, e.Shapes, e.Msg)
}

// DTypeError reports an unsupported or mismatched element type.
type DTypeError struct {
	Op  string
	Msg string
}

func (e *DTypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

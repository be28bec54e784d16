// Copyright 2025 The Depth Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for depth's tensor values: the
// dense RawTensor buffer, NumPy-style shapes, and the graph node Tensor that
// carries the differentiation metadata read by the autodiff package.
//
// Example:
//
//	b := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, b)
//	x.RequireGrad()
package tensor

import (
	"github.com/aspisov/depth/internal/tensor"
)

// DType is a constraint for supported tensor element types.
type DType = tensor.DType

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Supported element types.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of a tensor. An empty Shape is a scalar.
type Shape = tensor.Shape

// RawTensor is the low-level dense buffer with no autodiff metadata.
type RawTensor = tensor.RawTensor

// Tensor is a node of the computation graph: an immutable value plus its
// differentiation metadata.
type Tensor = tensor.Tensor

// Operation is one recorded step of the computation graph.
type Operation = tensor.Operation

// Backend is the dense-array math library behind the engine.
type Backend = tensor.Backend

// ShapeError reports operand shapes incompatible for an operation.
type ShapeError = tensor.ShapeError

// DTypeError reports an unsupported or mismatched element type.
type DTypeError = tensor.DTypeError

// ErrGradientDisabled is returned when backward propagation is requested on
// a tensor that does not require gradients.
var ErrGradientDisabled = tensor.ErrGradientDisabled

// NewRaw creates a zero-initialized RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// BroadcastShapes implements NumPy-style broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// New creates a leaf tensor from a RawTensor.
func New(raw *RawTensor, b Backend) *Tensor {
	return tensor.New(raw, b)
}

// FromSlice creates a leaf tensor from a Go slice.
func FromSlice[T DType](data []T, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a leaf tensor filled with zeros.
func Zeros(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Zeros(shape, dtype, b)
}

// Ones creates a leaf tensor filled with ones.
func Ones(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Ones(shape, dtype, b)
}

// Full creates a leaf tensor filled with a value.
func Full(shape Shape, dtype DataType, v float64, b Backend) *Tensor {
	return tensor.Full(shape, dtype, v, b)
}

// Scalar creates a scalar-shaped leaf holding v.
func Scalar(dtype DataType, v float64, b Backend) *Tensor {
	return tensor.Scalar(dtype, v, b)
}

// GradEnabled reports whether new nodes currently record differentiation
// metadata.
func GradEnabled() bool {
	return tensor.GradEnabled()
}

// NoGrad disables gradient tracking and returns a restore function. Scopes
// nest; each call restores the state it saw:
//
//	restore := tensor.NoGrad()
//	defer restore()
func NoGrad() (restore func()) {
	return tensor.NoGrad()
}

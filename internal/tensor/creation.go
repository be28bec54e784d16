package tensor

import "fmt"

// FromSlice creates a leaf tensor from a Go slice. The slice is copied into
// the tensor's own memory.
func FromSlice[T DType](data []T, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	switch dst := any(data).(type) {
	case []float32:
		copy(raw.AsFloat32(), dst)
	case []float64:
		copy(raw.AsFloat64(), dst)
	case []int64:
		copy(raw.AsInt64(), dst)
	}

	return New(raw, b), nil
}

// Zeros creates a leaf tensor filled with zeros.
func Zeros(shape Shape, dtype DataType, b Backend) *Tensor {
	raw, err := NewRaw(shape, dtype)
	if err != nil {
		panic(err)
	}
	return New(raw, b)
}

// Ones creates a leaf tensor filled with ones.
func Ones(shape Shape, dtype DataType, b Backend) *Tensor {
	return Full(shape, dtype, 1, b)
}

// Full creates a leaf tensor filled with v.
func Full(shape Shape, dtype DataType, v float64, b Backend) *Tensor {
	t := Zeros(shape, dtype, b)
	t.raw.Fill(v)
	return t
}

// Scalar creates a scalar-shaped leaf holding v. Operator shorthands like
// negation and subtraction use it for their constant operands.
func Scalar(dtype DataType, v float64, b Backend) *Tensor {
	return Full(Shape{}, dtype, v, b)
}

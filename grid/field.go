package grid

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// Field is a labeled dense array. Dims names the array dimensions in
// storage order and always matches the shape of Data.
type Field struct {
	Dims []string
	Data *sparse.DenseArray
}

// NewField wraps a dense array with dimension labels.
func NewField(dims []string, data *sparse.DenseArray) *Field {
	if len(dims) != len(data.Shape) {
		panic(fmt.Sprintf(
			"%d dimension labels for an array of rank %d",
			len(dims), len(data.Shape),
		))
	}
	return &Field{Dims: dims, Data: data}
}

// ZerosLike returns a zero-filled field with the same labels and shape as f.
func ZerosLike(f *Field) *Field {
	return NewField(append([]string{}, f.Dims...),
		sparse.ZerosDense(f.Data.Shape...))
}

// Copy returns a deep copy of f.
func (f *Field) Copy() *Field {
	return NewField(append([]string{}, f.Dims...), f.Data.Copy())
}

// AxisIndex returns the storage index of the named dimension, or -1.
func (f *Field) AxisIndex(dim string) int {
	for i, d := range f.Dims {
		if d == dim {
			return i
		}
	}
	return -1
}

// SameDims reports whether f and g have identical dimension labels.
func (f *Field) SameDims(g *Field) bool {
	if len(f.Dims) != len(g.Dims) {
		return false
	}
	for i := range f.Dims {
		if f.Dims[i] != g.Dims[i] {
			return false
		}
	}
	return true
}

// dropDim returns dims with the named dimension removed.
func dropDim(dims []string, dim string) []string {
	out := []string{}
	for _, d := range dims {
		if d != dim {
			out = append(out, d)
		}
	}
	return out
}

// strides returns the element stride of each dimension of shape.
func strides(shape []int) []int {
	st := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = s
		s *= shape[i]
	}
	return st
}

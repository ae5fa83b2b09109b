package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/sparse"
)

// ErrTypeUnsupported is returned when a reduction is handed something other
// than a labeled array.
var ErrTypeUnsupported = errors.New("grid: only labeled arrays are supported")

// WeightedMean collapses the named dimension of values into a weighted mean:
// sum(values*weights) / sum(weights), where both sums run over the cells at
// which values is not NaN. Cells where values is NaN contribute to neither
// the numerator nor the denominator, so a position with no valid cells at
// all comes out as 0/0 = NaN. That NaN is a result, not an error.
//
// values is an interface so that misuse fails with ErrTypeUnsupported
// instead of silently reducing an unlabeled buffer.
func WeightedMean(values interface{}, weights *Field, dim string) (*Field, error) {
	vf, ok := values.(*Field)
	if !ok {
		return nil, ErrTypeUnsupported
	}
	if !vf.SameDims(weights) {
		return nil, fmt.Errorf(
			"grid: values dims %v do not match weights dims %v",
			vf.Dims, weights.Dims,
		)
	}
	a := vf.AxisIndex(dim)
	if a < 0 {
		return nil, fmt.Errorf("grid: no dimension %q in %v", dim, vf.Dims)
	}

	num := reduceAlong(vf.Data, a, func(sum, v float64, i int) float64 {
		w := weights.Data.Elements[i]
		if math.IsNaN(v) {
			return sum
		}
		return sum + v*w
	})
	den := reduceAlong(vf.Data, a, func(sum, v float64, i int) float64 {
		w := weights.Data.Elements[i]
		if math.IsNaN(v) {
			return sum
		}
		return sum + w
	})

	for i := range num.Elements {
		num.Elements[i] /= den.Elements[i]
	}
	return NewField(dropDim(vf.Dims, dim), num), nil
}

// SumAlong collapses the named dimension of f into a plain sum scaled by
// the given factor. NaN cells are skipped, matching the missing-data
// convention of WeightedMean; a position with no valid cells sums to zero.
func SumAlong(f *Field, dim string, scale float64) (*Field, error) {
	a := f.AxisIndex(dim)
	if a < 0 {
		return nil, fmt.Errorf("grid: no dimension %q in %v", dim, f.Dims)
	}
	sum := reduceAlong(f.Data, a, func(sum, v float64, i int) float64 {
		if math.IsNaN(v) {
			return sum
		}
		return sum + v
	})
	sum.Scale(scale)
	return NewField(dropDim(f.Dims, dim), sum), nil
}

// reduceAlong folds axis a of arr into an array of one lower rank. fold is
// called once per element with the running sum for the output cell, the
// element value, and its flat index.
func reduceAlong(
	arr *sparse.DenseArray, a int,
	fold func(sum, v float64, i int) float64,
) *sparse.DenseArray {
	pre, n, post := 1, arr.Shape[a], 1
	for i := 0; i < a; i++ {
		pre *= arr.Shape[i]
	}
	for i := a + 1; i < len(arr.Shape); i++ {
		post *= arr.Shape[i]
	}

	outShape := []int{}
	for i, s := range arr.Shape {
		if i != a {
			outShape = append(outShape, s)
		}
	}
	out := sparse.ZerosDense(outShape...)

	for p := 0; p < pre; p++ {
		for k := 0; k < n; k++ {
			base := (p*n + k) * post
			outBase := p * post
			for q := 0; q < post; q++ {
				i := base + q
				o := outBase + q
				out.Elements[o] = fold(out.Elements[o], arr.Elements[i], i)
			}
		}
	}
	return out
}

// InterpZ0 linearly interpolates a (z, y, x) field to the z = 0 plane using
// the two cell-center planes that bracket it. If a cell-center plane sits
// exactly at z = 0 that plane is returned directly.
func InterpZ0(f *Field, d *Domain) (*Field, error) {
	if len(f.Dims) != 3 || f.Dims[0] != "z" {
		return nil, fmt.Errorf(
			"grid: need a (z, y, x) field, got dims %v", f.Dims,
		)
	}
	zs := d.CellCenters(Z)
	nz := len(zs)
	if zs[0] > 0 || zs[nz-1] < 0 {
		return nil, fmt.Errorf(
			"grid: z = 0 outside cell centers [%g, %g]", zs[0], zs[nz-1],
		)
	}

	k0 := 0
	for k0+1 < nz && zs[k0+1] <= 0 {
		k0++
	}
	k1 := k0
	if zs[k0] < 0 {
		k1 = k0 + 1
	}

	ny, nx := f.Data.Shape[1], f.Data.Shape[2]
	out := sparse.ZerosDense(ny, nx)
	if k0 == k1 {
		copy(out.Elements, f.Data.Elements[k0*ny*nx:(k0+1)*ny*nx])
		return NewField([]string{"y", "x"}, out), nil
	}

	t := (0 - zs[k0]) / (zs[k1] - zs[k0])
	lo := f.Data.Elements[k0*ny*nx : (k0+1)*ny*nx]
	hi := f.Data.Elements[k1*ny*nx : (k1+1)*ny*nx]
	for i := range out.Elements {
		out.Elements[i] = (1-t)*lo[i] + t*hi[i]
	}
	return NewField([]string{"y", "x"}, out), nil
}

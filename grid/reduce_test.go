package grid

import (
	"math"
	"testing"

	"github.com/ctessum/sparse"
	"github.com/stretchr/testify/assert"
)

func testDomain(t *testing.T, nx, ny, nz int) *Domain {
	d, err := NewDomain(
		[3]float64{-8, -8, -4},
		[3]float64{8, 8, 4},
		[3]int{nx, ny, nz},
	)
	assert.NoError(t, err)
	return d
}

func cube(nz, ny, nx int, f func(k, j, i int) float64) *Field {
	data := sparse.ZerosDense(nz, ny, nx)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				data.Set(f(k, j, i), k, j, i)
			}
		}
	}
	return NewField([]string{"z", "y", "x"}, data)
}

func TestWeightedMeanUniformWeights(t *testing.T) {
	// With unit weights and no missing cells the weighted mean must reduce
	// to the arithmetic mean along the axis.
	vals := cube(4, 3, 2, func(k, j, i int) float64 {
		return float64(k + 10*j + 100*i)
	})
	ones := cube(4, 3, 2, func(k, j, i int) float64 { return 1 })

	wm, err := WeightedMean(vals, ones, "z")
	assert.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, wm.Dims)

	for j := 0; j < 3; j++ {
		for i := 0; i < 2; i++ {
			mean := 0.0
			for k := 0; k < 4; k++ {
				mean += vals.Data.Get(k, j, i)
			}
			mean /= 4
			assert.InDelta(t, mean, wm.Data.Get(j, i), 1e-12)
		}
	}
}

func TestWeightedMeanWeighting(t *testing.T) {
	vals := cube(2, 1, 1, func(k, j, i int) float64 { return float64(k) })
	wts := cube(2, 1, 1, func(k, j, i int) float64 {
		if k == 0 {
			return 1
		}
		return 3
	})
	wm, err := WeightedMean(vals, wts, "z")
	assert.NoError(t, err)
	// (0*1 + 1*3) / (1 + 3)
	assert.InDelta(t, 0.75, wm.Data.Get(0, 0), 1e-12)
}

func TestWeightedMeanAllMasked(t *testing.T) {
	// A column with every cell masked must come out NaN, not zero.
	vals := cube(4, 2, 2, func(k, j, i int) float64 {
		if j == 1 && i == 0 {
			return math.NaN()
		}
		return 2
	})
	wts := cube(4, 2, 2, func(k, j, i int) float64 { return 5 })

	wm, err := WeightedMean(vals, wts, "z")
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(wm.Data.Get(1, 0)))
	assert.InDelta(t, 2.0, wm.Data.Get(0, 0), 1e-12)
	assert.InDelta(t, 2.0, wm.Data.Get(1, 1), 1e-12)
}

func TestWeightedMeanPartialMask(t *testing.T) {
	// Masked cells must be excluded from the numerator and denominator.
	vals := cube(3, 1, 1, func(k, j, i int) float64 {
		if k == 1 {
			return math.NaN()
		}
		return float64(k) // 0, NaN, 2
	})
	wts := cube(3, 1, 1, func(k, j, i int) float64 { return 1 })

	wm, err := WeightedMean(vals, wts, "z")
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, wm.Data.Get(0, 0), 1e-12)
}

func TestWeightedMeanTypeUnsupported(t *testing.T) {
	wts := cube(2, 2, 2, func(k, j, i int) float64 { return 1 })

	_, err := WeightedMean(sparse.ZerosDense(2, 2, 2), wts, "z")
	assert.Equal(t, ErrTypeUnsupported, err)

	_, err = WeightedMean([]float64{1, 2}, wts, "z")
	assert.Equal(t, ErrTypeUnsupported, err)
}

func TestWeightedMeanBadDim(t *testing.T) {
	vals := cube(2, 2, 2, func(k, j, i int) float64 { return 1 })
	_, err := WeightedMean(vals, vals, "t")
	assert.Error(t, err)
}

func TestSumAlong(t *testing.T) {
	vals := cube(4, 2, 2, func(k, j, i int) float64 {
		if k == 3 && j == 0 {
			return math.NaN()
		}
		return 1
	})

	s, err := SumAlong(vals, "z", 0.5)
	assert.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, s.Dims)
	// NaN cells are skipped, not poisoning the sum.
	assert.InDelta(t, 1.5, s.Data.Get(0, 0), 1e-12)
	assert.InDelta(t, 2.0, s.Data.Get(1, 1), 1e-12)
}

func TestInterpZ0(t *testing.T) {
	d := testDomain(t, 2, 2, 4)
	// Centers at -3, -1, 1, 3; value linear in z, so the interpolated
	// plane must hit the z=0 intercept exactly.
	zs := d.CellCenters(Z)
	vals := cube(4, 2, 2, func(k, j, i int) float64 {
		return 2*zs[k] + 7
	})

	plane, err := InterpZ0(vals, d)
	assert.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, plane.Dims)
	assert.InDelta(t, 7.0, plane.Data.Get(0, 0), 1e-12)
	assert.InDelta(t, 7.0, plane.Data.Get(1, 1), 1e-12)
}

func TestInterpZ0OnCenter(t *testing.T) {
	d, err := NewDomain(
		[3]float64{-1, -1, -3},
		[3]float64{1, 1, 3},
		[3]int{1, 1, 3},
	)
	assert.NoError(t, err)
	// Centers at -2, 0, 2: the middle plane is returned as-is.
	vals := cube(3, 1, 1, func(k, j, i int) float64 { return float64(k * k) })
	plane, err := InterpZ0(vals, d)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, plane.Data.Get(0, 0), 1e-12)
}

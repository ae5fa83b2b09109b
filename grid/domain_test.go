package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellCenters(t *testing.T) {
	d, err := NewDomain(
		[3]float64{0, 0, -2},
		[3]float64{4, 4, 2},
		[3]int{4, 2, 4},
	)
	assert.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.5, 1.5, 2.5, 3.5}, d.CellCenters(X), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 3}, d.CellCenters(Y), 1e-12)
	assert.InDeltaSlice(t, []float64{-1.5, -0.5, 0.5, 1.5}, d.CellCenters(Z), 1e-12)
}

func TestCellIndex(t *testing.T) {
	d, err := NewDomain(
		[3]float64{-8, -8, -4},
		[3]float64{8, 8, 4},
		[3]int{16, 16, 8},
	)
	assert.NoError(t, err)

	table := []struct {
		pos  float64
		want int
	}{
		{-8, 0},
		{-7.5, 0},
		{0, 8},
		{0.999, 8},
		{7.999, 15},
		{-8.5, -1},  // outside: callers filter
		{8.001, 16}, // outside: callers filter
	}
	for _, row := range table {
		assert.Equal(t, row.want, d.CellIndex(X, row.pos), "pos %g", row.pos)
	}
}

func TestNewDomainRejectsBadGeometry(t *testing.T) {
	_, err := NewDomain([3]float64{0, 0, 0}, [3]float64{1, 1, -1}, [3]int{4, 4, 4})
	assert.Error(t, err)
	_, err = NewDomain([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{4, 0, 4})
	assert.Error(t, err)
}

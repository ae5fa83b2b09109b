/*package grid describes the rectangular simulation domain and the labeled
arrays that live on it.

Fields are dense float64 arrays labeled with dimension names drawn from
{"z", "y", "x"}, stored in (z, y, x) order the way the snapshot files lay
them out. Cells outside the physically valid region carry NaN, and every
reduction in this package treats NaN as "no data" rather than as a value.
*/
package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Axis indices into the per-axis arrays of Domain.
const (
	X = 0
	Y = 1
	Z = 2
)

// Domain is an axis-aligned rectangular domain with uniform cell spacing.
// It is immutable once constructed.
type Domain struct {
	Le [3]float64 // left edge of each axis
	Re [3]float64 // right edge of each axis
	Nx [3]int     // cells along each axis
	Dx [3]float64 // cell spacing along each axis
}

// NewDomain constructs a Domain from its edges and cell counts.
func NewDomain(le, re [3]float64, nx [3]int) (*Domain, error) {
	d := &Domain{Le: le, Re: re, Nx: nx}
	for i := 0; i < 3; i++ {
		if nx[i] <= 0 {
			return nil, fmt.Errorf("axis %d has %d cells", i, nx[i])
		}
		if re[i] <= le[i] {
			return nil, fmt.Errorf(
				"axis %d edges are inverted: [%g, %g]", i, le[i], re[i],
			)
		}
		d.Dx[i] = (re[i] - le[i]) / float64(nx[i])
	}
	return d, nil
}

// CellCenters returns the cell-center coordinates along the given axis.
func (d *Domain) CellCenters(axis int) []float64 {
	cs := make([]float64, d.Nx[axis])
	if d.Nx[axis] == 1 {
		cs[0] = (d.Le[axis] + d.Re[axis]) / 2
		return cs
	}
	floats.Span(
		cs,
		d.Le[axis]+0.5*d.Dx[axis],
		d.Re[axis]-0.5*d.Dx[axis],
	)
	return cs
}

// CellIndex maps a position along the given axis to a cell index by floor
// division relative to the left edge. The index may be out of [0, Nx): the
// caller decides what to do with positions outside the domain.
func (d *Domain) CellIndex(axis int, pos float64) int {
	// int() truncates toward zero, which is not a floor for negatives.
	q := (pos - d.Le[axis]) / d.Dx[axis]
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

/*package analysis aggregates snapshot sequences in time and maps the
supernova event log onto the spatial grid.
*/
package analysis

import (
	"math"

	"github.com/ctessum/sparse"

	"github.com/tigress-gc/gcpost/derived"
	"github.com/tigress-gc/gcpost/grid"
	"github.com/tigress-gc/gcpost/io"
)

// Twarm separates two-phase (cold/warm) gas from hot gas, in Kelvin.
const Twarm = 2.0e4

// SumDataset loads the snapshots with the given indices in order and
// returns their elementwise sum, with the derived fields R, Pturb and
// Pgrav computed per snapshot before summing. With twophase set, cells of
// hot (T >= Twarm) gas are zeroed in every field first, except the
// gravitational potential, which self-gravity diagnostics need intact.
//
// The result is a plain sum: divide by len(nums) for a time average.
// Snapshots are processed strictly sequentially, each folding into the
// running sum before the next is loaded.
func SumDataset(
	l io.SnapshotLoader, eng *derived.Engine, nums []int, twophase bool,
) (*grid.Dataset, error) {
	var sum *grid.Dataset
	for _, num := range nums {
		dat, err := l.LoadSnapshot(num)
		if err != nil {
			return nil, err
		}
		if twophase {
			if err := zeroHotGas(dat, eng); err != nil {
				return nil, err
			}
		}
		if err := eng.AddFieldsInPlace(dat, "R", "Pturb", "Pgrav"); err != nil {
			return nil, err
		}

		if sum == nil {
			sum = dat
			continue
		}
		for name, f := range sum.Fields {
			f.Data.AddDense(dat.Fields[name].Data)
		}
	}
	return sum, nil
}

// zeroHotGas zeroes every cell with T >= Twarm in all fields except the
// gravitational potential. The temperature field used for the cut is
// dropped afterwards.
func zeroHotGas(dat *grid.Dataset, eng *derived.Engine) error {
	if err := eng.AddFieldsInPlace(dat, "T"); err != nil {
		return err
	}
	T := dat.Fields["T"]
	for name, f := range dat.Fields {
		if name == "T" || name == derived.Potential {
			continue
		}
		for i, t := range T.Data.Elements {
			if !(t < Twarm) {
				f.Data.Elements[i] = 0
			}
		}
	}
	dat.Drop("T")
	return nil
}

// CountSNe bins supernova events onto the (y, x) grid. Only events inside
// the exclusive time window (ts, te), with ambient density above ncrit and
// with positions inside the domain are counted. Cells where no event
// landed are NaN rather than zero: an empty cell is "no data", not an
// observation of zero.
func CountSNe(
	d *grid.Domain, events []io.SNEvent, ts, te, ncrit float64,
) *grid.Field {
	ny, nx := d.Nx[grid.Y], d.Nx[grid.X]
	counts := sparse.ZerosDense(ny, nx)
	for i := range counts.Elements {
		counts.Elements[i] = math.NaN()
	}

	for _, ev := range events {
		if ev.Time <= ts || ev.Time >= te || ev.NAvg <= ncrit {
			continue
		}
		i := d.CellIndex(grid.X, ev.X)
		j := d.CellIndex(grid.Y, ev.Y)
		if i < 0 || i >= nx || j < 0 || j >= ny {
			continue
		}
		if math.IsNaN(counts.Get(j, i)) {
			counts.Set(1, j, i)
		} else {
			counts.Set(counts.Get(j, i)+1, j, i)
		}
	}
	return grid.NewField([]string{"y", "x"}, counts)
}

/*package io loads simulation snapshots and supernova dumps and writes
analysis products.

Snapshots are NetCDF files with one variable per base field, laid out
(z, y, x). The loader and writer treat float32 and float64 variables
interchangeably; everything is float64 in memory.
*/
package io

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"

	"github.com/tigress-gc/gcpost/grid"
)

// BaseFields are the snapshot variables every analysis starts from.
var BaseFields = []string{
	"density",
	"velocity1",
	"velocity2",
	"velocity3",
	"pressure",
	"gravitational_potential",
}

// SnapshotLoader yields the dataset for a snapshot index.
type SnapshotLoader interface {
	LoadSnapshot(num int) (*grid.Dataset, error)
}

// NetCDFLoader loads snapshots from NetCDF files named by a printf-style
// index pattern.
type NetCDFLoader struct {
	Pattern string
	Domain  *grid.Domain
	// Fields to read per snapshot; defaults to BaseFields.
	Fields []string
}

// NewNetCDFLoader returns a loader for files matching pattern (e.g.
// "out/gc.%04d.nc") over the given domain.
func NewNetCDFLoader(pattern string, d *grid.Domain) *NetCDFLoader {
	return &NetCDFLoader{Pattern: pattern, Domain: d, Fields: BaseFields}
}

// LoadSnapshot reads one snapshot into a dataset.
func (l *NetCDFLoader) LoadSnapshot(num int) (*grid.Dataset, error) {
	fname := fmt.Sprintf(l.Pattern, num)
	ff, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer ff.Close()

	f, err := cdf.Open(ff)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", fname, err)
	}

	dat := grid.NewDataset(l.Domain)
	want := []int{l.Domain.Nx[grid.Z], l.Domain.Nx[grid.Y], l.Domain.Nx[grid.X]}
	for _, name := range l.Fields {
		arr, err := readVar(f, name, want)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", fname, err)
		}
		dat.Fields[name] = grid.NewField([]string{"z", "y", "x"}, arr)
	}
	return dat, nil
}

// readVar reads a whole variable into a dense array, converting from the
// on-disk element type and checking the shape.
func readVar(f *cdf.File, name string, want []int) (*sparse.DenseArray, error) {
	dims := f.Header.Lengths(name)
	if len(dims) == 0 {
		return nil, fmt.Errorf("no variable %q", name)
	}
	if len(dims) != len(want) {
		return nil, fmt.Errorf(
			"variable %q has rank %d, want %d", name, len(dims), len(want),
		)
	}
	n := 1
	for i, d := range dims {
		if d != want[i] {
			return nil, fmt.Errorf(
				"variable %q has shape %v, want %v", name, dims, want,
			)
		}
		n *= d
	}

	start := make([]int, len(dims))
	r := f.Reader(name, start, dims)
	buf := r.Zero(n)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("reading %q: %v", name, err)
	}

	arr := sparse.ZerosDense(dims...)
	switch vs := buf.(type) {
	case []float64:
		copy(arr.Elements, vs)
	case []float32:
		for i, v := range vs {
			arr.Elements[i] = float64(v)
		}
	default:
		return nil, fmt.Errorf("variable %q has unsupported type %T", name, buf)
	}
	return arr, nil
}

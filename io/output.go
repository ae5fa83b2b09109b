package io

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"

	"github.com/tigress-gc/gcpost/grid"
)

// WriteDataset writes every field and coordinate of dat, plus the axis
// cell centers, to a NetCDF file. Arrays are stored as float32, which is
// plenty for plotting and archival of derived quantities.
func WriteDataset(fname string, dat *grid.Dataset) error {
	d := dat.Domain
	h := cdf.NewHeader(
		[]string{"z", "y", "x"},
		[]int{d.Nx[grid.Z], d.Nx[grid.Y], d.Nx[grid.X]},
	)

	h.AddVariable("x", []string{"x"}, []float32{})
	h.AddVariable("y", []string{"y"}, []float32{})
	h.AddVariable("z", []string{"z"}, []float32{})
	h.AddAttribute("x", "units", "pc")
	h.AddAttribute("y", "units", "pc")
	h.AddAttribute("z", "units", "pc")

	names := []string{}
	add := func(name string, f *grid.Field) {
		h.AddVariable(name, f.Dims, []float32{})
		names = append(names, name)
	}
	for name, f := range dat.Fields {
		add(name, f)
	}
	for name, f := range dat.Coords {
		add(name, f)
	}
	h.Define()

	ff, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer ff.Close()

	f, err := cdf.Create(ff, h)
	if err != nil {
		return fmt.Errorf("%s: %v", fname, err)
	}

	writeVar := func(name string, els []float64) error {
		data32 := make([]float32, len(els))
		for i, e := range els {
			data32[i] = float32(e)
		}
		end := f.Header.Lengths(name)
		start := make([]int, len(end))
		w := f.Writer(name, start, end)
		if _, err := w.Write(data32); err != nil {
			return fmt.Errorf("%s: writing %q: %v", fname, name, err)
		}
		return nil
	}

	for axis, name := range map[int]string{grid.X: "x", grid.Y: "y", grid.Z: "z"} {
		if err := writeVar(name, d.CellCenters(axis)); err != nil {
			return err
		}
	}
	for _, name := range names {
		f2, ok := dat.Fields[name]
		if !ok {
			f2 = dat.Coords[name]
		}
		if err := writeVar(name, f2.Data.Elements); err != nil {
			return err
		}
	}
	return nil
}

/*package derived computes derived physical fields (scale height, surface
density, turbulent and gravitational pressure, temperature, self-gravity
acceleration) from the base fields of a snapshot dataset.

Field dependencies form a small fixed DAG (sz needs Pturb; Pgrav needs
gz_sg and R). The resolver computes missing prerequisites on demand and
never recomputes a field that is already present.
*/
package derived

import (
	"fmt"
	"math"

	"github.com/ctessum/sparse"

	"github.com/tigress-gc/gcpost/cooling"
	"github.com/tigress-gc/gcpost/grid"
	"github.com/tigress-gc/gcpost/units"
)

// Base field names expected in loaded snapshots.
const (
	Density   = "density"
	Velocity1 = "velocity1"
	Velocity2 = "velocity2"
	Velocity3 = "velocity3"
	Pressure  = "pressure"
	Potential = "gravitational_potential"
)

// Engine computes derived fields. Cool and U supply the external
// cooling-function table and unit system used by the temperature field.
type Engine struct {
	Cool *cooling.Table
	U    *units.Units
}

// NewEngine returns an engine over the given cooling table and unit system.
func NewEngine(tab *cooling.Table, u *units.Units) *Engine {
	return &Engine{Cool: tab, U: u}
}

type computer struct {
	deps  []string
	coord bool // result is attached as a coordinate, not a data field
	fn    func(e *Engine, dat *grid.Dataset) (*grid.Field, error)
}

var computers = map[string]computer{
	"H":     {fn: (*Engine).scaleHeight},
	"surf":  {fn: (*Engine).surfaceDensity},
	"Pturb": {fn: (*Engine).turbulentPressure},
	"sz":    {deps: []string{"Pturb"}, fn: (*Engine).velocityDispersion},
	"R":     {coord: true, fn: (*Engine).cylindricalRadius},
	"T":     {fn: (*Engine).temperature},
	"gz_sg": {fn: (*Engine).selfGravityAccel},
	"Pgrav": {deps: []string{"gz_sg", "R"}, fn: (*Engine).gravitationalPressure},
}

// AddFieldsInPlace computes the requested derived fields, inserting them
// (and any missing prerequisites) into dat.
func (e *Engine) AddFieldsInPlace(dat *grid.Dataset, fields ...string) error {
	for _, name := range fields {
		if err := e.resolve(dat, name); err != nil {
			return err
		}
	}
	return nil
}

// AddFields computes the requested derived fields into an augmented shallow
// copy of dat. The input dataset is never mutated, including by
// recursively computed prerequisites.
func (e *Engine) AddFields(dat *grid.Dataset, fields ...string) (*grid.Dataset, error) {
	cp := dat.ShallowCopy()
	if err := e.AddFieldsInPlace(cp, fields...); err != nil {
		return nil, err
	}
	return cp, nil
}

// resolve computes name into dat unless it is already present.
func (e *Engine) resolve(dat *grid.Dataset, name string) error {
	if dat.Has(name) {
		return nil
	}
	c, ok := computers[name]
	if !ok {
		return fmt.Errorf("derived: unknown field %q", name)
	}
	for _, dep := range c.deps {
		if err := e.resolve(dat, dep); err != nil {
			return err
		}
	}
	f, err := c.fn(e, dat)
	if err != nil {
		return fmt.Errorf("derived: computing %q: %v", name, err)
	}
	if c.coord {
		dat.Coords[name] = f
	} else {
		dat.Fields[name] = f
	}
	return nil
}

func base(dat *grid.Dataset, name string) (*grid.Field, error) {
	f, ok := dat.Fields[name]
	if !ok {
		return nil, fmt.Errorf("dataset has no %q field", name)
	}
	return f, nil
}

// scaleHeight is the density-weighted rms height
// H = sqrt(wmean(z^2, density, z)), with z^2 masked wherever density is.
func (e *Engine) scaleHeight(dat *grid.Dataset) (*grid.Field, error) {
	rho, err := base(dat, Density)
	if err != nil {
		return nil, err
	}
	zs := dat.Domain.CellCenters(grid.Z)

	zsq := grid.ZerosLike(rho)
	nz, ny, nx := rho.Data.Shape[0], rho.Data.Shape[1], rho.Data.Shape[2]
	for k := 0; k < nz; k++ {
		z2 := zs[k] * zs[k]
		for i := k * ny * nx; i < (k+1)*ny*nx; i++ {
			if math.IsNaN(rho.Data.Elements[i]) {
				zsq.Data.Elements[i] = math.NaN()
			} else {
				zsq.Data.Elements[i] = z2
			}
		}
	}

	h2, err := grid.WeightedMean(zsq, rho, "z")
	if err != nil {
		return nil, err
	}
	for i, v := range h2.Data.Elements {
		h2.Data.Elements[i] = math.Sqrt(v)
	}
	return h2, nil
}

// surfaceDensity is surf = sum(density*dz, z).
func (e *Engine) surfaceDensity(dat *grid.Dataset) (*grid.Field, error) {
	rho, err := base(dat, Density)
	if err != nil {
		return nil, err
	}
	return grid.SumAlong(rho, "z", dat.Domain.Dx[grid.Z])
}

// turbulentPressure is Pturb = density*velocity3^2.
func (e *Engine) turbulentPressure(dat *grid.Dataset) (*grid.Field, error) {
	rho, err := base(dat, Density)
	if err != nil {
		return nil, err
	}
	vz, err := base(dat, Velocity3)
	if err != nil {
		return nil, err
	}
	p := grid.ZerosLike(rho)
	for i, r := range rho.Data.Elements {
		v := vz.Data.Elements[i]
		p.Data.Elements[i] = r * v * v
	}
	return p, nil
}

// velocityDispersion is sz = sqrt((Pturb/density) interpolated to z=0).
func (e *Engine) velocityDispersion(dat *grid.Dataset) (*grid.Field, error) {
	rho, err := base(dat, Density)
	if err != nil {
		return nil, err
	}
	pturb, err := base(dat, "Pturb")
	if err != nil {
		return nil, err
	}

	ratio := grid.ZerosLike(rho)
	for i, p := range pturb.Data.Elements {
		ratio.Data.Elements[i] = p / rho.Data.Elements[i]
	}
	plane, err := grid.InterpZ0(ratio, dat.Domain)
	if err != nil {
		return nil, err
	}
	for i, v := range plane.Data.Elements {
		plane.Data.Elements[i] = math.Sqrt(v)
	}
	return plane, nil
}

// cylindricalRadius is the coordinate R = sqrt(x^2+y^2) on the (y, x) plane.
func (e *Engine) cylindricalRadius(dat *grid.Dataset) (*grid.Field, error) {
	xs := dat.Domain.CellCenters(grid.X)
	ys := dat.Domain.CellCenters(grid.Y)
	r := sparse.ZerosDense(len(ys), len(xs))
	for j, y := range ys {
		for i, x := range xs {
			r.Set(math.Sqrt(x*x+y*y), j, i)
		}
	}
	return grid.NewField([]string{"y", "x"}, r), nil
}

// temperature converts the pressure proxy t1 = pressure*pok/density*muH to
// Kelvin through the cooling table's inverse lookup.
func (e *Engine) temperature(dat *grid.Dataset) (*grid.Field, error) {
	rho, err := base(dat, Density)
	if err != nil {
		return nil, err
	}
	prs, err := base(dat, Pressure)
	if err != nil {
		return nil, err
	}

	t1 := make([]float64, len(prs.Data.Elements))
	for i, p := range prs.Data.Elements {
		t1[i] = p * e.U.POK / rho.Data.Elements[i] * e.U.MuH
	}
	T := grid.ZerosLike(rho)
	e.Cool.GetTemp(t1, T.Data.Elements)
	return T, nil
}

// selfGravityAccel is the vertical acceleration from the self-gravity
// potential: the centered difference -(Phi(z+1)-Phi(z-1))/dz, with the
// shifted planes extended past each z boundary by the one-sided quadratic
// extrapolation 3*f(n-1) - 3*f(n-2) + f(n-3).
func (e *Engine) selfGravityAccel(dat *grid.Dataset) (*grid.Field, error) {
	phi, err := base(dat, Potential)
	if err != nil {
		return nil, err
	}
	nz, ny, nx := phi.Data.Shape[0], phi.Data.Shape[1], phi.Data.Shape[2]
	if nz < 4 {
		return nil, fmt.Errorf(
			"boundary extrapolation needs at least 4 z planes, have %d", nz,
		)
	}
	dz := dat.Domain.Dx[grid.Z]
	el := phi.Data.Elements
	plane := ny * nx

	gz := grid.ZerosLike(phi)
	for q := 0; q < plane; q++ {
		for k := 1; k < nz-1; k++ {
			phil := el[(k-1)*plane+q]
			phir := el[(k+1)*plane+q]
			gz.Data.Elements[k*plane+q] = (phil - phir) / dz
		}
		// Bottom cell: the z-1 plane does not exist; extrapolate it from
		// the first three interior planes.
		phil := 3*el[q] - 3*el[plane+q] + el[2*plane+q]
		gz.Data.Elements[q] = (phil - el[plane+q]) / dz
		// Top cell, mirrored.
		phir := 3*el[(nz-1)*plane+q] - 3*el[(nz-2)*plane+q] + el[(nz-3)*plane+q]
		gz.Data.Elements[(nz-1)*plane+q] = (el[(nz-2)*plane+q] - phir) / dz
	}
	return gz, nil
}

// gravitationalPressure is the weight of the gas column above the
// midplane: Pgrav = -sum_{z>0} density*(gz_sg + gz_ext(R, z))*dz.
func (e *Engine) gravitationalPressure(dat *grid.Dataset) (*grid.Field, error) {
	rho, err := base(dat, Density)
	if err != nil {
		return nil, err
	}
	gzsg, err := base(dat, "gz_sg")
	if err != nil {
		return nil, err
	}
	r, ok := dat.Coords["R"]
	if !ok {
		return nil, fmt.Errorf("dataset has no %q coordinate", "R")
	}

	zs := dat.Domain.CellCenters(grid.Z)
	dz := dat.Domain.Dx[grid.Z]
	nz, ny, nx := rho.Data.Shape[0], rho.Data.Shape[1], rho.Data.Shape[2]

	out := sparse.ZerosDense(ny, nx)
	for k := 0; k < nz; k++ {
		if zs[k] <= 0 {
			continue
		}
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				w := rho.Data.Get(k, j, i) *
					(gzsg.Data.Get(k, j, i) + GzExt(r.Data.Get(j, i), zs[k]))
				if math.IsNaN(w) {
					continue
				}
				out.Elements[j*nx+i] += w
			}
		}
	}
	out.Scale(-dz)
	return grid.NewField([]string{"y", "x"}, out), nil
}

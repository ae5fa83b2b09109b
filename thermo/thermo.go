/*package thermo computes thermal-equilibrium quantities and the
Larson-Penston resolution threshold density from a cooling-function table.

A missing equilibrium (no root of the heating/cooling balance inside the
search bracket) is not an error: it comes back as NaN and propagates
through downstream arithmetic like any other undefined value.
*/
package thermo

import (
	"math"

	"github.com/tigress-gc/gcpost/cooling"
	"github.com/tigress-gc/gcpost/units"
)

// Search bracket for the equilibrium temperature, in Kelvin. The lower
// bound is the first temperature of the classic cooling tables.
const (
	TeqMin = 12.95
	TeqMax = 1.0e7
)

const bisectIter = 80

// Length is a length carried in cm.
type Length float64

// Parsecs builds a Length from a value in parsecs, the default unit for
// cell sizes in this code.
func Parsecs(x float64) Length { return Length(x * units.Pc) }

// Centimeters builds a Length from a value in cm.
func Centimeters(x float64) Length { return Length(x) }

// VelocitySquared is a squared speed carried in cm^2 s^-2.
type VelocitySquared float64

// KmSqPerSSq builds a VelocitySquared from a value in km^2 s^-2, the
// default unit for turbulent sound speeds in this code.
func KmSqPerSSq(x float64) VelocitySquared {
	return VelocitySquared(x * units.Km * units.Km)
}

// CmSqPerSSq builds a VelocitySquared from a value in cm^2 s^-2.
func CmSqPerSSq(x float64) VelocitySquared { return VelocitySquared(x) }

// Solver answers equilibrium queries against a cooling table.
type Solver struct {
	Cool *cooling.Table
}

// NewSolver returns a Solver over the given table.
func NewSolver(tab *cooling.Table) *Solver {
	return &Solver{Cool: tab}
}

// balance is the net heating rate per cooling coefficient at temperature T:
// heatRatio*Gamma(T)/nH - Lambda(T). Equilibrium is its root.
func (s *Solver) balance(heatRatio, nH, T float64) float64 {
	return heatRatio*s.Cool.Heat(T)/nH - s.Cool.Cool(T)
}

// EquilibriumTemperature solves for the temperature at which heating and
// cooling balance, for gas at hydrogen number density nH (cm^-3) under a
// FUV heating rate of heatRatio times the solar-neighborhood value. If the
// balance has no sign change inside [TeqMin, TeqMax] there is no
// equilibrium and NaN is returned.
func (s *Solver) EquilibriumTemperature(heatRatio, nH float64) float64 {
	lo, hi := TeqMin, TeqMax
	flo, fhi := s.balance(heatRatio, nH, lo), s.balance(heatRatio, nH, hi)
	if flo == 0 {
		return lo
	}
	if fhi == 0 {
		return hi
	}
	if math.Signbit(flo) == math.Signbit(fhi) {
		return math.NaN()
	}

	for i := 0; i < bisectIter; i++ {
		mid := (lo + hi) / 2
		fmid := s.balance(heatRatio, nH, mid)
		if fmid == 0 {
			return mid
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Pressure returns P/k_B in K cm^-3 for gas at hydrogen number density nH
// (cm^-3) and temperature T (K): nH * muH/mu(T) * T.
func (s *Solver) Pressure(nH, T float64) float64 {
	return nH * units.MuH / s.Cool.Mu(T) * T
}

// LPThresholdDensity returns the Larson-Penston threshold density
// rho_LP = (8.86/pi) * cs^2 / (G * dx^2) for cell size dx and (turbulent)
// sound speed squared cs2. If asNH is set the result is a hydrogen number
// density in cm^-3; otherwise it is a mass density in M_sun pc^-3.
func LPThresholdDensity(dx Length, cs2 VelocitySquared, asNH bool) float64 {
	d := float64(dx)
	rho := 8.86 / math.Pi * float64(cs2) / (units.G * d * d) // g cm^-3
	if asNH {
		return rho / (units.MuH * units.MP)
	}
	return rho * (units.Pc * units.Pc * units.Pc) / units.MSun
}

// LPThresholdDensityEq is LPThresholdDensity with the sound speed taken
// from thermal equilibrium at temperature Teq: cs^2 = k_B*Teq/(mu(Teq)*m_p).
func (s *Solver) LPThresholdDensityEq(dx Length, Teq float64, asNH bool) float64 {
	cs2 := units.KB * Teq / (s.Cool.Mu(Teq) * units.MP)
	return LPThresholdDensity(dx, CmSqPerSSq(cs2), asNH)
}

package thermo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/tigress-gc/gcpost/cooling"
	"github.com/tigress-gc/gcpost/units"
)

// syntheticTable builds a table whose balance heatRatio*heat/nH - cool has
// a single, analytically known crossing (or none).
func syntheticTable(t *testing.T, coolOf func(T float64) float64) *cooling.Table {
	n := 4096
	logT := make([]float64, n)
	floats.Span(logT, math.Log10(10), 8)

	temp := make([]float64, n)
	t1 := make([]float64, n)
	cool := make([]float64, n)
	heat := make([]float64, n)
	for i, lt := range logT {
		T := math.Pow(10, lt)
		temp[i] = T
		t1[i] = T // mu(T) = muH everywhere
		cool[i] = coolOf(T)
		heat[i] = 2e-26
	}
	tab, err := cooling.New(temp, t1, cool, heat)
	assert.NoError(t, err)
	return tab
}

func TestEquilibriumTemperatureCrossing(t *testing.T) {
	// cool(T) = 2e-28 * T/1e3 crosses heat/nH = 2e-26/100 = 2e-28
	// exactly at T = 1000.
	tab := syntheticTable(t, func(T float64) float64 { return 2e-28 * T / 1e3 })
	s := NewSolver(tab)

	Teq := s.EquilibriumTemperature(1, 100)
	assert.InEpsilon(t, 1000, Teq, 1e-3)
}

func TestEquilibriumTemperatureNoCrossing(t *testing.T) {
	// Cooling always dominates: no equilibrium in the bracket.
	tab := syntheticTable(t, func(T float64) float64 { return 1e-20 })
	s := NewSolver(tab)
	assert.True(t, math.IsNaN(s.EquilibriumTemperature(1, 100)))
}

func TestEquilibriumTemperatureKI(t *testing.T) {
	s := NewSolver(cooling.KoyamaInutsuka())
	Teq := s.EquilibriumTemperature(1, 100)
	assert.False(t, math.IsNaN(Teq))
	// Dense gas equilibrates cold.
	assert.Greater(t, Teq, TeqMin)
	assert.Less(t, Teq, 200.0)
	// The root actually balances heating and cooling.
	assert.InDelta(t, 0,
		s.Cool.Heat(Teq)/100-s.Cool.Cool(Teq),
		1e-3*s.Cool.Cool(Teq),
	)
}

func TestPressure(t *testing.T) {
	tab := syntheticTable(t, func(T float64) float64 { return 1e-26 })
	s := NewSolver(tab)
	// mu = muH in the synthetic table, so P/kB = nH*T.
	assert.InEpsilon(t, 1e4, s.Pressure(100, 100), 1e-12)
}

func TestLPThresholdDensityUnits(t *testing.T) {
	// Bare-number defaults: pc and km^2/s^2.
	nH := LPThresholdDensity(Parsecs(4), KmSqPerSSq(0.04), true)
	cm := LPThresholdDensity(
		Centimeters(4*units.Pc), CmSqPerSSq(0.04*units.Km*units.Km), true,
	)
	assert.InEpsilon(t, nH, cm, 1e-12)

	// Mass-density output relates to number density by muH*mp in
	// astronomical units.
	rho := LPThresholdDensity(Parsecs(4), KmSqPerSSq(0.04), false)
	back := rho * units.MSun / (units.Pc * units.Pc * units.Pc) /
		(units.MuH * units.MP)
	assert.InEpsilon(t, nH, back, 1e-12)

	// Finer grids tolerate higher densities.
	assert.Greater(t,
		LPThresholdDensity(Parsecs(2), KmSqPerSSq(0.04), true),
		LPThresholdDensity(Parsecs(8), KmSqPerSSq(0.04), true),
	)
}

func TestLPThresholdConsistency(t *testing.T) {
	// Feeding LPThresholdDensityEq a temperature must agree with feeding
	// LPThresholdDensity the equilibrium sound speed it implies, and the
	// implied pressure must be consistent with Pressure at that (nH, T).
	s := NewSolver(cooling.KoyamaInutsuka())
	Teq := 100.0
	cs2 := units.KB * Teq / (s.Cool.Mu(Teq) * units.MP)

	a := s.LPThresholdDensityEq(Parsecs(4), Teq, true)
	b := LPThresholdDensity(Parsecs(4), CmSqPerSSq(cs2), true)
	assert.InEpsilon(t, a, b, 1e-12)

	// P/kB = nH*(muH/mu)*T and cs2 = kB*T/(mu*mp) imply
	// P*kB/(nH*muH*mp) = cs2 up to the same mu(T): a round-trip check
	// between the two formulas.
	nH := 10.0
	p := s.Pressure(nH, Teq) // K cm^-3
	cs2FromP := p * units.KB / (nH * units.MuH * units.MP)
	assert.InEpsilon(t, cs2, cs2FromP, 1e-12)
}

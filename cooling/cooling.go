/*package cooling provides the heating/cooling function table used to
convert between the pressure-over-density temperature proxy and physical
temperature, and to evaluate heating and cooling rates.

A Table holds four parallel, strictly increasing-in-temperature columns:

	temp  physical temperature [K]
	t1    temperature proxy T*muH/mu(T), i.e. (P/k_B)/n_H [K]
	cool  cooling rate coefficient Lambda(T) [erg cm^3 s^-1]
	heat  heating rate Gamma(T) [erg s^-1]

Tables can be built analytically from the Koyama & Inutsuka (2002) fitting
function or loaded from a whitespace-separated text file.
*/
package cooling

import (
	"fmt"
	"math"
	"os"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/tigress-gc/gcpost/units"
)

// Table is a sampled heating/cooling function.
type Table struct {
	temp, t1, cool, heat []float64

	coolFt, heatFt, muFt interp.PiecewiseLinear
	tempFt               interp.PiecewiseLinear // t1 -> temp
}

// New builds a Table from its four columns. temp and t1 must be strictly
// increasing and all columns must have the same length.
func New(temp, t1, cool, heat []float64) (*Table, error) {
	n := len(temp)
	if len(t1) != n || len(cool) != n || len(heat) != n {
		return nil, fmt.Errorf(
			"cooling: column lengths %d, %d, %d, %d differ",
			n, len(t1), len(cool), len(heat),
		)
	}

	mu := make([]float64, n)
	for i := range mu {
		// t1 = T*muH/mu, so mu = muH*T/t1.
		mu[i] = units.MuH * temp[i] / t1[i]
	}

	t := &Table{temp: temp, t1: t1, cool: cool, heat: heat}
	if err := t.coolFt.Fit(temp, cool); err != nil {
		return nil, fmt.Errorf("cooling: bad temp column: %v", err)
	}
	if err := t.heatFt.Fit(temp, heat); err != nil {
		return nil, fmt.Errorf("cooling: bad temp column: %v", err)
	}
	if err := t.muFt.Fit(temp, mu); err != nil {
		return nil, fmt.Errorf("cooling: bad temp column: %v", err)
	}
	if err := t.tempFt.Fit(t1, temp); err != nil {
		return nil, fmt.Errorf("cooling: bad t1 column: %v", err)
	}
	return t, nil
}

// TempRange returns the temperature bounds of the table.
func (t *Table) TempRange() (lo, hi float64) {
	return t.temp[0], t.temp[len(t.temp)-1]
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Cool returns the cooling coefficient Lambda(T) in erg cm^3 s^-1.
func (t *Table) Cool(T float64) float64 {
	return t.coolFt.Predict(clamp(T, t.temp[0], t.temp[len(t.temp)-1]))
}

// Heat returns the heating rate Gamma(T) in erg s^-1.
func (t *Table) Heat(T float64) float64 {
	return t.heatFt.Predict(clamp(T, t.temp[0], t.temp[len(t.temp)-1]))
}

// Mu returns the mean molecular weight mu(T).
func (t *Table) Mu(T float64) float64 {
	return t.muFt.Predict(clamp(T, t.temp[0], t.temp[len(t.temp)-1]))
}

// Temp performs the inverse lookup from the temperature proxy
// t1 = (P/k_B)/n_H to physical temperature. NaN input gives NaN output.
func (t *Table) Temp(t1 float64) float64 {
	if math.IsNaN(t1) {
		return math.NaN()
	}
	return t.tempFt.Predict(clamp(t1, t.t1[0], t.t1[len(t.t1)-1]))
}

// GetTemp performs the inverse lookup for a whole array of proxy values.
// If an output slice is given the result is written there (and returned).
func (t *Table) GetTemp(t1s []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(t1s))}
	}
	for i, v := range t1s {
		out[0][i] = t.Temp(v)
	}
	return out[0]
}

const (
	// KI02 heating rate (erg s^-1).
	gamma0 = 2.0e-26

	kiTableSize = 1024
	kiTempMin   = 12.95
	kiTempMax   = 1.0e9
)

// kiLambda is the Koyama & Inutsuka (2002) net cooling fit, in erg cm^3/s.
func kiLambda(T float64) float64 {
	return gamma0 * (1.0e7*math.Exp(-1.184e5/(T+1000)) +
		1.4e-2*math.Sqrt(T)*math.Exp(-92/T))
}

// kiMu is a smooth neutral-to-ionized transition of the mean molecular
// weight, from 1.295 for cold atomic gas to 0.618 for fully ionized gas.
func kiMu(T float64) float64 {
	const (
		muNeutral = 1.295
		muIonized = 0.618
		logTMid   = 4.1 // transition centered near 1.2e4 K
		logTWidth = 0.2
	)
	f := 1 / (1 + math.Exp((math.Log10(T)-logTMid)/logTWidth))
	return muIonized + (muNeutral-muIonized)*f
}

// KoyamaInutsuka builds the analytic KI02 table on a log-spaced temperature
// grid spanning [12.95, 1e9] K.
func KoyamaInutsuka() *Table {
	logT := make([]float64, kiTableSize)
	floats.Span(logT, math.Log10(kiTempMin), math.Log10(kiTempMax))

	temp := make([]float64, kiTableSize)
	t1 := make([]float64, kiTableSize)
	cool := make([]float64, kiTableSize)
	heat := make([]float64, kiTableSize)
	for i, lt := range logT {
		T := math.Pow(10, lt)
		temp[i] = T
		t1[i] = T * units.MuH / kiMu(T)
		cool[i] = kiLambda(T)
		heat[i] = gamma0
	}

	t, err := New(temp, t1, cool, heat)
	if err != nil {
		// The analytic columns are monotonic by construction.
		panic(err)
	}
	return t
}

// ReadTable loads a table from a text file with whitespace-separated
// columns temp, t1, cool, heat. Lines starting with '#' are skipped.
func ReadTable(fname string) (*Table, error) {
	text, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cols := table.Text(text).ReadFloat64s([]int{0, 1, 2, 3})
	return New(cols[0], cols[1], cols[2], cols[3])
}

/*phase plots the equilibrium phase diagram of the Koyama & Inutsuka
cooling model together with the Larson-Penston collapse thresholds for a
few cell sizes.

Usage:
    $ phase plot_dir
*/
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path"

	"gonum.org/v1/gonum/floats"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/tigress-gc/gcpost/cooling"
	"github.com/tigress-gc/gcpost/thermo"
)

const n = 256

var (
	heatRatios = []float64{1, 10, 100, 1000}
	cellSizes  = []float64{8, 4, 2} // pc

	ratioColors = []string{
		"DarkSlateBlue", "DarkTurquoise", "DarkViolet", "DeepPink",
	}
	sizeColors = []string{"DimGray", "DarkSlateGray", "k"}
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("Usage: $ %s plot_dir", os.Args[0])
	}
	plotDir := os.Args[1]

	s := thermo.NewSolver(cooling.KoyamaInutsuka())

	nHs := make([]float64, n)
	floats.Span(nHs, -2, 7)
	for i := range nHs {
		nHs[i] = math.Pow(10, nHs[i])
	}

	plotPressure(s, nHs, path.Join(plotDir, "phase_pressure.png"))
	plotTemperature(s, nHs, path.Join(plotDir, "phase_temperature.png"))
	plt.Execute()
}

// eqCurves evaluates Teq and Peq along nHs, splitting out the densities
// where an equilibrium exists.
func eqCurves(
	s *thermo.Solver, nHs []float64, heatRatio float64,
) (ns, Ts, Ps []float64) {
	for _, nH := range nHs {
		T := s.EquilibriumTemperature(heatRatio, nH)
		if math.IsNaN(T) {
			continue
		}
		ns = append(ns, nH)
		Ts = append(Ts, T)
		Ps = append(Ps, s.Pressure(nH, T))
	}
	return ns, Ts, Ps
}

func plotPressure(s *thermo.Solver, nHs []float64, fname string) {
	plt.Figure()

	for i, hr := range heatRatios {
		ns, _, Ps := eqCurves(s, nHs, hr)
		plt.Plot(ns, Ps, plt.LW(2), plt.C(ratioColors[i]))
	}

	// Collapse thresholds, drawn as loci in the (n, P) plane.
	Teqs := make([]float64, n)
	floats.Span(Teqs, math.Log10(thermo.TeqMin), 5)
	for i := range Teqs {
		Teqs[i] = math.Pow(10, Teqs[i])
	}
	for i, dx := range cellSizes {
		ns := make([]float64, len(Teqs))
		Ps := make([]float64, len(Teqs))
		for j, T := range Teqs {
			ns[j] = s.LPThresholdDensityEq(thermo.Parsecs(dx), T, true)
			Ps[j] = s.Pressure(ns[j], T)
		}
		plt.Plot(ns, Ps, "--", plt.LW(1), plt.C(sizeColors[i]))
	}

	plt.Title(fmt.Sprintf(
		"Equilibrium pressure, heat ratios %v, dx = %v pc",
		heatRatios, cellSizes,
	))
	plt.XLabel(`$n_{\rm H}$ $[{\rm cm^{-3}}]$`, plt.FontSize(16))
	plt.YLabel(`$P/k_B$ $[{\rm K\,cm^{-3}}]$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.XLim(1e-2, 1e7)
	plt.Grid(plt.Axis("both"), plt.Which("both"))
	plt.SaveFig(fname)
}

func plotTemperature(s *thermo.Solver, nHs []float64, fname string) {
	plt.Figure()

	for i, hr := range heatRatios {
		ns, Ts, _ := eqCurves(s, nHs, hr)
		plt.Plot(ns, Ts, plt.LW(2), plt.C(ratioColors[i]))
	}

	plt.Title(fmt.Sprintf(
		"Equilibrium temperature, heat ratios %v", heatRatios,
	))
	plt.XLabel(`$n_{\rm H}$ $[{\rm cm^{-3}}]$`, plt.FontSize(16))
	plt.YLabel(`$T_{\rm eq}$ $[{\rm K}]$`, plt.FontSize(16))
	plt.XScale("log")
	plt.YScale("log")
	plt.XLim(1e-2, 1e7)
	plt.YLim(10, 1e7)
	plt.Grid(plt.Axis("both"), plt.Which("both"))
	plt.SaveFig(fname)
}

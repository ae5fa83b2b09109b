package derived

import (
	"math"
)

// External-gravity model parameters: a razor-thin stellar disk of surface
// density sigmaStar and scale height zStar plus a constant-density dark
// halo, the standard vertical external field for solar-neighborhood
// conditions.
const (
	// G in code units: pc (km/s)^2 M_sun^-1.
	gCode = 4.30091e-3

	sigmaStar = 42.0   // M_sun pc^-2
	zStar     = 245.0  // pc
	rhoDM     = 0.0064 // M_sun pc^-3
)

// GzExt returns the external (non-self-gravity) vertical acceleration at
// cylindrical radius r and height z, in code units of (km/s)^2 pc^-1.
// The disk term flattens the field within z* of the midplane; the halo
// term grows linearly with height. The fiducial field is radially uniform,
// so r is unused.
func GzExt(r, z float64) float64 {
	disk := 2 * math.Pi * gCode * sigmaStar * z / math.Sqrt(z*z+zStar*zStar)
	halo := 4 * math.Pi * gCode * rhoDM * z
	return -(disk + halo)
}

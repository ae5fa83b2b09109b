/*package units defines the code unit system used by the simulation snapshots
and the conversion factors between code units and CGS/astronomical units.

The code units are those of the underlying disk simulations: lengths in
parsecs, velocities in km/s, and mass densities in units of muH hydrogen
masses per cubic centimeter. Every other factor here is derived from those
three choices. Conversions are always applied explicitly at the call site,
never implicitly inside field formulas.
*/
package units

// Physical constants in CGS units.
const (
	G    = 6.67430e-8        // cm^3 g^-1 s^-2
	KB   = 1.380649e-16      // erg K^-1
	MH   = 1.6735575e-24     // g
	MP   = 1.67262192369e-24 // g
	Pc   = 3.0856775814914e18 // cm
	Km   = 1.0e5             // cm
	MSun = 1.98841e33        // g
	Myr  = 3.1556952e13      // s

	// MuH is the mean molecular weight per hydrogen nucleus for gas at
	// solar abundances.
	MuH = 1.4271
)

// Units holds the conversion factors from code units to physical units.
type Units struct {
	// Length converts code lengths to cm.
	Length float64
	// Velocity converts code velocities to cm/s.
	Velocity float64
	// Density converts code mass densities to g/cm^3.
	Density float64
	// Pressure converts code pressures to erg/cm^3.
	Pressure float64
	// POK converts code pressures to P/k_B in K cm^-3.
	POK float64
	// Time converts code times to Myr.
	Time float64
	// MuH is carried on the struct so callers holding a Units value do not
	// need to also import the constant.
	MuH float64
}

// New returns the conversion factors for the simulation code unit system.
func New() *Units {
	u := &Units{}
	u.Length = Pc
	u.Velocity = Km
	u.Density = MuH * MH
	u.Pressure = u.Density * u.Velocity * u.Velocity
	u.POK = u.Pressure / KB
	u.Time = (u.Length / u.Velocity) / Myr
	u.MuH = MuH
	return u
}

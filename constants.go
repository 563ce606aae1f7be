package rocket

import "fmt"

const (
	// GravConst is the universal gravitational constant (m³/(kg·s²)), CODATA 2018.
	GravConst = 6.67430e-11
	// StdGravity is the standard gravitational acceleration (m/s²).
	StdGravity = 9.80665
	// GasConstant is the specific gas constant of dry air (J/(kg·K)).
	GasConstant = 287.05287
	// HeatRatio is the ratio of specific heats of dry air.
	HeatRatio = 1.4
)

// Planet defines a celestial body a vehicle can launch from. All values SI.
type Planet struct {
	Name            string
	Radius          float64 // m, equatorial
	Mass            float64 // kg
	RotationRate    float64 // rad/s, sidereal
	J2              float64 // oblateness coefficient, dimensionless
	SeaLevelDensity float64 // kg/m³
	ScaleHeight     float64 // m, for the exponential density falloff
	KarmanAlt       float64 // m, above this the atmosphere is vacuum
}

// GM returns the gravitational parameter μ of this planet (m³/s²).
func (p Planet) GM() float64 {
	return GravConst * p.Mass
}

// String implements the Stringer interface.
func (p Planet) String() string {
	return fmt.Sprintf("[Object %s]", p.Name)
}

// Equals returns whether the provided planet is the same.
func (p Planet) Equals(b Planet) bool {
	return p.Name == b.Name
}

// Earth is home.
var Earth = Planet{
	Name:            "Earth",
	Radius:          6378137.0,
	Mass:            5.9722e24,
	RotationRate:    7.2921159e-5,
	J2:              1082.6269e-6,
	SeaLevelDensity: 1.225,
	ScaleHeight:     8500.0,
	KarmanAlt:       100e3,
}

// Mars is the vacation place.
var Mars = Planet{
	Name:            "Mars",
	Radius:          3396190.0,
	Mass:            6.4169e23,
	RotationRate:    7.0882e-5,
	J2:              1960.45e-6,
	SeaLevelDensity: 0.020,
	ScaleHeight:     11100.0,
	KarmanAlt:       80e3,
}

// PlanetFromString returns the planet matching the given name.
func PlanetFromString(name string) (Planet, error) {
	switch name {
	case "Earth", "earth":
		return Earth, nil
	case "Mars", "mars":
		return Mars, nil
	}
	return Planet{}, fmt.Errorf("unknown planet `%s`", name)
}

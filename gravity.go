package rocket

import "math"

// GravityModel maps altitude (and latitude) to the local gravitational
// acceleration via the inverse-square law, with an optional first-order
// J2 oblateness correction.
type GravityModel struct {
	Planet Planet
	Oblate bool // apply the J2 latitude correction
}

// Gravity returns the local gravitational acceleration in m/s².
// The latitude is in radians. Altitude is floored at zero upstream, so
// r ≥ planet radius and the division is always defined.
func (g GravityModel) Gravity(altitude, latitude float64) float64 {
	if altitude < 0 {
		altitude = 0
	}
	r := g.Planet.Radius + altitude
	acc := g.Planet.GM() / (r * r)
	if g.Oblate {
		sinLat := math.Sin(latitude)
		ratio := g.Planet.Radius / r
		acc *= 1 + 1.5*g.Planet.J2*ratio*ratio*(1-5*sinLat*sinLat)
	}
	return acc
}

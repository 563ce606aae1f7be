package rocket

import "math"

// DragSolution holds the aerodynamic force on the vehicle and the regime
// numbers it was derived from.
type DragSolution struct {
	Force           float64 // N, opposing the velocity vector
	Mach            float64
	DynamicPressure float64 // Pa
}

// DragModel computes aerodynamic drag from the local atmosphere, with an
// optional compressibility correction through the transonic regime.
type DragModel struct {
	Atmosphere      Atmosphere
	Compressibility bool
}

// Drag returns the drag solution for the given speed and altitude.
// Near-zero density or speed yields a zero solution (no division by the
// speed of sound in vacuum).
func (d DragModel) Drag(speed, altitude, cd, area float64) DragSolution {
	props := d.Atmosphere.Properties(altitude)
	if nearZero(props.Density) || nearZero(speed) {
		return DragSolution{}
	}
	q := 0.5 * props.Density * speed * speed
	var mach float64
	if !nearZero(props.SpeedOfSound) {
		mach = speed / props.SpeedOfSound
	}
	cdEff := cd
	if d.Compressibility {
		cdEff *= compressibilityFactor(mach)
	}
	return DragSolution{Force: q * cdEff * area, Mach: mach, DynamicPressure: q}
}

// compressibilityFactor is an empirical multiplier on the subsonic drag
// coefficient: unity below Mach 0.8, a quadratic rise through the transonic
// band, then a slow decay back toward the supersonic plateau.
func compressibilityFactor(mach float64) float64 {
	switch {
	case mach < 0.8:
		return 1
	case mach < 1.2:
		return 1 + 2.5*(mach-0.8)*(mach-0.8)
	default:
		return 1 + 0.4*math.Exp(-0.7*(mach-1.2))
	}
}

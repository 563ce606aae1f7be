package rocket

import "math"

// Engine defines rocket stage hardware.
type Engine interface {
	// Rated returns the rated thrust in Newtons and the specific impulses
	// in seconds at sea level and in vacuum.
	Rated() (thrust, ispSeaLevel, ispVacuum float64)
}

// GenericEngine is a fixed-rating engine.
type GenericEngine struct {
	thrust float64
	ispSL  float64
	ispVac float64
}

// Rated implements the Engine interface.
func (e *GenericEngine) Rated() (thrust, ispSeaLevel, ispVacuum float64) {
	return e.thrust, e.ispSL, e.ispVac
}

// NewGenericEngine returns a generic engine. Passing the same ISP for sea
// level and vacuum disables the altitude blend for that engine.
func NewGenericEngine(thrust, ispSeaLevel, ispVacuum float64) *GenericEngine {
	return &GenericEngine{thrust, ispSeaLevel, ispVacuum}
}

// PropulsionSolution holds the effective engine output.
type PropulsionSolution struct {
	Thrust          float64 // N
	MassFlow        float64 // kg/s, the rocket-equation depletion rate
	ExhaustVelocity float64 // m/s
}

// PropulsionModel maps commanded thrust, specific impulse and altitude to
// the effective engine output.
type PropulsionModel struct {
	Planet Planet
}

// Solve returns the engine output for a single specific impulse value.
// An engine which is off, or commanded to zero thrust, produces nothing.
func (p PropulsionModel) Solve(commanded, isp, altitude float64, engineOn bool) PropulsionSolution {
	if !engineOn || commanded <= 0 || isp <= 0 {
		return PropulsionSolution{}
	}
	ve := isp * StdGravity
	return PropulsionSolution{
		Thrust:          commanded,
		MassFlow:        commanded / ve,
		ExhaustVelocity: ve,
	}
}

// SolveEngine returns the engine output with the ISP blended between its
// sea-level and vacuum ratings as the ambient pressure vanishes. Real
// nozzles gain efficiency with altitude; the blend follows the exponential
// atmosphere shape.
func (p PropulsionModel) SolveEngine(e Engine, altitude float64, engineOn bool) PropulsionSolution {
	thrust, ispSL, ispVac := e.Rated()
	isp := ispSL
	if ispVac != ispSL {
		if altitude < 0 {
			altitude = 0
		}
		blend := 1 - math.Exp(-altitude/p.Planet.ScaleHeight)
		isp = ispSL + (ispVac-ispSL)*blend
	}
	return p.Solve(thrust, isp, altitude, engineOn)
}

package rocket

import "math"

// OptimalParameters summarizes one ascent: the orbit requirements, what the
// vehicle actually achieved, and the key trajectory events.
type OptimalParameters struct {
	RequiredOrbitalVelocity float64 `json:"requiredOrbitalVelocity"` // m/s, circular at the target altitude
	RotationBonus           float64 `json:"rotationBonus"`           // m/s, eastward surface velocity at the launch latitude
	AchievedVelocity        float64 `json:"achievedVelocity"`        // m/s, at the end of the run
	LaunchAngle             float64 `json:"launchAngle"`             // degrees, effective ascent angle
	Stage1BurnTime          float64 `json:"stage1BurnTime"`          // s
	Stage2BurnTime          float64 `json:"stage2BurnTime"`          // s
	MaxAltitude             float64 `json:"maxAltitude"`             // m
	SeparationTime          float64 `json:"separationTime"`          // s
	SeparationAltitude      float64 `json:"separationAltitude"`      // m
	TotalFlightTime         float64 `json:"totalFlightTime"`         // s
}

// RequiredOrbitalVelocity returns the circular orbital velocity (m/s) at the
// given altitude above the planet surface: √(μ/r).
func RequiredOrbitalVelocity(planet Planet, altitude float64) float64 {
	return math.Sqrt(planet.GM() / (planet.Radius + altitude))
}

// RotationBonus returns the eastward velocity (m/s) the planet's rotation
// grants a vehicle launched at the given latitude (degrees).
func RotationBonus(planet Planet, latitude float64) float64 {
	return planet.RotationRate * planet.Radius * math.Cos(latitude*deg2rad)
}

// Summarize derives the summary metrics from a recorded trajectory. It works
// on any sample slice, so partial runs summarize too.
func Summarize(samples []TrajectorySample, params LaunchParameters, planet Planet) OptimalParameters {
	out := OptimalParameters{
		RequiredOrbitalVelocity: RequiredOrbitalVelocity(planet, params.TargetAltitude),
		RotationBonus:           RotationBonus(planet, params.Latitude),
		Stage1BurnTime:          params.Spec.Stage1.Burn,
		Stage2BurnTime:          params.Spec.Stage2.Burn,
		LaunchAngle:             45, // fallback for a vehicle which never moved downrange
	}
	if len(samples) == 0 {
		return out
	}
	var maxAlt float64
	sepFound := false
	for _, s := range samples {
		if s.Altitude > maxAlt {
			maxAlt = s.Altitude
		}
		if !sepFound && s.Stage == 2 {
			out.SeparationTime = s.Time
			out.SeparationAltitude = s.Altitude
			sepFound = true
		}
	}
	if !sepFound {
		// The run ended during the first burn.
		out.SeparationTime = params.Spec.Stage1.Burn
	}
	last := samples[len(samples)-1]
	out.AchievedVelocity = last.Velocity
	out.MaxAltitude = maxAlt
	out.TotalFlightTime = last.Time
	if !nearZero(last.Downrange) {
		out.LaunchAngle = math.Atan2(last.Altitude, last.Downrange) / deg2rad
	}
	return out
}

// summarize uses the mission's own separation record, which is exact where
// the sampled one is quantized to the step size.
func (m *Mission) summarize() OptimalParameters {
	out := Summarize(m.samples, m.Params, m.Planet)
	if m.separated {
		out.SeparationTime = m.sepTime
		out.SeparationAltitude = m.sepAlt
	}
	return out
}

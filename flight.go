package rocket

// ClampCounters records how many times each post-step clamp fired during a
// run. A non-zero count does not fail the run, but repeated clamping means
// the vehicle parameters are physically implausible.
type ClampCounters struct {
	Mass     uint64 `json:"mass"`
	Altitude uint64 `json:"altitude"`
	Angle    uint64 `json:"angle"`
	Speed    uint64 `json:"speed"`
}

// Total returns the total number of clamp events.
func (c ClampCounters) Total() uint64 {
	return c.Mass + c.Altitude + c.Angle + c.Speed
}

// FlightState is the integration state vector of the vehicle: downrange
// distance and altitude, scalar speed along the flight path, flight-path
// angle, remaining mass, and the mission elapsed time. It is owned by the
// Mission and mutated one step at a time.
type FlightState struct {
	Downrange float64 // m
	Altitude  float64 // m
	Speed     float64 // m/s
	Gamma     float64 // flight-path angle γ, rad, within [-π/2, π/2]
	Mass      float64 // kg
	Elapsed   float64 // s since liftoff
	Clamps    ClampCounters
}

// vector returns the state in the integrator layout.
func (s FlightState) vector() []float64 {
	return []float64{s.Downrange, s.Altitude, s.Speed, s.Gamma, s.Mass}
}

// TrajectorySample is one recorded observation, produced once per
// integration step.
type TrajectorySample struct {
	Time         float64 `json:"time"`         // s since liftoff
	Altitude     float64 `json:"altitude"`     // m
	Velocity     float64 `json:"velocity"`     // m/s
	Acceleration float64 `json:"acceleration"` // m/s², magnitude
	Thrust       float64 `json:"thrust"`       // N
	Mass         float64 `json:"mass"`         // kg
	Downrange    float64 `json:"downrange"`    // m
	Stage        int     `json:"stage"`        // 1 or 2
}

// SimulationResult is the ordered trajectory plus the derived summary.
// It is created once at the end of a run and read-only thereafter.
type SimulationResult struct {
	Samples []TrajectorySample  `json:"samples"`
	Summary OptimalParameters   `json:"summary"`
	Clamps  ClampCounters       `json:"clamps"`
	Budget  *StepBudgetExceeded `json:"budget,omitempty"` // non-nil when a phase gave up at its step bound
}

// series extracts one field of the trajectory as (times, values), optionally
// restricted to a single stage (0 keeps every sample).
func (r *SimulationResult) series(stage int, field func(TrajectorySample) float64) (times, values []float64) {
	for _, s := range r.Samples {
		if stage != 0 && s.Stage != stage {
			continue
		}
		times = append(times, s.Time)
		values = append(values, field(s))
	}
	return
}

// AltitudeSeries returns the altitude/time series.
func (r *SimulationResult) AltitudeSeries() (times, values []float64) {
	return r.series(0, func(s TrajectorySample) float64 { return s.Altitude })
}

// VelocitySeries returns the velocity/time series.
func (r *SimulationResult) VelocitySeries() (times, values []float64) {
	return r.series(0, func(s TrajectorySample) float64 { return s.Velocity })
}

// AccelerationSeries returns the acceleration/time series.
func (r *SimulationResult) AccelerationSeries() (times, values []float64) {
	return r.series(0, func(s TrajectorySample) float64 { return s.Acceleration })
}

// ThrustSeries returns the thrust/time series.
func (r *SimulationResult) ThrustSeries() (times, values []float64) {
	return r.series(0, func(s TrajectorySample) float64 { return s.Thrust })
}

// MassSeries returns the mass/time series.
func (r *SimulationResult) MassSeries() (times, values []float64) {
	return r.series(0, func(s TrajectorySample) float64 { return s.Mass })
}

// StageAltitudeSeries returns the altitude/time series restricted to the
// given stage, for per-stage plots.
func (r *SimulationResult) StageAltitudeSeries(stage int) (times, values []float64) {
	return r.series(stage, func(s TrajectorySample) float64 { return s.Altitude })
}

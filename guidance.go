package rocket

// TurnBand maps a stage-1 altitude band to a target flight-path angle:
// below Ceiling, aim for Angle.
type TurnBand struct {
	Ceiling float64 // m
	Angle   float64 // rad
}

// InsertionBand maps a fraction of the target orbit altitude to a target
// flight-path angle during the stage-2/insertion portion of the ascent.
type InsertionBand struct {
	Fraction float64
	Angle    float64 // rad
}

// GuidanceProgram implements a gravity-turn ascent profile: hold vertical
// off the pad, pitch over, then step the target angle down through altitude
// bands so gravity does the turning work, and chase horizontal velocity as
// the vehicle closes on the target altitude.
type GuidanceProgram struct {
	VerticalTime float64 // s of vertical ascent off the pad
	PitchTime    float64 // s of linear pitch-over after the vertical hold
	PitchAngle   float64 // rad, angle reached at the end of the pitch-over

	TurnBands      []TurnBand      // stage-1 schedule, ordered by ceiling
	FinalTurnAngle float64         // rad, above the last stage-1 band
	InsertionBands []InsertionBand // stage-2 schedule, ordered by fraction
	FinalAngle     float64         // rad, approaching the target altitude

	TrackingGain float64 // 1/s, proportional rate toward the target angle
	TrackingRate float64 // rad/s, hard cap on the angle rate
}

// DefaultGuidance returns the nominal two-stage ascent profile.
func DefaultGuidance() GuidanceProgram {
	return GuidanceProgram{
		VerticalTime: 9,
		PitchTime:    7,
		PitchAngle:   80 * deg2rad,
		TurnBands: []TurnBand{
			{10e3, 72 * deg2rad},
			{25e3, 63 * deg2rad},
			{45e3, 45 * deg2rad},
		},
		FinalTurnAngle: 30 * deg2rad,
		InsertionBands: []InsertionBand{
			{0.5, 35 * deg2rad},
			{0.7, 22 * deg2rad},
			{0.85, 10 * deg2rad},
			{0.95, 4 * deg2rad},
		},
		FinalAngle:   1 * deg2rad,
		TrackingGain: 0.5,
		TrackingRate: 0.015,
	}
}

// TargetAngle returns the target flight-path angle in radians. It is a pure
// function of the flight condition: no internal state machine.
func (g GuidanceProgram) TargetAngle(t, altitude, speed float64, stage int, targetAlt float64) float64 {
	if stage == 1 {
		if t < g.VerticalTime {
			return halfπ
		}
		if t < g.VerticalTime+g.PitchTime {
			f := (t - g.VerticalTime) / g.PitchTime
			return halfπ + f*(g.PitchAngle-halfπ)
		}
		for _, band := range g.TurnBands {
			if altitude < band.Ceiling {
				return band.Angle
			}
		}
		return g.FinalTurnAngle
	}
	if targetAlt <= 0 {
		return g.FinalAngle
	}
	frac := altitude / targetAlt
	for _, band := range g.InsertionBands {
		if frac < band.Fraction {
			return band.Angle
		}
	}
	return g.FinalAngle
}

// Track returns the bounded angle rate moving γ toward the target: a
// proportional rate capped at ±TrackingRate, so the vehicle never snaps
// its attitude within a single step.
func (g GuidanceProgram) Track(γ, target float64) float64 {
	return clamp(g.TrackingGain*(target-γ), -g.TrackingRate, g.TrackingRate)
}

package rocket

import "time"

// StageSpec defines the propulsion of one stage.
type StageSpec struct {
	Thrust float64 `json:"thrust"` // N
	ISP    float64 `json:"isp"`    // s
	Burn   float64 `json:"burn"`   // s
}

// RocketSpecification defines the whole vehicle. It is immutable for the
// duration of one simulation run.
type RocketSpecification struct {
	Stage1          StageSpec `json:"stage1"`
	Stage2          StageSpec `json:"stage2"`
	TotalMass       float64   `json:"totalMass"`       // kg, fully fueled at liftoff
	SeparationMass  float64   `json:"separationMass"`  // kg, after the stage-1 jettison
	DragCoefficient float64   `json:"dragCoefficient"` // subsonic Cd
	ReferenceArea   float64   `json:"referenceArea"`   // m², defaults to 10 when zero
}

// defaultReferenceArea is used when the specification leaves the area unset.
const defaultReferenceArea = 10.0

// Area returns the drag reference area, defaulted when unset.
func (s RocketSpecification) Area() float64 {
	if s.ReferenceArea <= 0 {
		return defaultReferenceArea
	}
	return s.ReferenceArea
}

// Validate checks the data-model invariants of the vehicle. A zero thrust is
// allowed (an unfueled test article never leaves the pad but integrates
// cleanly); a negative one is not.
func (s RocketSpecification) Validate() error {
	switch {
	case s.TotalMass <= 0:
		return InvalidSpecificationError{"totalMass", "strictly positive"}
	case s.SeparationMass <= 0:
		return InvalidSpecificationError{"separationMass", "strictly positive"}
	case s.SeparationMass >= s.TotalMass:
		return InvalidSpecificationError{"separationMass", "strictly below the total mass"}
	case s.DragCoefficient < 0:
		return InvalidSpecificationError{"dragCoefficient", "non-negative"}
	case s.Stage1.Thrust < 0:
		return InvalidSpecificationError{"stage1.thrust", "non-negative"}
	case s.Stage2.Thrust < 0:
		return InvalidSpecificationError{"stage2.thrust", "non-negative"}
	case s.Stage1.ISP <= 0:
		return InvalidSpecificationError{"stage1.isp", "strictly positive"}
	case s.Stage2.ISP <= 0:
		return InvalidSpecificationError{"stage2.isp", "strictly positive"}
	case s.Stage1.Burn <= 0:
		return InvalidSpecificationError{"stage1.burn", "strictly positive"}
	case s.Stage2.Burn <= 0:
		return InvalidSpecificationError{"stage2.burn", "strictly positive"}
	}
	return nil
}

// LaunchParameters is the immutable input to one simulation run.
type LaunchParameters struct {
	Latitude       float64             `json:"latitude"`        // degrees, [-90, 90]
	Longitude      float64             `json:"longitude"`       // degrees, [-180, 180]
	TargetAltitude float64             `json:"targetAltitude"`  // m, circular orbit, (0, 1000 km]
	Spec           RocketSpecification `json:"spec"`
	Epoch          time.Time           `json:"epoch,omitempty"` // only used for the exported Julian dates
}

// Validate checks the launch-site and orbit ranges plus the vehicle
// invariants.
func (p LaunchParameters) Validate() error {
	switch {
	case p.Latitude < -90 || p.Latitude > 90:
		return InvalidSpecificationError{"latitude", "within [-90, 90] degrees"}
	case p.Longitude < -180 || p.Longitude > 180:
		return InvalidSpecificationError{"longitude", "within [-180, 180] degrees"}
	case p.TargetAltitude <= 0 || p.TargetAltitude > 1000e3:
		return InvalidSpecificationError{"targetAltitude", "within (0, 1000] km"}
	}
	return p.Spec.Validate()
}

package rocket

import "fmt"

// InvalidSpecificationError reports a launch parameter which violates a
// data-model invariant. It is returned before any integration begins.
type InvalidSpecificationError struct {
	Field      string
	Constraint string
}

func (e InvalidSpecificationError) Error() string {
	return fmt.Sprintf("invalid specification: %s must be %s", e.Field, e.Constraint)
}

// IntegrationFaultError reports a non-finite integration step which could not
// be resolved by reverting to the prior state and halving the time step.
type IntegrationFaultError struct {
	Time  float64 // mission elapsed time (s) at which the fault occurred
	Stage int
	Phase string
}

func (e IntegrationFaultError) Error() string {
	return fmt.Sprintf("integration fault during %s (stage %d) at t=%.3f s", e.Phase, e.Stage, e.Time)
}

// StepBudgetExceeded reports that a flight phase hit its defensive step bound
// before reaching a natural exit condition. It is not necessarily a physical
// error, so it is carried on the result rather than failing the run.
type StepBudgetExceeded struct {
	Phase string
	Steps int
}

func (e StepBudgetExceeded) Error() string {
	return fmt.Sprintf("gave up on %s after %d steps", e.Phase, e.Steps)
}

package rocket

import (
	"math"
	"os"
	"sync"

	"github.com/ChristopherRabotin/ode"
	kitlog "github.com/go-kit/kit/log"
)

/* Handles the ascent propagation. */

// flightPhase enumerates the phases of the ascent state machine.
type flightPhase uint8

const (
	phaseStage1 flightPhase = iota + 1
	phaseStage2
	phaseCoast
	phaseDone
)

func (p flightPhase) String() string {
	switch p {
	case phaseStage1:
		return "stage-1 burn"
	case phaseStage2:
		return "stage-2 burn"
	case phaseCoast:
		return "coast/insertion"
	case phaseDone:
		return "done"
	}
	panic("cannot stringify unknown flight phase")
}

// Mission defines one ascent and does the propagation: stage-1 burn,
// separation, stage-2 burn, then coast with an optional circularization
// burn. It implements ode.Integrable; each phase is solved by an RK4 run
// whose stop condition is the phase exit.
type Mission struct {
	Params LaunchParameters
	Planet Planet

	atmosphere Atmosphere
	gravity    GravityModel
	drag       DragModel
	propulsion PropulsionModel
	guidance   GuidanceProgram
	eng1, eng2 Engine

	state FlightState

	phase      flightPhase
	phaseStart float64 // mission elapsed time at phase entry
	phaseSteps int
	budget     int
	step       float64 // current step (halved after a rejected step)
	baseStep   float64
	retries    int

	engineOn bool
	burning  bool // insertion burn currently applied (coast only)

	samples    []TrajectorySample
	lastSample float64

	separated bool
	sepTime   float64
	sepAlt    float64

	vRequired float64 // m/s, circular orbital velocity at the target
	latitude  float64 // rad

	faulted   bool
	fault     *IntegrationFaultError
	budgetHit *StepBudgetExceeded
	orbitDone bool

	histChan chan<- TrajectorySample
	wg       sync.WaitGroup
	logger   kitlog.Logger
}

// NewMission returns a new Mission with the default step size.
func NewMission(params LaunchParameters, conf ExportConfig) (*Mission, error) {
	return NewPreciseMission(params, simConfig().stepSize, conf)
}

// NewPreciseMission returns a new Mission with a custom time step. The
// parameters are validated up front: no integration starts on a
// specification which breaks a data-model invariant.
func NewPreciseMission(params LaunchParameters, step float64, conf ExportConfig) (*Mission, error) {
	if err := params.Validate(); err != nil {
		simulationsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "ascent")
	m := &Mission{
		Params:     params,
		phase:      phaseStage1,
		step:       step,
		baseStep:   step,
		latitude:   params.Latitude * deg2rad,
		lastSample: -1,
		logger:     klog,
	}
	m.SetPlanet(Earth)
	m.eng1 = NewGenericEngine(params.Spec.Stage1.Thrust, params.Spec.Stage1.ISP, params.Spec.Stage1.ISP)
	m.eng2 = NewGenericEngine(params.Spec.Stage2.Thrust, params.Spec.Stage2.ISP, params.Spec.Stage2.ISP)
	m.guidance = DefaultGuidance()
	m.state = FlightState{Gamma: halfπ, Mass: params.Spec.TotalMass}
	if !conf.IsUseless() {
		histChan := make(chan TrajectorySample, 1000) // a 1k entry buffer
		m.histChan = histChan
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			StreamSamples(conf, params, histChan)
		}()
	}
	m.enterPhase(phaseStage1)
	return m, nil
}

// SetPlanet rewires the physical models for another body. Must be called
// before Propagate; it exists so tests can run with alternate planetary
// parameters.
func (m *Mission) SetPlanet(p Planet) {
	m.Planet = p
	m.atmosphere = NewLayeredAtmosphere(p)
	m.gravity = GravityModel{Planet: p, Oblate: true}
	m.drag = DragModel{Atmosphere: m.atmosphere, Compressibility: true}
	m.propulsion = PropulsionModel{Planet: p}
	m.vRequired = RequiredOrbitalVelocity(p, m.Params.TargetAltitude)
}

// SetGuidance swaps the ascent profile. Must be called before Propagate.
func (m *Mission) SetGuidance(g GuidanceProgram) {
	m.guidance = g
}

// LogStatus logs the state of the propagation and the vehicle.
func (m *Mission) LogStatus() {
	m.logger.Log("level", "info", "phase", m.phase, "t(s)", m.state.Elapsed,
		"alt(m)", m.state.Altitude, "vel(m/s)", m.state.Speed, "mass(kg)", m.state.Mass)
}

// Propagate runs the ascent to completion and returns the result. The only
// mid-run failure mode is an integration fault which survived the
// revert-and-retry policy.
func (m *Mission) Propagate() (*SimulationResult, error) {
	m.logger.Log("level", "notice", "status", "liftoff",
		"mass(kg)", m.state.Mass, "target(m)", m.Params.TargetAltitude, "vRequired(m/s)", m.vRequired)
	for m.phase != phaseDone {
		ode.NewRK4(m.state.Elapsed, m.step, m).Solve() // Blocking.
		if m.faulted {
			if m.retries < simConfig().maxFaultRetries {
				m.retries++
				m.faulted = false
				m.fault = nil
				// The faulted step never reached SetState, so the state is
				// still the last accepted one. Halving the step doubles the
				// steps left in the phase, so the budget grows to match.
				m.step /= 2
				m.budget = 2*m.budget - m.phaseSteps
				stepRetriesTotal.Inc()
				m.logger.Log("level", "warning", "status", "step rejected",
					"t(s)", m.state.Elapsed, "step(s)", m.step)
				continue
			}
			integrationFaultsTotal.Inc()
			simulationsTotal.WithLabelValues("fault").Inc()
			m.logger.Log("level", "critical", "status", "integration fault", "t(s)", m.fault.Time, "phase", m.fault.Phase)
			m.closeHist()
			return nil, *m.fault
		}
		if m.budgetHit != nil {
			m.logger.Log("level", "warning", "status", "step budget exhausted",
				"phase", m.budgetHit.Phase, "steps", m.budgetHit.Steps)
			m.phase = phaseDone
			break
		}
		m.advancePhase()
	}
	m.closeHist()
	res := &SimulationResult{
		Samples: m.samples,
		Summary: m.summarize(),
		Clamps:  m.state.Clamps,
		Budget:  m.budgetHit,
	}
	if clamps := m.state.Clamps.Total(); clamps > 0 {
		m.logger.Log("level", "notice", "status", "clamped states", "count", clamps)
	}
	m.logger.Log("level", "notice", "status", "finished", "t(s)", m.state.Elapsed,
		"maxAlt(m)", res.Summary.MaxAltitude, "vel(m/s)", res.Summary.AchievedVelocity, "orbit", m.orbitDone)
	simulationsTotal.WithLabelValues("completed").Inc()
	return res, nil
}

// RunSimulation validates, propagates and summarizes in one call, without
// any file export.
func RunSimulation(params LaunchParameters) (*SimulationResult, error) {
	m, err := NewMission(params, ExportConfig{})
	if err != nil {
		return nil, err
	}
	return m.Propagate()
}

func (m *Mission) closeHist() {
	if m.histChan != nil {
		close(m.histChan)
		m.wg.Wait() // Don't return until we're done writing the files.
		m.histChan = nil
	}
}

// enterPhase resets the per-phase bookkeeping and computes the defensive
// step budget from the phase's nominal duration.
func (m *Mission) enterPhase(p flightPhase) {
	cfg := simConfig()
	m.phase = p
	m.phaseStart = m.state.Elapsed
	m.phaseSteps = 0
	m.step = m.baseStep
	m.retries = 0
	m.burning = false
	var dur float64
	switch p {
	case phaseStage1:
		dur = m.Params.Spec.Stage1.Burn
		m.engineOn = true
	case phaseStage2:
		dur = m.Params.Spec.Stage2.Burn
		m.engineOn = true
	case phaseCoast:
		dur = cfg.coastDuration
		m.engineOn = false
	}
	m.budget = int(math.Ceil(dur/m.baseStep*cfg.budgetMargin)) + 10
	m.logger.Log("level", "info", "status", "phase entry", "phase", p,
		"t(s)", m.state.Elapsed, "budget(steps)", m.budget)
}

// advancePhase runs the discrete transitions between phases. Separation is
// instantaneous: the only direct state mutation outside the integrator.
func (m *Mission) advancePhase() {
	switch m.phase {
	case phaseStage1:
		m.separate()
		m.enterPhase(phaseStage2)
	case phaseStage2:
		m.enterPhase(phaseCoast)
	case phaseCoast:
		m.phase = phaseDone
	}
}

// separate jettisons stage 1: the vehicle mass becomes exactly the
// configured separation mass.
func (m *Mission) separate() {
	m.state.Mass = m.Params.Spec.SeparationMass
	m.separated = true
	m.sepTime = m.state.Elapsed
	m.sepAlt = m.state.Altitude
	m.logger.Log("level", "notice", "status", "stage separation",
		"t(s)", m.sepTime, "alt(m)", m.sepAlt, "vel(m/s)", m.state.Speed)
}

// stageNo returns the active stage number for sample tagging.
func (m *Mission) stageNo() int {
	if m.phase == phaseStage1 {
		return 1
	}
	return 2
}

// phaseEnded checks the exit conditions of the current phase.
func (m *Mission) phaseEnded() bool {
	elapsed := m.state.Elapsed - m.phaseStart
	switch m.phase {
	case phaseStage1:
		return elapsed >= m.Params.Spec.Stage1.Burn ||
			m.state.Mass <= m.Params.Spec.SeparationMass ||
			(m.phaseSteps > 0 && m.state.Altitude <= 0)
	case phaseStage2:
		return elapsed >= m.Params.Spec.Stage2.Burn ||
			(m.phaseSteps > 0 && m.state.Altitude <= 0)
	case phaseCoast:
		if elapsed >= simConfig().coastDuration {
			return true
		}
		if m.orbitAchieved() {
			m.orbitDone = true
			return true
		}
		// Back on the ground (or never left it).
		return m.phaseSteps > 0 && m.state.Altitude <= 0
	}
	return true
}

// orbitAchieved returns whether the vehicle is close enough to a circular
// orbit at the target altitude to stop propagating.
func (m *Mission) orbitAchieved() bool {
	cfg := simConfig()
	return m.state.Altitude >= cfg.insertionAltFraction*m.Params.TargetAltitude &&
		m.state.Speed >= m.vRequired-cfg.insertionDeficit
}

// updateInsertion decides, once per step, whether the circularization burn
// is applied: near the target altitude, short on velocity, and with mass
// left to burn. Stage-2 hardware runs derated per the configured factors.
func (m *Mission) updateInsertion() {
	cfg := simConfig()
	deficit := m.vRequired - m.state.Speed
	on := m.state.Altitude >= cfg.insertionAltFraction*m.Params.TargetAltitude &&
		deficit > cfg.insertionDeficit &&
		m.state.Mass > cfg.massFloor*10
	if on && !m.burning {
		insertionIgnitionsTotal.Inc()
		m.logger.Log("level", "info", "status", "insertion burn ignition",
			"t(s)", m.state.Elapsed, "deficit(m/s)", deficit)
	} else if !on && m.burning {
		m.logger.Log("level", "info", "status", "insertion burn cutoff", "t(s)", m.state.Elapsed)
	}
	m.burning = on
	m.engineOn = on
}

// dynamics is one evaluation of the equations of motion.
type dynamics struct {
	fDot   []float64
	thrust float64
	accel  float64 // m/s², magnitude including the turning component
}

// eval combines gravity, drag, propulsion and guidance into the state
// derivatives at the (possibly trial) state f.
func (m *Mission) eval(f []float64) dynamics {
	cfg := simConfig()
	spec := m.Params.Spec
	h := f[1]
	v := math.Max(f[2], 0)
	γ := clamp(f[3], -halfπ, halfπ)
	mass := math.Max(f[4], cfg.massFloor)

	g := m.gravity.Gravity(h, m.latitude)
	dragSol := m.drag.Drag(v, h, spec.DragCoefficient, spec.Area())

	var prop PropulsionSolution
	switch m.phase {
	case phaseStage1:
		prop = m.propulsion.SolveEngine(m.eng1, h, m.engineOn)
	case phaseStage2:
		prop = m.propulsion.SolveEngine(m.eng2, h, m.engineOn)
	case phaseCoast:
		if m.burning {
			prop = m.propulsion.Solve(spec.Stage2.Thrust*cfg.insertionThrustFactor,
				spec.Stage2.ISP*cfg.insertionISPFactor, h, true)
		}
	}

	sinγ, cosγ := math.Sincos(γ)
	aAlong := (prop.Thrust-dragSol.Force)/mass - g*sinγ
	if h <= 0 && v <= 0 && aAlong < 0 {
		aAlong = 0 // the pad holds the vehicle
	}
	target := m.guidance.TargetAngle(m.state.Elapsed, h, v, m.stageNo(), m.Params.TargetAltitude)
	γDot := m.guidance.Track(γ, target)

	fDot := []float64{v * cosγ, v * sinγ, aAlong, γDot, -prop.MassFlow}
	return dynamics{
		fDot:   fDot,
		thrust: prop.Thrust,
		accel:  norm([]float64{aAlong, v * γDot}),
	}
}

// recordSample appends one trajectory observation at the current state.
// A step retried after a fault re-enters the same time, which must not
// produce a duplicate sample.
func (m *Mission) recordSample() {
	if len(m.samples) > 0 && m.state.Elapsed <= m.lastSample {
		return
	}
	d := m.eval(m.state.vector())
	sample := TrajectorySample{
		Time:         m.state.Elapsed,
		Altitude:     m.state.Altitude,
		Velocity:     m.state.Speed,
		Acceleration: d.accel,
		Thrust:       d.thrust,
		Mass:         m.state.Mass,
		Downrange:    m.state.Downrange,
		Stage:        m.stageNo(),
	}
	m.samples = append(m.samples, sample)
	m.lastSample = m.state.Elapsed
	if m.histChan != nil {
		m.histChan <- sample
	}
}

// applyClamps enforces the physical floors after every accepted step and
// counts each event, so implausible parameters are observable.
func (m *Mission) applyClamps() {
	cfg := simConfig()
	if m.state.Mass < cfg.massFloor {
		m.state.Mass = cfg.massFloor
		m.state.Clamps.Mass++
		clampEventsTotal.WithLabelValues("mass").Inc()
	}
	if m.state.Altitude < 0 {
		m.state.Altitude = 0
		m.state.Clamps.Altitude++
		clampEventsTotal.WithLabelValues("altitude").Inc()
	}
	if m.state.Speed < 0 {
		m.state.Speed = 0
		m.state.Clamps.Speed++
		clampEventsTotal.WithLabelValues("speed").Inc()
	}
	if m.state.Gamma < -halfπ || m.state.Gamma > halfπ {
		m.state.Gamma = clamp(m.state.Gamma, -halfπ, halfπ)
		m.state.Clamps.Angle++
		clampEventsTotal.WithLabelValues("angle").Inc()
	}
}

// GetState returns the state vector for the integrator.
func (m *Mission) GetState() []float64 {
	return m.state.vector()
}

// SetState applies the integrated state. A non-finite component rejects the
// step: the prior state is kept and the fault is surfaced through Stop.
func (m *Mission) SetState(t float64, s []float64) {
	if m.faulted {
		return
	}
	if !finite(s) {
		m.faulted = true
		if m.fault == nil {
			m.fault = &IntegrationFaultError{Time: m.state.Elapsed, Stage: m.stageNo(), Phase: m.phase.String()}
		}
		return
	}
	m.state.Downrange = s[0]
	m.state.Altitude = s[1]
	m.state.Speed = s[2]
	m.state.Gamma = s[3]
	m.state.Mass = s[4]
	m.applyClamps()
	m.state.Elapsed += m.step
}

// Func is the integration function.
func (m *Mission) Func(t float64, f []float64) []float64 {
	if m.faulted {
		return make([]float64, len(f))
	}
	d := m.eval(f)
	if !finite(d.fDot) {
		m.faulted = true
		if m.fault == nil {
			m.fault = &IntegrationFaultError{Time: m.state.Elapsed, Stage: m.stageNo(), Phase: m.phase.String()}
		}
		return make([]float64, len(f))
	}
	return d.fDot
}

// Stop implements the stop condition of the integrator. It is called at the
// start of every step, which is where the per-step sample is recorded and
// the step budget enforced.
func (m *Mission) Stop(t float64) bool {
	if m.faulted {
		return true
	}
	if m.phaseEnded() {
		return true
	}
	if m.phaseSteps >= m.budget {
		m.budgetHit = &StepBudgetExceeded{Phase: m.phase.String(), Steps: m.phaseSteps}
		return true
	}
	if m.phase == phaseCoast {
		m.updateInsertion()
	}
	m.recordSample()
	m.phaseSteps++
	return false
}

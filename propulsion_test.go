package rocket

import (
	"testing"

	"github.com/gonum/floats"
)

func TestPropulsionSolve(t *testing.T) {
	p := PropulsionModel{Earth}
	sol := p.Solve(7.607e6, 282, 0, true)
	if !floats.EqualWithinAbs(sol.ExhaustVelocity, 282*StdGravity, 1e-9) {
		t.Fatalf("exhaust velocity %f should be isp·g0", sol.ExhaustVelocity)
	}
	if !floats.EqualWithinRel(sol.MassFlow, 2750.7, 1e-3) {
		t.Fatalf("mass flow %f should be about 2750.7 kg/s", sol.MassFlow)
	}
	if sol.Thrust != 7.607e6 {
		t.Fatalf("thrust %f should pass through unchanged", sol.Thrust)
	}
}

func TestPropulsionOff(t *testing.T) {
	p := PropulsionModel{Earth}
	if sol := p.Solve(1e6, 300, 0, false); sol != (PropulsionSolution{}) {
		t.Fatal("an engine which is off should produce nothing")
	}
	if sol := p.Solve(0, 300, 0, true); sol != (PropulsionSolution{}) {
		t.Fatal("zero commanded thrust should produce nothing")
	}
	if sol := p.Solve(-5, 300, 0, true); sol != (PropulsionSolution{}) {
		t.Fatal("negative commanded thrust should produce nothing")
	}
}

func TestPropulsionISPBlend(t *testing.T) {
	p := PropulsionModel{Earth}
	eng := NewGenericEngine(1e6, 282, 311)
	atSL := p.SolveEngine(eng, 0, true)
	if !floats.EqualWithinAbs(atSL.ExhaustVelocity, 282*StdGravity, 1e-9) {
		t.Fatal("the blend should start at the sea-level rating")
	}
	high := p.SolveEngine(eng, 10*Earth.ScaleHeight, true)
	if !floats.EqualWithinRel(high.ExhaustVelocity, 311*StdGravity, 1e-4) {
		t.Fatal("the blend should converge to the vacuum rating")
	}
	mid := p.SolveEngine(eng, Earth.ScaleHeight, true)
	if mid.ExhaustVelocity <= atSL.ExhaustVelocity || mid.ExhaustVelocity >= high.ExhaustVelocity {
		t.Fatal("the blend should be monotonic in altitude")
	}
	// Mass flow drops as the nozzle gains efficiency.
	if mid.MassFlow >= atSL.MassFlow {
		t.Fatal("a more efficient nozzle should deplete mass slower")
	}
}

func TestPropulsionFixedISP(t *testing.T) {
	p := PropulsionModel{Earth}
	eng := NewGenericEngine(1e6, 300, 300)
	if p.SolveEngine(eng, 0, true) != p.SolveEngine(eng, 80e3, true) {
		t.Fatal("equal ratings should disable the altitude blend")
	}
}

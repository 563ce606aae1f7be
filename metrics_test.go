package rocket

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestRequiredOrbitalVelocity(t *testing.T) {
	if v := RequiredOrbitalVelocity(Earth, 400e3); !floats.EqualWithinAbs(v, 7669, 5) {
		t.Fatalf("LEO velocity %f should be about 7669 m/s", v)
	}
	// Higher orbits are slower.
	if RequiredOrbitalVelocity(Earth, 800e3) >= RequiredOrbitalVelocity(Earth, 200e3) {
		t.Fatal("orbital velocity should decrease with altitude")
	}
	if RequiredOrbitalVelocity(Mars, 400e3) >= RequiredOrbitalVelocity(Earth, 400e3) {
		t.Fatal("a Mars orbit should need less velocity")
	}
}

func TestRotationBonus(t *testing.T) {
	if b := RotationBonus(Earth, 0); !floats.EqualWithinAbs(b, 465.1, 0.1) {
		t.Fatalf("equatorial rotation bonus %f should be about 465.1 m/s", b)
	}
	if b := RotationBonus(Earth, 90); !floats.EqualWithinAbs(b, 0, 1e-9) {
		t.Fatalf("polar rotation bonus %f should vanish", b)
	}
	canaveral := RotationBonus(Earth, 28.5721)
	if canaveral <= 0 || canaveral >= RotationBonus(Earth, 0) {
		t.Fatalf("mid-latitude bonus %f should fall between pole and equator", canaveral)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	params := falcon9ish()
	sum := Summarize(nil, params, Earth)
	if sum.LaunchAngle != 45 {
		t.Fatalf("launch angle %f should fall back to 45° without samples", sum.LaunchAngle)
	}
	if sum.TotalFlightTime != 0 || sum.MaxAltitude != 0 {
		t.Fatal("an empty trajectory should summarize to zero flight values")
	}
	if sum.Stage1BurnTime != params.Spec.Stage1.Burn {
		t.Fatal("the configured burn times should carry through")
	}
}

func TestSummarizeTrajectory(t *testing.T) {
	params := falcon9ish()
	samples := []TrajectorySample{
		{Time: 0, Altitude: 0, Velocity: 0, Mass: params.Spec.TotalMass, Stage: 1},
		{Time: 100, Altitude: 50e3, Velocity: 1500, Downrange: 20e3, Mass: 300e3, Stage: 1},
		{Time: 160, Altitude: 110e3, Velocity: 2300, Downrange: 90e3, Mass: params.Spec.SeparationMass, Stage: 2},
		{Time: 400, Altitude: 350e3, Velocity: 6800, Downrange: 900e3, Mass: 60e3, Stage: 2},
	}
	sum := Summarize(samples, params, Earth)
	if sum.SeparationTime != 160 || sum.SeparationAltitude != 110e3 {
		t.Fatalf("separation misread: t=%f alt=%f", sum.SeparationTime, sum.SeparationAltitude)
	}
	if sum.MaxAltitude != 350e3 {
		t.Fatalf("max altitude %f should be 350 km", sum.MaxAltitude)
	}
	if sum.AchievedVelocity != 6800 {
		t.Fatalf("achieved velocity %f should come from the final sample", sum.AchievedVelocity)
	}
	if sum.TotalFlightTime != 400 {
		t.Fatalf("flight time %f should come from the final sample", sum.TotalFlightTime)
	}
	// The effective ascent angle comes from the final sample.
	expected := math.Atan2(350e3, 900e3) / deg2rad
	if !floats.EqualWithinAbs(sum.LaunchAngle, expected, 1e-9) {
		t.Fatalf("launch angle %f should be %f", sum.LaunchAngle, expected)
	}
}

func TestSummarizeNoSeparation(t *testing.T) {
	params := falcon9ish()
	samples := []TrajectorySample{
		{Time: 0, Mass: params.Spec.TotalMass, Stage: 1},
		{Time: 10, Altitude: 500, Velocity: 100, Mass: 520e3, Stage: 1},
	}
	sum := Summarize(samples, params, Earth)
	if sum.SeparationTime != params.Spec.Stage1.Burn {
		t.Fatal("a run ending during the first burn should report the nominal burn time")
	}
	if sum.SeparationAltitude != 0 {
		t.Fatal("no separation, no separation altitude")
	}
}

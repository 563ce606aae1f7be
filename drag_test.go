package rocket

import (
	"testing"

	"github.com/gonum/floats"
)

func TestDragSubsonic(t *testing.T) {
	d := DragModel{Atmosphere: NewLayeredAtmosphere(Earth)}
	sol := d.Drag(100, 0, 0.3, 10)
	// ½·1.225·100²·0.3·10
	if !floats.EqualWithinRel(sol.Force, 18375, 1e-3) {
		t.Fatalf("subsonic drag %f should be about 18375 N", sol.Force)
	}
	if sol.Mach >= 0.8 {
		t.Fatalf("Mach %f should be subsonic", sol.Mach)
	}
	if !floats.EqualWithinRel(sol.DynamicPressure, 6125, 1e-3) {
		t.Fatalf("dynamic pressure %f should be about 6125 Pa", sol.DynamicPressure)
	}
}

func TestDragDegenerate(t *testing.T) {
	d := DragModel{Atmosphere: NewLayeredAtmosphere(Earth)}
	if sol := d.Drag(0, 0, 0.3, 10); sol.Force != 0 {
		t.Fatal("drag at rest should be zero")
	}
	if sol := d.Drag(7000, Earth.KarmanAlt+50e3, 0.3, 10); sol != (DragSolution{}) {
		t.Fatal("drag in vacuum should be a zero solution")
	}
	if sol := d.Drag(100, 0, 0, 10); sol.Force != 0 {
		t.Fatal("a zero drag coefficient should produce zero force")
	}
}

func TestCompressibilityFactor(t *testing.T) {
	if compressibilityFactor(0.5) != 1 {
		t.Fatal("subsonic flow should be uncorrected")
	}
	if !floats.EqualWithinAbs(compressibilityFactor(1.0), 1.1, 1e-12) {
		t.Fatalf("transonic factor at Mach 1 is %f, expected 1.1", compressibilityFactor(1.0))
	}
	if !floats.EqualWithinAbs(compressibilityFactor(1.2), 1.4, 1e-12) {
		t.Fatalf("the transonic band should peak at 1.4, got %f", compressibilityFactor(1.2))
	}
	// Continuity at the band edge and decay beyond it.
	if !floats.EqualWithinAbs(compressibilityFactor(1.2-1e-9), compressibilityFactor(1.2+1e-9), 1e-6) {
		t.Fatal("the factor should be continuous at Mach 1.2")
	}
	if f := compressibilityFactor(3); f <= 1 || f >= 1.4 {
		t.Fatalf("supersonic factor %f should decay toward the plateau", f)
	}
}

func TestDragCompressibilityToggle(t *testing.T) {
	atm := NewLayeredAtmosphere(Earth)
	plain := DragModel{Atmosphere: atm}
	corrected := DragModel{Atmosphere: atm, Compressibility: true}
	// Mach ≈ 1 at sea level.
	v := atm.Properties(0).SpeedOfSound
	if corrected.Drag(v, 0, 0.3, 10).Force <= plain.Drag(v, 0, 0.3, 10).Force {
		t.Fatal("the transonic correction should increase drag")
	}
	// Subsonic, the toggle is a no-op.
	if corrected.Drag(50, 0, 0.3, 10).Force != plain.Drag(50, 0, 0.3, 10).Force {
		t.Fatal("the correction should not apply below Mach 0.8")
	}
}

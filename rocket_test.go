package rocket

import (
	"errors"
	"testing"
)

func TestSpecificationValidate(t *testing.T) {
	valid := falcon9ish().Spec
	if err := valid.Validate(); err != nil {
		t.Fatalf("the reference vehicle should validate: %s", err)
	}
	for _, tc := range []struct {
		field  string
		mutate func(*RocketSpecification)
	}{
		{"totalMass", func(s *RocketSpecification) { s.TotalMass = 0 }},
		{"separationMass", func(s *RocketSpecification) { s.SeparationMass = -1 }},
		{"separationMass", func(s *RocketSpecification) { s.SeparationMass = s.TotalMass }},
		{"dragCoefficient", func(s *RocketSpecification) { s.DragCoefficient = -0.1 }},
		{"stage1.thrust", func(s *RocketSpecification) { s.Stage1.Thrust = -1 }},
		{"stage2.thrust", func(s *RocketSpecification) { s.Stage2.Thrust = -1 }},
		{"stage1.isp", func(s *RocketSpecification) { s.Stage1.ISP = 0 }},
		{"stage2.isp", func(s *RocketSpecification) { s.Stage2.ISP = -10 }},
		{"stage1.burn", func(s *RocketSpecification) { s.Stage1.Burn = 0 }},
		{"stage2.burn", func(s *RocketSpecification) { s.Stage2.Burn = -1 }},
	} {
		spec := valid
		tc.mutate(&spec)
		err := spec.Validate()
		var inv InvalidSpecificationError
		if !errors.As(err, &inv) {
			t.Fatalf("mutating %s should fail validation, got %v", tc.field, err)
		}
		if inv.Field != tc.field {
			t.Fatalf("expected %s to be rejected, got %s", tc.field, inv.Field)
		}
	}
	// Zero thrust is legal: the vehicle just never leaves the pad.
	spec := valid
	spec.Stage1.Thrust = 0
	spec.Stage2.Thrust = 0
	if err := spec.Validate(); err != nil {
		t.Fatalf("zero thrust should validate: %s", err)
	}
}

func TestLaunchParametersValidate(t *testing.T) {
	valid := falcon9ish()
	if err := valid.Validate(); err != nil {
		t.Fatalf("the reference launch should validate: %s", err)
	}
	for _, tc := range []struct {
		field  string
		mutate func(*LaunchParameters)
	}{
		{"latitude", func(p *LaunchParameters) { p.Latitude = 91 }},
		{"latitude", func(p *LaunchParameters) { p.Latitude = -90.5 }},
		{"longitude", func(p *LaunchParameters) { p.Longitude = 181 }},
		{"targetAltitude", func(p *LaunchParameters) { p.TargetAltitude = 0 }},
		{"targetAltitude", func(p *LaunchParameters) { p.TargetAltitude = 1001e3 }},
	} {
		params := valid
		tc.mutate(&params)
		err := params.Validate()
		var inv InvalidSpecificationError
		if !errors.As(err, &inv) {
			t.Fatalf("mutating %s should fail validation, got %v", tc.field, err)
		}
		if inv.Field != tc.field {
			t.Fatalf("expected %s to be rejected, got %s", tc.field, inv.Field)
		}
	}
	// Vehicle invariants are checked through the launch parameters too.
	params := valid
	params.Spec.TotalMass = 0
	if params.Validate() == nil {
		t.Fatal("an invalid vehicle should fail the launch validation")
	}
}

func TestReferenceArea(t *testing.T) {
	spec := RocketSpecification{}
	if spec.Area() != defaultReferenceArea {
		t.Fatalf("unset area %f should default to %f", spec.Area(), defaultReferenceArea)
	}
	spec.ReferenceArea = 12.5
	if spec.Area() != 12.5 {
		t.Fatal("a set area should pass through")
	}
}

func TestPlanetBasics(t *testing.T) {
	if Earth.String() != "[Object Earth]" {
		t.Fatalf("unexpected stringification %s", Earth.String())
	}
	if !Earth.Equals(Earth) || Earth.Equals(Mars) {
		t.Fatal("planet equality is by name")
	}
	if Earth.GM() <= Mars.GM() {
		t.Fatal("Earth outweighs Mars")
	}
	if _, err := PlanetFromString("earth"); err != nil {
		t.Fatal("lowercase planet names should resolve")
	}
	if _, err := PlanetFromString("Krypton"); err == nil {
		t.Fatal("unknown planets should error")
	}
}

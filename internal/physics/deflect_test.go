package physics

import (
	"math"
	"testing"
)

func resolvedWithMass(t *testing.T, mass float64) ResolvedAsteroid {
	t.Helper()
	a, err := Resolve(AsteroidInput{Diameter: 100, Mass: fptr(mass)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return a
}

func TestAssessDeflectionExactBalance(t *testing.T) {
	// mass 1e10 kg, Δv = 1e7/1e7 = 1 m/s, required = 0.5e10 J.
	a := resolvedWithMass(t, 1e10)
	required := 0.5 * 1e10

	got := AssessDeflection(a, 1e7, 1e7, required)

	if !got.Feasible {
		t.Error("available == required should be feasible")
	}
	if got.EnergyRatio != 1.0 {
		t.Errorf("energy ratio = %g, want exactly 1.0", got.EnergyRatio)
	}
	if got.SuccessProbability != 0.8 {
		t.Errorf("success probability = %g, want exactly 0.8", got.SuccessProbability)
	}
	if got.RequiredEnergy != required {
		t.Errorf("required energy = %g, want %g", got.RequiredEnergy, required)
	}
}

func TestAssessDeflectionInsufficientEnergy(t *testing.T) {
	a := resolvedWithMass(t, 1e10)

	got := AssessDeflection(a, 1e7, 1e7, 1e9) // required is 5e9

	if got.Feasible {
		t.Error("available < required should be infeasible")
	}
	if got.SuccessProbability != 0.0 {
		t.Errorf("infeasible success probability = %g, want 0", got.SuccessProbability)
	}
	if math.Abs(got.EnergyRatio-0.2) > 1e-12 {
		t.Errorf("energy ratio = %g, want 0.2", got.EnergyRatio)
	}
}

func TestAssessDeflectionLongWarningTime(t *testing.T) {
	// A very long warning time drives the required energy toward zero,
	// the ratio toward +Inf, and the probability to the 1.0 cap.
	a := resolvedWithMass(t, 1e10)

	got := AssessDeflection(a, 1e7, 1e30, 1e6)

	if !got.Feasible {
		t.Error("vanishing required energy should be feasible")
	}
	if got.SuccessProbability != 1.0 {
		t.Errorf("success probability = %g, want capped at 1.0", got.SuccessProbability)
	}
	if got.EnergyRatio < 1e12 {
		t.Errorf("energy ratio = %g, want enormous", got.EnergyRatio)
	}
}

func TestAssessDeflectionZeroWarningTime(t *testing.T) {
	// No warning time means no achievable deflection: required energy
	// is +Inf and the mission is infeasible. Never a panic.
	a := resolvedWithMass(t, 1e10)

	got := AssessDeflection(a, 1e7, 0, 1e30)

	if got.Feasible {
		t.Error("zero warning time must be infeasible")
	}
	if !math.IsInf(got.RequiredEnergy, 1) {
		t.Errorf("required energy = %g, want +Inf", got.RequiredEnergy)
	}
	if got.SuccessProbability != 0 {
		t.Errorf("success probability = %g, want 0", got.SuccessProbability)
	}
}

func TestRequiredDeflectionEnergyZeroMass(t *testing.T) {
	if e := RequiredDeflectionEnergy(0, 1e7, 1e7); e != 0 {
		t.Errorf("zero mass required energy = %g, want 0", e)
	}
}

func TestAssessDeflectionZeroRequired(t *testing.T) {
	// Zero required energy (massless body) gives an infinite ratio and
	// the capped probability.
	got := AssessDeflection(ResolvedAsteroid{Mass: 0}, 1e7, 1e7, 1e6)
	if !math.IsInf(got.EnergyRatio, 1) {
		t.Errorf("energy ratio = %g, want +Inf", got.EnergyRatio)
	}
	if !got.Feasible || got.SuccessProbability != 1.0 {
		t.Errorf("feasible=%v probability=%g, want true/1.0", got.Feasible, got.SuccessProbability)
	}
}

func TestAnalyzeDeflectionEndToEnd(t *testing.T) {
	// Apophis-like case from the reference scripts: 270 m, 2.7e10 kg,
	// ~11,700 km displacement over one year with 1e12 J available.
	in := AsteroidInput{Diameter: 270, Mass: fptr(2.7e10), Velocity: fptr(12900)}

	got, err := AnalyzeDeflection(in, 1.17e7, 3.15e7, 1e12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Δv ≈ 0.371 m/s, required ≈ 1.86e9 J: easily feasible.
	if !got.Feasible {
		t.Errorf("expected feasible mission, required %g J", got.RequiredEnergy)
	}
	if got.RequiredEnergy < 1e9 || got.RequiredEnergy > 3e9 {
		t.Errorf("required energy = %g J, want ~1.9e9", got.RequiredEnergy)
	}
	if got.SuccessProbability != 1.0 {
		t.Errorf("success probability = %g, want capped 1.0", got.SuccessProbability)
	}
}

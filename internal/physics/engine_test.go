package physics

import (
	"errors"
	"math"
	"testing"
)

// TestAnalyzeImpactChelyabinskLike checks the full pipeline against the
// meteor that broke windows over Chelyabinsk: ~20 m stony body at
// 19 km/s on a shallow trajectory. Roughly half a megaton, bursting at
// tens of kilometers altitude.
func TestAnalyzeImpactChelyabinskLike(t *testing.T) {
	in := AsteroidInput{
		Diameter:    20,
		Composition: Rocky,
		Velocity:    fptr(19000),
		Angle:       fptr(18),
	}

	got, err := AnalyzeImpact(in, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TNTEquivalent < 0.1 || got.TNTEquivalent > 1.0 {
		t.Errorf("TNT equivalent = %g MT, want in [0.1, 1.0]", got.TNTEquivalent)
	}
	if got.ImpactType != Airburst {
		t.Fatalf("impact type = %s, want airburst", got.ImpactType)
	}
	if got.AirburstAltitude == nil {
		t.Fatal("airburst must carry an altitude")
	}
	if alt := *got.AirburstAltitude; alt < 15000 || alt > 60000 {
		t.Errorf("airburst altitude = %g m, want in [15km, 60km]", alt)
	}
	if got.CraterDiameter != 0 {
		t.Errorf("airburst crater = %g, want 0", got.CraterDiameter)
	}
	if got.ApproachVelocity != 19000 || got.ImpactAngleCalculated != 18 {
		t.Errorf("approach velocity/angle = %g/%g, want the explicit 19000/18", got.ApproachVelocity, got.ImpactAngleCalculated)
	}
}

// TestAnalyzeImpactGrainOfSand verifies the degenerate small end: a
// millimeter body computes cleanly with a vanishing but positive yield.
func TestAnalyzeImpactGrainOfSand(t *testing.T) {
	got, err := AnalyzeImpact(AsteroidInput{Diameter: 0.001, Velocity: fptr(20000)}, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TNTEquivalent <= 0 || got.TNTEquivalent >= 1e-6 {
		t.Errorf("TNT equivalent = %g MT, want in (0, 1e-6)", got.TNTEquivalent)
	}
	if got.SeismicMagnitude != 0 {
		t.Errorf("seismic magnitude = %g, want clamped to 0", got.SeismicMagnitude)
	}
}

// TestAnalyzeImpactExtinctionClass checks the large end. The
// atmospheric model classifies on strength alone, so a surface impact
// at 20 km/s needs a metallic body; the yield lands far beyond the
// hundred-million-megaton mark and the crater is enormous.
func TestAnalyzeImpactExtinctionClass(t *testing.T) {
	got, err := AnalyzeImpact(AsteroidInput{
		Diameter:    100000,
		Composition: Metallic,
		Velocity:    fptr(20000),
	}, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ImpactType != Surface {
		t.Fatalf("impact type = %s, want surface", got.ImpactType)
	}
	if got.TNTEquivalent < 1e8 {
		t.Errorf("TNT equivalent = %g MT, want hundreds of millions of megatons or more", got.TNTEquivalent)
	}
	if got.CraterDiameter < 1e4 {
		t.Errorf("crater diameter = %g m, want tens of kilometers or more", got.CraterDiameter)
	}
	if got.SeismicMagnitude < 9 {
		t.Errorf("seismic magnitude = %g, want civilization-ending", got.SeismicMagnitude)
	}
}

// TestAnalyzeImpactRockyGiantStillAirbursts documents a known quirk of
// the strength-only atmospheric model: size plays no role, so even a
// 100 km rocky body at 20 km/s reads as an airburst.
func TestAnalyzeImpactRockyGiantStillAirbursts(t *testing.T) {
	got, err := AnalyzeImpact(AsteroidInput{Diameter: 100000, Velocity: fptr(20000)}, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ImpactType != Airburst {
		t.Errorf("impact type = %s; the strength-only model bursts rocky bodies regardless of size", got.ImpactType)
	}
}

func TestAnalyzeImpactExplicitCoordinates(t *testing.T) {
	got, err := AnalyzeImpact(
		AsteroidInput{Diameter: 50},
		100,
		&ExplicitCoordinates{Latitude: 40.7, Longitude: -74.0},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Coordinates == nil {
		t.Fatal("explicit coordinates must be carried into the results")
	}
	if got.Coordinates.NearestCity != "New York" {
		t.Errorf("nearest city = %s, want New York", got.Coordinates.NearestCity)
	}
	if got.Coordinates.Latitude != 40.7 || got.Coordinates.Longitude != -74.0 {
		t.Errorf("coordinates = %g/%g, want the caller's values", got.Coordinates.Latitude, got.Coordinates.Longitude)
	}
}

func TestAnalyzeImpactOrbitalCoordinatesAndClassification(t *testing.T) {
	el := DefaultOrbitalElements()
	el.SemiMajorAxis = 1.08
	el.PerihelionDist = 0.186
	el.AphelionDist = 1.97
	el.Inclination = 22.8
	el.AscendingNode = 88.0
	el.ArgPerihelion = 31.4
	el.MeanAnomaly = 153.0

	got, err := AnalyzeImpact(AsteroidInput{Diameter: 1000, OrbitalElements: &el}, 100, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.OrbitalClassification != "Apollo" {
		t.Errorf("orbital classification = %s, want Apollo", got.OrbitalClassification)
	}
	if got.Coordinates == nil {
		t.Fatal("orbital elements should yield derived coordinates")
	}
	// Velocity comes from the orbital estimator, not the default.
	if got.ApproachVelocity == defaultVelocity {
		t.Error("approach velocity should be orbit-derived")
	}
	if got.ApproachVelocity < 30000 || got.ApproachVelocity > 90000 {
		t.Errorf("approach velocity = %g m/s, want a plausible encounter speed", got.ApproachVelocity)
	}
}

func TestAnalyzeImpactExplicitCoordinatesWinOverOrbit(t *testing.T) {
	el := DefaultOrbitalElements()
	el.AscendingNode = 150

	got, err := AnalyzeImpact(
		AsteroidInput{Diameter: 50, OrbitalElements: &el},
		100,
		&ExplicitCoordinates{Latitude: 51.5, Longitude: -0.1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Coordinates.NearestCity != "London" {
		t.Errorf("nearest city = %s; explicit coordinates must take precedence", got.Coordinates.NearestCity)
	}
	// Classification still derives from the elements.
	if got.OrbitalClassification == "" {
		t.Error("orbital classification should still be reported")
	}
}

func TestAnalyzeImpactInvalidInput(t *testing.T) {
	if _, err := AnalyzeImpact(AsteroidInput{Diameter: -1}, 100, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestAnalyzeImpactCasualtiesScaleWithDensity(t *testing.T) {
	in := AsteroidInput{Diameter: 200, Velocity: fptr(25000), Composition: Metallic}

	sparse, err := AnalyzeImpact(in, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	dense, err := AnalyzeImpact(in, 1000, nil)
	if err != nil {
		t.Fatal(err)
	}

	f1 := sparse.CasualtyEstimate[CasualtyFatalities]
	f2 := dense.CasualtyEstimate[CasualtyFatalities]
	if f1 <= 0 || f2 <= 0 {
		t.Fatalf("expected positive fatality estimates, got %d and %d", f1, f2)
	}
	ratio := float64(f2) / float64(f1)
	if math.Abs(ratio-100) > 2 {
		t.Errorf("fatalities scaled by %g across a 100x density change, want ~100", ratio)
	}
}

// Package physics implements the asteroid impact and deflection
// analysis engine: empirical and analytic closed-form formulas composed
// into one linear pipeline. Every exported function is a pure
// transformation of its inputs; the package performs no I/O, holds no
// state, and is safe for unlimited concurrent use.
//
// Accuracy is order-of-magnitude by design. Several estimators
// (entry angle from inclination, impact geolocation, local time) are
// explicitly non-physical placeholders whose exact behavior is part of
// the package contract.
package physics

// ExplicitCoordinates carries caller-supplied impact coordinates into
// AnalyzeImpact.
type ExplicitCoordinates struct {
	Latitude  float64
	Longitude float64
}

// AnalyzeImpact runs the full analysis pipeline: resolve properties,
// compute energy, classify airburst vs surface, derive secondary
// effects, and locate the impact. Coordinates are taken from coords
// when supplied, derived from orbital elements when present, and
// omitted otherwise. The only error condition is invalid input
// (ErrInvalidInput via Resolve).
func AnalyzeImpact(in AsteroidInput, populationDensity float64, coords *ExplicitCoordinates) (ImpactResults, error) {
	a, err := Resolve(in)
	if err != nil {
		return ImpactResults{}, err
	}

	energy := KineticEnergy(a.Mass, a.Velocity)
	tnt := TNTEquivalent(energy)
	impactType, airburstAlt := ClassifyImpact(a)

	thermal := ThermalRadius(tnt)
	overpressure := OverpressureRadii(tnt)

	results := ImpactResults{
		KineticEnergy:         energy,
		TNTEquivalent:         tnt,
		ImpactType:            impactType,
		AirburstAltitude:      airburstAlt,
		CraterDiameter:        CraterDiameter(energy, a.Angle, impactType),
		SeismicMagnitude:      SeismicMagnitude(energy),
		ThermalRadius:         thermal,
		OverpressureRadius:    overpressure,
		CasualtyEstimate:      EstimateCasualties(thermal, overpressure, populationDensity),
		ApproachVelocity:      a.Velocity,
		ImpactAngleCalculated: a.Angle,
	}

	switch {
	case coords != nil:
		enhanced := EnhanceCoordinates(coords.Latitude, coords.Longitude)
		results.Coordinates = &enhanced
	case a.OrbitalElements != nil:
		derived := ImpactCoordinatesFromOrbit(*a.OrbitalElements)
		results.Coordinates = &derived
	}

	if a.OrbitalElements != nil {
		results.OrbitalClassification = ClassifyOrbit(*a.OrbitalElements)
	}

	return results, nil
}

// AnalyzeDeflection resolves the body and assesses a kinetic deflection
// mission against it.
func AnalyzeDeflection(in AsteroidInput, deflectionDistance, warningTime, availableEnergy float64) (DeflectionAssessment, error) {
	a, err := Resolve(in)
	if err != nil {
		return DeflectionAssessment{}, err
	}
	return AssessDeflection(a, deflectionDistance, warningTime, availableEnergy), nil
}

package physics

import "fmt"

// Resolve fills in every unset physical property of an asteroid and
// returns the fully concrete form the rest of the engine operates on.
//
// Resolution order:
//  1. Composition may be reclassified from photometric data (albedo,
//     B−V, U−B) when any of it is present; density and mass are then
//     recomputed under the new composition, which deliberately
//     overrides caller-supplied values set under a different
//     composition assumption.
//  2. Mass/density follow the three-way rule: density alone derives
//     mass from volume, mass alone derives density, neither derives
//     both from the composition default. When diameter, mass AND
//     density are all supplied the triple is trusted as given with no
//     consistency check — real catalog entries carry independently
//     measured values for all three.
//  3. Velocity and angle: explicit values (including zero) are kept;
//     otherwise orbital elements, when present, supply estimates;
//     otherwise the 20 km/s / 45° defaults apply.
//
// Diameter must be positive and the composition known; anything else
// fails with ErrInvalidInput.
func Resolve(in AsteroidInput) (ResolvedAsteroid, error) {
	if in.Diameter <= 0 {
		return ResolvedAsteroid{}, fmt.Errorf("%w: diameter must be > 0 m, got %g", ErrInvalidInput, in.Diameter)
	}

	comp := in.Composition
	if comp == "" {
		comp = Rocky
	}
	mat, err := comp.Material()
	if err != nil {
		return ResolvedAsteroid{}, err
	}

	volume := sphereVolume(in.Diameter)

	var mass, density float64
	switch {
	case in.Mass == nil && in.Density != nil:
		density = *in.Density
		mass = density * volume
	case in.Density == nil && in.Mass != nil:
		mass = *in.Mass
		density = mass / volume
	case in.Mass == nil && in.Density == nil:
		density = mat.Density
		mass = density * volume
	default: // both supplied: trusted as-is
		mass = *in.Mass
		density = *in.Density
	}

	// Photometric reclassification overrides the composition and with
	// it the density/mass pair.
	if in.Observational.GeometricAlbedo != nil || in.Observational.ColorBV != nil {
		reclassified := ClassifyComposition(in.Observational, comp)
		if reclassified != comp {
			comp = reclassified
			mat, err = comp.Material()
			if err != nil {
				return ResolvedAsteroid{}, err
			}
			density = mat.Density
			mass = density * volume
		}
	}

	out := ResolvedAsteroid{
		Diameter:        in.Diameter,
		Mass:            mass,
		Density:         density,
		Composition:     comp,
		Strength:        mat.Strength,
		OrbitalElements: in.OrbitalElements,
	}

	switch {
	case in.Velocity != nil:
		out.Velocity = *in.Velocity
	case in.OrbitalElements != nil:
		out.Velocity = ApproachVelocity(*in.OrbitalElements)
		out.VelocityFromOrbit = true
	default:
		out.Velocity = defaultVelocity
	}

	switch {
	case in.Angle != nil:
		out.Angle = *in.Angle
	case in.OrbitalElements != nil:
		out.Angle = ImpactAngleFromOrbit(*in.OrbitalElements)
		out.AngleFromOrbit = true
	default:
		out.Angle = defaultAngle
	}

	return out, nil
}

// ClassifyComposition infers a composition class from photometric data.
// High albedo splits on B−V color into metallic (blue, M-type) vs rocky
// (S-type); dark objects split into carbonaceous (red, C-type) vs icy
// (blue in U−B, comet-like), defaulting to carbonaceous. Missing albedo
// is read as 0.15 and missing B−V as 0.7 for this decision only; when
// no photometric data is present at all the fallback class is returned
// unchanged.
func ClassifyComposition(obs ObservationalData, fallback Composition) Composition {
	if obs.GeometricAlbedo == nil && obs.ColorBV == nil {
		return fallback
	}

	albedo := 0.15
	if obs.GeometricAlbedo != nil {
		albedo = *obs.GeometricAlbedo
	}
	bv := 0.7
	if obs.ColorBV != nil {
		bv = *obs.ColorBV
	}

	if albedo > 0.4 {
		if bv < 0.6 {
			return Metallic
		}
		return Rocky
	}
	if bv > 0.8 {
		return Carbonaceous
	}
	if obs.ColorUB != nil && *obs.ColorUB < 0.3 {
		return Icy
	}
	return Carbonaceous
}

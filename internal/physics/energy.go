package physics

import "math"

// KineticEnergy returns the impact energy ½mv² in Joules. A zero or
// negative mass yields zero energy rather than an error.
func KineticEnergy(mass, velocity float64) float64 {
	if mass <= 0 {
		return 0
	}
	return 0.5 * mass * velocity * velocity
}

// TNTEquivalent converts Joules to megatons of TNT (1 MT = 4.184e15 J).
func TNTEquivalent(kineticEnergy float64) float64 {
	return kineticEnergy / megatonTNT
}

// AirburstAltitude returns the altitude at which atmospheric dynamic
// pressure first exceeds the body's strength, or ok=false when the
// body survives to the ground.
//
// The atmosphere is exponential: ρ(h) = ρ₀·exp(−h/H) with H = 8400 m.
// The burst condition ½ρ(h)v² = S solves to h = −H·ln(2S/(ρ₀v²)),
// clamped to ≥ 0.
func AirburstAltitude(strength, velocity float64) (altitude float64, ok bool) {
	surfacePressure := 0.5 * seaLevelAirDensity * velocity * velocity
	if strength >= surfacePressure {
		return 0, false
	}
	h := -scaleHeight * math.Log(2*strength/(seaLevelAirDensity*velocity*velocity))
	return math.Max(0, h), true
}

// ClassifyImpact decides airburst vs surface impact for a resolved
// body. The Ocean classification exists in the vocabulary but is never
// selected by this atmospheric model.
func ClassifyImpact(a ResolvedAsteroid) (ImpactType, *float64) {
	if alt, ok := AirburstAltitude(a.Strength, a.Velocity); ok {
		return Airburst, &alt
	}
	return Surface, nil
}

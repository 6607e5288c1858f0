package physics

import "math"

// RequiredDeflectionEnergy returns the kinetic energy a deflection
// mission must impart to shift the body by deflectionDistance meters
// within warningTime seconds, modeling the deflection as a small
// transverse Δv = distance/time accumulated linearly: E = ½m·Δv².
//
// A zero or negative warning time reads as an impossible mission:
// Δv and hence the required energy become +Inf. A zero mass yields
// zero required energy.
func RequiredDeflectionEnergy(mass, deflectionDistance, warningTime float64) float64 {
	if mass <= 0 {
		return 0
	}
	if warningTime <= 0 {
		return math.Inf(1)
	}
	deltaV := deflectionDistance / warningTime
	return 0.5 * mass * deltaV * deltaV
}

// AssessDeflection compares the mission's available energy against the
// requirement. The energy ratio is +Inf when nothing is required, and
// the success probability is the heuristic min(1, ratio·0.8) for
// feasible missions and exactly zero for infeasible ones.
func AssessDeflection(a ResolvedAsteroid, deflectionDistance, warningTime, availableEnergy float64) DeflectionAssessment {
	required := RequiredDeflectionEnergy(a.Mass, deflectionDistance, warningTime)

	feasible := availableEnergy >= required
	ratio := math.Inf(1)
	if required > 0 {
		ratio = availableEnergy / required
	}

	probability := 0.0
	if feasible {
		probability = math.Min(1.0, ratio*0.8)
	}

	return DeflectionAssessment{
		Feasible:           feasible,
		RequiredEnergy:     required,
		AvailableEnergy:    availableEnergy,
		EnergyRatio:        ratio,
		SuccessProbability: probability,
	}
}

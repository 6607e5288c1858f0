package physics

import "math"

// CraterDiameter returns the transient crater diameter in meters from
// the empirical scaling law D = K·(E·sinθ / (ρ_target·g))^(1/3.4).
// Airbursts excavate no crater. Ocean impacts use a larger scaling
// constant against a water target; land impacts assume typical rock.
func CraterDiameter(kineticEnergy, angleDeg float64, impactType ImpactType) float64 {
	if impactType == Airburst {
		return 0
	}

	k := 1.8
	targetDensity := 2600.0
	if impactType == Ocean {
		k = 3.2
		targetDensity = 1000.0
	}

	effectiveEnergy := kineticEnergy * math.Sin(degToRad(angleDeg))
	return k * math.Pow(effectiveEnergy/(targetDensity*gravity), 1/3.4)
}

// SeismicMagnitude returns the Richter-scale magnitude from the
// empirical relation M = 0.67·log₁₀(E) − 5.87, clamped to ≥ 0.
// Non-positive energy is defined as magnitude 0.
func SeismicMagnitude(kineticEnergy float64) float64 {
	if kineticEnergy <= 0 {
		return 0
	}
	return math.Max(0, 0.67*math.Log10(kineticEnergy)-5.87)
}

// ThermalRadius returns the radius in meters within which thermal
// radiation causes third-degree burns: R = 7800·Y^0.4 for yield Y in
// megatons.
func ThermalRadius(tntMegatons float64) float64 {
	if tntMegatons <= 0 {
		return 0
	}
	return 7800 * math.Pow(tntMegatons, 0.4)
}

// overpressureTiers maps each damage tier to its threshold in psi.
var overpressureTiers = map[string]float64{
	TierTotalDestruction: 20,
	TierSevereDamage:     5,
	TierModerateDamage:   2,
	TierLightDamage:      1,
}

// OverpressureRadii returns, per damage tier, the radius in meters at
// which the blast wave still delivers the tier's threshold
// overpressure: R = 45·(Y_kg/p_Pa)^(1/3) with the yield in kg TNT.
// The map is empty for non-positive yields.
func OverpressureRadii(tntMegatons float64) map[string]float64 {
	radii := make(map[string]float64)
	if tntMegatons <= 0 {
		return radii
	}

	yieldKg := tntMegatons * 1e9
	for tier, psi := range overpressureTiers {
		pa := psi * 6895
		radii[tier] = 45 * math.Cbrt(yieldKg/pa)
	}
	return radii
}

// EstimateCasualties converts damage radii into order-of-magnitude
// casualty counts for a uniform population density (people per km²).
// Thermal burns contribute to severe injuries on top of the blast
// share; the light_injuries tier is part of the vocabulary but this
// model leaves it at zero.
func EstimateCasualties(thermalRadius float64, overpressure map[string]float64, populationDensity float64) map[string]int {
	casualties := map[string]int{
		CasualtyFatalities:       0,
		CasualtySevereInjuries:   0,
		CasualtyModerateInjuries: 0,
		CasualtyLightInjuries:    0,
	}

	affected := func(radiusMeters, share float64) int {
		rKm := radiusMeters / 1000
		return int(math.Pi * rKm * rKm * populationDensity * share)
	}

	if r, ok := overpressure[TierTotalDestruction]; ok {
		casualties[CasualtyFatalities] = affected(r, 0.9)
	}
	if r, ok := overpressure[TierSevereDamage]; ok {
		casualties[CasualtySevereInjuries] = affected(r, 0.6)
	}
	if r, ok := overpressure[TierModerateDamage]; ok {
		casualties[CasualtyModerateInjuries] = affected(r, 0.3)
	}
	casualties[CasualtySevereInjuries] += affected(thermalRadius, 0.4)

	return casualties
}

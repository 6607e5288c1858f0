package physics

import "math"

// OrbitalVelocity returns the heliocentric speed at distanceAU via the
// vis-viva equation v² = GM_sun·(2/r − 1/a). The radicand is clamped to
// zero: near the aphelion edge of a barely bound orbit floating-point
// error can push it slightly negative, which reads as zero velocity
// rather than an error.
func OrbitalVelocity(el OrbitalElements, distanceAU float64) float64 {
	a := el.SemiMajorAxis * astronomicalUnit
	r := distanceAU * astronomicalUnit
	v2 := gmSun * (2/r - 1/a)
	return math.Sqrt(math.Max(0, v2))
}

// ApproachVelocity approximates the Earth-relative encounter speed by
// combining the body's perihelion velocity with Earth's mean orbital
// velocity through the law of cosines, using the orbital inclination as
// the enclosed angle. This is an encounter-geometry proxy, not a
// trajectory integration.
func ApproachVelocity(el OrbitalElements) float64 {
	vp := OrbitalVelocity(el, el.PerihelionDist)
	incl := degToRad(el.Inclination)
	return math.Sqrt(vp*vp + earthOrbitalVelocity*earthOrbitalVelocity -
		2*vp*earthOrbitalVelocity*math.Cos(incl))
}

// ImpactAngleFromOrbit maps orbital inclination to an entry angle.
// The mapping is a piecewise-linear heuristic (shallow entries for
// near-ecliptic orbits, steep for highly inclined ones) perturbed by
// the argument of perihelion and clamped to [5°, 90°]. It is a stand-in
// for approach geometry, not a derived quantity.
func ImpactAngleFromOrbit(el OrbitalElements) float64 {
	incl := el.Inclination

	var base float64
	switch {
	case incl < 30:
		base = 20 + (incl/30)*25 // 20–45°
	case incl < 60:
		base = 45 + ((incl-30)/30)*25 // 45–70°
	default:
		base = 70 + ((incl-60)/30)*20 // 70–90°
	}

	perturbation := 10 * math.Sin(degToRad(el.ArgPerihelion))
	return math.Max(5, math.Min(90, base+perturbation))
}

// ClassifyOrbit assigns the conventional near-Earth/main-belt dynamical
// class from semi-major axis, perihelion and aphelion distances.
// Checks run in order; first match wins.
func ClassifyOrbit(el OrbitalElements) string {
	a := el.SemiMajorAxis
	q := el.PerihelionDist

	switch {
	case a > 1.0 && q < 1.017: // crosses Earth's aphelion distance
		return "Apollo"
	case a < 1.0 && el.AphelionDist > 0.983: // crosses Earth's perihelion distance
		return "Aten"
	case q > 1.017 && q < 1.3:
		return "Amor"
	case a > 5.2:
		return "Jupiter Trojan"
	case a > 2.0 && a < 3.2:
		return "Main Belt"
	default:
		return "Other"
	}
}

package physics

import "math"

// Physical constants shared across the engine.
const (
	gravity            = 9.81   // m/s², surface gravitational acceleration
	earthRadiusKm      = 6371.0 // km, mean radius
	scaleHeight        = 8400.0 // m, exponential-atmosphere scale height
	seaLevelAirDensity = 1.225  // kg/m³

	// megatonTNT is the fixed TNT conversion: 1 MT = 4.184e15 J.
	megatonTNT = 4.184e15

	// Orbital mechanics.
	astronomicalUnit     = 1.496e11 // m
	gmSun                = 1.327e20 // m³/s², solar gravitational parameter
	earthOrbitalVelocity = 29780.0  // m/s, Earth mean orbital velocity

	// Defaults applied when neither the caller nor orbital elements
	// supply a value.
	defaultVelocity = 20000.0 // m/s
	defaultAngle    = 45.0    // degrees
)

// sphereVolume is the single source of truth linking diameter, mass and
// density: V = (4/3)·π·(d/2)³.
func sphereVolume(diameter float64) float64 {
	r := diameter / 2
	return (4.0 / 3.0) * math.Pi * r * r * r
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// Package scenario holds a canned set of reference asteroids with real
// catalog-derived parameters, used by the diagnostics CLI and the
// scenarios API route to exercise the full analysis pipeline.
package scenario

import "github.com/meteor/meteorgo/internal/physics"

func fptr(v float64) *float64 { return &v }

// Scenario pairs a named reference asteroid with its analysis input.
type Scenario struct {
	Name  string
	Input physics.AsteroidInput
}

// Presets returns the reference set. Values come from NASA SBDB entries
// (Icarus-like, Apophis) and well-studied events (Chelyabinsk), plus
// two synthetic photometric edge cases.
func Presets() []Scenario {
	return []Scenario{
		{
			Name: "icarus_like",
			Input: physics.AsteroidInput{
				Diameter: 1000,
				Observational: physics.ObservationalData{
					AbsoluteMagnitude: fptr(16.53),
					GeometricAlbedo:   fptr(0.51),
					RotationPeriod:    fptr(2.2726),
					ColorBV:           fptr(0.774),
					ColorUB:           fptr(0.520),
				},
				OrbitalElements: &physics.OrbitalElements{
					Eccentricity:      0.827,
					SemiMajorAxis:     1.08,
					PerihelionDist:    0.186,
					AphelionDist:      1.97,
					Inclination:       22.8,
					AscendingNode:     88.0,
					ArgPerihelion:     31.4,
					MeanAnomaly:       153.0,
					OrbitalPeriod:     409.0,
					MeanMotion:        0.881,
					MOID:              0.0335,
					AbsoluteMagnitude: 16.53,
				},
			},
		},
		{
			Name: "apophis",
			Input: physics.AsteroidInput{
				Diameter: 270,
				Mass:     fptr(2.7e10),
				Observational: physics.ObservationalData{
					AbsoluteMagnitude: fptr(19.7),
					GeometricAlbedo:   fptr(0.31),
				},
				OrbitalElements: &physics.OrbitalElements{
					Eccentricity:      0.191,
					SemiMajorAxis:     0.922,
					PerihelionDist:    0.746,
					AphelionDist:      1.099,
					Inclination:       3.34,
					OrbitalPeriod:     365.25,
					MeanMotion:        1.0,
					MOID:              0.0002,
					AbsoluteMagnitude: 20.0,
				},
			},
		},
		{
			Name: "chelyabinsk_like",
			Input: physics.AsteroidInput{
				Diameter:    20,
				Composition: physics.Rocky,
				Observational: physics.ObservationalData{
					GeometricAlbedo: fptr(0.25),
				},
				OrbitalElements: &physics.OrbitalElements{
					Eccentricity:      0.69,
					SemiMajorAxis:     1.24,
					PerihelionDist:    1.0,
					AphelionDist:      1.0,
					Inclination:       20.0,
					OrbitalPeriod:     365.25,
					MeanMotion:        1.0,
					MOID:              0.05,
					AbsoluteMagnitude: 20.0,
				},
			},
		},
		{
			Name: "metallic_high_albedo",
			Input: physics.AsteroidInput{
				Diameter: 100,
				Observational: physics.ObservationalData{
					GeometricAlbedo: fptr(0.65),
					ColorBV:         fptr(0.45),
				},
				OrbitalElements: &physics.OrbitalElements{
					Eccentricity:      0.15,
					SemiMajorAxis:     2.1,
					PerihelionDist:    1.0,
					AphelionDist:      1.0,
					Inclination:       8.5,
					OrbitalPeriod:     365.25,
					MeanMotion:        1.0,
					MOID:              0.8,
					AbsoluteMagnitude: 20.0,
				},
			},
		},
		{
			Name: "dark_carbonaceous",
			Input: physics.AsteroidInput{
				Diameter: 800,
				Observational: physics.ObservationalData{
					GeometricAlbedo: fptr(0.04),
					ColorBV:         fptr(0.85),
				},
				OrbitalElements: &physics.OrbitalElements{
					Eccentricity:      0.12,
					SemiMajorAxis:     2.8,
					PerihelionDist:    1.0,
					AphelionDist:      1.0,
					Inclination:       12.0,
					OrbitalPeriod:     365.25,
					MeanMotion:        1.0,
					MOID:              1.2,
					AbsoluteMagnitude: 20.0,
				},
			},
		},
	}
}

package physics

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks asteroid inputs the physics is undefined for
// (non-positive diameter, unknown composition). Wrap with %w.
var ErrInvalidInput = errors.New("invalid asteroid input")

// Composition is a bulk-composition class for an asteroid.
type Composition string

const (
	Rocky        Composition = "ROCKY"
	Metallic     Composition = "METALLIC"
	Icy          Composition = "ICY"
	Carbonaceous Composition = "CARBONACEOUS"
)

// MaterialProperties holds the reference density and aerodynamic
// strength used when a composition class stands in for measured data.
type MaterialProperties struct {
	Density  float64 // kg/m³
	Strength float64 // Pa
}

// compositionTable maps each composition class to its reference
// material properties. Never mutated at runtime.
var compositionTable = map[Composition]MaterialProperties{
	Rocky:        {Density: 2600, Strength: 1e6},
	Metallic:     {Density: 7800, Strength: 5e8},
	Icy:          {Density: 1000, Strength: 1e5},
	Carbonaceous: {Density: 1380, Strength: 5e5},
}

// Material returns the reference material properties for a composition.
func (c Composition) Material() (MaterialProperties, error) {
	m, ok := compositionTable[c]
	if !ok {
		return MaterialProperties{}, fmt.Errorf("%w: unknown composition %q", ErrInvalidInput, string(c))
	}
	return m, nil
}

// ImpactType classifies how the body delivers its energy.
type ImpactType string

const (
	Airburst ImpactType = "airburst"
	Surface  ImpactType = "surface"
	// Ocean is a valid classification the current atmospheric model
	// never selects; crater scaling still supports it.
	Ocean ImpactType = "ocean"
)

// OrbitalElements is a Keplerian element set as reported by the NASA
// SBDB. Zero values are meaningful for some fields (e, i, Ω, ω, M), so
// construct with DefaultOrbitalElements and overwrite what is known.
type OrbitalElements struct {
	Eccentricity      float64 `json:"eccentricity"`
	SemiMajorAxis     float64 `json:"semi_major_axis"`     // AU
	PerihelionDist    float64 `json:"perihelion_distance"` // AU
	AphelionDist      float64 `json:"aphelion_distance"`   // AU
	Inclination       float64 `json:"inclination"`         // degrees
	AscendingNode     float64 `json:"ascending_node"`      // degrees
	ArgPerihelion     float64 `json:"argument_perihelion"` // degrees
	MeanAnomaly       float64 `json:"mean_anomaly"`        // degrees
	OrbitalPeriod     float64 `json:"orbital_period"`      // days
	MeanMotion        float64 `json:"mean_motion"`         // deg/day
	MOID              float64 `json:"moid"`                // AU
	AbsoluteMagnitude float64 `json:"absolute_magnitude"`  // H
}

// DefaultOrbitalElements returns the element set used when the catalog
// reports only a subset of values.
func DefaultOrbitalElements() OrbitalElements {
	return OrbitalElements{
		SemiMajorAxis:     1.0,
		PerihelionDist:    1.0,
		AphelionDist:      1.0,
		OrbitalPeriod:     365.25,
		MeanMotion:        1.0,
		MOID:              1.0,
		AbsoluteMagnitude: 20.0,
	}
}

// ObservationalData holds optional NASA SBDB photometric parameters.
// They refine the composition classification and are never modeled
// physically beyond that.
type ObservationalData struct {
	AbsoluteMagnitude *float64 `json:"absolute_magnitude,omitempty"` // H
	GeometricAlbedo   *float64 `json:"geometric_albedo,omitempty"`
	RotationPeriod    *float64 `json:"rotation_period,omitempty"` // hours
	ColorBV           *float64 `json:"color_b_v,omitempty"`
	ColorUB           *float64 `json:"color_u_b,omitempty"`
}

// AsteroidInput is the raw, possibly partial description of the body.
// Pointer fields distinguish "unset" from an explicit zero.
type AsteroidInput struct {
	Diameter    float64     `json:"diameter"`          // meters, must be > 0
	Mass        *float64    `json:"mass,omitempty"`    // kg
	Density     *float64    `json:"density,omitempty"` // kg/m³
	Composition Composition `json:"composition,omitempty"`
	Velocity    *float64    `json:"velocity,omitempty"` // m/s
	Angle       *float64    `json:"angle,omitempty"`    // degrees from horizontal

	Observational   ObservationalData `json:"observational,omitempty"`
	OrbitalElements *OrbitalElements  `json:"orbital_elements,omitempty"`
}

// ResolvedAsteroid is the fully concrete form of an AsteroidInput after
// Resolve. Resolution is a one-shot transformation: resolving an
// already resolved body is not a defined operation, which makes the
// "has this been derived yet" question structural rather than flag kept
// on a long-lived object.
type ResolvedAsteroid struct {
	Diameter    float64
	Mass        float64
	Density     float64
	Composition Composition
	Strength    float64 // Pa, from the composition table
	Velocity    float64 // m/s
	Angle       float64 // degrees

	// VelocityFromOrbit and AngleFromOrbit record that the value was
	// estimated from orbital elements rather than supplied or defaulted.
	VelocityFromOrbit bool
	AngleFromOrbit    bool

	OrbitalElements *OrbitalElements
}

// ImpactCoordinates locates the impact point and its surroundings.
type ImpactCoordinates struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Region       string  `json:"impact_region"` // Ocean, Land, Populated, Remote
	NearestCity  string  `json:"nearest_city"`
	CityDistance float64 `json:"distance_to_city"` // km
	LocalTime    string  `json:"local_time"`
}

// Overpressure damage tiers. Keys of ImpactResults.OverpressureRadius.
const (
	TierTotalDestruction = "total_destruction" // 20 psi
	TierSevereDamage     = "severe_damage"     // 5 psi
	TierModerateDamage   = "moderate_damage"   // 2 psi
	TierLightDamage      = "light_damage"      // 1 psi
)

// Casualty severity tiers. Keys of ImpactResults.CasualtyEstimate.
// LightInjuries is part of the vocabulary but the current model never
// populates it.
const (
	CasualtyFatalities       = "fatalities"
	CasualtySevereInjuries   = "severe_injuries"
	CasualtyModerateInjuries = "moderate_injuries"
	CasualtyLightInjuries    = "light_injuries"
)

// ImpactResults is the complete output of an impact analysis.
// Immutable once returned.
type ImpactResults struct {
	KineticEnergy float64    `json:"kinetic_energy"` // Joules
	TNTEquivalent float64    `json:"tnt_equivalent"` // megatons
	ImpactType    ImpactType `json:"impact_type"`

	// AirburstAltitude is set iff ImpactType is Airburst.
	AirburstAltitude *float64 `json:"airburst_altitude,omitempty"` // meters

	CraterDiameter     float64            `json:"crater_diameter"` // meters, 0 for airburst
	SeismicMagnitude   float64            `json:"seismic_magnitude"`
	ThermalRadius      float64            `json:"thermal_radius"`      // meters
	OverpressureRadius map[string]float64 `json:"overpressure_radius"` // tier -> meters
	CasualtyEstimate   map[string]int     `json:"casualty_estimate"`   // tier -> count

	Coordinates *ImpactCoordinates `json:"impact_coordinates,omitempty"`

	ApproachVelocity      float64 `json:"approach_velocity"`       // m/s
	ImpactAngleCalculated float64 `json:"impact_angle_calculated"` // degrees
	OrbitalClassification string  `json:"orbital_classification,omitempty"`
}

// DeflectionAssessment reports whether a kinetic deflection mission
// carries enough energy to move the body by the required margin.
type DeflectionAssessment struct {
	Feasible           bool    `json:"feasible"`
	RequiredEnergy     float64 `json:"required_energy"`  // Joules
	AvailableEnergy    float64 `json:"available_energy"` // Joules
	EnergyRatio        float64 `json:"energy_ratio"`     // +Inf when nothing is required
	SuccessProbability float64 `json:"success_probability"`
}

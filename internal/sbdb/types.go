package sbdb

import "github.com/meteor/meteorgo/internal/physics"

// Suggestion is one autocomplete match for a partial asteroid name.
type Suggestion struct {
	Designation string `json:"pdes"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
}

// Record holds everything the catalog reports about one small body.
// Any subset of the optional fields may be absent; callers must
// tolerate partial records.
type Record struct {
	Designation string
	FullName    string

	DiameterM         *float64 // converted from the catalog's km
	Mass              *float64 // kg
	Density           *float64 // kg/m³
	GeometricAlbedo   *float64
	RotationPeriod    *float64 // hours
	AbsoluteMagnitude *float64 // H
	ColorBV           *float64
	ColorUB           *float64

	Elements *physics.OrbitalElements
}

// AsteroidInput maps the record onto the physics engine's input type.
// Returns false when the catalog reported no diameter, since the
// engine cannot analyze a body of unknown size.
func (r *Record) AsteroidInput() (physics.AsteroidInput, bool) {
	if r.DiameterM == nil {
		return physics.AsteroidInput{}, false
	}

	return physics.AsteroidInput{
		Diameter: *r.DiameterM,
		Mass:     r.Mass,
		Density:  r.Density,
		Observational: physics.ObservationalData{
			AbsoluteMagnitude: r.AbsoluteMagnitude,
			GeometricAlbedo:   r.GeometricAlbedo,
			RotationPeriod:    r.RotationPeriod,
			ColorBV:           r.ColorBV,
			ColorUB:           r.ColorUB,
		},
		OrbitalElements: r.Elements,
	}, true
}

package physics

import (
	"math"
	"testing"
)

func TestImpactCoordinatesFromOrbitRegions(t *testing.T) {
	tests := []struct {
		name        string
		inclination float64
		node        float64
		meanAnomaly float64
		wantRegion  string
	}{
		// High inclination with extreme mean anomaly reaches polar
		// latitudes.
		{"polar remote", 80, 0, 0, "Remote"},
		// Longitude bands beyond ±120° map to the ocean region.
		{"pacific ocean", 0, 150, 180, "Ocean"},
		// Low latitude, low longitude: populated band.
		{"populated band", 0, 30, 180, "Populated"},
		// Mid latitude away from the populated band.
		{"land", 30, 80, 0, "Land"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := DefaultOrbitalElements()
			el.Inclination = tt.inclination
			el.AscendingNode = tt.node
			el.MeanAnomaly = tt.meanAnomaly

			c := ImpactCoordinatesFromOrbit(el)
			if c.Region != tt.wantRegion {
				t.Errorf("region = %s (lat %.1f, lng %.1f), want %s", c.Region, c.Latitude, c.Longitude, tt.wantRegion)
			}
			if c.Latitude < -90 || c.Latitude > 90 {
				t.Errorf("latitude %g out of range", c.Latitude)
			}
			if c.Longitude < -180 || c.Longitude > 180 {
				t.Errorf("longitude %g out of range", c.Longitude)
			}
			if c.NearestCity == "" || c.CityDistance <= 0 {
				t.Errorf("missing city assignment: %q at %g km", c.NearestCity, c.CityDistance)
			}
		})
	}
}

func TestImpactCoordinatesFromOrbitLongitudeWraps(t *testing.T) {
	// The ascending node maps through a floored modulo so the
	// longitude always lands in [-180, 180).
	for _, node := range []float64{0, 88, 180, 270, 359.9} {
		el := DefaultOrbitalElements()
		el.AscendingNode = node
		c := ImpactCoordinatesFromOrbit(el)
		if c.Longitude < -180 || c.Longitude >= 180 {
			t.Errorf("node %g: longitude = %g, want in [-180, 180)", node, c.Longitude)
		}
	}

	// Node 88° maps straight back to longitude 88°.
	el := DefaultOrbitalElements()
	el.AscendingNode = 88
	if c := ImpactCoordinatesFromOrbit(el); math.Abs(c.Longitude-88) > 1e-9 {
		t.Errorf("node 88°: longitude = %g, want 88", c.Longitude)
	}
}

func TestImpactCoordinatesFromOrbitLocalTime(t *testing.T) {
	el := DefaultOrbitalElements()
	el.MeanAnomaly = 165 // 165/15 = 11 h on the mean-anomaly dial
	c := ImpactCoordinatesFromOrbit(el)
	if c.LocalTime != "11:00" {
		t.Errorf("local time = %q, want 11:00", c.LocalTime)
	}
}

func TestEnhanceCoordinatesNearestCity(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		wantCity string
	}{
		{"near Manhattan", 40.7, -74.0, "New York"},
		{"near Greenwich", 51.5, -0.1, "London"},
		{"near Tokyo Bay", 35.6, 139.7, "Tokyo"},
		{"south Atlantic", -30, -20, "Rio de Janeiro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := EnhanceCoordinates(tt.lat, tt.lng)
			if c.NearestCity != tt.wantCity {
				t.Errorf("nearest city = %s (%.0f km), want %s", c.NearestCity, c.CityDistance, tt.wantCity)
			}
		})
	}
}

func TestEnhanceCoordinatesCityDistance(t *testing.T) {
	c := EnhanceCoordinates(40.7128, -74.0060) // exactly New York
	if c.CityDistance > 1 {
		t.Errorf("distance to own city = %g km, want ~0", c.CityDistance)
	}
}

func TestEnhanceCoordinatesRegionBands(t *testing.T) {
	tests := []struct {
		name       string
		lat, lng   float64
		wantRegion string
	}{
		// Mid-Atlantic falls in the western ocean band.
		{"mid atlantic", 30, -45, "Ocean"},
		// The Indian Ocean band starts at 30°E.
		{"indian ocean", -20, 80, "Ocean"},
		// Southern polar cap is always ocean under this rule.
		{"antarctic", -70, 0, "Ocean"},
		// The Greenwich corridor between -30 and 30 reads as land.
		{"western europe", 48, 2, "Land"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := EnhanceCoordinates(tt.lat, tt.lng)
			if c.Region != tt.wantRegion {
				t.Errorf("region = %s, want %s", c.Region, tt.wantRegion)
			}
		})
	}
}

func TestEnhanceCoordinatesUTCLabel(t *testing.T) {
	tests := []struct {
		lng  float64
		want string
	}{
		{0, "UTC+0:00"},
		{139.7, "UTC+9:00"},
		{-74.0, "UTC-4:00"},
	}

	for _, tt := range tests {
		if c := EnhanceCoordinates(0, tt.lng); c.LocalTime != tt.want {
			t.Errorf("lng %g: local time = %q, want %q", tt.lng, c.LocalTime, tt.want)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// London to New York is roughly 5570 km.
	d := haversineKm(51.5074, -0.1278, 40.7128, -74.0060)
	if d < 5400 || d > 5700 {
		t.Errorf("London-New York = %g km, want ~5570", d)
	}
}

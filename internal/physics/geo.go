package physics

import (
	"fmt"
	"math"
)

// ImpactCoordinatesFromOrbit places the impact point from orbital
// geometry alone. Longitude follows the ascending node, latitude the
// inclination-scaled mean anomaly, and the region/city/distance labels
// come from a fixed band table. The whole mapping is an illustrative
// heuristic; real geolocation would need trajectory integration.
func ImpactCoordinatesFromOrbit(el OrbitalElements) ImpactCoordinates {
	longitude := math.Mod(el.AscendingNode-180, 360)
	if longitude < 0 {
		longitude += 360
	}
	longitude -= 180

	maxLat := math.Min(90, el.Inclination*1.5)
	latitude := (el.MeanAnomaly/180 - 1) * maxLat

	absLat := math.Abs(latitude)
	var region, city string
	var distance float64
	switch {
	case absLat > 66.5: // polar
		region = "Remote"
		city = "Research Station"
		distance = 500 + absLat*10
	case math.Abs(longitude) > 120: // broad Pacific band
		region = "Ocean"
		city = "Coastal City"
		distance = 200 + math.Abs(longitude-120)*5
	case absLat < 30 && math.Abs(longitude) < 60:
		region = "Populated"
		city = "Major City"
		distance = 50 + absLat*10
	default:
		region = "Land"
		city = "Rural Town"
		distance = 100 + absLat*5
	}

	// Mean anomaly doubles as a clock dial: 15° per hour.
	hour := math.Mod(el.MeanAnomaly/15, 24)
	localTime := fmt.Sprintf("%02d:%02d", int(hour), int(math.Mod(hour, 1)*60))

	return ImpactCoordinates{
		Latitude:     latitude,
		Longitude:    longitude,
		Region:       region,
		NearestCity:  city,
		CityDistance: distance,
		LocalTime:    localTime,
	}
}

// majorCities is the fixed reference set for nearest-city lookup.
var majorCities = []struct {
	name     string
	lat, lng float64
}{
	{"New York", 40.7128, -74.0060},
	{"London", 51.5074, -0.1278},
	{"Tokyo", 35.6762, 139.6503},
	{"Sydney", -33.8688, 151.2093},
	{"Cairo", 30.0444, 31.2357},
	{"Rio de Janeiro", -22.9068, -43.1729},
	{"Mumbai", 19.0760, 72.8777},
	{"Los Angeles", 34.0522, -118.2437},
	{"Beijing", 39.9042, 116.4074},
	{"Moscow", 55.7558, 37.6176},
}

// haversineKm returns the great-circle distance between two points in km.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat1 - lat2)
	dLng := degToRad(lng1 - lng2)
	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(degToRad(lat2))*math.Cos(degToRad(lat1))*sinLng*sinLng
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}

// EnhanceCoordinates fills in region, nearest city, distance and a
// local-time label for caller-supplied coordinates. The ocean/land rule
// is a coarse hemispheric-band approximation and the time label is a
// plain longitude/15 UTC offset; both are deliberately simpler than the
// orbital heuristic above and the two paths are kept separate.
func EnhanceCoordinates(latitude, longitude float64) ImpactCoordinates {
	c := ImpactCoordinates{Latitude: latitude, Longitude: longitude}

	lat, lng := latitude, longitude
	if (lat >= -60 && lat <= 60 && lng >= -180 && lng <= -30) ||
		(lat >= -60 && lat <= 60 && lng >= 30 && lng <= 180) ||
		lat < -60 || (lat > 60 && math.Abs(lng) > 30) {
		c.Region = "Ocean"
	} else {
		c.Region = "Land"
	}

	minDistance := math.Inf(1)
	for _, city := range majorCities {
		d := haversineKm(lat, lng, city.lat, city.lng)
		if d < minDistance {
			minDistance = d
			c.NearestCity = city.name
		}
	}
	c.CityDistance = minDistance

	c.LocalTime = fmt.Sprintf("UTC%+d:00", int(lng/15))
	return c
}

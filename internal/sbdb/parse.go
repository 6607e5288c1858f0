package sbdb

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/meteor/meteorgo/internal/physics"
)

// sbdbResponse mirrors the subset of the JPL SBDB API response we
// consume. Numeric values arrive as JSON strings or numbers depending
// on the field, so everything is decoded loosely and parsed per field.
type sbdbResponse struct {
	Code string `json:"code"`

	// Populated on a multi-match response (code 300).
	List []struct {
		Designation string `json:"pdes"`
		Name        string `json:"name"`
	} `json:"list"`

	// Populated on an exact match.
	Object *struct {
		Designation string `json:"des"`
		FullName    string `json:"fullname"`
	} `json:"object"`

	Orbit *struct {
		Elements []sbdbValue `json:"elements"`
	} `json:"orbit"`

	PhysPar []sbdbValue `json:"phys_par"`
}

// sbdbValue is one named parameter in an elements or phys_par list.
type sbdbValue struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// float reads the value as a float64, accepting both JSON numbers and
// numeric strings (the API uses either depending on the field).
func (v sbdbValue) float() (float64, bool) {
	var asNumber float64
	if err := json.Unmarshal(v.Value, &asNumber); err == nil {
		return asNumber, true
	}
	var asString string
	if err := json.Unmarshal(v.Value, &asString); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(asString), 64)
		if err == nil {
			return f, true
		}
	}
	return 0, false
}

// parseSuggestions extracts autocomplete matches from a response.
// A code-300 response carries a match list; an exact match becomes a
// single suggestion; anything else is an empty result.
func parseSuggestions(body []byte, limit int) ([]Suggestion, error) {
	var resp sbdbResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding SBDB response: %w", err)
	}

	switch {
	case resp.Code == "300" && len(resp.List) > 0:
		suggestions := make([]Suggestion, 0, limit)
		for _, item := range resp.List {
			if len(suggestions) >= limit {
				break
			}
			suggestions = append(suggestions, Suggestion{
				Designation: item.Designation,
				Name:        item.Name,
				FullName:    item.Name,
			})
		}
		return suggestions, nil
	case resp.Object != nil:
		return []Suggestion{{
			Designation: resp.Object.Designation,
			Name:        resp.Object.FullName,
			FullName:    resp.Object.FullName,
		}}, nil
	default:
		return nil, nil
	}
}

// physParSetters maps SBDB physical-parameter names to Record fields.
// diameter is handled separately because of the km→m conversion.
var physParSetters = map[string]func(*Record, float64){
	"H":       func(r *Record, v float64) { r.AbsoluteMagnitude = &v },
	"albedo":  func(r *Record, v float64) { r.GeometricAlbedo = &v },
	"rot_per": func(r *Record, v float64) { r.RotationPeriod = &v },
	"density": func(r *Record, v float64) { r.Density = &v },
	"mass":    func(r *Record, v float64) { r.Mass = &v },
	"BV":      func(r *Record, v float64) { r.ColorBV = &v },
	"UB":      func(r *Record, v float64) { r.ColorUB = &v },
}

// parseRecord extracts a full Record from an exact-match response.
// Returns nil when the response carries no object payload.
func parseRecord(body []byte) (*Record, error) {
	var resp sbdbResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding SBDB response: %w", err)
	}
	if resp.Object == nil {
		return nil, nil
	}

	rec := &Record{
		Designation: resp.Object.Designation,
		FullName:    resp.Object.FullName,
	}

	for _, par := range resp.PhysPar {
		v, ok := par.float()
		if !ok {
			continue
		}
		if par.Name == "diameter" {
			m := v * 1000 // catalog reports km
			rec.DiameterM = &m
			continue
		}
		if set, known := physParSetters[par.Name]; known {
			set(rec, v)
		}
	}

	if resp.Orbit != nil && len(resp.Orbit.Elements) > 0 {
		el := physics.DefaultOrbitalElements()
		for _, e := range resp.Orbit.Elements {
			v, ok := e.float()
			if !ok {
				continue
			}
			switch e.Name {
			case "e":
				el.Eccentricity = v
			case "a":
				el.SemiMajorAxis = v
			case "q":
				el.PerihelionDist = v
			case "ad":
				el.AphelionDist = v
			case "i":
				el.Inclination = v
			case "om":
				el.AscendingNode = v
			case "w":
				el.ArgPerihelion = v
			case "ma":
				el.MeanAnomaly = v
			case "per":
				el.OrbitalPeriod = v
			case "n":
				el.MeanMotion = v
			case "moid":
				el.MOID = v
			}
		}
		if rec.AbsoluteMagnitude != nil {
			el.AbsoluteMagnitude = *rec.AbsoluteMagnitude
		}
		rec.Elements = &el
	}

	return rec, nil
}

var designationPrefix = regexp.MustCompile(`^\d+\s+([^(]+)`)

// ExtractName strips the numeric designation and trailing provisional
// designation from a catalog full name, e.g.
// "1566 Icarus (1949 MA)" → "Icarus". Names without a recognizable
// prefix pass through with only the parenthetical removed.
func ExtractName(fullName string) string {
	fullName = strings.TrimSpace(fullName)

	if m := designationPrefix.FindStringSubmatch(fullName); m != nil {
		return strings.TrimSpace(m[1])
	}
	if i := strings.IndexByte(fullName, '('); i >= 0 {
		return strings.TrimSpace(fullName[:i])
	}
	return fullName
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/meteor/meteorgo/internal/metrics"
	"github.com/meteor/meteorgo/internal/physics"
	"github.com/meteor/meteorgo/internal/sbdb"
	"github.com/meteor/meteorgo/internal/scenario"
)

const (
	autocompleteDefaultLimit = 10
	autocompleteMaxLimit     = 50
)

type handlers struct {
	catalog           *sbdb.Client
	runner            *scenario.Runner
	populationDensity float64
	logger            *slog.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// queryFloat reads an optional float parameter. Absent keys return nil.
func queryFloat(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %q must be a number, got %q", key, raw)
	}
	return &v, nil
}

// orbitalParamSetters maps query parameter names onto orbital element
// fields. Mirrors the SBDB element naming used elsewhere.
var orbitalParamSetters = map[string]func(*physics.OrbitalElements, float64){
	"eccentricity":        func(el *physics.OrbitalElements, v float64) { el.Eccentricity = v },
	"semi_major_axis":     func(el *physics.OrbitalElements, v float64) { el.SemiMajorAxis = v },
	"perihelion_distance": func(el *physics.OrbitalElements, v float64) { el.PerihelionDist = v },
	"aphelion_distance":   func(el *physics.OrbitalElements, v float64) { el.AphelionDist = v },
	"inclination":         func(el *physics.OrbitalElements, v float64) { el.Inclination = v },
	"ascending_node":      func(el *physics.OrbitalElements, v float64) { el.AscendingNode = v },
	"arg_perihelion":      func(el *physics.OrbitalElements, v float64) { el.ArgPerihelion = v },
	"mean_anomaly":        func(el *physics.OrbitalElements, v float64) { el.MeanAnomaly = v },
	"period":              func(el *physics.OrbitalElements, v float64) { el.OrbitalPeriod = v },
	"mean_motion":         func(el *physics.OrbitalElements, v float64) { el.MeanMotion = v },
	"moid":                func(el *physics.OrbitalElements, v float64) { el.MOID = v },
}

// parseAsteroidInput builds the engine input from query parameters.
// diameter is the only required parameter; everything else stays unset
// and is filled in by resolution.
func parseAsteroidInput(q url.Values) (physics.AsteroidInput, error) {
	var in physics.AsteroidInput

	if q.Get("diameter") == "" {
		return in, errors.New(`parameter "diameter" is required`)
	}
	d, err := queryFloat(q, "diameter")
	if err != nil {
		return in, err
	}
	in.Diameter = *d

	if in.Mass, err = queryFloat(q, "mass"); err != nil {
		return in, err
	}
	if in.Density, err = queryFloat(q, "density"); err != nil {
		return in, err
	}
	if in.Velocity, err = queryFloat(q, "velocity"); err != nil {
		return in, err
	}
	if in.Angle, err = queryFloat(q, "angle"); err != nil {
		return in, err
	}
	if comp := q.Get("composition"); comp != "" {
		in.Composition = physics.Composition(strings.ToUpper(comp))
	}

	if in.Observational.AbsoluteMagnitude, err = queryFloat(q, "absolute_magnitude"); err != nil {
		return in, err
	}
	if in.Observational.GeometricAlbedo, err = queryFloat(q, "albedo"); err != nil {
		return in, err
	}
	if in.Observational.RotationPeriod, err = queryFloat(q, "rotation_period"); err != nil {
		return in, err
	}
	if in.Observational.ColorBV, err = queryFloat(q, "color_b_v"); err != nil {
		return in, err
	}
	if in.Observational.ColorUB, err = queryFloat(q, "color_u_b"); err != nil {
		return in, err
	}

	var elements *physics.OrbitalElements
	for key, set := range orbitalParamSetters {
		v, err := queryFloat(q, key)
		if err != nil {
			return in, err
		}
		if v == nil {
			continue
		}
		if elements == nil {
			el := physics.DefaultOrbitalElements()
			elements = &el
		}
		set(elements, *v)
	}
	if elements != nil && in.Observational.AbsoluteMagnitude != nil {
		elements.AbsoluteMagnitude = *in.Observational.AbsoluteMagnitude
	}
	in.OrbitalElements = elements

	return in, nil
}

// parseCoordinates reads the optional latitude/longitude pair. Supplying
// one without the other is an error.
func parseCoordinates(q url.Values) (*physics.ExplicitCoordinates, error) {
	lat, err := queryFloat(q, "latitude")
	if err != nil {
		return nil, err
	}
	lng, err := queryFloat(q, "longitude")
	if err != nil {
		return nil, err
	}
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil || lng == nil:
		return nil, errors.New(`parameters "latitude" and "longitude" must be supplied together`)
	}
	return &physics.ExplicitCoordinates{Latitude: *lat, Longitude: *lng}, nil
}

// parseDeflectionParams reads the deflection trio. all reports whether
// every parameter was present, some whether at least one was.
func parseDeflectionParams(q url.Values) (distance, warningTime, availableEnergy float64, all, some bool, err error) {
	d, err := queryFloat(q, "deflection_distance")
	if err != nil {
		return 0, 0, 0, false, false, err
	}
	wt, err := queryFloat(q, "warning_time")
	if err != nil {
		return 0, 0, 0, false, false, err
	}
	e, err := queryFloat(q, "available_energy")
	if err != nil {
		return 0, 0, 0, false, false, err
	}

	all = d != nil && wt != nil && e != nil
	some = d != nil || wt != nil || e != nil
	if all {
		distance, warningTime, availableEnergy = *d, *wt, *e
	}
	return distance, warningTime, availableEnergy, all, some, nil
}

// jsonNumber makes a float safe for encoding/json, which rejects
// infinities. The energy ratio is +Inf when no deflection is required.
func jsonNumber(v float64) any {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	return v
}

func deflectionPayload(d physics.DeflectionAssessment) map[string]any {
	return map[string]any{
		"feasible":            d.Feasible,
		"required_energy":     jsonNumber(d.RequiredEnergy),
		"available_energy":    d.AvailableEnergy,
		"energy_ratio":        jsonNumber(d.EnergyRatio),
		"success_probability": d.SuccessProbability,
	}
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "meteorgo",
		"status":  "ok",
		"endpoints": []string{
			"/api/v1/impact-analysis",
			"/api/v1/deflection",
			"/api/v1/asteroids/autocomplete",
			"/api/v1/asteroids/details",
			"/api/v1/asteroids/{name}/impact-analysis",
			"/api/v1/scenarios",
		},
	})
}

func (h *handlers) populationDensityFrom(q url.Values) (float64, error) {
	pd, err := queryFloat(q, "population_density")
	if err != nil {
		return 0, err
	}
	if pd == nil {
		return h.populationDensity, nil
	}
	if *pd < 0 {
		return 0, errors.New(`parameter "population_density" must be >= 0`)
	}
	return *pd, nil
}

func (h *handlers) impactAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in, err := parseAsteroidInput(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	popDensity, err := h.populationDensityFrom(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	coords, err := parseCoordinates(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	distance, warningTime, availableEnergy, allDeflection, anyDeflection, err := parseDeflectionParams(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if anyDeflection && !allDeflection {
		writeError(w, http.StatusBadRequest,
			`parameters "deflection_distance", "warning_time" and "available_energy" must be supplied together`)
		return
	}

	results, err := physics.AnalyzeImpact(in, popDensity, coords)
	if err != nil {
		h.engineError(w, err)
		return
	}
	metrics.RecordImpactAnalysis(string(results.ImpactType))

	resp := struct {
		physics.ImpactResults
		DeflectionAnalysis map[string]any `json:"deflection_analysis,omitempty"`
	}{ImpactResults: results}

	if allDeflection {
		assessment, err := physics.AnalyzeDeflection(in, distance, warningTime, availableEnergy)
		if err != nil {
			h.engineError(w, err)
			return
		}
		metrics.RecordDeflectionAssessment(assessment.Feasible)
		resp.DeflectionAnalysis = deflectionPayload(assessment)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) deflection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	in, err := parseAsteroidInput(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	distance, warningTime, availableEnergy, all, _, err := parseDeflectionParams(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !all {
		writeError(w, http.StatusBadRequest,
			`parameters "deflection_distance", "warning_time" and "available_energy" are required`)
		return
	}

	assessment, err := physics.AnalyzeDeflection(in, distance, warningTime, availableEnergy)
	if err != nil {
		h.engineError(w, err)
		return
	}
	metrics.RecordDeflectionAssessment(assessment.Feasible)

	writeJSON(w, http.StatusOK, deflectionPayload(assessment))
}

func (h *handlers) autocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, `parameter "query" is required`)
		return
	}

	limit := autocompleteDefaultLimit
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, `parameter "limit" must be an integer`)
			return
		}
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > autocompleteMaxLimit {
		limit = autocompleteMaxLimit
	}

	suggestions, err := h.catalog.Autocomplete(r.Context(), query, limit)
	if err != nil {
		metrics.RecordCatalogLookup("error")
		h.logger.Warn("autocomplete failed", "component", "api", "query", query, "error", err)
		writeError(w, http.StatusServiceUnavailable, "asteroid catalog unavailable")
		return
	}
	metrics.RecordCatalogLookup("ok")

	if suggestions == nil {
		suggestions = []sbdb.Suggestion{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   query,
		"count":   len(suggestions),
		"results": suggestions,
	})
}

// detailsResponse is the external shape of a catalog record.
type detailsResponse struct {
	Designation       string                   `json:"designation"`
	FullName          string                   `json:"full_name"`
	Diameter          *float64                 `json:"diameter,omitempty"` // meters
	Mass              *float64                 `json:"mass,omitempty"`
	Density           *float64                 `json:"density,omitempty"`
	GeometricAlbedo   *float64                 `json:"geometric_albedo,omitempty"`
	RotationPeriod    *float64                 `json:"rotation_period,omitempty"`
	AbsoluteMagnitude *float64                 `json:"absolute_magnitude,omitempty"`
	ColorBV           *float64                 `json:"color_b_v,omitempty"`
	ColorUB           *float64                 `json:"color_u_b,omitempty"`
	OrbitalElements   *physics.OrbitalElements `json:"orbital_elements,omitempty"`
}

func (h *handlers) details(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		writeError(w, http.StatusBadRequest, `parameter "name" is required`)
		return
	}

	record, ok := h.lookup(w, r, name)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, detailsResponse{
		Designation:       record.Designation,
		FullName:          record.FullName,
		Diameter:          record.DiameterM,
		Mass:              record.Mass,
		Density:           record.Density,
		GeometricAlbedo:   record.GeometricAlbedo,
		RotationPeriod:    record.RotationPeriod,
		AbsoluteMagnitude: record.AbsoluteMagnitude,
		ColorBV:           record.ColorBV,
		ColorUB:           record.ColorUB,
		OrbitalElements:   record.Elements,
	})
}

func (h *handlers) catalogImpactAnalysis(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	record, ok := h.lookup(w, r, name)
	if !ok {
		return
	}

	in, ok := record.AsteroidInput()
	if !ok {
		writeError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("catalog record %q reports no diameter", record.FullName))
		return
	}

	popDensity, err := h.populationDensityFrom(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := physics.AnalyzeImpact(in, popDensity, nil)
	if err != nil {
		h.engineError(w, err)
		return
	}
	metrics.RecordImpactAnalysis(string(results.ImpactType))

	writeJSON(w, http.StatusOK, struct {
		FullName    string `json:"full_name"`
		Designation string `json:"designation"`
		physics.ImpactResults
	}{record.FullName, record.Designation, results})
}

// lookup fetches a catalog record and writes the error response itself
// when the lookup fails.
func (h *handlers) lookup(w http.ResponseWriter, r *http.Request, name string) (*sbdb.Record, bool) {
	record, err := h.catalog.Lookup(r.Context(), name)
	switch {
	case errors.Is(err, sbdb.ErrNotFound):
		metrics.RecordCatalogLookup("not_found")
		writeError(w, http.StatusNotFound, fmt.Sprintf("no asteroid matching %q", name))
		return nil, false
	case err != nil:
		metrics.RecordCatalogLookup("error")
		h.logger.Warn("catalog lookup failed", "component", "api", "name", name, "error", err)
		writeError(w, http.StatusBadGateway, "asteroid catalog unavailable")
		return nil, false
	}
	metrics.RecordCatalogLookup("ok")
	return record, true
}

func (h *handlers) scenarios(w http.ResponseWriter, r *http.Request) {
	reports := h.runner.RunAll(r.Context(), scenario.Presets())
	for _, report := range reports {
		metrics.RecordImpactAnalysis(string(report.Results.ImpactType))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count":     len(reports),
		"scenarios": reports,
	})
}

// engineError maps engine failures onto status codes. The engine's only
// error condition today is invalid input.
func (h *handlers) engineError(w http.ResponseWriter, err error) {
	if errors.Is(err, physics.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Error("analysis failed", "component", "api", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

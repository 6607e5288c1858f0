// Command diag runs the built-in reference scenarios through the
// analysis engine and prints a human-readable report. Useful for
// eyeballing pipeline changes without starting the server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/meteor/meteorgo/internal/physics"
	"github.com/meteor/meteorgo/internal/scenario"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	runner := scenario.NewRunner(4, 100, logger)
	reports := runner.RunAll(context.Background(), scenario.Presets())

	for _, rep := range reports {
		r := rep.Results
		fmt.Printf("=== %s ===\n", rep.Name)
		fmt.Printf("  energy: %.3e J (%.3f MT TNT)\n", r.KineticEnergy, r.TNTEquivalent)
		fmt.Printf("  impact type: %s\n", r.ImpactType)
		if r.AirburstAltitude != nil {
			fmt.Printf("  airburst altitude: %.0f m\n", *r.AirburstAltitude)
		} else {
			fmt.Printf("  crater diameter: %.0f m\n", r.CraterDiameter)
		}
		fmt.Printf("  seismic magnitude: %.1f\n", r.SeismicMagnitude)
		fmt.Printf("  thermal radius: %.0f m\n", r.ThermalRadius)
		fmt.Printf("  approach velocity: %.0f m/s at %.1f°\n", r.ApproachVelocity, r.ImpactAngleCalculated)
		if r.OrbitalClassification != "" {
			fmt.Printf("  orbit: %s\n", r.OrbitalClassification)
		}
		if c := r.Coordinates; c != nil {
			fmt.Printf("  impact at (%.2f, %.2f) %s, %.0f km from %s, local time %s\n",
				c.Latitude, c.Longitude, c.Region, c.CityDistance, c.NearestCity, c.LocalTime)
		}
		fmt.Printf("  casualties: %d dead, %d severe, %d moderate\n",
			r.CasualtyEstimate[physics.CasualtyFatalities],
			r.CasualtyEstimate[physics.CasualtySevereInjuries],
			r.CasualtyEstimate[physics.CasualtyModerateInjuries])
		fmt.Println()
	}

	// Sample deflection: move an Apophis-sized body one Earth radius
	// with ten years of warning and a gigaton-class impulse budget.
	for _, s := range scenario.Presets() {
		if s.Name != "apophis" {
			continue
		}
		assessment, err := physics.AnalyzeDeflection(s.Input, 6.4e6, 10*365.25*86400, 4.184e18)
		if err != nil {
			fmt.Println("ERROR assessing deflection:", err)
			os.Exit(1)
		}
		fmt.Println("=== deflection: apophis ===")
		fmt.Printf("  required: %.3e J, available: %.3e J\n", assessment.RequiredEnergy, assessment.AvailableEnergy)
		if math.IsInf(assessment.EnergyRatio, 1) {
			fmt.Println("  energy ratio: unlimited")
		} else {
			fmt.Printf("  energy ratio: %.2f\n", assessment.EnergyRatio)
		}
		fmt.Printf("  feasible: %v (success probability %.2f)\n", assessment.Feasible, assessment.SuccessProbability)
	}
}

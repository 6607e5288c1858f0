package scenario

import (
	"context"
	"log/slog"
	"sync"

	"github.com/meteor/meteorgo/internal/physics"
)

// evalJob is a unit of work for the runner pool.
type evalJob struct {
	index    int
	scenario Scenario
}

// evalResult is the output of a single scenario evaluation.
type evalResult struct {
	index  int
	report Report
	err    error
	name   string
}

// Report is one analyzed scenario.
type Report struct {
	Name    string                `json:"name"`
	Results physics.ImpactResults `json:"results"`
}

// Runner evaluates scenario batches with a fixed number of goroutines.
type Runner struct {
	workers           int
	populationDensity float64
	logger            *slog.Logger
}

// NewRunner creates a runner. workers below 1 is treated as 1.
func NewRunner(workers int, populationDensity float64, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		workers:           workers,
		populationDensity: populationDensity,
		logger:            logger,
	}
}

// RunAll analyzes every scenario in the batch and returns the reports in
// input order. Scenarios that fail to resolve are logged and skipped.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) []Report {
	if len(scenarios) == 0 {
		return nil
	}

	jobs := make(chan evalJob, r.workers*2)
	results := make(chan evalResult, r.workers*2)

	// Start workers.
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				result := r.evalSingle(job)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed jobs in a goroutine.
	go func() {
		defer close(jobs)
		for i, s := range scenarios {
			select {
			case jobs <- evalJob{index: i, scenario: s}:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Close results when all workers are done.
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect and restore input order.
	ordered := make([]*Report, len(scenarios))
	for result := range results {
		if result.err != nil {
			r.logger.Warn("scenario analysis failed",
				"scenario", result.name,
				"error", result.err,
			)
			continue
		}
		report := result.report
		ordered[result.index] = &report
	}

	reports := make([]Report, 0, len(scenarios))
	for _, rep := range ordered {
		if rep != nil {
			reports = append(reports, *rep)
		}
	}
	return reports
}

func (r *Runner) evalSingle(job evalJob) evalResult {
	results, err := physics.AnalyzeImpact(job.scenario.Input, r.populationDensity, nil)
	if err != nil {
		return evalResult{index: job.index, name: job.scenario.Name, err: err}
	}
	return evalResult{
		index: job.index,
		name:  job.scenario.Name,
		report: Report{
			Name:    job.scenario.Name,
			Results: results,
		},
	}
}

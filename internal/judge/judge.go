// Package judge runs the solver against cases with known answers and reports
// which ones produce the expected output.
package judge

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kula-app/nextgreater/internal/input"
	"github.com/kula-app/nextgreater/internal/nextgreater"
	"github.com/kula-app/nextgreater/internal/output"
)

// CaseResult is the outcome of running one case
type CaseResult struct {
	JobID    string
	Name     string
	Input    string
	Expected string
	Output   string
	Passed   bool
	// Error holds the parse failure when the case input was malformed
	Error error
}

// Report summarizes a judge run
type Report struct {
	Results   []CaseResult
	PassedAll bool
	Duration  time.Duration
}

// Passed returns the number of cases that passed
func (r *Report) Passed() int {
	passed := 0
	for _, res := range r.Results {
		if res.Passed {
			passed++
		}
	}
	return passed
}

// Judge evaluates cases against the next greater element solver
type Judge struct {
	logger *slog.Logger
}

// New creates a new judge
func New(logger *slog.Logger) *Judge {
	return &Judge{
		logger: logger,
	}
}

// Run evaluates every case in order. A malformed case input fails that case only;
// the run stops early only when ctx is canceled.
func (j *Judge) Run(ctx context.Context, cases []Case) (*Report, error) {
	startTime := time.Now()
	report := &Report{
		Results: make([]CaseResult, 0, len(cases)),
	}

	j.logger.Info("judge run started", "cases", len(cases))

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Results = append(report.Results, j.runCase(c))
	}

	report.PassedAll = len(report.Results) > 0
	for _, res := range report.Results {
		if !res.Passed || res.Error != nil {
			report.PassedAll = false
			break
		}
	}
	report.Duration = time.Since(startTime)

	j.logger.Info("judge run completed",
		"duration", report.Duration,
		"cases_total", len(report.Results),
		"cases_passed", report.Passed(),
		"passed_all", report.PassedAll)

	return report, nil
}

func (j *Judge) runCase(c Case) CaseResult {
	res := CaseResult{
		JobID:    uuid.NewString(),
		Name:     c.Name,
		Input:    c.Input,
		Expected: c.Output,
	}
	logger := j.logger.With("job_id", res.JobID, "case", c.Name)

	values, err := input.ParseString(c.Input)
	if err != nil {
		logger.Warn("case input rejected", "error", err)
		res.Error = err
		return res
	}

	res.Output = output.Format(nextgreater.Compute(values))
	res.Passed = normalize(res.Output) == normalize(c.Output)

	if res.Passed {
		logger.Debug("case passed", "elements", len(values))
	} else {
		logger.Info("case failed",
			"elements", len(values),
			"expected", c.Output,
			"output", res.Output)
	}

	return res
}

// normalize trims the text and collapses whitespace runs, so a trailing space
// or a different line break does not fail an otherwise correct answer
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

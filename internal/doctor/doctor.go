package doctor

import (
	"context"
	"time"
)

// Check is one diagnostic.
type Check interface {
	Name() string

	// Category groups checks in output: config, registry or cache.
	Category() string

	Run(ctx context.Context) *CheckResult
}

// Runner executes checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates a runner with no checks.
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// AddCheck registers c.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes the registered checks. Checks not yet started when ctx is
// cancelled are skipped and the report is marked incomplete.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		if ctx.Err() != nil {
			report.Incomplete = true
			break
		}
		result := check.Run(ctx)
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

// Report is the outcome of a diagnostic run, as printed by plinks doctor.
type Report struct {
	Timestamp  time.Time      `json:"timestamp"`
	Results    []*CheckResult `json:"results"`
	Summary    Summary        `json:"summary"`
	Incomplete bool           `json:"incomplete,omitempty"`
}

// Worst returns the highest severity in the report, or SeverityPass when
// it has no results.
func (r *Report) Worst() Severity {
	worst := SeverityPass
	for _, result := range r.Results {
		worst = max(worst, result.Status)
	}
	return worst
}

// HasErrors reports whether any check failed.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

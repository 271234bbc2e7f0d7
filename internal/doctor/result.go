// Package doctor provides diagnostic checks for plinks: the config file,
// the family registry files, the installation cache and the installations
// it records.
package doctor

import (
	"github.com/thoreinstein/plinks/internal/errors"
)

// Severity is the outcome level of a check. Levels are ordered, so the
// worst of several results is their maximum.
type Severity int

const (
	SeverityPass Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{"pass", "info", "warning", "error"}

func (s Severity) String() string {
	if s < SeverityPass || s > SeverityError {
		return "unknown"
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name so JSON reports read "warning"
// rather than 2.
func (s Severity) MarshalText() ([]byte, error) {
	if s < SeverityPass || s > SeverityError {
		return nil, errors.Newf("invalid severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name written by MarshalText.
func (s *Severity) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if string(text) == name {
			*s = Severity(i)
			return nil
		}
	}
	return errors.Newf("unknown severity %q", text)
}

// Problem reports whether s needs the user's attention.
func (s Severity) Problem() bool {
	return s >= SeverityWarning
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name     string   `json:"name"`
	Category string   `json:"category"` // config, registry or cache
	Status   Severity `json:"status"`
	Message  string   `json:"message"`

	// Details holds check-specific context such as the file inspected or
	// the profile names found.
	Details map[string]any `json:"details,omitempty"`

	// FixHint is usually a plinks command that resolves the problem.
	FixHint string `json:"fix_hint,omitempty"`
}

// Summary counts results by severity.
type Summary struct {
	Passed   int `json:"passed"`
	Info     int `json:"info"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

func (s *Summary) add(sev Severity) {
	switch sev {
	case SeverityPass:
		s.Passed++
	case SeverityInfo:
		s.Info++
	case SeverityWarning:
		s.Warnings++
	case SeverityError:
		s.Errors++
	}
}

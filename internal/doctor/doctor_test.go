package doctor

import (
	"context"
	"encoding/json"
	"testing"
)

type staticCheck struct {
	name   string
	status Severity
}

func (c staticCheck) Name() string     { return c.name }
func (c staticCheck) Category() string { return "test" }

func (c staticCheck) Run(context.Context) *CheckResult {
	return &CheckResult{Name: c.name, Category: c.Category(), Status: c.status}
}

func TestRunner_Run(t *testing.T) {
	r := NewRunner()
	r.AddCheck(staticCheck{"a", SeverityPass})
	r.AddCheck(staticCheck{"b", SeverityInfo})
	r.AddCheck(staticCheck{"c", SeverityWarning})
	r.AddCheck(staticCheck{"d", SeverityWarning})
	r.AddCheck(staticCheck{"e", SeverityError})

	report := r.Run(t.Context())

	if len(report.Results) != 5 {
		t.Fatalf("Run() results = %d, want 5", len(report.Results))
	}
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if report.Results[i].Name != want {
			t.Errorf("Results[%d].Name = %q, want %q", i, report.Results[i].Name, want)
		}
	}
	want := Summary{Passed: 1, Info: 1, Warnings: 2, Errors: 1}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if !report.HasErrors() || !report.HasWarnings() {
		t.Error("report should have errors and warnings")
	}
	if report.Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRunner_RunEmpty(t *testing.T) {
	report := NewRunner().Run(t.Context())
	if report.HasErrors() || report.HasWarnings() {
		t.Errorf("empty report has problems: %+v", report.Summary)
	}
	if report.Results == nil {
		t.Error("Results should be an empty slice, not nil")
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityPass, "pass"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestRunner_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	r := NewRunner()
	r.AddCheck(cancelCheck{cancel})
	r.AddCheck(staticCheck{"after", SeverityError})

	report := r.Run(ctx)

	if len(report.Results) != 1 {
		t.Fatalf("Run() results = %d, want 1", len(report.Results))
	}
	if !report.Incomplete {
		t.Error("Incomplete = false, want true")
	}
	if report.HasErrors() {
		t.Error("skipped check was counted")
	}
}

type cancelCheck struct{ cancel context.CancelFunc }

func (c cancelCheck) Name() string     { return "cancel" }
func (c cancelCheck) Category() string { return "test" }

func (c cancelCheck) Run(context.Context) *CheckResult {
	c.cancel()
	return &CheckResult{Name: "cancel", Status: SeverityPass}
}

func TestReport_Worst(t *testing.T) {
	if got := (&Report{}).Worst(); got != SeverityPass {
		t.Errorf("empty Worst() = %v, want pass", got)
	}
	r := &Report{Results: []*CheckResult{
		{Status: SeverityInfo},
		{Status: SeverityWarning},
		{Status: SeverityPass},
	}}
	if got := r.Worst(); got != SeverityWarning {
		t.Errorf("Worst() = %v, want warning", got)
	}
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(CheckResult{Name: "x", Status: SeverityWarning})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"name":"x","category":"","status":"warning","message":""}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var got CheckResult
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Status != SeverityWarning {
		t.Errorf("Status = %v, want warning", got.Status)
	}

	if err := json.Unmarshal([]byte(`{"status":"fatal"}`), &got); err == nil {
		t.Error("Unmarshal() of unknown severity succeeded")
	}
	if _, err := json.Marshal(CheckResult{Status: Severity(9)}); err == nil {
		t.Error("Marshal() of invalid severity succeeded")
	}
}

func TestSeverity_Problem(t *testing.T) {
	for s, want := range map[Severity]bool{
		SeverityPass:    false,
		SeverityInfo:    false,
		SeverityWarning: true,
		SeverityError:   true,
	} {
		if got := s.Problem(); got != want {
			t.Errorf("%v.Problem() = %v, want %v", s, got, want)
		}
	}
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/config"
	"github.com/thoreinstein/plinks/internal/doctor"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
	"github.com/thoreinstein/plinks/internal/paths"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and cache issues",
	Long: `Run diagnostic checks on the plinks configuration, the browser
profile registries and the installation cache.

Output modes:
  (default)   Show errors and warnings
  -v          Show all checks including passed ones
  -q          No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Check everything
  plinks doctor

  # Include passing checks
  plinks doctor -v

  See Also: plinks scan, plinks init`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	report := newDoctorRunner(ctx).Run(ctx)

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

// newDoctorRunner registers the checks for the current configuration.
func newDoctorRunner(ctx context.Context) *doctor.Runner {
	c := currentConfig()
	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigCheck(cfg, config.UsedFile(), configLoadErr))

	resolver := c.Resolver(logging.FromContext(ctx))
	for _, family := range paths.Families() {
		runner.AddCheck(doctor.NewRegistryCheck(resolver, family))
	}

	if path, err := c.CachePath(); err == nil {
		runner.AddCheck(doctor.NewCacheCheck(path))
		runner.AddCheck(doctor.NewInstallationCheck(path))
	} else {
		logging.FromContext(ctx).Warn("cache location unavailable; skipping cache checks", "error", err)
	}
	return runner
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	if quiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(w, report)
	}

	return outputDoctorText(w, report)
}

func outputDoctorJSON(w io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return errors.Wrap(err, "encoding JSON")
	}
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.Report) error {
	// Normal mode shows only errors and warnings
	showAll := verbosity > 0

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status.Problem()
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	if report.Incomplete {
		fmt.Fprintln(w, "Interrupted before all checks ran")
	}

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("warnings found")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("errors found")

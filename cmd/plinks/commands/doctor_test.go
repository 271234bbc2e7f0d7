package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/plinks/internal/doctor"
	"github.com/thoreinstein/plinks/internal/errors"
)

func setupDoctor(t *testing.T, asJSON bool) {
	t.Helper()
	origJSON, origLoadErr, origVerbosity := doctorJSON, configLoadErr, verbosity
	t.Cleanup(func() {
		doctorJSON, configLoadErr, verbosity = origJSON, origLoadErr, origVerbosity
	})
	doctorJSON = asJSON
	configLoadErr = nil
	verbosity = 0
}

func TestRunDoctor_EmptyCache(t *testing.T) {
	env := setupEnv(t)
	setupDoctor(t, false)

	err := runDoctor(env.command(t), nil)

	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, errors.ExitUser, exitErr.Code)
	require.Contains(t, env.out.String(), "hint: run: plinks scan")
	require.Contains(t, env.out.String(), "Summary:")
}

func TestRunDoctor_ConfigLoadError(t *testing.T) {
	env := setupEnv(t)
	setupDoctor(t, false)
	configLoadErr = errors.New("yaml: line 2: mapping values are not allowed")

	err := runDoctor(env.command(t), nil)

	var exitErr *errors.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, errors.ExitSystem, exitErr.Code)
	require.Contains(t, env.out.String(), "[config] config:")
}

func TestRunDoctor_JSON(t *testing.T) {
	env := setupEnv(t)
	setupDoctor(t, true)
	ff := env.browserDir(t, "firefox", "firefox")
	require.NoError(t, runScan(env.command(t), []string{ff}))
	env.out.Reset()

	_ = runDoctor(env.command(t), nil)

	require.Contains(t, env.out.String(), `"status": "pass"`)

	var report doctor.Report
	require.NoError(t, json.Unmarshal(env.out.Bytes(), &report))
	require.Len(t, report.Results, 5)

	byName := make(map[string]*doctor.CheckResult)
	for _, r := range report.Results {
		byName[r.Name] = r
	}
	require.Equal(t, doctor.SeverityPass, byName["registry-firefox"].Status)
	require.Equal(t, doctor.SeverityPass, byName["cache"].Status)
	// the registry points at profile directories that were never created
	require.Equal(t, doctor.SeverityWarning, byName["installations"].Status)
}

func TestRunDoctor_Quiet(t *testing.T) {
	env := setupEnv(t)
	setupDoctor(t, false)
	quiet = true

	_ = runDoctor(env.command(t), nil)
	require.Empty(t, strings.TrimSpace(env.out.String()))
}

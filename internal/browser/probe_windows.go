//go:build windows

package browser

import (
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"
)

// DefaultVersionProbe asks PowerShell for the InternalName resource of firefox.exe.
var DefaultVersionProbe VersionProbe = powershellProbe

func powershellProbe(ctx context.Context, installDir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command",
		`(Get-Item .\firefox.exe).VersionInfo.InternalName`)
	cmd.Dir = installDir
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrap(err, "running powershell version probe")
	}
	return out, nil
}

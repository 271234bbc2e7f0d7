// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// Editor opens files in an external editor attached to the given streams.
type Editor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Run executes the prepared command. Nil runs it and waits.
	Run func(*exec.Cmd) error
}

// New returns an Editor attached to the process streams.
func New() *Editor {
	return &Editor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Open edits path and waits for the editor to exit.
func (e *Editor) Open(ctx context.Context, path string) error {
	cmd := e.Command(ctx, path)
	run := e.Run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		return errors.Wrapf(err, "running editor %s", cmd.Path)
	}
	return nil
}

// Command builds the editor invocation for path. $EDITOR and $VISUAL may
// carry arguments, e.g. "code --wait".
func (e *Editor) Command(ctx context.Context, path string) *exec.Cmd {
	fields := strings.Fields(detectEditor())
	args := append(fields[1:], path)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	return cmd
}

// detectEditor returns the editor command to use based on environment variables
// and available binaries. Fallback chain: $EDITOR → $VISUAL → nano → vi
// (notepad on Windows).
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}

	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}

	if runtime.GOOS == "windows" {
		return "notepad"
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}

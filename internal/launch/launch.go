// Package launch starts a browser for a finished selection without
// waiting for it.
package launch

import (
	"context"
	"os/exec"

	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
	"github.com/thoreinstein/plinks/internal/selection"
)

// Starter starts a prepared command.
type Starter interface {
	Start(cmd *exec.Cmd) error
}

// StarterFunc adapts a function to a Starter.
type StarterFunc func(cmd *exec.Cmd) error

// Start calls f(cmd).
func (f StarterFunc) Start(cmd *exec.Cmd) error {
	return f(cmd)
}

// detachedStarter starts the process and releases it.
type detachedStarter struct{}

func (detachedStarter) Start(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Launcher starts descriptors through a Starter.
type Launcher struct {
	Starter Starter
}

// Start launches desc with the default detached starter.
func Start(ctx context.Context, desc *selection.Descriptor) error {
	return (&Launcher{}).Start(ctx, desc)
}

// Command builds the detached command for desc.
func Command(desc *selection.Descriptor) *exec.Cmd {
	// Not CommandContext: the browser must outlive plinks.
	cmd := exec.Command(desc.Executable, desc.Args()...)
	detach(cmd)
	return cmd
}

// Start launches desc and returns once the process has started.
func (l *Launcher) Start(ctx context.Context, desc *selection.Descriptor) error {
	if desc == nil {
		return errors.New("nothing to launch")
	}

	starter := l.Starter
	if starter == nil {
		starter = detachedStarter{}
	}

	cmd := Command(desc)
	logging.FromContext(ctx).Info("launching browser",
		"executable", desc.Executable, "profile", desc.Profile.Name, "uri", desc.URI)

	if err := starter.Start(cmd); err != nil {
		return errors.Wrapf(err, "starting %s", desc.Executable)
	}
	return nil
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
	"github.com/thoreinstein/plinks/internal/selection"
)

// runOpen prompts for a browser, launches it on uri and saves the memo.
func runOpen(cmd *cobra.Command, uri string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	c, path, err := loadCache(ctx)
	if err != nil {
		return err
	}
	writeLastURL(ctx, path, uri)

	engine := &selection.Engine{
		Prompter: newPrompter(currentConfig().Prompt),
		Logger:   logger,
	}
	desc, err := engine.Run(ctx, uri, &c.Installations)
	if err != nil {
		if errors.Is(err, errors.ErrNoInstallations) {
			return errors.NewUserError(err, "Run: plinks scan")
		}
		return errors.NewSystemError(err, "")
	}
	if desc == nil {
		return nil
	}

	if err := launcher.Start(ctx, desc); err != nil {
		return errors.NewSystemError(err, "Check that "+desc.Executable+" still exists, then run: plinks scan")
	}

	return saveCache(path, c)
}

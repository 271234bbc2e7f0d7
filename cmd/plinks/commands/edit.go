package commands

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/config"
	"github.com/thoreinstein/plinks/internal/editor"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/paths"
)

// newEditor is replaced in tests.
var newEditor = editor.New

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in your editor",
	Long: `Open config.yaml in $EDITOR (or $VISUAL).

The file loaded at startup is opened; without one the default location
is used. Run plinks init first if it does not exist yet.`,
	Example: `  # Edit the configuration
  plinks edit

  # Use a specific editor
  EDITOR="code --wait" plinks edit

  See Also: plinks init, plinks doctor`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := config.UsedFile()
		if path == "" {
			path = paths.ConfigFile()
		}
		return runEdit(cmd, path)
	},
}

func runEdit(cmd *cobra.Command, configPath string) error {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return errors.NewUserError(
			errors.Newf("no configuration at %s", configPath),
			"Run: plinks init",
		)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", configPath)

	ed := newEditor()
	ed.Stdout = cmd.OutOrStdout()
	if err := ed.Open(cmd.Context(), configPath); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
	}
	return nil
}

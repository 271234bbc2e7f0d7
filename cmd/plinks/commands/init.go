package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/backup"
	"github.com/thoreinstein/plinks/internal/config"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/paths"
	"github.com/thoreinstein/plinks/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize plinks configuration",
	Long: `Create ~/.config/plinks/config.yaml with default settings.

Edit the file to add scan paths, registry file overrides or custom
browsers, then run plinks scan. With --force the existing file is
saved first and can be brought back with plinks backup restore config.`,
	Example: `  # Create the default configuration
  plinks init

  # Force overwrite existing configuration
  plinks init --force

  See Also: plinks scan`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInit(cmd, paths.ConfigFile())
	},
}

func runInit(cmd *cobra.Command, configPath string) error {
	w := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(w, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(w, "Use --force to overwrite")
		return nil
	}
	snapshot(cmd.Context(), backup.TargetConfig, configPath)

	if err := paths.EnsureDir(filepath.Dir(configPath), 0); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "")
	}
	if err := fileutil.AtomicWriteYAML(configPath, config.Default(), 0o644); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "writing config file"), "")
	}

	fmt.Fprintf(w, "Created %s\n", configPath)
	return nil
}

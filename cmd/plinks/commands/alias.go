package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/errors"
)

func init() {
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
	rootCmd.AddCommand(aliasCmd)
}

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage alternative executables of an installation",
	Long: `Manage alias executables. An alias is another launcher in the same
directory as an installation's primary executable, such as a wrapper
script. Aliases are offered when choosing an executable.`,
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <installation> <path>",
	Short: "Add an alias executable",
	Example: `  plinks alias add Firefox /opt/firefox/firefox-wayland

  See Also: plinks list`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlias(cmd, args[0], args[1], true)
	},
}

var aliasRemoveCmd = &cobra.Command{
	Use:     "remove <installation> <path>",
	Aliases: []string{"rm"},
	Short:   "Remove an alias executable",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAlias(cmd, args[0], args[1], false)
	},
}

// runAlias adds or removes path on the installation named by key, which
// may be a display name or the primary executable.
func runAlias(cmd *cobra.Command, key, path string, add bool) error {
	c, cacheFile, err := loadCache(cmd.Context())
	if err != nil {
		return err
	}

	inst, ok := c.Find(key)
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "installation %q", key),
			"Run: plinks list")
	}

	w := cmd.OutOrStdout()
	if add {
		added, err := inst.AddAlias(path)
		if err != nil {
			return errors.NewUserError(err, "Aliases must live next to "+inst.ExePath)
		}
		if !added {
			fmt.Fprintf(w, "%s is the primary executable of %s\n", path, inst.DisplayName())
			return nil
		}
		fmt.Fprintf(w, "Added alias %s to %s\n", path, inst.DisplayName())
	} else {
		if !inst.RemoveAlias(path) {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrNotFound, "alias %q of %s", path, inst.DisplayName()),
				"Run: plinks list")
		}
		// Forget memos that pointed at the removed alias.
		abs, _ := filepath.Abs(path)
		for profile, exe := range inst.Preferred {
			if exe == path || exe == abs {
				delete(inst.Preferred, profile)
			}
		}
		fmt.Fprintf(w, "Removed alias %s from %s\n", path, inst.DisplayName())
	}

	return saveCache(cacheFile, c)
}

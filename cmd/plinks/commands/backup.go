package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/backup"
	"github.com/thoreinstein/plinks/internal/errors"
)

func init() {
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "List and restore saved copies of the config and cache",
	Long: `plinks saves the config file before init --force overwrites it and
the cache before every scan. The newest five copies of each are kept
beside the cache.`,
}

var backupListCmd = &cobra.Command{
	Use:       "list [config|cache]",
	Short:     "List saved copies",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{backup.TargetConfig, backup.TargetCache},
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := []string{backup.TargetConfig, backup.TargetCache}
		if len(args) == 1 {
			targets = args
		}
		return runBackupList(cmd, targets)
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <config|cache> [id]",
	Short: "Restore a saved copy, the newest by default",
	Example: `  # Undo the last init --force
  plinks backup restore config

  # Restore a specific cache snapshot
  plinks backup restore cache 20260123T100712

  See Also: plinks backup list`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := ""
		if len(args) == 2 {
			id = args[1]
		}
		return runBackupRestore(cmd, args[0], id)
	},
}

func runBackupList(cmd *cobra.Command, targets []string) error {
	mgr, err := backupManager()
	if err != nil {
		return err
	}

	var rows []backup.Manifest
	for _, target := range targets {
		list, err := mgr.List(target)
		if errors.Is(err, backup.ErrNoBackupsFound) {
			continue
		}
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		rows = append(rows, list...)
	}

	w := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(w, "No backups found.")
		return nil
	}
	return outputBackupList(w, rows)
}

func outputBackupList(w io.Writer, rows []backup.Manifest) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tID\tCREATED\tFILE")
	for _, m := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.Target, m.ID, m.CreatedAt.Local().Format(time.DateTime), m.File.OriginalPath)
	}
	return tw.Flush()
}

func runBackupRestore(cmd *cobra.Command, target, id string) error {
	if target != backup.TargetConfig && target != backup.TargetCache {
		return errors.NewUserError(errors.Newf("unknown backup target %q", target), "Use config or cache")
	}

	mgr, err := backupManager()
	if err != nil {
		return err
	}

	if id == "" {
		latest, err := mgr.Latest(target)
		if err != nil {
			return errors.NewUserError(err, "Run: plinks backup list")
		}
		id = latest.ID
	}

	restored, err := mgr.Restore(target, id)
	switch {
	case errors.Is(err, backup.ErrNoBackupsFound):
		return errors.NewUserError(err, "Run: plinks backup list")
	case err != nil:
		return errors.NewSystemError(err, "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from backup %s\n", restored.File.OriginalPath, restored.ID)
	return nil
}

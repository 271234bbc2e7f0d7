package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/backup"
	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/cache"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir...]",
	Short: "Rediscover browser installations",
	Long: `Scan directories for supported browsers and rebuild the cache.

Without arguments, scans the platform's usual install locations plus
scan_paths from the config. The cache is rebuilt from the scanned
directories only. Names, aliases and remembered executables of
installations that are still present are kept. The previous cache is
saved first; see plinks backup.`,
	Example: `  # Rescan the default locations
  plinks scan

  # Scan a portable install
  plinks scan /mnt/usb/LibreWolfPortable

  See Also: plinks list, plinks alias`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args)
	},
}

// runScan discovers installations in dirs, or the default locations when
// dirs is empty, and merges them with the cache.
func runScan(cmd *cobra.Command, dirs []string) error {
	ctx := cmd.Context()

	if len(dirs) == 0 {
		dirs = browser.DefaultSearchDirs(currentConfig().ScanPaths...)
	}

	opts, err := discoveryOptions(ctx)
	if err != nil {
		return err
	}

	prev, path, err := loadCache(ctx)
	if err != nil {
		return err
	}

	fresh := browser.Discover(ctx, dirs, opts)
	c := cache.New()
	c.Installations = browser.Regenerate(prev.Installations, fresh)

	snapshot(ctx, backup.TargetCache, path)
	if err := saveCache(path, c); err != nil {
		return err
	}

	if !quiet {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Found %d installation(s) in %d director(ies)\n", len(c.Installations), len(dirs))
		for i := range c.Installations {
			fmt.Fprintf(w, "  %s\n", c.Installations[i].String())
		}
		fmt.Fprintf(w, "Cache written to %s\n", path)
	}
	return nil
}

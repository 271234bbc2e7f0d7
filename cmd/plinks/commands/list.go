package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached browser installations",
	Long: `List the installations in the cache with their profiles,
aliases and remembered executables.`,
	Example: `  # Show installations
  plinks list

  # JSON output for scripting
  plinks list --json

  See Also: plinks scan, plinks alias`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		c, _, err := loadCache(ctx)
		if err != nil {
			return err
		}
		running := runningSet(ctx)
		if listJSON {
			return outputListJSON(cmd.OutOrStdout(), c.Installations, running)
		}
		return outputListTabular(cmd.OutOrStdout(), c.Installations, running)
	},
}

type installationJSON struct {
	Name       string            `json:"name"`
	Kind       browser.KindID    `json:"kind"`
	Executable string            `json:"executable"`
	Aliases    []string          `json:"aliases,omitempty"`
	Icon       string            `json:"icon,omitempty"`
	Profiles   []profileJSON     `json:"profiles"`
	Preferred  map[string]string `json:"preferred,omitempty"`
	LastUsed   string            `json:"last_used,omitempty"`
	Running    bool              `json:"running"`
}

type profileJSON struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Open bool   `json:"open"`
}

// runningSet lists running processes. Failures only hide the running marker.
func runningSet(ctx context.Context) browser.RunningSet {
	exes, err := processExecutables(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug("could not list processes", "error", err)
		return nil
	}
	return browser.NewRunningSet(exes)
}

func outputListJSON(w io.Writer, insts []browser.Installation, running browser.RunningSet) error {
	out := make([]installationJSON, 0, len(insts))
	for i := range insts {
		inst := &insts[i]
		j := installationJSON{
			Name:       inst.DisplayName(),
			Kind:       inst.Kind.ID(),
			Executable: inst.ExePath,
			Aliases:    inst.Aliases,
			Icon:       inst.Icon(),
			Preferred:  inst.Preferred,
			Running:    inst.Running(running),
		}
		for _, p := range inst.Profiles {
			j.Profiles = append(j.Profiles, profileJSON{Name: p.Name, Path: p.Path, Open: p.IsOpen()})
		}
		if inst.LastUsed != nil {
			j.LastUsed = inst.LastUsed.Name
		}
		out = append(out, j)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(out), "encoding installations")
}

func outputListTabular(w io.Writer, insts []browser.Installation, running browser.RunningSet) error {
	if len(insts) == 0 {
		fmt.Fprintln(w, "No installations cached.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Discover installations with:")
		fmt.Fprintln(w, "  plinks scan")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n", bold("NAME"), bold("KIND"), bold("EXECUTABLE"))
	for i := range insts {
		inst := &insts[i]
		name := green(inst.DisplayName())
		if inst.Running(running) {
			name += " (running)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, inst.Kind.ID(), inst.ExePath)
		for _, alias := range inst.Aliases {
			fmt.Fprintf(tw, "\t\t%s\n", gray("alias "+alias))
		}
		for _, p := range inst.Profiles {
			marker := ""
			if p.IsOpen() {
				marker = " (open)"
			}
			if exe, ok := inst.PreferredFor(p.Path); ok {
				marker += " -> " + exe
			}
			fmt.Fprintf(tw, "\t%s\t%s\n", "profile "+p.Name+marker, gray(p.Path))
		}
	}
	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

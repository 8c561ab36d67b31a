// Package prunecmder provides the prune command, which removes bookmarks whose
// directories no longer exist.
package prunecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
)

const pruneLongDesc string = `Remove stale bookmarks.

Lists every bookmark whose directory no longer exists and, after
confirmation, removes them all in one write. Bookmarks that still resolve are
never touched.

Examples:
  jumpmap prune             Review and confirm
  jumpmap prune --yes       Remove without asking
  jumpmap prune --dry-run   Only show what would be removed`

const pruneShortDesc string = "Remove bookmarks whose directory is gone"

type PruneCommander struct {
	yes    bool
	dryRun bool
}

func NewPruneCmd() *cobra.Command {
	cmder := &PruneCommander{}

	cmd := &cobra.Command{
		Use:   "prune",
		Short: pruneShortDesc,
		Long:  pruneLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := deps.Resolve(cmd)
			if err != nil {
				return err
			}
			return cmder.run(cmd, d)
		},
	}

	cmd.Flags().BoolVarP(&cmder.yes, "yes", "y", false, "Remove without asking for confirmation")
	cmd.Flags().BoolVar(&cmder.dryRun, "dry-run", false, "Show stale bookmarks without removing them")

	return cmd
}

func (c *PruneCommander) run(cmd *cobra.Command, d *deps.Dependencies) error {
	out := cmd.OutOrStdout()
	theme := d.Theme(out)

	stale, err := d.Jumper.Stale()
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		fmt.Fprintln(out, theme.Dim("no stale bookmarks"))
		return nil
	}

	for _, line := range theme.FormatEntries(stale) {
		fmt.Fprintln(out, line)
	}

	if c.dryRun {
		return nil
	}

	if !c.yes {
		ok, err := d.Confirm(fmt.Sprintf("Remove %s?", plural(len(stale))))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, theme.Dim("nothing removed"))
			return nil
		}
	}

	removed, err := d.Jumper.Prune()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "removed %s\n", plural(len(removed)))
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "1 stale bookmark"
	}
	return fmt.Sprintf("%d stale bookmarks", n)
}

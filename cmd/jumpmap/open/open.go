// Package opencmder provides the open command, which shows a bookmarked
// directory in the operating system's file manager.
package opencmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
)

const openLongDesc string = `Open a bookmarked directory in the file manager.

Uses the platform opener (open on macOS, xdg-open on Linux, explorer on
Windows). The shell's working directory is not changed.

Examples:
  jumpmap open work`

const openShortDesc string = "Open a bookmark in the file manager"

func NewOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "open <alias>",
		Short:             openShortDesc,
		Long:              openLongDesc,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deps.CompleteAliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps.Resolve(cmd)
			if err != nil {
				return err
			}

			// Jump on a copy: the same NotFound/StaleTarget checks apply
			// but the command's own session stays put.
			path, err := d.Jumper.Jump(d.Session.Clone(), args[0])
			if err != nil {
				return err
			}

			if err := d.Open(path); err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}

			d.Logger.Debug("opened bookmark", "alias", args[0], "path", path)
			return nil
		},
	}

	return cmd
}

// Package deljumpcmder provides the deljump command.
package deljumpcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
)

const deljumpLongDesc string = `Remove a bookmark.

Deletes the alias from the bookmark file. The directory itself is untouched.

Examples:
  jumpmap deljump work`

const deljumpShortDesc string = "Remove a bookmark"

func NewDeljumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "deljump <alias>",
		Short:             deljumpShortDesc,
		Long:              deljumpLongDesc,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deps.CompleteAliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps.Resolve(cmd)
			if err != nil {
				return err
			}

			alias := args[0]
			path, err := d.Jumper.Remove(alias)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			theme := d.Theme(out)
			fmt.Fprintf(out, "removed %s %s\n", theme.Alias(alias), theme.Dim("(was "+path+")"))
			return nil
		},
	}

	return cmd
}

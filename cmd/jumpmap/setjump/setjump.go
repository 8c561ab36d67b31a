// Package setjumpcmder provides the setjump command, which bookmarks the
// current directory under an alias.
package setjumpcmder

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
	"github.com/papercomputeco/jumpmap/pkg/jumper"
)

const setjumpLongDesc string = `Bookmark the current directory.

Stores the absolute path of the working directory under the given alias.
Bookmarking the same directory again changes nothing. If the alias already
points somewhere else, a warning is logged and the bookmark is moved here.

Aliases are case-sensitive and may not contain whitespace or path separators.

Examples:
  jumpmap setjump work
  jumpmap setjump dl`

const setjumpShortDesc string = "Bookmark the current directory"

func NewSetjumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "setjump <alias>",
		Short:             setjumpShortDesc,
		Long:              setjumpLongDesc,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: deps.CompleteAliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps.Resolve(cmd)
			if err != nil {
				return err
			}
			return runSetjump(d, cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func runSetjump(d *deps.Dependencies, out io.Writer, alias string) error {
	result, err := d.Jumper.Set(d.Session, alias)
	if err != nil {
		return err
	}

	theme := d.Theme(out)
	switch result.Status {
	case jumper.SetUnchanged:
		fmt.Fprintf(out, "%s already bookmarked here (%s)\n", theme.Alias(result.Alias), theme.Path(result.Path))
	case jumper.SetOverwritten:
		fmt.Fprintf(out, "bookmarked %s -> %s %s\n",
			theme.Alias(result.Alias),
			theme.Path(result.Path),
			theme.Dim("(was "+result.Previous+")"),
		)
	default:
		fmt.Fprintf(out, "bookmarked %s -> %s\n", theme.Alias(result.Alias), theme.Path(result.Path))
	}
	return nil
}

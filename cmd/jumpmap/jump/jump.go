// Package jumpcmder provides the jump command: list bookmarks, or resolve one
// and print its directory for the shell wrapper to cd into.
package jumpcmder

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/picker"
)

// EmptyHint is printed when there are no bookmarks to list.
const EmptyHint = "no bookmarks; use setjump <alias> to add one"

const jumpLongDesc string = `Jump to a bookmarked directory.

With an alias, prints the bookmarked directory on stdout. The shell functions
installed by "jumpmap init" cd into it; run on its own, the binary cannot
change your shell's directory.

Without an alias, lists every bookmark sorted by alias. Bookmarks whose
directory no longer exists are flagged with the missing marker.

Examples:
  jumpmap jump              List bookmarks
  jumpmap jump work         Print the directory bookmarked as "work"
  jumpmap jump --match 'w*' List bookmarks whose alias matches a glob
  jumpmap jump --pick       Choose a bookmark interactively`

const jumpShortDesc string = "Jump to a bookmark, or list them"

type JumpCommander struct {
	match string
	pick  bool
}

func NewJumpCmd() *cobra.Command {
	cmder := &JumpCommander{}

	cmd := &cobra.Command{
		Use:               "jump [alias]",
		Short:             jumpShortDesc,
		Long:              jumpLongDesc,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: deps.CompleteAliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := deps.Resolve(cmd)
			if err != nil {
				return err
			}

			switch {
			case len(args) == 1:
				if cmder.pick || cmder.match != "" {
					return errors.New("an alias cannot be combined with --pick or --match")
				}
				return cmder.runJump(d, cmd.OutOrStdout(), args[0])
			case cmder.pick:
				return cmder.runPick(cmd, d)
			default:
				return cmder.runList(d, cmd.OutOrStdout())
			}
		},
	}

	cmd.Flags().StringVarP(&cmder.match, "match", "m", "", "Only list aliases matching a glob pattern")
	cmd.Flags().BoolVarP(&cmder.pick, "pick", "p", false, "Choose a bookmark interactively")

	return cmd
}

func (c *JumpCommander) runJump(d *deps.Dependencies, out io.Writer, alias string) error {
	path, err := d.Jumper.Jump(d.Session, alias)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, path)
	return nil
}

func (c *JumpCommander) runList(d *deps.Dependencies, out io.Writer) error {
	entries, err := d.Jumper.List(c.match)
	if err != nil {
		return err
	}

	theme := d.Theme(out)
	if len(entries) == 0 {
		if c.match != "" {
			fmt.Fprintln(out, theme.Dim(fmt.Sprintf("no bookmarks match %q", c.match)))
			return nil
		}
		fmt.Fprintln(out, theme.Dim(EmptyHint))
		return nil
	}

	for _, line := range theme.FormatEntries(entries) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// runPick draws the picker on stderr so stdout carries only the chosen path.
func (c *JumpCommander) runPick(cmd *cobra.Command, d *deps.Dependencies) error {
	entries, err := d.Jumper.List(c.match)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	if len(entries) == 0 {
		fmt.Fprintln(errOut, EmptyHint)
		return nil
	}

	chosen, err := d.Pick(entries, d.Theme(errOut), cmd.InOrStdin(), errOut)
	if errors.Is(err, picker.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	if !chosen.Exists {
		return bookmark.StaleTargetError{Alias: chosen.Alias, Path: chosen.Path}
	}
	return c.runJump(d, cmd.OutOrStdout(), chosen.Alias)
}

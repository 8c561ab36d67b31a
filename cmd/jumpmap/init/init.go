// Package initcmder provides the init command, which prints the shell
// integration script for a given shell.
package initcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
	"github.com/papercomputeco/jumpmap/pkg/shell"
)

const initLongDesc string = `Print shell integration.

Prints jump, setjump and deljump shell functions plus alias completion for
the given shell. The functions are what actually change your directory; load
them from your shell's startup file:

  bash        eval "$(jumpmap init bash)"
  zsh         eval "$(jumpmap init zsh)"
  fish        jumpmap init fish | source
  powershell  Invoke-Expression (& jumpmap init powershell | Out-String)

Without a shell, shows a setup guide.`

const initShortDesc string = "Print shell integration"

type InitCommander struct {
	bin string
}

func NewInitCmd() *cobra.Command {
	cmder := &InitCommander{}

	cmd := &cobra.Command{
		Use:       "init [shell]",
		Short:     initShortDesc,
		Long:      initLongDesc,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shell.Supported(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				script, err := shell.Script(args[0], cmder.bin)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), script)
				return nil
			}
			return cmder.runGuide(cmd)
		},
	}

	cmd.Flags().StringVar(&cmder.bin, "bin", shell.DefaultBin, "Command the shell functions invoke")

	return cmd
}

func (c *InitCommander) runGuide(cmd *cobra.Command) error {
	d, err := deps.Resolve(cmd)
	if err != nil {
		return err
	}

	guide, err := shell.Guide(c.bin, d.Jumper.Store().Location())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rendered, err := d.Theme(out).RenderMarkdown(guide)
	if err != nil {
		d.Logger.Debug("rendering guide failed, printing markdown", "error", err)
	}
	fmt.Fprint(out, strings.TrimLeft(rendered, "\n"))
	return nil
}

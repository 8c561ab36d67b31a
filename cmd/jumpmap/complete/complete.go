// Package completecmder provides the hidden complete command used by the
// shell scripts from "jumpmap init". It prints one "alias<TAB>path" line per
// bookmark whose alias starts with the given prefix.
package completecmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
)

func NewCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "complete [prefix]",
		Short:  "Print alias completions for shell integrations",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Completion must never break the shell; failures print nothing.
			d, err := deps.Resolve(cmd)
			if err != nil {
				return nil
			}

			prefix := ""
			if len(args) == 1 {
				prefix = args[0]
			}

			out := cmd.OutOrStdout()
			for _, c := range d.Jumper.Complete(prefix) {
				fmt.Fprintf(out, "%s\t%s\n", c.Alias, c.Path)
			}
			return nil
		},
	}

	return cmd
}

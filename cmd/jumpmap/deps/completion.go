package deps

import (
	"github.com/spf13/cobra"
)

// CompleteAliases is the ValidArgsFunction shared by alias-taking commands.
// Each candidate is "alias\tpath" so shells show the target as a description.
func CompleteAliases(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	d, err := Resolve(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	candidates := d.Jumper.Complete(toComplete)
	completions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		completions = append(completions, c.Alias+"\t"+c.Path)
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

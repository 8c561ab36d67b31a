// Package configcmder provides the config command for managing persistent
// jumpmap configuration stored in config.toml.
package configcmder

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/jumpmap/pkg/cliui"
	"github.com/papercomputeco/jumpmap/pkg/config"
)

const configLongDesc string = `Manage persistent jumpmap configuration.

Configuration is stored as config.toml in $XDG_CONFIG_HOME/jumpmap (or
~/.config/jumpmap) and provides defaults for command flags. CLI flags and
JUMPMAP_* environment variables take precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  store.path,
  display.exists_marker, display.missing_marker, display.color,
  log.format

Use subcommands to get, set, or list configuration values:
  jumpmap config set <key> <value>    Set a configuration value
  jumpmap config get <key>            Get a configuration value
  jumpmap config list                 List all configuration values

Examples:
  jumpmap config set store.path ~/Dropbox/jumpmap.json
  jumpmap config set display.color never
  jumpmap config get store.path
  jumpmap config list`

const configShortDesc string = "Manage persistent jumpmap configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// theme styles config output with the saved display settings.
func theme(w io.Writer, cfger *config.Configer) *cliui.Theme {
	cfg, err := cfger.LoadConfig()
	if err != nil {
		cfg = config.NewDefaultConfig()
	}
	return cliui.NewTheme(w, cfg.Display)
}

func printTarget(w io.Writer, t *cliui.Theme, cfger *config.Configer) {
	target := cfger.GetTarget()
	if target != "" {
		fmt.Fprintf(w, "\n  %s %s\n\n", t.Key("Config file:"), t.Dim(target))
		return
	}
	fmt.Fprintf(w, "\n  %s\n\n", t.Dim("No config file found. Using defaults."))
}

// Package jumpmapcmder
package jumpmapcmder

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	completecmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/complete"
	configcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/config"
	deljumpcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/deljump"
	initcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/init"
	jumpcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/jump"
	opencmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/open"
	prunecmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/prune"
	setjumpcmder "github.com/papercomputeco/jumpmap/cmd/jumpmap/setjump"
	versioncmder "github.com/papercomputeco/jumpmap/cmd/version"
	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/config"
)

const jumpmapLongDesc string = `jumpmap bookmarks directories under short aliases.

  setjump <alias>    Bookmark the current directory
  jump <alias>       Go to a bookmark
  jump               List bookmarks
  deljump <alias>    Remove a bookmark

Changing directory needs the shell functions printed by "jumpmap init <shell>".
Bookmarks are kept in ~/.jumpmap.json unless --store or store.path says
otherwise.`

const jumpmapShortDesc string = "jumpmap - directory bookmarks"

// Exit codes returned by the binary.
const (
	ExitOK          = 0
	ExitError       = 1
	ExitPersistence = 2
)

// multiCall lists the subcommands the binary runs directly when invoked
// through a link of the same name.
var multiCall = []string{"jump", "setjump", "deljump"}

func NewJumpmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jumpmap",
		Short:         jumpmapShortDesc,
		Long:          jumpmapLongDesc,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory holding config.toml")
	config.AddPersistentStringFlag(cmd, config.GlobalFlags, config.FlagStore)
	config.AddPersistentStringFlag(cmd, config.GlobalFlags, config.FlagColor)
	config.AddPersistentStringFlag(cmd, config.GlobalFlags, config.FlagLogFormat)

	// Add subcommands
	cmd.AddCommand(jumpcmder.NewJumpCmd())
	cmd.AddCommand(setjumpcmder.NewSetjumpCmd())
	cmd.AddCommand(deljumpcmder.NewDeljumpCmd())
	cmd.AddCommand(prunecmder.NewPruneCmd())
	cmd.AddCommand(opencmder.NewOpenCmd())
	cmd.AddCommand(completecmder.NewCompleteCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}

// DispatchArgs turns a process argv into command arguments. When the binary
// runs under the name of a bookmark subcommand (a jump, setjump or deljump
// link), that subcommand is prepended.
func DispatchArgs(argv []string) []string {
	if len(argv) == 0 {
		return []string{}
	}

	name := strings.TrimSuffix(filepath.Base(argv[0]), ".exe")
	for _, sub := range multiCall {
		if name == sub {
			return append([]string{sub}, argv[1:]...)
		}
	}
	return argv[1:]
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var perr *bookmark.PersistenceError
	if errors.As(err, &perr) {
		return ExitPersistence
	}
	return ExitError
}

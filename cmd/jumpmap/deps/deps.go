// Package deps builds the dependencies jumpmap commands share and carries
// them on the command context, so tests can inject in-memory stores and
// fake side effects.
package deps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/cli/browser"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/cliui"
	"github.com/papercomputeco/jumpmap/pkg/config"
	"github.com/papercomputeco/jumpmap/pkg/dotdir"
	"github.com/papercomputeco/jumpmap/pkg/jumper"
	"github.com/papercomputeco/jumpmap/pkg/logger"
	"github.com/papercomputeco/jumpmap/pkg/picker"
	"github.com/papercomputeco/jumpmap/pkg/session"
	"github.com/papercomputeco/jumpmap/pkg/storage/jsonfile"
)

// Dependencies holds everything a jumpmap command needs beyond its flags.
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Jumper  *jumper.Jumper
	Session *session.Session

	// Open shows a directory in the OS file manager.
	Open func(path string) error

	// Confirm asks a yes/no question on the terminal.
	Confirm func(title string) (bool, error)

	// Pick runs the interactive picker.
	Pick func(entries []bookmark.Entry, theme *cliui.Theme, in io.Reader, out io.Writer) (bookmark.Entry, error)
}

// Theme returns a theme for w using the configured display settings.
func (d *Dependencies) Theme(w io.Writer) *cliui.Theme {
	return cliui.NewTheme(w, d.Config.Display)
}

type contextKey struct{}

// WithDependencies returns a copy of ctx carrying d.
func WithDependencies(ctx context.Context, d *Dependencies) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext returns the dependencies stored on ctx, if any.
func FromContext(ctx context.Context) (*Dependencies, bool) {
	if ctx == nil {
		return nil, false
	}
	d, ok := ctx.Value(contextKey{}).(*Dependencies)
	return d, ok && d != nil
}

// Resolve returns the dependencies on cmd's context, building real ones from
// flags, environment and config.toml when none were injected.
func Resolve(cmd *cobra.Command) (*Dependencies, error) {
	if d, ok := FromContext(cmd.Context()); ok {
		return d, nil
	}
	return Build(cmd)
}

// Build wires real dependencies for cmd: viper-resolved config, a logger on
// stderr, the JSON file store and a session snapshot of the process.
func Build(cmd *cobra.Command) (*Dependencies, error) {
	sess, err := session.FromProcess()
	if err != nil {
		return nil, err
	}
	env := dotdir.WithEnv(sess.Getenv)

	configDir, _ := cmd.Flags().GetString("config-dir")
	v, err := config.InitViper(configDir, env)
	if err != nil {
		return nil, err
	}
	config.BindRegisteredFlags(v, cmd, config.GlobalFlags, []string{
		config.FlagStore,
		config.FlagColor,
		config.FlagLogFormat,
	})

	cfg, err := config.Resolved(v)
	if err != nil {
		return nil, fmt.Errorf("resolving config: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	log := NewLogger(cmd.ErrOrStderr(), cfg.Log.Format, debug)

	storePath, err := dotdir.NewManager(env).StorePath(cfg.Store.Path)
	if err != nil {
		return nil, err
	}

	store := jsonfile.NewDriver(storePath, jsonfile.WithLogger(log))
	log.Debug("resolved store", "path", storePath)

	return &Dependencies{
		Config:  cfg,
		Logger:  log,
		Jumper:  jumper.New(store, jumper.WithLogger(log)),
		Session: sess,
		Open:    browser.OpenFile,
		Confirm: confirm,
		Pick:    picker.Run,
	}, nil
}

// NewLogger builds the command logger for the given log.format value.
func NewLogger(w io.Writer, format string, debug bool) *slog.Logger {
	return logger.New(
		logger.WithWriter(w),
		logger.WithDebug(debug),
		logger.WithPretty(format == config.LogFormatPretty),
		logger.WithJSON(format == config.LogFormatJSON),
	)
}

var errNoTerminal = errors.New("confirmation needs a terminal; pass --yes to skip it")

func confirm(title string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errNoTerminal
	}

	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

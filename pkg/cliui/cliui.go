// Package cliui provides reusable terminal UI helpers (styles, bookmark
// listings, markdown rendering) for jumpmap CLI commands.
package cliui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/config"
)

// Theme renders jumpmap output for one writer.
type Theme struct {
	ExistsMarker  string
	MissingMarker string

	renderer *lipgloss.Renderer

	existsStyle  lipgloss.Style
	missingStyle lipgloss.Style
	aliasStyle   lipgloss.Style
	pathStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	keyStyle     lipgloss.Style
}

// NewTheme builds a theme for w from the display configuration. Color is
// decided by display.color: "always", "never", or "auto" (on when w is a
// terminal and NO_COLOR is unset).
func NewTheme(w io.Writer, display config.DisplayConfig) *Theme {
	r := lipgloss.NewRenderer(w)
	if UseColor(w, display.Color) {
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	t := &Theme{
		ExistsMarker:  display.ExistsMarker,
		MissingMarker: display.MissingMarker,
		renderer:      r,

		existsStyle:  r.NewStyle().Foreground(lipgloss.Color("82")),
		missingStyle: r.NewStyle().Foreground(lipgloss.Color("196")),
		aliasStyle:   r.NewStyle().Bold(true),
		pathStyle:    r.NewStyle().Foreground(lipgloss.Color("75")),
		dimStyle:     r.NewStyle().Foreground(lipgloss.Color("245")),
		keyStyle:     r.NewStyle().Foreground(lipgloss.Color("214")),
	}
	if t.ExistsMarker == "" {
		t.ExistsMarker = "✓"
	}
	if t.MissingMarker == "" {
		t.MissingMarker = "✗"
	}
	return t
}

// UseColor reports whether output to w should be colorized for mode.
func UseColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Marker returns the styled exists or missing marker.
func (t *Theme) Marker(exists bool) string {
	if exists {
		return t.existsStyle.Render(t.ExistsMarker)
	}
	return t.missingStyle.Render(t.MissingMarker)
}

// Renderer returns the lipgloss renderer bound to the theme's writer, for
// callers that build their own styles.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

func (t *Theme) Alias(s string) string { return t.aliasStyle.Render(s) }
func (t *Theme) Path(s string) string  { return t.pathStyle.Render(s) }
func (t *Theme) Dim(s string) string   { return t.dimStyle.Render(s) }
func (t *Theme) Key(s string) string   { return t.keyStyle.Render(s) }

// FormatEntries renders one line per bookmark:
//
//	<marker> <alias padded to the widest alias> -> <path>
func (t *Theme) FormatEntries(entries []bookmark.Entry) []string {
	width := 0
	for _, e := range entries {
		if w := ansi.StringWidth(e.Alias); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		padding := strings.Repeat(" ", width-ansi.StringWidth(e.Alias))
		lines = append(lines, t.Marker(e.Exists)+" "+t.Alias(e.Alias)+padding+" -> "+t.Path(e.Path))
	}
	return lines
}

// RenderMarkdown renders markdown content for terminal display using glamour.
// Styling follows the theme: plain ASCII when color is off.
func (t *Theme) RenderMarkdown(content string) (string, error) {
	style := glamour.WithAutoStyle()
	if t.renderer.ColorProfile() == termenv.Ascii {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content, err
	}

	return rendered, nil
}

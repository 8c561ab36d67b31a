// Package picker is an interactive bookmark chooser built on bubbletea.
// Typing filters aliases by prefix; enter picks the highlighted bookmark.
package picker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/cliui"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("no bookmark picked")

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Cancel key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Cancel}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
	Pick:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// Model is the bubbletea model behind Run. It is exported for tests.
type Model struct {
	entries  []bookmark.Entry
	filter   string
	visible  []bookmark.Entry
	cursor   int
	chosen   *bookmark.Entry
	quitting bool

	theme *cliui.Theme
	keys  keyMap
	help  help.Model

	promptStyle lipgloss.Style
	cursorStyle lipgloss.Style
}

// NewModel builds a picker over entries, which are expected sorted by alias.
func NewModel(entries []bookmark.Entry, theme *cliui.Theme) Model {
	// Styles come from the theme's renderer so they follow its writer and
	// display.color, not stdout.
	r := theme.Renderer()
	h := help.New()
	h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("241"))
	h.Styles.ShortSeparator = r.NewStyle().Foreground(lipgloss.Color("239"))
	h.Styles.Ellipsis = h.Styles.ShortSeparator

	m := Model{
		entries:     entries,
		theme:       theme,
		keys:        defaultKeys,
		help:        h,
		promptStyle: r.NewStyle().Foreground(lipgloss.Color("214")),
		cursorStyle: r.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
	}
	m.applyFilter()
	return m
}

// Chosen returns the picked entry, or nil when nothing was picked.
func (m Model) Chosen() *bookmark.Entry {
	return m.chosen
}

// Filter returns the current filter text.
func (m Model) Filter() string {
	return m.filter
}

// Visible returns the entries matching the current filter.
func (m Model) Visible() []bookmark.Entry {
	return m.visible
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Pick):
		if m.cursor < len(m.visible) && m.visible[m.cursor].Exists {
			picked := m.visible[m.cursor]
			m.chosen = &picked
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}
	case tea.KeyRunes:
		m.filter += string(keyMsg.Runes)
		m.applyFilter()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", m.promptStyle.Render("jump to:"), m.filter)

	if len(m.visible) == 0 {
		b.WriteString(m.theme.Dim("  no matching bookmarks") + "\n")
	}

	lines := m.theme.FormatEntries(m.visible)
	for i, line := range lines {
		cursor := "  "
		if i == m.cursor {
			cursor = m.cursorStyle.Render("> ")
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *Model) applyFilter() {
	m.visible = make([]bookmark.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if strings.HasPrefix(e.Alias, m.filter) {
			m.visible = append(m.visible, e)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

// Run shows the picker on in/out and returns the chosen entry. Output goes
// to out (typically stderr) so stdout stays free for the chosen path.
func Run(entries []bookmark.Entry, theme *cliui.Theme, in io.Reader, out io.Writer) (bookmark.Entry, error) {
	program := tea.NewProgram(NewModel(entries, theme),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return bookmark.Entry{}, fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Chosen() == nil {
		return bookmark.Entry{}, ErrCancelled
	}
	return *m.Chosen(), nil
}

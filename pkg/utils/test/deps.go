// Package testutils holds fakes shared by command tests.
package testutils

import (
	"bytes"
	"io"

	"github.com/papercomputeco/jumpmap/cmd/jumpmap/deps"
	"github.com/papercomputeco/jumpmap/pkg/bookmark"
	"github.com/papercomputeco/jumpmap/pkg/cliui"
	"github.com/papercomputeco/jumpmap/pkg/config"
	"github.com/papercomputeco/jumpmap/pkg/jumper"
	"github.com/papercomputeco/jumpmap/pkg/logger"
	"github.com/papercomputeco/jumpmap/pkg/session"
	"github.com/papercomputeco/jumpmap/pkg/storage/inmemory"
)

// Harness bundles injected dependencies with the fakes behind them.
type Harness struct {
	Deps   *deps.Dependencies
	Store  *inmemory.Driver
	Logs   *bytes.Buffer
	Opener *MockOpener
	Asker  *MockConfirmer
	Picker *MockPicker
}

// NewHarness builds dependencies over an in-memory store seeded with initial,
// with the session in dir and color disabled.
func NewHarness(initial bookmark.Map, dir string) *Harness {
	h := &Harness{
		Store:  inmemory.NewDriver(initial),
		Logs:   &bytes.Buffer{},
		Opener: &MockOpener{},
		Asker:  &MockConfirmer{},
		Picker: &MockPicker{},
	}

	cfg := config.NewDefaultConfig()
	cfg.Display.Color = config.ColorNever

	log := logger.New(logger.WithWriter(h.Logs), logger.WithDebug(true))

	h.Deps = &deps.Dependencies{
		Config:  cfg,
		Logger:  log,
		Jumper:  jumper.New(h.Store, jumper.WithLogger(log)),
		Session: session.New(dir),
		Open:    h.Opener.Open,
		Confirm: h.Asker.Confirm,
		Pick:    h.Picker.Pick,
	}
	return h
}

// MockOpener records paths instead of launching a file manager.
type MockOpener struct {
	Opened []string
	Err    error
}

func (m *MockOpener) Open(path string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Opened = append(m.Opened, path)
	return nil
}

// MockConfirmer answers confirmation prompts with Answer.
type MockConfirmer struct {
	Answer bool
	Err    error
	Asked  []string
}

func (m *MockConfirmer) Confirm(title string) (bool, error) {
	m.Asked = append(m.Asked, title)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Answer, nil
}

// MockPicker picks the entry named Alias, or returns Err.
type MockPicker struct {
	Alias string
	Err   error
	Shown []bookmark.Entry
}

func (m *MockPicker) Pick(entries []bookmark.Entry, _ *cliui.Theme, _ io.Reader, _ io.Writer) (bookmark.Entry, error) {
	m.Shown = entries
	if m.Err != nil {
		return bookmark.Entry{}, m.Err
	}
	for _, e := range entries {
		if e.Alias == m.Alias {
			return e, nil
		}
	}
	return bookmark.Entry{}, bookmark.NotFoundError{Alias: m.Alias}
}

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tally/internal/keybinds"
	"github.com/studiowebux/tally/internal/logging"
	"github.com/studiowebux/tally/internal/storage"
	"github.com/studiowebux/tally/internal/store"
	"github.com/studiowebux/tally/internal/types"
)

// Options configures a session
type Options struct {
	// Counters is the initial list, usually loaded from the snapshot
	Counters []types.Counter

	// Saver receives the full list after every mutating command.
	// Nil means an ephemeral session.
	Saver storage.Saver

	// Keybinds defaults to keybinds.NewDefaultRegistry()
	Keybinds *keybinds.Registry
}

// Model represents the TUI state
type Model struct {
	store    *store.CounterStore
	mode     InputMode
	saver    storage.Saver
	keybinds *keybinds.Registry

	// Counter list viewport, scrolled to keep the selection visible
	list viewport.Model

	// UI state
	width  int
	height int

	shouldExit bool
	endMessage string // last save error, reported when the session ends
}

// New creates a new TUI model
func New(opts Options) *Model {
	saver := opts.Saver
	if saver == nil {
		saver = storage.Ephemeral{}
	}

	registry := opts.Keybinds
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}

	return &Model{
		store:    store.New(opts.Counters),
		mode:     newNormalMode(),
		saver:    saver,
		keybinds: registry,
		list:     viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Messages are handled one at a time; once the
// exit flag is set nothing else is processed.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.shouldExit {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)
		if m.shouldExit {
			return m, tea.Quit
		}
	}

	m.syncList()
	return m, cmd
}

// ShouldExit reports whether the user asked to quit
func (m *Model) ShouldExit() bool {
	return m.shouldExit
}

// EndMessage returns the message to print once the session is over
func (m *Model) EndMessage() string {
	return m.endMessage
}

// Counters returns the current counters in display order
func (m *Model) Counters() []types.Counter {
	return m.store.Counters()
}

// Mode returns the active input mode
func (m *Model) Mode() InputMode {
	return m.mode
}

func (m *Model) setMode(mode InputMode) {
	if m.mode.String() != mode.String() {
		logging.Debugf("mode %s -> %s", m.mode, mode)
	}
	m.mode = mode
}

// save hands the full list to the saver. A failure leaves the in-memory
// change in place and only replaces the end-of-session message.
func (m *Model) save() {
	counters := m.store.Counters()
	if err := m.saver.Save(counters); err != nil {
		logging.Errorf("save failed: %v", err)
		m.endMessage = err.Error()
		return
	}

	if target := m.saver.Target(); target != "" {
		logging.Debugf("saved %d counters to %s", len(counters), target)
	}
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tally/internal/logging"
)

// Run starts the TUI and blocks until the user quits. The returned string is
// the last save error, empty when every save succeeded.
func Run(opts Options) (string, error) {
	m := New(opts)

	if target := m.saver.Target(); target != "" {
		logging.Infof("session started with %d counters, saving to %s", len(opts.Counters), target)
	} else {
		logging.Infof("ephemeral session started")
	}

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("failed to run terminal interface: %w", err)
	}

	logging.Infof("session ended")
	return m.EndMessage(), nil
}

/*
Package tui implements the terminal user interface for tally.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: counter store, active input mode, save target, exit flag
  - Update: dispatches one key press at a time and saves after mutations
  - View: renders the current state to the terminal

# Key Components

  - mode.go: InputMode variants; typed text lives inside the mode
  - keys.go: Keyboard input handling and keybind routing
  - render.go: layout decisions and lipgloss drawing
  - init.go: Run, which owns the bubbletea program

# Modes

  - NormalMode: move the selection, step counters, delete, quit
  - CreatingMode: type a counter name, enter appends it
  - AdjustingMode: type an amount, enter adds or subtracts it from the
    selected counter

Keys are resolved through keybinds.Registry with the mode's context, so user
overrides apply in every mode.

# Example Usage

	msg, err := tui.Run(tui.Options{
		Counters: counters,
		Saver:    file,
	})
	if err != nil {
		return err
	}
	if msg != "" {
		fmt.Println(msg)
	}
*/
package tui

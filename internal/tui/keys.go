package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tally/internal/keybinds"
	"github.com/studiowebux/tally/internal/logging"
	"github.com/studiowebux/tally/internal/store"
	"github.com/studiowebux/tally/internal/types"
)

// readClipboard is swapped in tests
var readClipboard = clipboard.ReadAll

// handleKeyPress routes key presses based on current mode.
// bubbletea only reports key presses, never releases or repeats.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch mode := m.mode.(type) {
	case *NormalMode:
		m.handleNormalKeys(msg)
	case *CreatingMode:
		return m.handleCreateKeys(mode, msg)
	case *AdjustingMode:
		return m.handleAdjustKeys(mode, msg)
	}
	return nil
}

// handleNormalKeys handles keyboard input on the counter list
func (m *Model) handleNormalKeys(msg tea.KeyMsg) {
	action, ok := m.keybinds.Match(keybinds.ContextNormal, msg.String())
	if !ok {
		return
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		m.shouldExit = true

	case keybinds.ActionNavigateUp:
		m.store.MoveSelection(store.Previous)

	case keybinds.ActionNavigateDown:
		m.store.MoveSelection(store.Next)

	case keybinds.ActionClearSelection:
		m.store.ClearSelection()

	case keybinds.ActionIncrement:
		m.store.AdjustSelected(1)
		m.save()

	case keybinds.ActionDecrement:
		m.store.AdjustSelected(-1)
		m.save()

	case keybinds.ActionDelete:
		m.store.RemoveSelected()
		m.save()

	case keybinds.ActionNewCounter:
		m.setMode(newCreatingMode())

	case keybinds.ActionAdd:
		m.setMode(newAdjustingMode(types.Positive))

	case keybinds.ActionSubtract:
		m.setMode(newAdjustingMode(types.Negative))
	}
}

// handleCreateKeys handles keyboard input while typing a counter name.
// Anything not bound goes to the input.
func (m *Model) handleCreateKeys(mode *CreatingMode, msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextCreate, msg.String())
	if ok {
		switch action {
		case keybinds.ActionQuitForce:
			m.shouldExit = true

		case keybinds.ActionTextCancel:
			m.setMode(newNormalMode())

		case keybinds.ActionTextSubmit:
			m.store.Append(mode.Input.Value())
			m.save()
			m.setMode(newNormalMode())

		case keybinds.ActionTextPaste:
			pasteInto(&mode.Input, nil)
		}
		return nil
	}

	var cmd tea.Cmd
	mode.Input, cmd = mode.Input.Update(msg)
	return cmd
}

// handleAdjustKeys handles keyboard input while typing an amount. Only
// digits and cursor editing reach the input; the list stays navigable.
func (m *Model) handleAdjustKeys(mode *AdjustingMode, msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextAdjust, msg.String())
	if ok {
		switch action {
		case keybinds.ActionQuitForce:
			m.shouldExit = true

		case keybinds.ActionNavigateUp:
			m.store.MoveSelection(store.Previous)

		case keybinds.ActionNavigateDown:
			m.store.MoveSelection(store.Next)

		case keybinds.ActionAdd:
			m.switchSign(mode, types.Positive)

		case keybinds.ActionSubtract:
			m.switchSign(mode, types.Negative)

		case keybinds.ActionTextCancel:
			m.setMode(newNormalMode())

		case keybinds.ActionTextSubmit:
			m.applyAmount(mode)

		case keybinds.ActionTextPaste:
			pasteInto(&mode.Input, isDigit)
		}
		return nil
	}

	if !isAmountEdit(msg) {
		return nil
	}

	var cmd tea.Cmd
	mode.Input, cmd = mode.Input.Update(msg)
	return cmd
}

func (m *Model) switchSign(mode *AdjustingMode, sign types.Sign) {
	if mode.Sign == sign {
		return
	}
	logging.Debugf("mode %s -> %s", mode, sign)
	mode.Sign = sign
}

// applyAmount adds the typed amount to the selected counter with the mode's
// sign and returns to normal mode. An empty amount changes nothing.
func (m *Model) applyAmount(mode *AdjustingMode) {
	value := mode.Input.Value()
	m.setMode(newNormalMode())

	if value == "" {
		return
	}

	amount, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		// the input only ever holds up to AmountDigitLimit digits
		logging.Errorf("unparseable amount %q: %v", value, err)
		return
	}

	m.store.AdjustSelected(mode.Sign.Apply(amount))
	m.save()
}

// isAmountEdit reports whether msg may edit the amount input: plain digits
// or cursor movement and deletion
func isAmountEdit(msg tea.KeyMsg) bool {
	if msg.Alt {
		return false
	}

	switch msg.Type {
	case tea.KeyLeft, tea.KeyRight, tea.KeyBackspace, tea.KeyDelete, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if !isDigit(r) {
				return false
			}
		}
		return true
	}

	return false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// pasteInto inserts clipboard text at the cursor. When keep is set, runes
// it rejects are dropped. Clipboard errors are ignored.
func pasteInto(in *textinput.Model, keep func(rune) bool) {
	text, err := readClipboard()
	if err != nil {
		logging.Debugf("clipboard unavailable: %v", err)
		return
	}

	text = strings.Map(func(r rune) rune {
		if keep != nil && !keep(r) {
			return -1
		}
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
	if text == "" {
		return
	}

	value := []rune(in.Value())
	pos := in.Position()
	if pos > len(value) {
		pos = len(value)
	}

	inserted := []rune(text)
	merged := make([]rune, 0, len(value)+len(inserted))
	merged = append(merged, value[:pos]...)
	merged = append(merged, inserted...)
	merged = append(merged, value[pos:]...)

	in.SetValue(string(merged))
	in.SetCursor(pos + len(inserted))
}

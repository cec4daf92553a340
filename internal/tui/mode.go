package tui

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/studiowebux/tally/internal/keybinds"
	"github.com/studiowebux/tally/internal/types"
)

// AmountDigitLimit caps the amount input so the typed value always fits in
// an int64 (10^18 - 1 < 2^63 - 1)
const AmountDigitLimit = 18

// InputMode is the active input state. Exactly one mode is active; the text
// being typed lives inside the mode and is dropped with it.
type InputMode interface {
	// Context selects the keybinding context used for dispatch
	Context() keybinds.Context
	String() string
}

// NormalMode browses and edits the counter list directly
type NormalMode struct{}

func (*NormalMode) Context() keybinds.Context { return keybinds.ContextNormal }
func (*NormalMode) String() string            { return "normal" }

// CreatingMode collects the name of a new counter
type CreatingMode struct {
	Input textinput.Model
}

func (*CreatingMode) Context() keybinds.Context { return keybinds.ContextCreate }
func (*CreatingMode) String() string            { return "creating" }

// AdjustingMode collects an amount to add to or subtract from the selected
// counter
type AdjustingMode struct {
	Input textinput.Model
	Sign  types.Sign
}

func (*AdjustingMode) Context() keybinds.Context { return keybinds.ContextAdjust }

func (a *AdjustingMode) String() string {
	if a.Sign == types.Negative {
		return "subtracting"
	}
	return "adding"
}

func newNormalMode() *NormalMode {
	return &NormalMode{}
}

func newCreatingMode() *CreatingMode {
	return &CreatingMode{Input: newInput(0)}
}

func newAdjustingMode(sign types.Sign) *AdjustingMode {
	return &AdjustingMode{Input: newInput(AmountDigitLimit), Sign: sign}
}

// newInput returns a focused input with a static cursor, so no blink timer
// ever runs
func newInput(limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = limit
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return in
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/tally/internal/keybinds"
	"github.com/studiowebux/tally/internal/types"
)

// CreateTestModel creates a Model sized like a small terminal, saving into
// a recording saver
func CreateTestModel(t *testing.T, counters ...types.Counter) (*Model, *RecordingSaver) {
	t.Helper()

	saver := &RecordingSaver{}
	m := New(Options{
		Counters: counters,
		Saver:    saver,
		Keybinds: keybinds.NewDefaultRegistry(),
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	return m, saver
}

// RecordingSaver keeps every snapshot it is given. Err, when set, is
// returned from Save instead.
type RecordingSaver struct {
	Saves [][]types.Counter
	Err   error
}

func (r *RecordingSaver) Save(counters []types.Counter) error {
	if r.Err != nil {
		return r.Err
	}
	r.Saves = append(r.Saves, counters)
	return nil
}

func (r *RecordingSaver) Target() string { return "test" }

// Last returns the latest saved snapshot
func (r *RecordingSaver) Last() []types.Counter {
	if len(r.Saves) == 0 {
		return nil
	}
	return r.Saves[len(r.Saves)-1]
}

// SendKeys feeds key presses to the model. Named keys ("enter", "esc",
// "up", ...) become special keys; anything else is sent as one runes press.
func SendKeys(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(KeyMsg(k))
	}
}

// KeyMsg builds the tea.KeyMsg for a key name as reported by KeyMsg.String
func KeyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// Type sends each rune of s as its own key press
func Type(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertCounters compares the model's counters against want
func AssertCounters(t *testing.T, m *Model, want ...types.Counter) {
	t.Helper()
	got := m.Counters()
	if len(got) != len(want) {
		t.Fatalf("counters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("counters[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

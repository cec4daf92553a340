package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/tally/internal/types"
)

func TestLayout_Footer(t *testing.T) {
	tests := []struct {
		name     string
		counters []types.Counter
		keys     []string
		want     string
	}{
		{"normal empty", nil, nil, hintEmpty},
		{"normal with counters", []types.Counter{types.NewCounter("a")}, nil, hintNormal},
		{"creating", nil, []string{"n"}, hintCreate},
		{"adding", nil, []string{"a"}, hintAdjustAdd},
		{"subtracting", nil, []string{"s"}, hintAdjustMinus},
		{"subtracting after switch", nil, []string{"a", "s"}, hintAdjustMinus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := CreateTestModel(t, tt.counters...)
			SendKeys(m, tt.keys...)
			AssertModelField(t, "footer", m.layout().Footer, tt.want)
		})
	}
}

func TestLayout_InputBox(t *testing.T) {
	tests := []struct {
		name      string
		keys      []string
		typed     string
		wantTitle string
	}{
		{"normal", nil, "", ""},
		{"creating", []string{"n"}, "Plank", "New Counter"},
		{"adding", []string{"a"}, "15", "Adding"},
		{"subtracting", []string{"s"}, "2", "Subtracting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := CreateTestModel(t)
			SendKeys(m, tt.keys...)
			Type(m, tt.typed)

			f := m.layout()
			if tt.wantTitle == "" {
				if f.Input != nil {
					t.Fatalf("Input = %+v, want nil", f.Input)
				}
				return
			}
			if f.Input == nil {
				t.Fatal("Input = nil")
			}
			AssertModelField(t, "title", f.Input.Title, tt.wantTitle)
			AssertModelField(t, "value", f.Input.Value, tt.typed)
		})
	}
}

func TestLayout_List(t *testing.T) {
	m, _ := CreateTestModel(t,
		types.Counter{Name: "Pushups", Count: 12},
		types.Counter{Name: "Squats", Count: -3},
	)

	f := m.layout()
	AssertModelField(t, "selected", f.Selected, -1)
	AssertModelField(t, "len(List)", len(f.List), 2)
	AssertModelField(t, "List[0]", f.List[0], "12: Pushups")
	AssertModelField(t, "List[1]", f.List[1], "-3: Squats")

	SendKeys(m, "k")
	AssertModelField(t, "selected", m.layout().Selected, 1)
}

func TestView_ZeroSize(t *testing.T) {
	m := New(Options{})

	AssertModelField(t, "View()", m.View(), "")
}

func TestView_Normal(t *testing.T) {
	m, _ := CreateTestModel(t, types.NewCounter("Pushups"), types.NewCounter("Squats"))
	SendKeys(m, "j")

	view := m.View()

	for _, want := range []string{"Counters", SelectedIndicator + "0: Pushups", "0: Squats"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "New Counter") {
		t.Error("View() should not show an input box in normal mode")
	}
	AssertModelField(t, "height", lipgloss.Height(view), 24)
}

func TestView_EmptyFooter(t *testing.T) {
	m, _ := CreateTestModel(t)

	view := m.View()
	if !strings.Contains(view, hintEmpty) {
		t.Errorf("View() missing footer:\n%s", view)
	}
}

func TestView_InputBox(t *testing.T) {
	m, _ := CreateTestModel(t)
	SendKeys(m, "n")
	Type(m, "Plank")

	view := m.View()

	for _, want := range []string{"New Counter", "Plank", "Counters"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
	AssertModelField(t, "height", lipgloss.Height(view), 24)
}

func TestView_LinesFitWidth(t *testing.T) {
	m, _ := CreateTestModel(t, types.NewCounter(strings.Repeat("long name ", 20)))
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	SendKeys(m, "j")

	for i, line := range strings.Split(m.View(), "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d width = %d, want <= 40: %q", i, w, line)
		}
	}
}

func TestSyncList_ScrollsToSelection(t *testing.T) {
	var counters []types.Counter
	for i := 0; i < 10; i++ {
		counters = append(counters, types.NewCounter(fmt.Sprintf("c%d", i)))
	}
	m, _ := CreateTestModel(t, counters...)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})

	rows := 6 - FooterHeight - BoxBorderHeight
	AssertModelField(t, "list.Height", m.list.Height, rows)

	SendKeys(m, "k")
	AssertModelField(t, "YOffset at bottom", m.list.YOffset, 10-rows)
	if !strings.Contains(m.View(), SelectedIndicator+"0: c9") {
		t.Errorf("selected row not visible:\n%s", m.View())
	}

	for i := 0; i < 9; i++ {
		SendKeys(m, "up")
	}
	AssertModelField(t, "YOffset at top", m.list.YOffset, 0)
}

func TestRenderBox(t *testing.T) {
	box := renderBox("Counters", "x", 20, 4, colorGreen)

	lines := strings.Split(box, "\n")
	AssertModelField(t, "lines", len(lines), 4)
	for i, line := range lines {
		AssertModelField(t, fmt.Sprintf("width of line %d", i), lipgloss.Width(line), 20)
	}
	if !strings.Contains(lines[0], "Counters") {
		t.Errorf("title missing from top border: %q", lines[0])
	}
}

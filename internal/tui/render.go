package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/studiowebux/tally/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorGray  = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan  = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// Footer hints per mode
const (
	hintEmpty       = "Use n to make a new counter, and q to exit."
	hintNormal      = "Use ↓↑/jk to move, d to delete, ←→/l; to increment the counter, n to make a new counter, a/s to add/subtract, and q to exit."
	hintCreate      = "Type a new counter name. Use enter to add and esc to return."
	hintAdjustAdd   = "Use ↓↑/jk to move, Type numbers, then enter to add and esc to return"
	hintAdjustMinus = "Use ↓↑/jk to move, Type numbers, then enter to subtract and esc to return"
)

// Frame is what a single render shows, independent of styling
type Frame struct {
	// Input is nil in normal mode
	Input *InputBox

	// List holds one entry per counter, "<count>: <name>"
	List []string

	// Selected indexes List, -1 when nothing is selected
	Selected int

	Footer string
}

// InputBox is the box shown above the list while typing
type InputBox struct {
	Title string
	Value string
}

// layout decides which regions are visible and what they contain
func (m *Model) layout() Frame {
	f := Frame{Selected: -1}

	for _, c := range m.store.Counters() {
		f.List = append(f.List, c.String())
	}
	if idx, ok := m.store.Selected(); ok {
		f.Selected = idx
	}

	switch mode := m.mode.(type) {
	case *NormalMode:
		if m.store.Len() == 0 {
			f.Footer = hintEmpty
		} else {
			f.Footer = hintNormal
		}

	case *CreatingMode:
		f.Input = &InputBox{Title: "New Counter", Value: mode.Input.Value()}
		f.Footer = hintCreate

	case *AdjustingMode:
		if mode.Sign == types.Negative {
			f.Input = &InputBox{Title: "Subtracting", Value: mode.Input.Value()}
			f.Footer = hintAdjustMinus
		} else {
			f.Input = &InputBox{Title: "Adding", Value: mode.Input.Value()}
			f.Footer = hintAdjustAdd
		}
	}

	return f
}

// listHeight is the number of counter rows that fit in the list box
func (m *Model) listHeight() int {
	h := m.height - FooterHeight - BoxBorderHeight
	if _, normal := m.mode.(*NormalMode); !normal {
		h -= InputBoxHeight
	}
	return max(h, 0)
}

// syncList sizes the list viewport and scrolls it to the selection
func (m *Model) syncList() {
	m.list.Width = max(m.width-BoxBorderWidth, 0)
	m.list.Height = m.listHeight()

	f := m.layout()
	lines := make([]string, len(f.List))
	for i, line := range f.List {
		lines[i] = m.renderListLine(line, i == f.Selected)
	}
	m.list.SetContent(strings.Join(lines, "\n"))

	if f.Selected < 0 || m.list.Height == 0 {
		return
	}
	if f.Selected < m.list.YOffset {
		m.list.SetYOffset(f.Selected)
	} else if f.Selected >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(f.Selected - m.list.Height + 1)
	}
}

func (m *Model) renderListLine(line string, selected bool) string {
	if selected {
		line = SelectedIndicator + line
	} else {
		line = strings.Repeat(" ", lipgloss.Width(SelectedIndicator)) + line
	}

	line = ansi.Truncate(line, m.list.Width, "…")
	if selected {
		return styleSelected.Render(line)
	}
	return line
}

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	f := m.layout()
	var sections []string

	if f.Input != nil {
		value := lipgloss.PlaceHorizontal(max(m.width-BoxBorderWidth, 0), lipgloss.Center, m.inputView())
		sections = append(sections, renderBox(f.Input.Title, value, m.width, InputBoxHeight, colorGreen))
	}

	listBorder := colorGreen
	if f.Input != nil {
		listBorder = colorGray
	}
	sections = append(sections, renderBox("Counters", m.list.View(), m.width, m.list.Height+BoxBorderHeight, listBorder))

	footer := ansi.Truncate(f.Footer, m.width, "…")
	sections = append(sections, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styleSubtle.Render(footer)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// inputView renders the active input with its cursor
func (m *Model) inputView() string {
	switch mode := m.mode.(type) {
	case *CreatingMode:
		return mode.Input.View()
	case *AdjustingMode:
		return mode.Input.View()
	}
	return ""
}

// renderBox draws a rounded box of the given outer size with title centered
// in the top border
func renderBox(title, content string, width, height int, border lipgloss.TerminalColor) string {
	b := lipgloss.RoundedBorder()
	inner := max(width-BoxBorderWidth, 0)

	label := ""
	if title != "" {
		label = " " + styleTitle.Render(title) + " "
	}
	if lipgloss.Width(label) > inner {
		label = ""
	}
	fill := inner - lipgloss.Width(label)
	left := fill / 2

	borderStyle := lipgloss.NewStyle().Foreground(border)
	top := borderStyle.Render(b.TopLeft+strings.Repeat(b.Top, left)) +
		label +
		borderStyle.Render(strings.Repeat(b.Top, fill-left)+b.TopRight)

	body := lipgloss.NewStyle().
		Border(b, false, true, true, true).
		BorderForeground(border).
		Width(inner).
		Height(max(height-BoxBorderHeight, 0)).
		Render(content)

	return top + "\n" + body
}

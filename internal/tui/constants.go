package tui

// UI Layout Constants

const (
	// FooterHeight is the single hint line at the bottom
	FooterHeight = 1

	// InputBoxHeight is the input box including its borders
	InputBoxHeight = 3

	// Box borders
	BoxBorderWidth  = 2 // left + right
	BoxBorderHeight = 2 // top + bottom

	// SelectedIndicator marks the selected counter
	SelectedIndicator = "> "
)

package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal    Context = "global"     // Available everywhere
	ContextNormal    Context = "normal"     // Counter list, no input box
	ContextTextInput Context = "text_input" // Shared by every input box
	ContextCreate    Context = "create"     // Typing a new counter name
	ContextAdjust    Context = "adjust"     // Typing an amount to add or subtract
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Navigation actions
	ActionNavigateUp     Action = "navigate_up"     // Select previous counter
	ActionNavigateDown   Action = "navigate_down"   // Select next counter
	ActionClearSelection Action = "clear_selection" // Deselect

	// Counter actions
	ActionIncrement  Action = "increment"   // Add one to the selected counter
	ActionDecrement  Action = "decrement"   // Subtract one from the selected counter
	ActionDelete     Action = "delete"      // Delete the selected counter
	ActionNewCounter Action = "new_counter" // Open the new counter input
	ActionAdd        Action = "add"         // Open or switch to the add input
	ActionSubtract   Action = "subtract"    // Open or switch to the subtract input

	// Text input actions
	ActionTextSubmit Action = "text_submit" // Submit text input
	ActionTextCancel Action = "text_cancel" // Cancel text input
	ActionTextPaste  Action = "text_paste"  // Paste from clipboard
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:           {ActionQuit, "Quit application", "Global"},
	ActionQuitForce:      {ActionQuitForce, "Force quit", "Global"},
	ActionNavigateUp:     {ActionNavigateUp, "Move up", "Navigation"},
	ActionNavigateDown:   {ActionNavigateDown, "Move down", "Navigation"},
	ActionClearSelection: {ActionClearSelection, "Clear selection", "Navigation"},
	ActionIncrement:      {ActionIncrement, "Increment counter", "Counters"},
	ActionDecrement:      {ActionDecrement, "Decrement counter", "Counters"},
	ActionDelete:         {ActionDelete, "Delete counter", "Counters"},
	ActionNewCounter:     {ActionNewCounter, "New counter", "Counters"},
	ActionAdd:            {ActionAdd, "Add amount", "Counters"},
	ActionSubtract:       {ActionSubtract, "Subtract amount", "Counters"},
	ActionTextSubmit:     {ActionTextSubmit, "Submit input", "Text Input"},
	ActionTextCancel:     {ActionTextCancel, "Cancel input", "Text Input"},
	ActionTextPaste:      {ActionTextPaste, "Paste", "Text Input"},
}

var knownContexts = map[Context]bool{
	ContextGlobal:    true,
	ContextNormal:    true,
	ContextTextInput: true,
	ContextCreate:    true,
	ContextAdjust:    true,
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is handled anywhere
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// IsKnownContext reports whether context is one tally dispatches on
func IsKnownContext(context Context) bool {
	return knownContexts[context]
}

// Contexts returns every context in display order
func Contexts() []Context {
	return []Context{ContextGlobal, ContextNormal, ContextTextInput, ContextCreate, ContextAdjust}
}

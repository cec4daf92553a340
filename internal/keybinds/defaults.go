package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerTextInputBindings(r)
	registerAdjustBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalModeBindings sets up keybindings for normal mode
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)

	r.RegisterMultiple(ContextNormal, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextNormal, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextNormal, "esc", ActionClearSelection)

	r.RegisterMultiple(ContextNormal, []string{"right", "l"}, ActionIncrement)
	r.RegisterMultiple(ContextNormal, []string{"left", ";"}, ActionDecrement)
	r.Register(ContextNormal, "d", ActionDelete)

	r.Register(ContextNormal, "n", ActionNewCounter)
	r.Register(ContextNormal, "a", ActionAdd)
	r.Register(ContextNormal, "s", ActionSubtract)
}

// registerTextInputBindings sets up bindings shared by every input box
func registerTextInputBindings(r *Registry) {
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
	r.RegisterMultiple(ContextTextInput, []string{"ctrl+v", "shift+insert"}, ActionTextPaste)
}

// registerAdjustBindings sets up the amount input. The counter list stays
// navigable and a/s flip the sign without losing the typed amount.
func registerAdjustBindings(r *Registry) {
	r.RegisterMultiple(ContextAdjust, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextAdjust, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextAdjust, "a", ActionAdd)
	r.Register(ContextAdjust, "s", ActionSubtract)
}

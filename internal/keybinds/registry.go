package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// parents maps a context to the context consulted when it has no match
	parents map[Context]Context
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		parents: map[Context]Context{
			ContextNormal:    ContextGlobal,
			ContextTextInput: ContextGlobal,
			ContextCreate:    ContextTextInput,
			ContextAdjust:    ContextTextInput,
		},
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// Unbind removes every key bound to action directly in context
func (r *Registry) Unbind(context Context, action Action) {
	for key, act := range r.bindings[context] {
		if act == action {
			delete(r.bindings[context], key)
		}
	}
}

// Match attempts to match a key to an action in the given context.
// Contexts are checked from the most specific to global, so
// create -> text_input -> global.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	for ctx, ok := context, true; ok; ctx, ok = r.parents[ctx] {
		if action, found := r.bindings[ctx][key]; found {
			return action, true
		}
	}
	return "", false
}

// Parent returns the context consulted after context
func (r *Registry) Parent(context Context) (Context, bool) {
	parent, ok := r.parents[context]
	return parent, ok
}

// GetBinding returns the key(s) bound to an action in a context, sorted.
// Falls back to the parent contexts when the context has none.
func (r *Registry) GetBinding(context Context, action Action) []string {
	for ctx, ok := context, true; ok; ctx, ok = r.parents[ctx] {
		var keys []string
		for key, act := range r.bindings[ctx] {
			if act == action {
				keys = append(keys, key)
			}
		}
		if len(keys) > 0 {
			sort.Strings(keys)
			return keys
		}
	}
	return nil
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, ", ")
}

// ListBindings returns the bindings registered directly in a context,
// sorted by action then key
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding
	for key, action := range r.bindings[context] {
		bindings = append(bindings, Binding{
			Key:     key,
			Action:  action,
			Context: context,
		})
	}

	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Action != bindings[j].Action {
			return bindings[i].Action < bindings[j].Action
		}
		return bindings[i].Key < bindings[j].Key
	})
	return bindings
}

// owner returns the context in which key resolves when pressed in context
func (r *Registry) owner(context Context, key string) Context {
	for ctx, ok := context, true; ok; ctx, ok = r.parents[ctx] {
		if _, found := r.bindings[ctx][key]; found {
			return ctx
		}
	}
	return context
}

// HasBinding checks if a key is bound in a context or its parents
func (r *Registry) HasBinding(context Context, key string) bool {
	_, ok := r.Match(context, key)
	return ok
}

// Clone creates a deep copy of the registry
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()

	for context, contextBindings := range r.bindings {
		for key, action := range contextBindings {
			clone.Register(context, key, action)
		}
	}

	return clone
}

package keybinds

import (
	"fmt"
	"sort"
	"strings"

	"github.com/studiowebux/tally/internal/logging"
)

// Overrides maps context -> action -> comma separated keys, the shape of
// the "keybinds" section of config.yaml:
//
//	keybinds:
//	  normal:
//	    increment: "right,l,+"
//	    decrement: "left,;,-"
type Overrides map[string]map[string]string

// ApplyConfig applies user overrides to a registry.
// Each overridden action loses its default keys in that context. On error
// the registry is left unchanged.
func ApplyConfig(registry *Registry, overrides Overrides) error {
	next := registry.Clone()

	contexts := make([]string, 0, len(overrides))
	for name := range overrides {
		contexts = append(contexts, name)
	}
	sort.Strings(contexts)

	for _, name := range contexts {
		context := Context(name)
		if !IsKnownContext(context) {
			return fmt.Errorf("unknown keybind context '%s'", name)
		}

		for actionStr, keyList := range overrides[name] {
			if err := ValidateAction(actionStr); err != nil {
				return fmt.Errorf("context '%s': %w", name, err)
			}
			action := Action(actionStr)

			keys := splitKeys(keyList)
			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					return fmt.Errorf("context '%s', action '%s': %w", name, actionStr, err)
				}
			}

			next.Unbind(context, action)
			next.RegisterMultiple(context, keys, action)
		}
	}

	registry.bindings = next.bindings
	return nil
}

// LoadOrDefault returns the default registry with overrides applied
func LoadOrDefault(overrides Overrides) (*Registry, error) {
	registry := NewDefaultRegistry()

	if len(overrides) == 0 {
		return registry, nil
	}

	if err := ApplyConfig(registry, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}

	result := NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		return nil, fmt.Errorf("invalid keybinds config:\n%s", result.String())
	}
	for _, w := range result.Warnings {
		logging.Warnf("keybinds: %s", w.Error())
	}

	return registry, nil
}

func splitKeys(list string) []string {
	var keys []string
	for _, key := range strings.Split(list, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

package keybinds

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkUnknownActions(registry, result)
	v.checkReservedKeys(registry, result)
	v.checkDigitsInAdjust(registry, result)
	v.checkTextEntryShadowing(registry, result)

	return result
}

// checkUnknownActions flags actions nothing dispatches on
func (v *Validator) checkUnknownActions(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts() {
		for _, b := range registry.ListBindings(context) {
			if !IsKnownAction(b.Action) {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     b.Key,
					Message: fmt.Sprintf("unknown action '%s'", b.Action),
				})
			}
		}
	}
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts() {
		for _, b := range registry.ListBindings(context) {
			if want, reserved := v.reservedKeys[b.Key]; reserved && b.Action != want {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkDigitsInAdjust rejects digit bindings reachable from the amount
// input, they would make some amounts impossible to type
func (v *Validator) checkDigitsInAdjust(registry *Registry, result *ValidationResult) {
	for d := '0'; d <= '9'; d++ {
		key := string(d)
		if !registry.HasBinding(ContextAdjust, key) {
			continue
		}

		action, _ := registry.Match(ContextAdjust, key)
		result.Errors = append(result.Errors, ValidationError{
			Type:    "conflict",
			Context: registry.owner(ContextAdjust, key),
			Key:     key,
			Message: fmt.Sprintf("digits are reserved for amount input (bound to '%s')", action),
		})
	}
}

// checkTextEntryShadowing warns when a printable key is bound where the user
// types a counter name, since that character can no longer be typed
func (v *Validator) checkTextEntryShadowing(registry *Registry, result *ValidationResult) {
	for _, context := range []Context{ContextCreate, ContextTextInput, ContextGlobal} {
		for _, b := range registry.ListBindings(context) {
			if isPrintable(b.Key) {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     b.Key,
					Message: fmt.Sprintf("'%s' cannot be typed in counter names", b.Key),
				})
			}
		}
	}
}

func isPrintable(key string) bool {
	return utf8.RuneCountInString(key) == 1 && key != " "
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action '%s'", actionStr)
	}
	return nil
}

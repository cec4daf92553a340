package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/studiowebux/tally/internal/filter"
	"github.com/studiowebux/tally/internal/keybinds"
	"github.com/studiowebux/tally/internal/storage"
	"github.com/studiowebux/tally/internal/types"
	"gopkg.in/yaml.v3"
)

// ShowOptions contains options for printing a snapshot
type ShowOptions struct {
	Name         string
	OutputFormat string // text, json, yaml
	Filter       string // JMESPath expression, output is always JSON
	Color        bool   // Syntax highlight json and yaml output
}

// highlightStyle is the chroma style used by --color
const highlightStyle = "monokai"

// Show prints the counters stored in a snapshot without starting the TUI
func Show(w io.Writer, opts ShowOptions) error {
	path, err := storage.ResolvePath(opts.Name)
	if err != nil {
		return err
	}

	counters, err := storage.NewFile(path).Load()
	if err != nil {
		return err
	}

	var output string
	lexer := opts.OutputFormat
	if opts.Filter != "" {
		lexer = "json"
		data, err := json.Marshal(counters)
		if err != nil {
			return fmt.Errorf("failed to marshal counters: %w", err)
		}
		if output, err = filter.Apply(data, opts.Filter); err != nil {
			return err
		}
	} else {
		if output, err = formatOutput(counters, opts.OutputFormat); err != nil {
			return err
		}
	}

	if output == "" {
		return nil
	}
	if !strings.HasSuffix(output, "\n") {
		output += "\n"
	}

	if opts.Color && (lexer == "json" || lexer == "yaml") {
		if err := quick.Highlight(w, output, lexer, "terminal256", highlightStyle); err != nil {
			return fmt.Errorf("failed to highlight output: %w", err)
		}
		return nil
	}

	_, err = io.WriteString(w, output)
	return err
}

// inheritedActions lists, sorted, the actions bound somewhere from parent up
// that the child context does not bind itself
func inheritedActions(registry *keybinds.Registry, parent keybinds.Context, own []keybinds.Binding) []keybinds.Action {
	seen := make(map[keybinds.Action]bool)
	for _, b := range own {
		seen[b.Action] = true
	}

	var actions []keybinds.Action
	for ctx, ok := parent, true; ok; ctx, ok = registry.Parent(ctx) {
		for _, b := range registry.ListBindings(ctx) {
			if !seen[b.Action] {
				seen[b.Action] = true
				actions = append(actions, b.Action)
			}
		}
	}

	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })
	return actions
}

// formatOutput formats the counters based on the output format
func formatOutput(counters []types.Counter, format string) (string, error) {
	if counters == nil {
		counters = []types.Counter{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(counters, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "yaml":
		data, err := yaml.Marshal(counters)
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "text", "":
		var sb strings.Builder
		for _, c := range counters {
			sb.WriteString(c.String())
			sb.WriteString("\n")
		}
		return sb.String(), nil

	default:
		return "", fmt.Errorf("unknown output format '%s' (expected text, json or yaml)", format)
	}
}

// ShowKeybinds prints the effective bindings of every context, own bindings
// first, then those inherited from parent contexts. With validate set, the
// validator's findings follow and errors are returned.
func ShowKeybinds(w io.Writer, registry *keybinds.Registry, validate bool) error {
	for _, context := range keybinds.Contexts() {
		bindings := registry.ListBindings(context)
		parent, hasParent := registry.Parent(context)

		var inherited []keybinds.Action
		if hasParent {
			inherited = inheritedActions(registry, parent, bindings)
		}
		if len(bindings) == 0 && len(inherited) == 0 {
			continue
		}

		fmt.Fprintf(w, "%s:\n", context)
		for _, b := range bindings {
			fmt.Fprintf(w, "  %-14s %-16s %s\n", b.Key, b.Action, keybinds.GetActionInfo(b.Action).Description)
		}
		if len(inherited) > 0 {
			fmt.Fprintf(w, "  from %s:\n", parent)
			for _, action := range inherited {
				fmt.Fprintf(w, "  %-14s %-16s %s\n", registry.GetBindingString(parent, action), action, keybinds.GetActionInfo(action).Description)
			}
		}
	}

	if !validate {
		return nil
	}

	result := keybinds.NewValidator().ValidateRegistry(registry)
	fmt.Fprintf(w, "\n%s", result.String())
	if result.HasErrors() {
		return fmt.Errorf("keybinds have %d error(s)", len(result.Errors))
	}
	return nil
}

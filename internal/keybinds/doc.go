/*
Package keybinds maps key presses to actions per input context.

# Context Hierarchy

  - global: available everywhere (ctrl+c force quit)
  - normal: the counter list with no input box
  - text_input: shared by both input boxes (enter, esc, paste)
  - create: the new counter name input, falls back to text_input
  - adjust: the add/subtract amount input, falls back to text_input

Match walks from the specific context to global and returns the first
binding found. Keys not bound anywhere are left to the input box.

# Configuration

Overrides come from the keybinds section of config.yaml. Each entry replaces
all keys of one action in one context:

	keybinds:
	  normal:
	    increment: "right,l,+"
	  text_input:
	    text_paste: "ctrl+v"

The validator rejects unknown actions and digit bindings reachable from the
adjust context, and warns about reserved keys and about printable keys that
would become impossible to type in a counter name.
*/
package keybinds

package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Apply runs a JMESPath expression over a JSON document and returns the
// result as indented JSON. An empty expression returns the document as is.
func Apply(document []byte, expression string) (string, error) {
	if expression == "" {
		return string(document), nil
	}

	result, err := applyJMESPath(document, expression)
	if err != nil {
		return "", fmt.Errorf("failed to apply filter: %w", err)
	}
	return result, nil
}

// applyJMESPath applies a JMESPath expression to a JSON document
func applyJMESPath(document []byte, expression string) (string, error) {
	// Parse the JSON
	var data interface{}
	if err := json.Unmarshal(document, &data); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}

	// Compile the JMESPath expression
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return "", fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}

	result, err := jp.Search(data)
	if err != nil {
		return "", fmt.Errorf("JMESPath search failed: %w", err)
	}

	// Handle null result
	if result == nil {
		return "null", nil
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	return string(output), nil
}

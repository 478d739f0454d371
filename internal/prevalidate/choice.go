package prevalidate

import (
	"fmt"

	"github.com/edforge/qconvert/internal/question"
)

// validateChoice checks the six common choice fields. The type membership
// check (key/distractor) applies only to selectable part types.
func validateChoice(choice question.Choice, choiceIndex, partNumber int, partType question.PartType) []string {
	var errors []string
	prefix := fmt.Sprintf("Part %d (%s), Choice %d", partNumber, partType, choiceIndex+1)

	// unit may be null, the key just has to exist.
	for _, field := range []string{"type", "html_content", "values", "unit", "index", "fixed_order"} {
		if _, ok := choice[field]; !ok {
			errors = append(errors, fmt.Sprintf("%s: Missing required field '%s'", prefix, field))
		}
	}

	if selectableType(partType) {
		if t, _ := choice["type"].(string); t != "key" && t != "distractor" {
			errors = append(errors, fmt.Sprintf("%s: Invalid choice type '%v'", prefix, choice["type"]))
		}
	}

	if s, ok := choice["html_content"].(string); !ok || question.IsEmpty(s) {
		errors = append(errors, fmt.Sprintf("%s: Invalid or empty 'html_content'", prefix))
	}

	if _, ok := choice["values"].([]any); !ok {
		errors = append(errors, fmt.Sprintf("%s: 'values' must be an array", prefix))
	}

	if unit, ok := choice["unit"]; ok && unit != nil {
		if _, isStr := unit.(string); !isStr {
			errors = append(errors, fmt.Sprintf("%s: 'unit' must be null or a string", prefix))
		}
	}

	if idx, ok := question.IntValue(choice["index"]); !ok || idx < 0 {
		errors = append(errors, fmt.Sprintf("%s: 'index' must be a non-negative number", prefix))
	}

	if order, ok := question.IntValue(choice["fixed_order"]); !ok || order < 1 {
		errors = append(errors, fmt.Sprintf("%s: 'fixed_order' must be a positive number", prefix))
	}

	if lastOrder, ok := choice["last_order"]; ok && !question.IsEmpty(lastOrder) {
		if _, isBool := lastOrder.(bool); !isBool {
			errors = append(errors, fmt.Sprintf("%s: 'last_order' must be a boolean", prefix))
		}
	}

	return errors
}

func selectableType(t question.PartType) bool {
	return t == question.TypeMCQ || t == question.TypeMRQ || t == question.TypeGMRQ
}

// countKeyChoices returns how many choices carry type "key".
func countKeyChoices(choices []question.Choice) int {
	n := 0
	for _, c := range choices {
		if t, _ := c["type"].(string); t == "key" {
			n++
		}
	}
	return n
}

// allDistractors reports whether every choice carries type "distractor".
func allDistractors(choices []question.Choice) bool {
	for _, c := range choices {
		if t, _ := c["type"].(string); t != "distractor" {
			return false
		}
	}
	return true
}

// distinctGroups returns the set of group values present across choices.
func distinctGroups(choices []question.Choice) map[int]bool {
	groups := make(map[int]bool)
	for _, c := range choices {
		if g, ok := question.IntValue(c["group"]); ok {
			groups[g] = true
		}
	}
	return groups
}

package postvalidate

import (
	"fmt"

	"github.com/edforge/qconvert/internal/question"
)

// Validate checks a converted document against the target schema. Root
// presence and primitive types come from the embedded JSON Schema;
// cross-field rules and per-part shape rules are checked in code. Returns
// whether the document is valid and the collected error messages.
func Validate(conv question.Converted) (bool, []string) {
	var errs []string
	errs = append(errs, schemaErrors(conv)...)
	errs = append(errs, crossFieldErrors(conv)...)

	if content, ok := conv["content"].(map[string]any); ok {
		n, _ := question.IntValue(conv["number_of_parts"])
		errs = append(errs, contentErrors(content, n)...)
	}
	return len(errs) == 0, errs
}

// crossFieldErrors verifies that display names agree with their paired
// codes. The schema cannot express these table lookups.
func crossFieldErrors(conv question.Converted) []string {
	var errs []string

	code, hasCode := conv["language_code"].(string)
	if hasCode {
		if _, ok := question.Languages[code]; !ok {
			errs = append(errs, fmt.Sprintf("Invalid language_code: '%s'", code))
		}
		if lang, ok := conv["language"]; ok {
			expected := question.Languages[code]
			if s, _ := lang.(string); s != expected {
				errs = append(errs, fmt.Sprintf("Language mismatch: got '%v', expected '%s'", lang, expected))
			}
		}
	}

	cc, hasCC := conv["country_code"]
	if hasCC && cc != nil {
		s, _ := cc.(string)
		if _, ok := question.Countries[s]; !ok {
			errs = append(errs, fmt.Sprintf("Invalid country_code: '%v'", cc))
		}
		if country, ok := conv["country"]; ok {
			expected := question.Countries[s]
			if cs, _ := country.(string); cs != expected {
				errs = append(errs, fmt.Sprintf("Country mismatch: got '%v', expected '%s'", country, expected))
			}
		}
	}

	return errs
}

// contentErrors checks the content object: parts array shape, the statement
// presence law, the declared part count, and every part.
func contentErrors(content map[string]any, numberOfParts int) []string {
	var errs []string

	rawParts, present := content["parts"]
	if !present {
		return []string{"Content missing 'parts' array"}
	}
	parts, ok := rawParts.([]any)
	if !ok {
		return []string{"'parts' must be an array"}
	}
	if len(parts) == 0 {
		return []string{"'parts' array cannot be empty"}
	}

	// Statement present iff the document has more than one part.
	_, hasStatement := content["statement"]
	if numberOfParts > 1 && !hasStatement {
		errs = append(errs, "Multi-part questions must have 'statement' in content")
	}
	if numberOfParts <= 1 && hasStatement {
		errs = append(errs, "Single-part questions should not have 'statement' in content")
	}

	if len(parts) != numberOfParts {
		errs = append(errs, fmt.Sprintf(
			"Parts count mismatch: content has %d parts but number_of_parts is %d",
			len(parts), numberOfParts))
	}

	for i, raw := range parts {
		part, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("Part %d: must be an object", i+1))
			continue
		}
		errs = append(errs, partErrors(part, i+1)...)
	}
	return errs
}

// partErrors checks the fields every converted part carries, then
// dispatches to the shape rules for its type.
func partErrors(part map[string]any, position int) []string {
	var errs []string

	for _, field := range []string{"n", "type", "stem"} {
		if _, ok := part[field]; !ok {
			errs = append(errs, fmt.Sprintf("Part %d: Missing required field '%s'", position, field))
		}
	}

	if raw, ok := part["n"]; ok {
		if n, isInt := question.IntValue(raw); !isInt || n != position {
			errs = append(errs, fmt.Sprintf(
				"Part %d: Part number 'n' (%v) does not match position", position, raw))
		}
	}

	if raw, ok := part["stem"]; ok {
		if _, isStr := raw.(string); !isStr {
			errs = append(errs, fmt.Sprintf("Part %d: 'stem' must be a string", position))
		}
	}

	if check, ok := shapeChecks[partType(part)]; ok {
		errs = append(errs, check(part, position)...)
	}
	return errs
}

func partType(part map[string]any) string {
	s, _ := part["type"].(string)
	return s
}

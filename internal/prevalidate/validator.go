// Package prevalidate checks legacy question documents against the input
// schema before conversion. Errors block conversion; warnings do not.
package prevalidate

import (
	"fmt"

	"github.com/edforge/qconvert/internal/question"
)

// Validate runs every pre-conversion structural check on doc and returns
// the collected errors and warnings. It never fails outright: identity and
// locale resolution failures are folded into the error list as strings.
func Validate(doc question.Document, filename string) (errors, warnings []string) {
	errors, warnings = validateStructure(doc)

	if _, err := question.ValidateIdentity(doc, filename); err != nil {
		errors = append(errors, err.Error())
	}
	if _, err := question.LanguageCode(doc); err != nil {
		errors = append(errors, err.Error())
	}
	if _, err := question.CountryCode(doc); err != nil {
		errors = append(errors, err.Error())
	}

	return errors, warnings
}

// validateStructure checks the document tree: top-level shape, every part,
// and the root explanation. A missing or empty parts array is a hard stop.
func validateStructure(doc question.Document) (errors, warnings []string) {
	rawParts, ok := doc["parts"].([]any)
	if !ok {
		return []string{"Missing or invalid 'parts' array"}, nil
	}
	if len(rawParts) == 0 {
		return []string{"'parts' array cannot be empty"}, nil
	}

	if m, ok := doc["metadata"].(map[string]any); !ok || len(m) == 0 {
		errors = append(errors, "Missing or invalid 'metadata' object")
	}

	if len(rawParts) > 1 && question.IsEmpty(doc["statement"]) {
		warnings = append(warnings, "Multipart questions should have a 'statement' field")
	}

	// Loose resolution: country-dependent per-type rules still need a value
	// even when nothing validates.
	countryCode := question.CountryCodeOrRaw(doc)

	for i, part := range doc.Parts() {
		errors = append(errors, validatePart(part, i+1, countryCode)...)
	}

	answerErrs, answerWarns := validateRootExplanation(doc)
	errors = append(errors, answerErrs...)
	warnings = append(warnings, answerWarns...)

	return errors, warnings
}

// validatePart checks one part. An unrecognized type stops further checks
// for this part only; siblings are always validated.
func validatePart(part question.Part, partNumber int, countryCode string) []string {
	var errors []string

	for _, field := range []string{"n", "type", "stem", "standalone"} {
		if _, ok := part[field]; !ok {
			errors = append(errors, fmt.Sprintf("Part %d: Missing required field '%s'", partNumber, field))
		}
	}

	if n, ok := question.IntValue(part["n"]); !ok || n != partNumber {
		errors = append(errors, fmt.Sprintf("Part %d: Part number 'n' (%v) does not match its position", partNumber, part["n"]))
	}

	partType := part.Type()
	if !partType.Valid() {
		errors = append(errors, fmt.Sprintf("Part %d: Invalid type '%v'", partNumber, part["type"]))
		return errors
	}

	if s, ok := part["stem"].(string); !ok || s == "" {
		errors = append(errors, fmt.Sprintf("Part %d: Invalid or missing 'stem' field", partNumber))
	}

	switch partType {
	case question.TypeMCQ:
		errors = append(errors, validateMCQ(part, partNumber, countryCode)...)
	case question.TypeMRQ:
		errors = append(errors, validateMRQ(part, partNumber)...)
	case question.TypeFRQ, question.TypeFRQAI:
		errors = append(errors, validateFRQ(part, partNumber)...)
	case question.TypeOQ:
		errors = append(errors, validateOrdering(part, partNumber)...)
	case question.TypeGapText:
		errors = append(errors, validateGapText(part, partNumber)...)
	case question.TypeString:
		errors = append(errors, validateString(part, partNumber)...)
	case question.TypeOpinion:
		errors = append(errors, validateOpinion(part, partNumber)...)
	case question.TypeMatching:
		errors = append(errors, validateMatching(part, partNumber)...)
	case question.TypeGMRQ:
		errors = append(errors, validateGMRQ(part, partNumber)...)
	case question.TypeCounting:
		errors = append(errors, validateCounting(part, partNumber)...)
	case question.TypePuzzle:
		errors = append(errors, validatePuzzle(part, partNumber)...)
	case question.TypeInputBox:
		errors = append(errors, validateInputBox(part, partNumber)...)
	}

	return errors
}

package prevalidate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edforge/qconvert/internal/question"
)

// GapMarker is the HTML attribute that marks one gap in a gapText stem.
const GapMarker = `data-node-variation="gap"`

// egMaxChoices caps mcq choice counts for Egypt documents.
const egMaxChoices = 4

var (
	digitsRe   = regexp.MustCompile(`^\d+$`)
	gridSizeRe = regexp.MustCompile(`^\d+×\d+$`)

	// validStringAITemplateIDs whitelists AI template IDs allowed on string
	// parts.
	validStringAITemplateIDs = map[string]bool{"593158513739": true}
)

// requireChoices returns the choices and no errors when the part has a
// non-empty choices array; otherwise one error and nil choices.
func requireChoices(part question.Part, partNumber int, partType question.PartType) ([]question.Choice, []string) {
	choices, ok := part.Choices()
	if !ok || len(choices) == 0 {
		return nil, []string{fmt.Sprintf("Part %d (%s): 'choices' must be a non-empty array", partNumber, partType)}
	}
	return choices, nil
}

// forbidChoices errors unless the part carries an empty choices array.
func forbidChoices(part question.Part, partNumber int, partType question.PartType) []string {
	choices, ok := part.Choices()
	if !ok {
		return []string{fmt.Sprintf("Part %d (%s): 'choices' must be an empty array", partNumber, partType)}
	}
	if len(choices) > 0 {
		return []string{fmt.Sprintf("Part %d (%s): 'choices' must be empty for %s", partNumber, partType, partType)}
	}
	return nil
}

func validateMCQ(part question.Part, partNumber int, countryCode string) []string {
	choices, errors := requireChoices(part, partNumber, question.TypeMCQ)
	if choices == nil {
		return errors
	}

	if keys := countKeyChoices(choices); keys != 1 {
		errors = append(errors, fmt.Sprintf("Part %d (mcq): Must have exactly 1 key choice, found %d", partNumber, keys))
	}

	if countryCode == "eg" && len(choices) > egMaxChoices {
		errors = append(errors, fmt.Sprintf("Part %d (mcq): Must have at most %d choices, found %d as country is Egypt", partNumber, egMaxChoices, len(choices)))
	}

	for i, choice := range choices {
		errors = append(errors, validateChoice(choice, i, partNumber, question.TypeMCQ)...)
	}
	return errors
}

func validateMRQ(part question.Part, partNumber int) []string {
	choices, errors := requireChoices(part, partNumber, question.TypeMRQ)
	if choices == nil {
		return errors
	}

	if keys := countKeyChoices(choices); keys < 2 {
		errors = append(errors, fmt.Sprintf("Part %d (mrq): Must have at least 2 key choices, found %d", partNumber, keys))
	}

	for i, choice := range choices {
		errors = append(errors, validateChoice(choice, i, partNumber, question.TypeMRQ)...)
	}
	return errors
}

func validateFRQ(part question.Part, partNumber int) []string {
	partType := part.Type()
	errors := forbidChoices(part, partNumber, partType)

	if s, ok := part["answer"].(string); !ok || s == "" {
		errors = append(errors, fmt.Sprintf("Part %d (%s): 'answer' field is required and must be a string", partNumber, partType))
	}

	ai, ok := part["ai"].(map[string]any)
	if !ok || len(ai) == 0 {
		errors = append(errors, fmt.Sprintf("Part %d (%s): 'ai' field is required and must be an object", partNumber, partType))
		return errors
	}

	templateID := ai["ai_template_id"]
	if question.IsEmpty(templateID) {
		errors = append(errors, fmt.Sprintf("Part %d (%s): 'ai.ai_template_id' is required", partNumber, partType))
	} else if s := question.Stringify(templateID); !digitsRe.MatchString(s) || len(s) != 12 {
		errors = append(errors, fmt.Sprintf("Part %d (%s): 'ai.ai_template_id' must be exactly 12 digits", partNumber, partType))
	}

	return errors
}

func validateOrdering(part question.Part, partNumber int) []string {
	choices, errors := requireChoices(part, partNumber, question.TypeOQ)
	if choices == nil {
		return errors
	}

	if !allDistractors(choices) {
		errors = append(errors, fmt.Sprintf("Part %d (oq): All choices must have type 'distractor'", partNumber))
	}

	if d, _ := part["direction"].(string); d != "vertical" && d != "horizontal" {
		errors = append(errors, fmt.Sprintf("Part %d (oq): 'direction' must be 'vertical' or 'horizontal'", partNumber))
	}

	for i, choice := range choices {
		errors = append(errors, validateChoice(choice, i, partNumber, question.TypeOQ)...)
	}
	return errors
}

func validateGapText(part question.Part, partNumber int) []string {
	errors := forbidChoices(part, partNumber, question.TypeGapText)

	rawKeys, ok := part["gap_text_keys"].([]any)
	if !ok || len(rawKeys) == 0 {
		errors = append(errors, fmt.Sprintf("Part %d (gapText): 'gap_text_keys' must be a non-empty array", partNumber))
		return errors
	}

	withOrder := 0
	for i, raw := range rawKeys {
		key, _ := raw.(map[string]any)
		if s, ok := key["value"].(string); !ok || s == "" {
			errors = append(errors, fmt.Sprintf("Part %d (gapText): gap_text_key at index %d must have a 'value' property", partNumber, i))
		}
		if order, present := key["correct_order"]; present {
			if n, ok := question.IntValue(order); !ok || n < 1 {
				errors = append(errors, fmt.Sprintf("Part %d (gapText): 'correct_order' at index %d must be a positive number", partNumber, i))
			}
			withOrder++
		}
	}

	stem, _ := part["stem"].(string)
	stemGaps := strings.Count(stem, GapMarker)

	if stemGaps == 0 {
		errors = append(errors, fmt.Sprintf("Part %d (gapText): stem must have at least one gap.", partNumber))
		return errors
	}

	if len(rawKeys) < stemGaps {
		errors = append(errors, fmt.Sprintf("Part %d (gapText): 'gap_text_keys' found: %d, expected at least: %d", partNumber, len(rawKeys), stemGaps))
	}
	if withOrder != stemGaps {
		errors = append(errors, fmt.Sprintf("Part %d (gapText): 'correct_order' found: %d, expected: %d", partNumber, withOrder, stemGaps))
	}

	return errors
}

func validateString(part question.Part, partNumber int) []string {
	var errors []string

	if part["choices"] != nil {
		errors = append(errors, fmt.Sprintf("Part %d (string): 'choices' must be null", partNumber))
	}

	answers, ok := part["answer"].([]any)
	if !ok {
		errors = append(errors, fmt.Sprintf("Part %d (string): 'answer' must be an array of strings", partNumber))
		return errors
	}
	for i, ans := range answers {
		if _, ok := ans.(string); !ok {
			errors = append(errors, fmt.Sprintf("Part %d (string): answer at index %d must be a string", partNumber, i))
		}
	}

	if ai, ok := part["ai"].(map[string]any); ok && !question.IsEmpty(ai["ai_template_id"]) {
		if !validStringAITemplateIDs[question.Stringify(ai["ai_template_id"])] {
			errors = append(errors, fmt.Sprintf("Part %d (string): 'ai_template_id' is not a valid string ai template id.", partNumber))
		}
	}

	return errors
}

func validateOpinion(part question.Part, partNumber int) []string {
	choices, errors := requireChoices(part, partNumber, question.TypeOpinion)
	if choices == nil {
		return errors
	}

	if !allDistractors(choices) {
		errors = append(errors, fmt.Sprintf("Part %d (opinion): All choices must have type 'distractor'", partNumber))
	}

	for i, choice := range choices {
		errors = append(errors, validateChoice(choice, i, partNumber, question.TypeOpinion)...)
	}
	return errors
}

func validateMatching(part question.Part, partNumber int) []string {
	choices, errors := requireChoices(part, partNumber, question.TypeMatching)
	if choices == nil {
		return errors
	}

	if groups := distinctGroups(choices); len(groups) != 2 {
		errors = append(errors, fmt.Sprintf("Part %d (matching): Must have exactly 2 groups, found %d", partNumber, len(groups)))
	}

	if !allDistractors(choices) {
		errors = append(errors, fmt.Sprintf("Part %d (matching): All choices must have type 'distractor'", partNumber))
	}

	for i, choice := range choices {
		errors = append(errors, validateChoice(choice, i, partNumber, question.TypeMatching)...)
	}
	return errors
}

func validateGMRQ(part question.Part, partNumber int) []string {
	choices, errors := requireChoices(part, partNumber, question.TypeGMRQ)
	if choices == nil {
		return errors
	}

	if groups := distinctGroups(choices); len(groups) != 2 {
		errors = append(errors, fmt.Sprintf("Part %d (gmrq): Must have exactly 2 groups, found %d", partNumber, len(groups)))
	}

	keysByGroup := map[int]int{}
	for _, c := range choices {
		if t, _ := c["type"].(string); t == "key" {
			if g, ok := question.IntValue(c["group"]); ok {
				keysByGroup[g]++
			}
		}
	}
	for _, g := range []int{1, 2} {
		if keysByGroup[g] != 1 {
			errors = append(errors, fmt.Sprintf("Part %d (gmrq): Group %d must have exactly 1 key choice, found %d", partNumber, g, keysByGroup[g]))
		}
	}

	for i, choice := range choices {
		if g, ok := question.IntValue(choice["group"]); !ok || (g != 1 && g != 2) {
			errors = append(errors, fmt.Sprintf("Part %d (gmrq), Choice %d: 'group' must be 1 or 2", partNumber, i+1))
		}
		errors = append(errors, validateChoice(choice, i, partNumber, question.TypeGMRQ)...)
	}
	return errors
}

func validateCounting(part question.Part, partNumber int) []string {
	errors := forbidChoices(part, partNumber, question.TypeCounting)

	if s, ok := part["answer"].(string); !ok || !digitsRe.MatchString(s) {
		errors = append(errors, fmt.Sprintf("Part %d (counting): 'answer' field must be a string representing a number", partNumber))
	}

	if s, ok := part["grid_size"].(string); !ok || !gridSizeRe.MatchString(s) {
		errors = append(errors, fmt.Sprintf("Part %d (counting): 'grid_size' must be a string in format 'rows×columns'", partNumber))
	}

	return errors
}

func validatePuzzle(part question.Part, partNumber int) []string {
	errors := forbidChoices(part, partNumber, question.TypePuzzle)

	for _, field := range []string{
		"puzzleColumns", "puzzleImage", "puzzleImageHeight",
		"puzzleImageSplited", "puzzleImageWidth", "puzzleRows",
	} {
		if v, ok := part[field]; !ok || v == nil {
			errors = append(errors, fmt.Sprintf("Part %d (puzzle): Missing required field '%s'", partNumber, field))
		}
	}

	for _, numField := range []string{"puzzleColumns", "puzzleRows", "puzzleImageHeight", "puzzleImageWidth"} {
		if v := part[numField]; !question.IsEmpty(v) && !digitsRe.MatchString(question.Stringify(v)) {
			errors = append(errors, fmt.Sprintf("Part %d (puzzle): '%s' must be a string representing a number", partNumber, numField))
		}
	}

	if v := part["puzzleImage"]; !question.IsEmpty(v) {
		if _, ok := v.(string); !ok {
			errors = append(errors, fmt.Sprintf("Part %d (puzzle): 'puzzleImage' must be a string URL", partNumber))
		}
	}

	pieces, ok := part["puzzleImageSplited"].([]any)
	if !ok || len(pieces) == 0 {
		errors = append(errors, fmt.Sprintf("Part %d (puzzle): 'puzzleImageSplited' must be a non-empty array", partNumber))
		return errors
	}

	rows, _ := strconv.Atoi(question.Stringify(part["puzzleRows"]))
	cols, _ := strconv.Atoi(question.Stringify(part["puzzleColumns"]))
	if expected := rows * cols; expected > 0 && len(pieces) != expected {
		errors = append(errors, fmt.Sprintf("Part %d (puzzle): Expected %d image pieces based on rows and columns, but found %d", partNumber, expected, len(pieces)))
	}

	for i, raw := range pieces {
		piece, _ := raw.(map[string]any)
		for _, field := range []string{"index", "fixed_order", "correct_order"} {
			if n, ok := question.IntValue(piece[field]); !ok || n == 0 {
				errors = append(errors, fmt.Sprintf("Part %d (puzzle): Piece at index %d is missing or has invalid '%s'", partNumber, i, field))
			}
		}
		if s, ok := piece["src"].(string); !ok || s == "" {
			errors = append(errors, fmt.Sprintf("Part %d (puzzle): Piece at index %d is missing or has invalid 'src'", partNumber, i))
		}
	}

	return errors
}

func validateInputBox(part question.Part, partNumber int) []string {
	errors := forbidChoices(part, partNumber, question.TypeInputBox)

	answer, ok := part["answer"].(map[string]any)
	if !ok || len(answer) == 0 {
		errors = append(errors, fmt.Sprintf("Part %d (input_box): 'answer' field must be an object", partNumber))
		return errors
	}

	if s, ok := answer["value"].(string); !ok || s == "" {
		errors = append(errors, fmt.Sprintf("Part %d (input_box): 'answer.value' must be a string", partNumber))
	}

	constraints, ok := answer["constrains"].(map[string]any)
	if !ok || len(constraints) == 0 {
		errors = append(errors, fmt.Sprintf("Part %d (input_box): 'answer.constrains' must be an object", partNumber))
		return errors
	}

	if t, _ := constraints["type"].(string); t != "decimal" && t != "integer" {
		errors = append(errors, fmt.Sprintf("Part %d (input_box): 'constrains.type' must be 'decimal' or 'integer'", partNumber))
	}

	if unit, present := answer["unit"]; present && unit != nil {
		if _, ok := unit.(string); !ok {
			errors = append(errors, fmt.Sprintf("Part %d (input_box): 'answer.unit' must be a string or undefined", partNumber))
		}
	}

	return errors
}

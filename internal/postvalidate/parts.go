package postvalidate

import (
	"fmt"

	"github.com/edforge/qconvert/internal/question"
)

// shapeChecks maps each converted part type to its required-field rules.
// Unlisted types (none today) pass the generic checks only.
var shapeChecks = map[string]func(part map[string]any, position int) []string{
	"counting": checkCounting,
	"frq":      checkFRQ,
	"gap":      checkGap,
	"gmrq":     checkGMRQ,
	"input":    checkInput,
	"matching": checkMatching,
	"mcq":      checkMCQ,
	"mrq":      checkMRQ,
	"opinion":  checkOpinion,
	"ordering": checkOrdering,
	"puzzle":   checkPuzzle,
	"string":   checkString,
}

func checkCounting(part map[string]any, pos int) []string {
	var errs []string

	grid, present := part["grid"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (counting): Missing 'grid' object", pos))
	} else if g, ok := grid.(map[string]any); ok {
		_, hasRows := g["rows"]
		_, hasCols := g["columns"]
		if !hasRows || !hasCols {
			errs = append(errs, fmt.Sprintf("Part %d (counting): 'grid' must have 'rows' and 'columns'", pos))
		}
		if _, ok := question.IntValue(g["rows"]); !ok {
			errs = append(errs, fmt.Sprintf("Part %d (counting): 'grid.rows' must be an integer", pos))
		}
		if _, ok := question.IntValue(g["columns"]); !ok {
			errs = append(errs, fmt.Sprintf("Part %d (counting): 'grid.columns' must be an integer", pos))
		}
	}

	if answer, present := part["correct_answer"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (counting): Missing 'correct_answer'", pos))
	} else if _, ok := question.IntValue(answer); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (counting): 'correct_answer' must be an integer", pos))
	}
	return errs
}

func checkFRQ(part map[string]any, pos int) []string {
	var errs []string

	if answers, present := part["acceptable_answers"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (frq): Missing 'acceptable_answers'", pos))
	} else if _, ok := answers.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (frq): 'acceptable_answers' must be an array", pos))
	}

	id, present := part["ai_template_id"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (frq): 'ai_template_id' is required", pos))
		return errs
	}
	s, ok := id.(string)
	if !ok {
		errs = append(errs, fmt.Sprintf("Part %d (frq): 'ai_template_id' must be a string", pos))
	} else if !allDigits(s) || len(s) != 12 {
		errs = append(errs, fmt.Sprintf("Part %d (frq): 'ai_template_id' must be exactly 12 digits", pos))
	}
	return errs
}

func checkGap(part map[string]any, pos int) []string {
	var errs []string

	keys, present := part["gap_keys"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (gap): Missing 'gap_keys'", pos))
	} else if arr, ok := keys.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (gap): 'gap_keys' must be an array", pos))
	} else {
		for i, raw := range arr {
			key, _ := raw.(map[string]any)
			if _, ok := key["value"]; !ok {
				errs = append(errs, fmt.Sprintf("Part %d (gap): gap_key %d missing 'value'", pos, i))
			}
			if _, ok := key["display_order"]; !ok {
				errs = append(errs, fmt.Sprintf("Part %d (gap): gap_key %d missing 'display_order'", pos, i))
			}
		}
	}

	if answer, present := part["correct_answer"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (gap): Missing 'correct_answer'", pos))
	} else if _, ok := answer.(string); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (gap): 'correct_answer' must be a string", pos))
	}
	return errs
}

// checkGMRQ validates grouped multi-response parts: every choice must name
// its group, and the correct answer is a list spanning the groups.
func checkGMRQ(part map[string]any, pos int) []string {
	var errs []string

	choices, present := part["choices"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (gmrq): Missing 'choices'", pos))
	} else if arr, ok := choices.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (gmrq): 'choices' must be an array", pos))
	} else {
		for i, raw := range arr {
			choice, _ := raw.(map[string]any)
			if _, ok := question.IntValue(choice["group"]); !ok {
				errs = append(errs, fmt.Sprintf("Part %d (gmrq): choice %d missing integer 'group'", pos, i))
			}
		}
	}

	if answer, present := part["correct_answer"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (gmrq): Missing 'correct_answer'", pos))
	} else if _, ok := answer.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (gmrq): 'correct_answer' must be an array", pos))
	}
	return errs
}

func checkInput(part map[string]any, pos int) []string {
	var errs []string

	answer, present := part["correct_answer"]
	if !present {
		return []string{fmt.Sprintf("Part %d (input): Missing 'correct_answer'", pos)}
	}
	obj, ok := answer.(map[string]any)
	if !ok {
		return errs
	}
	if _, ok := obj["value"]; !ok {
		errs = append(errs, fmt.Sprintf("Part %d (input): 'correct_answer.value' is required", pos))
	}
	constraints, present := obj["constraints"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (input): 'correct_answer.constraints' is required", pos))
	} else if c, ok := constraints.(map[string]any); ok {
		if _, ok := c["type"]; !ok {
			errs = append(errs, fmt.Sprintf("Part %d (input): 'constraints.type' is required", pos))
		}
	}
	return errs
}

func checkMatching(part map[string]any, pos int) []string {
	var errs []string

	items, present := part["items"]
	if !present {
		return []string{fmt.Sprintf("Part %d (matching): Missing 'items'", pos)}
	}
	obj, ok := items.(map[string]any)
	if !ok {
		return errs
	}
	for _, field := range []string{"A", "B", "correct_answer"} {
		if _, ok := obj[field]; !ok {
			errs = append(errs, fmt.Sprintf("Part %d (matching): 'items.%s' is required", pos, field))
		}
	}
	return errs
}

func checkMCQ(part map[string]any, pos int) []string {
	var errs []string

	choices, present := part["choices"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (mcq): Missing 'choices'", pos))
	} else if arr, ok := choices.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (mcq): 'choices' must be an array", pos))
	} else {
		for i, raw := range arr {
			choice, _ := raw.(map[string]any)
			for _, field := range []string{"label", "value", "is_correct"} {
				if _, ok := choice[field]; !ok {
					errs = append(errs, fmt.Sprintf("Part %d (mcq): choice %d missing '%s'", pos, i, field))
				}
			}
		}
	}

	answer, present := part["correct_answer"]
	if !present {
		errs = append(errs, fmt.Sprintf("Part %d (mcq): Missing 'correct_answer'", pos))
	} else if obj, ok := answer.(map[string]any); ok {
		_, hasLabel := obj["label"]
		_, hasValue := obj["value"]
		if !hasLabel || !hasValue {
			errs = append(errs, fmt.Sprintf("Part %d (mcq): 'correct_answer' must have 'label' and 'value'", pos))
		}
	}
	return errs
}

func checkMRQ(part map[string]any, pos int) []string {
	var errs []string

	if choices, present := part["choices"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (mrq): Missing 'choices'", pos))
	} else if _, ok := choices.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (mrq): 'choices' must be an array", pos))
	}

	if answer, present := part["correct_answer"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (mrq): Missing 'correct_answer'", pos))
	} else if _, ok := answer.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (mrq): 'correct_answer' must be an array", pos))
	}
	return errs
}

func checkOpinion(part map[string]any, pos int) []string {
	var errs []string

	if choices, present := part["choices"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (opinion): Missing 'choices'", pos))
	} else if _, ok := choices.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (opinion): 'choices' must be an array", pos))
	}

	// Opinion parts have no right answer.
	if _, present := part["correct_answer"]; present {
		errs = append(errs, fmt.Sprintf("Part %d (opinion): Should not have 'correct_answer'", pos))
	}
	return errs
}

func checkOrdering(part map[string]any, pos int) []string {
	var errs []string

	if dir, present := part["direction"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (ordering): Missing 'direction'", pos))
	} else if dir != "vertical" && dir != "horizontal" {
		errs = append(errs, fmt.Sprintf("Part %d (ordering): 'direction' must be 'vertical' or 'horizontal'", pos))
	}

	if items, present := part["items"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (ordering): Missing 'items'", pos))
	} else if _, ok := items.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (ordering): 'items' must be an array", pos))
	}

	if answer, present := part["correct_answer"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (ordering): Missing 'correct_answer'", pos))
	} else if _, ok := answer.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (ordering): 'correct_answer' must be an array", pos))
	}
	return errs
}

func checkPuzzle(part map[string]any, pos int) []string {
	var errs []string

	if _, present := part["rows"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (puzzle): Missing 'rows'", pos))
	}
	if _, present := part["columns"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (puzzle): Missing 'columns'", pos))
	}

	if pieces, present := part["pieces"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (puzzle): Missing 'pieces'", pos))
	} else if _, ok := pieces.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (puzzle): 'pieces' must be an array", pos))
	}
	return errs
}

func checkString(part map[string]any, pos int) []string {
	var errs []string

	if id, present := part["ai_template_id"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (string): Missing 'ai_template_id'", pos))
	} else if _, ok := id.(string); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (string): 'ai_template_id' must be a string", pos))
	}

	if answers, present := part["acceptable_answers"]; !present {
		errs = append(errs, fmt.Sprintf("Part %d (string): Missing 'acceptable_answers'", pos))
	} else if _, ok := answers.([]any); !ok {
		errs = append(errs, fmt.Sprintf("Part %d (string): 'acceptable_answers' must be an array", pos))
	}
	return errs
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

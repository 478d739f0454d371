package postvalidate

import (
	"strings"
	"testing"

	"github.com/edforge/qconvert/internal/question"
)

func convertedMCQPart(n int) map[string]any {
	return map[string]any{
		"n":    float64(n),
		"type": "mcq",
		"stem": "<p>Pick one</p>",
		"choices": []any{
			map[string]any{"label": "1", "value": "<p>right</p>", "is_correct": true},
			map[string]any{"label": "2", "value": "<p>wrong</p>", "is_correct": false},
		},
		"correct_answer": map[string]any{"label": "1", "value": "<p>right</p>"},
		"explanation":    nil,
	}
}

func convertedDoc(parts ...any) question.Converted {
	doc := question.Converted{
		"question_id":     "q1",
		"parent_id":       "p1",
		"language_code":   "en",
		"language":        "English",
		"country_code":    "us",
		"country":         "United States",
		"subject":         "Math",
		"subject_id":      "m-1",
		"grade":           "4",
		"grade_id":        "g-4",
		"number_of_parts": len(parts),
		"section_id":      "s-9",
		"source":          "human",
		"content": map[string]any{
			"parts": parts,
		},
	}
	if len(parts) > 1 {
		doc["content"].(map[string]any)["statement"] = "<p>Shared intro</p>"
	}
	return doc
}

func assertHasError(t *testing.T, errs []string, want string) {
	t.Helper()
	for _, e := range errs {
		if strings.Contains(e, want) {
			return
		}
	}
	t.Errorf("no error containing %q in %v", want, errs)
}

func TestValidateCleanSinglePart(t *testing.T) {
	ok, errs := Validate(convertedDoc(convertedMCQPart(1)))
	if !ok || len(errs) != 0 {
		t.Fatalf("want valid, got errors: %v", errs)
	}
}

func TestValidateCleanMultiPart(t *testing.T) {
	ok, errs := Validate(convertedDoc(convertedMCQPart(1), convertedMCQPart(2)))
	if !ok || len(errs) != 0 {
		t.Fatalf("want valid, got errors: %v", errs)
	}
}

func TestValidateMissingRootField(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1))
	delete(doc, "grade")
	ok, errs := Validate(doc)
	if ok || len(errs) == 0 {
		t.Fatal("want schema error for missing grade")
	}
}

func TestValidateStatementRequiredWhenMultiPart(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1), convertedMCQPart(2))
	delete(doc["content"].(map[string]any), "statement")
	_, errs := Validate(doc)
	assertHasError(t, errs, "Multi-part questions must have 'statement' in content")
}

func TestValidateStatementForbiddenWhenSinglePart(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1))
	doc["content"].(map[string]any)["statement"] = "<p>stray</p>"
	_, errs := Validate(doc)
	assertHasError(t, errs, "Single-part questions should not have 'statement' in content")
}

func TestValidatePartsCountMismatch(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1))
	doc["number_of_parts"] = 3
	_, errs := Validate(doc)
	assertHasError(t, errs, "Parts count mismatch: content has 1 parts but number_of_parts is 3")
}

func TestValidateLanguageMismatch(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1))
	doc["language"] = "Arabic"
	_, errs := Validate(doc)
	assertHasError(t, errs, "Language mismatch: got 'Arabic', expected 'English'")
}

func TestValidateInvalidCountryCode(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1))
	doc["country_code"] = "xx"
	doc["country"] = "Nowhere"
	_, errs := Validate(doc)
	assertHasError(t, errs, "Invalid country_code: 'xx'")
}

func TestValidateNullCountryAllowed(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(1))
	doc["country_code"] = nil
	doc["country"] = nil
	ok, errs := Validate(doc)
	if !ok {
		t.Fatalf("null country pair should pass, got: %v", errs)
	}
}

func TestValidatePartPositionMismatch(t *testing.T) {
	doc := convertedDoc(convertedMCQPart(2))
	_, errs := Validate(doc)
	assertHasError(t, errs, "Part number 'n' (2) does not match position")
}

func TestValidateShapes(t *testing.T) {
	tests := []struct {
		name string
		part map[string]any
		want string
	}{
		{
			"counting missing grid",
			map[string]any{"n": float64(1), "type": "counting", "stem": "s", "correct_answer": float64(6)},
			"(counting): Missing 'grid' object",
		},
		{
			"counting fractional answer",
			map[string]any{
				"n": float64(1), "type": "counting", "stem": "s",
				"grid":           map[string]any{"rows": float64(2), "columns": float64(3)},
				"correct_answer": 2.5,
			},
			"(counting): 'correct_answer' must be an integer",
		},
		{
			"frq short template id",
			map[string]any{
				"n": float64(1), "type": "frq", "stem": "s",
				"acceptable_answers": []any{"a"},
				"ai_template_id":     "12345",
			},
			"(frq): 'ai_template_id' must be exactly 12 digits",
		},
		{
			"gap key without display_order",
			map[string]any{
				"n": float64(1), "type": "gap", "stem": "s",
				"gap_keys":       []any{map[string]any{"value": "x"}},
				"correct_answer": "x",
			},
			"gap_key 0 missing 'display_order'",
		},
		{
			"gmrq choice without group",
			map[string]any{
				"n": float64(1), "type": "gmrq", "stem": "s",
				"choices":        []any{map[string]any{"label": "1", "value": "v", "is_correct": true}},
				"correct_answer": []any{"v"},
			},
			"(gmrq): choice 0 missing integer 'group'",
		},
		{
			"input missing constraints type",
			map[string]any{
				"n": float64(1), "type": "input", "stem": "s",
				"correct_answer": map[string]any{"value": "5", "constraints": map[string]any{}},
			},
			"(input): 'constraints.type' is required",
		},
		{
			"matching missing column B",
			map[string]any{
				"n": float64(1), "type": "matching", "stem": "s",
				"items": map[string]any{"A": []any{"a"}, "correct_answer": []any{}},
			},
			"(matching): 'items.B' is required",
		},
		{
			"mcq choice missing label",
			map[string]any{
				"n": float64(1), "type": "mcq", "stem": "s",
				"choices":        []any{map[string]any{"value": "v", "is_correct": true}},
				"correct_answer": map[string]any{"label": "1", "value": "v"},
			},
			"(mcq): choice 0 missing 'label'",
		},
		{
			"mrq scalar correct answer",
			map[string]any{
				"n": float64(1), "type": "mrq", "stem": "s",
				"choices":        []any{},
				"correct_answer": "v",
			},
			"(mrq): 'correct_answer' must be an array",
		},
		{
			"opinion with correct answer",
			map[string]any{
				"n": float64(1), "type": "opinion", "stem": "s",
				"choices":        []any{},
				"correct_answer": "anything",
			},
			"(opinion): Should not have 'correct_answer'",
		},
		{
			"ordering bad direction",
			map[string]any{
				"n": float64(1), "type": "ordering", "stem": "s",
				"direction":      "diagonal",
				"items":          []any{},
				"correct_answer": []any{},
			},
			"'direction' must be 'vertical' or 'horizontal'",
		},
		{
			"puzzle missing pieces",
			map[string]any{
				"n": float64(1), "type": "puzzle", "stem": "s",
				"rows": float64(2), "columns": float64(2),
			},
			"(puzzle): Missing 'pieces'",
		},
		{
			"string answers not array",
			map[string]any{
				"n": float64(1), "type": "string", "stem": "s",
				"ai_template_id":     "593158513739",
				"acceptable_answers": "oops",
			},
			"(string): 'acceptable_answers' must be an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := Validate(convertedDoc(tt.part))
			if ok {
				t.Fatal("want invalid")
			}
			assertHasError(t, errs, tt.want)
		})
	}
}

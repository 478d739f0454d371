package prevalidate

import (
	"strings"
	"testing"

	"github.com/edforge/qconvert/internal/question"
)

func choice(choiceType string, index, fixedOrder int) map[string]any {
	return map[string]any{
		"type":         choiceType,
		"html_content": "<p>option</p>",
		"values":       []any{},
		"unit":         nil,
		"index":        float64(index),
		"fixed_order":  float64(fixedOrder),
	}
}

func mcqPart(n int, choices ...any) map[string]any {
	return map[string]any{
		"n":          float64(n),
		"type":       "mcq",
		"stem":       "<p>Pick one</p>",
		"standalone": true,
		"choices":    choices,
	}
}

func validDoc(parts ...any) question.Document {
	return question.Document{
		"question_id": "q1",
		"language":    "en",
		"country":     "us",
		"metadata":    map[string]any{"mapped_id": "q1", "id": "p1"},
		"parts":       parts,
	}
}

func containing(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("no message containing %q in %v", substr, msgs)
}

func notContaining(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			t.Errorf("unexpected message containing %q: %q", substr, m)
		}
	}
}

func TestValidateCleanDocument(t *testing.T) {
	doc := validDoc(mcqPart(1, choice("key", 0, 1), choice("distractor", 1, 2)))
	errs, warns := Validate(doc, "q1.json")
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
	if len(warns) != 0 {
		t.Errorf("expected no warnings, got %v", warns)
	}
}

func TestValidateMissingPartsIsHardStop(t *testing.T) {
	doc := question.Document{"metadata": map[string]any{}}
	errs, _ := Validate(doc, "q1.json")
	containing(t, errs, "Missing or invalid 'parts' array")
	// The hard stop skips structure checks but identity folding still runs.
	notContaining(t, errs, "metadata' object")
}

func TestValidateEmptyParts(t *testing.T) {
	doc := question.Document{"parts": []any{}}
	errs, _ := Validate(doc, "q1.json")
	containing(t, errs, "'parts' array cannot be empty")
}

func TestValidateMissingMetadataObject(t *testing.T) {
	doc := question.Document{
		"parts": []any{mcqPart(1, choice("key", 0, 1))},
	}
	errs, _ := Validate(doc, "q1.json")
	containing(t, errs, "Missing or invalid 'metadata' object")
}

func TestValidateMultipartWithoutStatementWarns(t *testing.T) {
	doc := validDoc(
		mcqPart(1, choice("key", 0, 1), choice("distractor", 1, 2)),
		map[string]any{"n": float64(2), "type": "mcq", "stem": "<p>s</p>", "standalone": true,
			"choices": []any{choice("key", 0, 1), choice("distractor", 1, 2)}},
	)
	errs, warns := Validate(doc, "q1.json")
	containing(t, warns, "should have a 'statement' field")
	notContaining(t, errs, "statement")
}

func TestValidateIdentityFailureFoldedIntoErrors(t *testing.T) {
	doc := validDoc(mcqPart(1, choice("key", 0, 1), choice("distractor", 1, 2)))
	errs, _ := Validate(doc, "other.json")
	containing(t, errs, "ID mismatch")
}

func TestValidateUnknownTypeStopsThatPartOnly(t *testing.T) {
	bad := map[string]any{"n": float64(1), "type": "riddle", "stem": "<p>?</p>", "standalone": true}
	good := mcqPart(2, choice("key", 0, 1), choice("distractor", 1, 2))
	doc := validDoc(bad, good)
	doc["statement"] = "<p>intro</p>"
	errs, _ := Validate(doc, "q1.json")
	containing(t, errs, "Invalid type 'riddle'")
	// Sibling part is still fully validated and clean.
	notContaining(t, errs, "Part 2")
}

func TestValidatePartNumberMismatch(t *testing.T) {
	doc := validDoc(mcqPart(7, choice("key", 0, 1), choice("distractor", 1, 2)))
	errs, _ := Validate(doc, "q1.json")
	containing(t, errs, "does not match its position")
}

func TestMCQKeyCardinality(t *testing.T) {
	tests := []struct {
		name    string
		choices []any
		wantErr bool
	}{
		{"exactly one key", []any{choice("key", 0, 1), choice("distractor", 1, 2)}, false},
		{"zero keys", []any{choice("distractor", 0, 1), choice("distractor", 1, 2)}, true},
		{"two keys", []any{choice("key", 0, 1), choice("key", 1, 2)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validatePart(mcqPart(1, tt.choices...), 1, "us")
			if tt.wantErr {
				containing(t, errs, "exactly 1 key choice")
			} else if len(errs) != 0 {
				t.Errorf("expected clean part, got %v", errs)
			}
		})
	}
}

func TestMCQEgyptChoiceCap(t *testing.T) {
	choices := []any{
		choice("key", 0, 1), choice("distractor", 1, 2), choice("distractor", 2, 3),
		choice("distractor", 3, 4), choice("distractor", 4, 5),
	}
	errs := validatePart(mcqPart(1, choices...), 1, "eg")
	containing(t, errs, "at most 4 choices")

	errs = validatePart(mcqPart(1, choices...), 1, "us")
	notContaining(t, errs, "at most 4 choices")
}

func TestMRQRequiresTwoKeys(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "mrq", "stem": "<p>s</p>", "standalone": true,
		"choices": []any{choice("key", 0, 1), choice("distractor", 1, 2)},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "at least 2 key choices, found 1")
}

func TestGapTextCountLaw(t *testing.T) {
	stem := `<p>The <span data-node-variation="gap"></span> and <span data-node-variation="gap"></span>.</p>`
	part := map[string]any{
		"n": float64(1), "type": "gapText", "stem": stem, "standalone": true,
		"choices": []any{},
		"gap_text_keys": []any{
			map[string]any{"value": "sun", "correct_order": float64(1)},
			map[string]any{"value": "moon"},
		},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "'correct_order' found: 1, expected: 2")
}

func TestGapTextStemWithoutGaps(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "gapText", "stem": "<p>no gaps here</p>", "standalone": true,
		"choices":       []any{},
		"gap_text_keys": []any{map[string]any{"value": "x", "correct_order": float64(1)}},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "stem must have at least one gap")
}

func TestOrderingRequiresDistractorsAndDirection(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "oq", "stem": "<p>s</p>", "standalone": true,
		"direction": "diagonal",
		"choices":   []any{choice("key", 0, 1), choice("distractor", 1, 2)},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "All choices must have type 'distractor'")
	containing(t, errs, "'direction' must be 'vertical' or 'horizontal'")
}

func TestMatchingGroups(t *testing.T) {
	c1 := choice("distractor", 0, 1)
	c1["group"] = float64(1)
	c2 := choice("distractor", 1, 2)
	c2["group"] = float64(1)
	part := map[string]any{
		"n": float64(1), "type": "matching", "stem": "<p>s</p>", "standalone": true,
		"choices": []any{c1, c2},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "Must have exactly 2 groups, found 1")
}

func TestGMRQOneKeyPerGroup(t *testing.T) {
	mk := func(ctype string, group, index int) map[string]any {
		c := choice(ctype, index, index+1)
		c["group"] = float64(group)
		return c
	}
	part := map[string]any{
		"n": float64(1), "type": "gmrq", "stem": "<p>s</p>", "standalone": true,
		"choices": []any{mk("key", 1, 0), mk("distractor", 1, 1), mk("distractor", 2, 2)},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "Group 2 must have exactly 1 key choice, found 0")
}

func TestCountingFormats(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "counting", "stem": "<p>s</p>", "standalone": true,
		"choices": []any{}, "answer": "twelve", "grid_size": "3x4",
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "'answer' field must be a string representing a number")
	containing(t, errs, "format 'rows×columns'")

	part["answer"] = "12"
	part["grid_size"] = "3×4"
	if errs := validatePart(part, 1, "us"); len(errs) != 0 {
		t.Errorf("expected clean counting part, got %v", errs)
	}
}

func TestInputBoxConstraints(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "input_box", "stem": "<p>s</p>", "standalone": true,
		"choices": []any{},
		"answer": map[string]any{
			"value":     "3.14",
			"constrains": map[string]any{"type": "fraction"},
		},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "'constrains.type' must be 'decimal' or 'integer'")
}

func TestPuzzlePieceCount(t *testing.T) {
	piece := func(i int) map[string]any {
		return map[string]any{
			"index": float64(i), "fixed_order": float64(i), "correct_order": float64(i),
			"src": "https://img/piece.png",
		}
	}
	part := map[string]any{
		"n": float64(1), "type": "puzzle", "stem": "<p>s</p>", "standalone": true,
		"choices":            []any{},
		"puzzleColumns":      "2",
		"puzzleRows":         "2",
		"puzzleImage":        "https://img/full.png",
		"puzzleImageHeight":  "100",
		"puzzleImageWidth":   "100",
		"puzzleImageSplited": []any{piece(1), piece(2), piece(3)},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "Expected 4 image pieces")
}

func TestFRQTemplateID(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "frq_ai", "stem": "<p>s</p>", "standalone": true,
		"choices": []any{}, "answer": "free text",
		"ai": map[string]any{"ai_template_id": "12345"},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "must be exactly 12 digits")

	part["ai"] = map[string]any{"ai_template_id": "123456789012"}
	if errs := validatePart(part, 1, "us"); len(errs) != 0 {
		t.Errorf("expected clean frq_ai part, got %v", errs)
	}
}

func TestStringAnswerAndTemplateWhitelist(t *testing.T) {
	part := map[string]any{
		"n": float64(1), "type": "string", "stem": "<p>s</p>", "standalone": true,
		"choices": nil,
		"answer":  []any{"yes", "oui"},
		"ai":      map[string]any{"ai_template_id": "000000000000"},
	}
	errs := validatePart(part, 1, "us")
	containing(t, errs, "not a valid string ai template id")

	part["ai"] = map[string]any{"ai_template_id": "593158513739"}
	if errs := validatePart(part, 1, "us"); len(errs) != 0 {
		t.Errorf("expected clean string part, got %v", errs)
	}
}

func TestRootExplanationSinglePartWarns(t *testing.T) {
	doc := validDoc(mcqPart(1, choice("key", 0, 1), choice("distractor", 1, 2)))
	doc["answer"] = "<div>not a paragraph</div>"
	errs, warns := Validate(doc, "q1.json")
	containing(t, warns, "must contain a <p> tag")
	if len(errs) != 0 {
		t.Errorf("single-part explanation shape must not block: %v", errs)
	}
}

func TestRootExplanationMultipartErrors(t *testing.T) {
	doc := validDoc(
		mcqPart(1, choice("key", 0, 1), choice("distractor", 1, 2)),
		mcqPart(2, choice("key", 0, 1), choice("distractor", 1, 2)),
	)
	doc["statement"] = "<p>intro</p>"
	doc["answer"] = "<div><div>only one child</div></div>"
	errs, _ := Validate(doc, "q1.json")
	containing(t, errs, "must have 2 direct child <div>s")
}

func TestRootExplanationMultipartWellFormed(t *testing.T) {
	doc := validDoc(
		mcqPart(1, choice("key", 0, 1), choice("distractor", 1, 2)),
		mcqPart(2, choice("key", 0, 1), choice("distractor", 1, 2)),
	)
	doc["statement"] = "<p>intro</p>"
	doc["answer"] = "<div><div>first</div><div>second</div></div>"
	errs, _ := Validate(doc, "q1.json")
	if len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

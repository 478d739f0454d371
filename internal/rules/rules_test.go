package rules

import (
	"testing"

	jsonata "github.com/blues/jsonata-go"

	"github.com/edforge/qconvert/internal/question"
)

func TestEveryPartTypeHasARule(t *testing.T) {
	for _, pt := range question.AllPartTypes() {
		name, ok := RuleName(pt)
		if !ok {
			t.Errorf("part type %q has no rule", pt)
			continue
		}
		if _, err := NewRegistry().expr(name); err != nil {
			t.Errorf("rule %q for %q does not compile: %v", name, pt, err)
		}
	}
}

func TestFRQSharesRuleWithFRQAI(t *testing.T) {
	frq, _ := RuleName(question.TypeFRQ)
	frqAI, _ := RuleName(question.TypeFRQAI)
	if frq != frqAI || frq != "frq" {
		t.Errorf("frq=%q frq_ai=%q, want both %q", frq, frqAI, "frq")
	}
}

func TestEvalMCQRule(t *testing.T) {
	part := question.Part{
		"n":          float64(1),
		"type":       "mcq",
		"stem":       "<p>2+2?</p>",
		"standalone": true,
		"choices": []any{
			map[string]any{"type": "key", "html_content": "<p>4</p>", "values": []any{}, "unit": nil, "index": float64(0), "fixed_order": float64(1)},
			map[string]any{"type": "distractor", "html_content": "<p>5</p>", "values": []any{}, "unit": nil, "index": float64(1), "fixed_order": float64(2)},
		},
	}

	expl := "<p>Because.</p>"
	got, err := NewRegistry().Eval(question.TypeMCQ, part, "en", &expl)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}

	if got["type"] != "mcq" {
		t.Errorf("type = %v, want mcq", got["type"])
	}
	if got["stem"] != "<p>2+2?</p>" {
		t.Errorf("stem = %v", got["stem"])
	}
	if got["explanation"] != expl {
		t.Errorf("explanation = %v, want %q", got["explanation"], expl)
	}

	choices, ok := got["choices"].([]any)
	if !ok || len(choices) != 2 {
		t.Fatalf("choices = %v, want 2 entries", got["choices"])
	}
	first, _ := choices[0].(map[string]any)
	if first["is_correct"] != true || first["value"] != "<p>4</p>" {
		t.Errorf("first choice = %v", first)
	}

	correct, ok := got["correct_answer"].(map[string]any)
	if !ok {
		t.Fatalf("correct_answer = %T, want object", got["correct_answer"])
	}
	if correct["value"] != "<p>4</p>" {
		t.Errorf("correct_answer.value = %v", correct["value"])
	}
	if correct["label"] != "1" {
		t.Errorf("correct_answer.label = %v, want \"1\"", correct["label"])
	}
}

func TestEvalCountingRuleParsesGrid(t *testing.T) {
	part := question.Part{
		"n":         float64(1),
		"type":      "counting",
		"stem":      "<p>Count</p>",
		"answer":    "12",
		"grid_size": "3×4",
	}

	got, err := NewRegistry().Eval(question.TypeCounting, part, "en", nil)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}

	grid, ok := got["grid"].(map[string]any)
	if !ok {
		t.Fatalf("grid = %T, want object", got["grid"])
	}
	if rows, _ := question.IntValue(grid["rows"]); rows != 3 {
		t.Errorf("grid.rows = %v, want 3", grid["rows"])
	}
	if cols, _ := question.IntValue(grid["columns"]); cols != 4 {
		t.Errorf("grid.columns = %v, want 4", grid["columns"])
	}
	if n, _ := question.IntValue(got["correct_answer"]); n != 12 {
		t.Errorf("correct_answer = %v, want 12", got["correct_answer"])
	}
}

func TestEvalGapRule(t *testing.T) {
	part := question.Part{
		"n":    float64(1),
		"type": "gapText",
		"stem": `<p><span data-node-variation="gap"></span></p>`,
		"gap_text_keys": []any{
			map[string]any{"value": "sun", "correct_order": float64(1)},
			map[string]any{"value": "moon"},
		},
	}

	got, err := NewRegistry().Eval(question.TypeGapText, part, "en", nil)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}

	keys, ok := got["gap_keys"].([]any)
	if !ok || len(keys) != 2 {
		t.Fatalf("gap_keys = %v, want 2 entries", got["gap_keys"])
	}
	if got["correct_answer"] != "sun" {
		t.Errorf("correct_answer = %v, want \"sun\"", got["correct_answer"])
	}
}

func TestEveryRuleEvaluates(t *testing.T) {
	choices := []any{
		map[string]any{"type": "key", "html_content": "<p>a</p>", "values": []any{"<p>b</p>"}, "unit": nil, "index": float64(0), "fixed_order": float64(1), "group": float64(1)},
		map[string]any{"type": "distractor", "html_content": "<p>b</p>", "values": []any{}, "unit": nil, "index": float64(1), "fixed_order": float64(2), "group": float64(2)},
	}

	parts := map[question.PartType]question.Part{
		question.TypeMCQ:     {"n": float64(1), "stem": "s", "choices": choices},
		question.TypeMRQ:     {"n": float64(1), "stem": "s", "choices": choices},
		question.TypeGMRQ:    {"n": float64(1), "stem": "s", "choices": choices},
		question.TypeOpinion: {"n": float64(1), "stem": "s", "choices": choices},
		question.TypeOQ:      {"n": float64(1), "stem": "s", "direction": "vertical", "choices": choices},
		question.TypeMatching: {
			"n": float64(1), "stem": "s", "choices": choices,
		},
		question.TypeCounting: {"n": float64(1), "stem": "s", "grid_size": "2×3", "answer": "6"},
		question.TypeGapText: {
			"n": float64(1), "stem": `<p><span data-node-variation="gap"></span></p>`,
			"gap_text_keys": []any{map[string]any{"value": "sun", "correct_order": float64(1)}},
		},
		question.TypeFRQ:   {"n": float64(1), "stem": "s", "answer": "four", "ai": map[string]any{"ai_template_id": "593158513739"}},
		question.TypeFRQAI: {"n": float64(1), "stem": "s", "answer": "four", "ai": map[string]any{"ai_template_id": "593158513739"}},
		question.TypeString: {
			"n": float64(1), "stem": "s", "answer": []any{"four"},
			"ai": map[string]any{"ai_template_id": "593158513739"},
		},
		question.TypePuzzle: {
			"n": float64(1), "stem": "s",
			"puzzleRows": "2", "puzzleColumns": "2",
			"puzzleImage": "img.png", "puzzleImageWidth": "100", "puzzleImageHeight": "100",
			"puzzleImageSplited": []any{
				map[string]any{"index": float64(0), "fixed_order": float64(1), "correct_order": float64(1), "src": "p0.png"},
			},
		},
		question.TypeInputBox: {
			"n": float64(1), "stem": "s",
			"answer": map[string]any{"value": "5", "constrains": map[string]any{"type": "integer"}, "unit": nil},
		},
	}

	for _, pt := range question.AllPartTypes() {
		if _, ok := parts[pt]; !ok {
			t.Fatalf("no fixture for part type %q", pt)
		}
	}

	reg := NewRegistry()
	for pt, part := range parts {
		got, err := reg.Eval(pt, part, "en", nil)
		if err != nil {
			t.Errorf("Eval(%q) error = %v", pt, err)
			continue
		}
		name, _ := RuleName(pt)
		if got["type"] != name {
			t.Errorf("Eval(%q) type = %v, want %q", pt, got["type"], name)
		}
		if got["stem"] == nil {
			t.Errorf("Eval(%q) dropped the stem", pt)
		}
	}
}

func TestEvalUnknownTypeFails(t *testing.T) {
	if _, err := NewRegistry().Eval(question.PartType("riddle"), question.Part{}, "en", nil); err == nil {
		t.Error("expected error for unknown part type")
	}
}

func TestEvalRejectsNonObjectResult(t *testing.T) {
	reg := NewRegistry()
	expr, err := jsonata.Compile("part.n")
	if err != nil {
		t.Fatal(err)
	}
	reg.cache["mcq"] = expr

	if _, err := reg.Eval(question.TypeMCQ, question.Part{"n": float64(1)}, "en", nil); err == nil {
		t.Error("expected error for non-object rule result")
	}
}

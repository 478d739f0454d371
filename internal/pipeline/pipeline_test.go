package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/edforge/qconvert/internal/question"
	"github.com/edforge/qconvert/internal/rules"
)

func legacyChoice(typ string, index int) map[string]any {
	return map[string]any{
		"type":         typ,
		"html_content": fmt.Sprintf("<p>option %d</p>", index),
		"values":       []any{},
		"unit":         nil,
		"index":        float64(index),
		"fixed_order":  float64(index + 1),
	}
}

func legacyMCQPart(n int) map[string]any {
	return map[string]any{
		"n":          float64(n),
		"type":       "mcq",
		"stem":       "<p>Pick one</p>",
		"standalone": true,
		"choices": []any{
			legacyChoice("key", 0),
			legacyChoice("distractor", 1),
		},
	}
}

func legacyDoc(parts ...any) question.Document {
	return question.Document{
		"question_id": "q1",
		"language":    "en",
		"country":     "us",
		"subject":     "Math",
		"subject_id":  "m-1",
		"grade":       float64(4),
		"grade_id":    "g-4",
		"section_id":  "s-9",
		"metadata":    map[string]any{"mapped_id": "q1", "id": "p1"},
		"parts":       parts,
	}
}

func TestProcessSuccess(t *testing.T) {
	p := New(rules.NewRegistry())
	out := p.Process(legacyDoc(legacyMCQPart(1)), "q1.json")

	if out.Status != StatusSuccess {
		t.Fatalf("status = %s, errors: %v", out.Status, out.Errors)
	}
	if out.Converted == nil {
		t.Fatal("success outcome must carry the converted document")
	}
	if out.QuestionID != "q1" {
		t.Errorf("question id = %q", out.QuestionID)
	}
	if p.Stats.Total != 1 || p.Stats.Converted != 1 || p.Stats.Failed() != 0 {
		t.Errorf("stats = %+v", p.Stats)
	}
}

func TestProcessPreValidationFailure(t *testing.T) {
	part := legacyMCQPart(1)
	delete(part, "stem")

	p := New(rules.NewRegistry())
	out := p.Process(legacyDoc(part), "q1.json")

	if out.Status != StatusPreValidationFailed {
		t.Fatalf("status = %s, errors: %v", out.Status, out.Errors)
	}
	if len(out.Errors) == 0 {
		t.Fatal("want pre-validation errors")
	}
	if p.Stats.PreValidationFailed != 1 {
		t.Errorf("stats = %+v", p.Stats)
	}
	if len(p.Stats.Errors) == 0 || p.Stats.Errors[0].Stage != StagePreValidation {
		t.Errorf("error records = %+v", p.Stats.Errors)
	}
}

func TestProcessConversionFailure(t *testing.T) {
	doc := legacyDoc(legacyMCQPart(1))
	delete(doc, "subject")

	p := New(rules.NewRegistry())
	out := p.Process(doc, "q1.json")

	if out.Status != StatusConversionFailed {
		t.Fatalf("status = %s, errors: %v", out.Status, out.Errors)
	}
	if p.Stats.ConversionFailed != 1 {
		t.Errorf("stats = %+v", p.Stats)
	}
	if len(p.Stats.Errors) != 1 {
		t.Fatalf("error records = %+v", p.Stats.Errors)
	}
	if rec := p.Stats.Errors[0]; rec.Stage != StageConversion || rec.Field != "subject" {
		t.Errorf("record = %+v", rec)
	}
}

func TestProcessPostValidationFailure(t *testing.T) {
	// A rule override that drops the required mcq fields pushes an
	// otherwise clean document into the post-validation stage.
	dir := t.TempDir()
	rule := `{ "n": part.n, "type": "mcq", "stem": part.stem }`
	if err := os.WriteFile(filepath.Join(dir, "mcq.jsonata"), []byte(rule), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(rules.NewRegistryFromDir(dir))
	out := p.Process(legacyDoc(legacyMCQPart(1)), "q1.json")

	if out.Status != StatusPostValidationFailed {
		t.Fatalf("status = %s, errors: %v", out.Status, out.Errors)
	}
	if out.Converted == nil {
		t.Fatal("post-validation failure must keep the converted artifact")
	}
	if p.Stats.PostValidationFailed != 1 {
		t.Errorf("stats = %+v", p.Stats)
	}
}

func TestProcessRecoversPanic(t *testing.T) {
	p := New(nil)
	out := p.Process(legacyDoc(legacyMCQPart(1)), "q1.json")

	if out.Status != StatusConversionFailed {
		t.Fatalf("status = %s, errors: %v", out.Status, out.Errors)
	}
	if len(out.Errors) != 1 {
		t.Fatalf("errors = %v", out.Errors)
	}
	if p.Stats.ConversionFailed != 1 || p.Stats.Total != 1 {
		t.Errorf("stats = %+v", p.Stats)
	}
}

func TestProcessFileInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := New(rules.NewRegistry())
	out := p.ProcessFile(path)

	if out.Status != StatusConversionFailed {
		t.Fatalf("status = %s", out.Status)
	}
	if out.QuestionID != "broken" {
		t.Errorf("question id = %q", out.QuestionID)
	}
}

func TestProcessFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q1.json")
	if err := question.SaveFile(legacyDoc(legacyMCQPart(1)), path); err != nil {
		t.Fatal(err)
	}

	p := New(rules.NewRegistry())
	out := p.ProcessFile(path)
	if out.Status != StatusSuccess {
		t.Fatalf("status = %s, errors: %v", out.Status, out.Errors)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	mcq := legacyDoc(legacyMCQPart(1))
	other := legacyDoc(map[string]any{
		"n": float64(1), "type": "opinion", "stem": "<p>?</p>", "standalone": true, "choices": []any{},
	})
	if err := question.SaveFile(mcq, filepath.Join(dir, "one.json")); err != nil {
		t.Fatal(err)
	}
	if err := question.SaveFile(other, filepath.Join(dir, "nested", "two.json")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "note.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	all, err := Discover(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered discover = %v", all)
	}

	mcqOnly, err := Discover(dir, []string{"mcq"})
	if err != nil {
		t.Fatal(err)
	}
	if len(mcqOnly) != 1 || filepath.Base(mcqOnly[0]) != "one.json" {
		t.Fatalf("filtered discover = %v", mcqOnly)
	}

	single, err := Discover(filepath.Join(dir, "one.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(single) != 1 {
		t.Fatalf("single-file discover = %v", single)
	}
}

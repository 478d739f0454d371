package question

import (
	"errors"
	"strings"
	"testing"
)

func docWithIdentity(mappedID, questionID string) Document {
	return Document{
		"question_id": questionID,
		"metadata":    map[string]any{"mapped_id": mappedID, "id": "parent-1"},
	}
}

func TestValidateIdentity(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		filename string
		want     string
		wantErr  bool
	}{
		{"all three agree", docWithIdentity("q1", "q1"), "q1.json", "q1", false},
		{"whitespace trimmed", docWithIdentity(" q1 ", "q1"), "q1.json", "q1", false},
		{"mapped_id differs", docWithIdentity("q2", "q1"), "q1.json", "", true},
		{"filename differs", docWithIdentity("q1", "q1"), "q9.json", "", true},
		{"missing mapped_id", Document{"question_id": "q1", "metadata": map[string]any{}}, "q1.json", "", true},
		{"empty ids", docWithIdentity("", ""), "123.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIdentity(tt.doc, tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateIdentity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ValidateIdentity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateIdentityMismatchNamesAllThreeValues(t *testing.T) {
	_, err := ValidateIdentity(docWithIdentity("a", "b"), "c.json")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	for _, want := range []string{"mapped_id=a", "question_id=b", "filename=c"} {
		if !strings.Contains(verr.Message, want) {
			t.Errorf("error %q does not name %q", verr.Message, want)
		}
	}
}

func TestParentID(t *testing.T) {
	doc := Document{"metadata": map[string]any{"id": " p-77 "}}
	got, err := ParentID(doc)
	if err != nil || got != "p-77" {
		t.Errorf("ParentID() = %q, %v; want %q, nil", got, err, "p-77")
	}

	for name, doc := range map[string]Document{
		"empty":       {"metadata": map[string]any{"id": ""}},
		"missing":     {"metadata": map[string]any{}},
		"no metadata": {},
	} {
		if _, err := ParentID(doc); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestSource(t *testing.T) {
	if got := Source(Document{"source": "import"}); got != "import" {
		t.Errorf("Source() = %q, want %q", got, "import")
	}
	if got := Source(Document{}); got != DefaultSource {
		t.Errorf("Source() default = %q, want %q", got, DefaultSource)
	}
}

func TestResolveIdentity(t *testing.T) {
	doc := Document{
		"question_id": "q1",
		"language":    "en",
		"country":     "us",
		"metadata":    map[string]any{"mapped_id": "q1", "id": "p1"},
	}
	id, err := ResolveIdentity(doc, "q1.json")
	if err != nil {
		t.Fatalf("ResolveIdentity() error = %v", err)
	}
	want := Identity{
		QuestionID:   "q1",
		ParentID:     "p1",
		LanguageCode: "en",
		Language:     "English",
		CountryCode:  "us",
		Country:      "United States",
	}
	if id != want {
		t.Errorf("ResolveIdentity() = %+v, want %+v", id, want)
	}

	// Strict resolution fails hard without a valid country.
	delete(doc, "country")
	if _, err := ResolveIdentity(doc, "q1.json"); err == nil {
		t.Error("expected error when no country candidate validates")
	}
}

func TestDetectPartTypes(t *testing.T) {
	doc := Document{"parts": []any{
		map[string]any{"type": "mcq"},
		map[string]any{},
		map[string]any{"type": "gapText"},
	}}
	got := DetectPartTypes(doc)
	want := []string{"mcq", "unknown", "gapText"}
	if len(got) != len(want) {
		t.Fatalf("DetectPartTypes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DetectPartTypes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

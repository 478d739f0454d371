package convert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edforge/qconvert/internal/question"
	"github.com/edforge/qconvert/internal/rules"
)

func mcqChoice(choiceType, content string, index int) map[string]any {
	return map[string]any{
		"type":         choiceType,
		"html_content": content,
		"values":       []any{},
		"unit":         nil,
		"index":        float64(index),
		"fixed_order":  float64(index + 1),
	}
}

func mcqPart(n int) map[string]any {
	return map[string]any{
		"n":          float64(n),
		"type":       "mcq",
		"stem":       "<p>Pick one</p>",
		"standalone": true,
		"choices": []any{
			mcqChoice("key", "<p>right</p>", 0),
			mcqChoice("distractor", "<p>wrong</p>", 1),
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

func TestConvertSinglePartMCQ(t *testing.T) {
	doc := legacyDoc(mcqPart(1))
	doc["answer"] = "<p>Because  it is\nright.</p>"

	conv, err := New(rules.NewRegistry()).Convert(doc, "q1.json")
	require.NoError(t, err)

	assert.Equal(t, "q1", conv["question_id"])
	assert.Equal(t, "p1", conv["parent_id"])
	assert.Equal(t, "en", conv["language_code"])
	assert.Equal(t, "English", conv["language"])
	assert.Equal(t, "us", conv["country_code"])
	assert.Equal(t, "United States", conv["country"])
	assert.Equal(t, "4", conv["grade"])
	assert.Equal(t, "human", conv["source"])
	assert.Equal(t, 1, conv["number_of_parts"])

	content, ok := conv["content"].(map[string]any)
	require.True(t, ok, "content must be an object")

	// Statement presence law: single-part documents carry no statement key.
	_, hasStatement := content["statement"]
	assert.False(t, hasStatement)

	parts, ok := content["parts"].([]any)
	require.True(t, ok)
	require.Len(t, parts, 1)

	part, ok := parts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "mcq", part["type"])
	assert.Equal(t, "<p>Because it is right.</p>", part["explanation"])
}

func TestConvertMultiPartIncludesStatement(t *testing.T) {
	doc := legacyDoc(mcqPart(1), mcqPart(2))
	doc["statement"] = "<p>Shared intro</p>"
	doc["answer"] = "<div><div>first why</div><div>second why</div></div>"

	conv, err := New(rules.NewRegistry()).Convert(doc, "q1.json")
	require.NoError(t, err)

	content := conv["content"].(map[string]any)
	assert.Equal(t, "<p>Shared intro</p>", content["statement"])

	parts := content["parts"].([]any)
	require.Len(t, parts, 2)
	first := parts[0].(map[string]any)
	second := parts[1].(map[string]any)
	assert.Equal(t, "<div>first why</div>", first["explanation"])
	assert.Equal(t, "<div>second why</div>", second["explanation"])
}

func TestConvertFailsBeforePartsOnBadIdentity(t *testing.T) {
	doc := legacyDoc(mcqPart(1))
	_, err := New(rules.NewRegistry()).Convert(doc, "mismatch.json")
	require.Error(t, err)

	var verr *question.ValidationError
	assert.True(t, errors.As(err, &verr), "want *ValidationError, got %T", err)
}

func TestConvertFailsOnMissingRootField(t *testing.T) {
	doc := legacyDoc(mcqPart(1))
	delete(doc, "subject")
	_, err := New(rules.NewRegistry()).Convert(doc, "q1.json")
	require.Error(t, err)

	var verr *question.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "subject", verr.Field)
}

func TestConvertUnknownPartType(t *testing.T) {
	doc := legacyDoc(map[string]any{
		"n": float64(1), "type": "riddle", "stem": "<p>?</p>", "standalone": true,
	})
	_, err := New(rules.NewRegistry()).Convert(doc, "q1.json")
	require.Error(t, err)

	var cerr *question.ConversionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, question.PartType("riddle"), cerr.PartType)
}

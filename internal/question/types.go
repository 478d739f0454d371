package question

import (
	"strconv"
	"strings"
)

// Document is a legacy question document as parsed from JSON.
//
// The legacy schema is loose by design: fields may be absent, null, or carry
// the wrong type, and reporting exactly that is the validators' job. The
// document therefore stays a dynamic value tree instead of a struct decode
// that would reject malformed input before it can be described.
type Document map[string]any

// Converted is a question document in the target schema.
type Converted map[string]any

// Part is one scoreable sub-question unit within a document.
type Part map[string]any

// Choice is one selectable/orderable option attached to a part.
type Choice map[string]any

// PartType tags the kind of a legacy part.
type PartType string

const (
	TypeMCQ      PartType = "mcq"
	TypeGMRQ     PartType = "gmrq"
	TypeMRQ      PartType = "mrq"
	TypeFRQ      PartType = "frq"
	TypeOQ       PartType = "oq"
	TypeGapText  PartType = "gapText"
	TypeString   PartType = "string"
	TypeOpinion  PartType = "opinion"
	TypeMatching PartType = "matching"
	TypeCounting PartType = "counting"
	TypePuzzle   PartType = "puzzle"
	TypeInputBox PartType = "input_box"
	TypeFRQAI    PartType = "frq_ai"
)

// AllPartTypes returns the recognized legacy part types.
func AllPartTypes() []PartType {
	return []PartType{
		TypeMCQ, TypeGMRQ, TypeMRQ, TypeFRQ, TypeOQ, TypeGapText,
		TypeString, TypeOpinion, TypeMatching, TypeCounting,
		TypePuzzle, TypeInputBox, TypeFRQAI,
	}
}

// Valid reports whether t is one of the recognized part types.
func (t PartType) Valid() bool {
	for _, v := range AllPartTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Metadata returns the metadata object, or nil when absent or mistyped.
func (d Document) Metadata() map[string]any {
	m, _ := d["metadata"].(map[string]any)
	return m
}

// Parts returns the parts array, or nil when absent or mistyped.
func (d Document) Parts() []Part {
	raw, ok := d["parts"].([]any)
	if !ok {
		return nil
	}
	parts := make([]Part, 0, len(raw))
	for _, p := range raw {
		m, _ := p.(map[string]any)
		parts = append(parts, Part(m))
	}
	return parts
}

// Type returns the part's declared type tag ("" when absent or mistyped).
func (p Part) Type() PartType {
	s, _ := p["type"].(string)
	return PartType(s)
}

// Choices returns the part's choices array and whether the field held an
// array at all. Absent, null, or mistyped choices return (nil, false).
func (p Part) Choices() ([]Choice, bool) {
	raw, ok := p["choices"].([]any)
	if !ok {
		return nil, false
	}
	choices := make([]Choice, 0, len(raw))
	for _, c := range raw {
		m, _ := c.(map[string]any)
		choices = append(choices, Choice(m))
	}
	return choices, true
}

// DetectPartTypes returns the declared type of every part, "unknown" for
// parts without a type tag.
func DetectPartTypes(doc Document) []string {
	var types []string
	for _, p := range doc.Parts() {
		if s, ok := p["type"].(string); ok && s != "" {
			types = append(types, s)
		} else {
			types = append(types, "unknown")
		}
	}
	return types
}

// IsEmpty reports whether v is nil, a blank string, or an empty
// array/object. Mirrors the truthiness rules the legacy pipeline applied.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// Stringify renders a scalar the way the legacy pipeline did: numbers
// without a trailing ".0", nil as the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// IntValue extracts an integer from a JSON number. JSON decoding yields
// float64 and JSONata evaluation may yield either, so both are accepted as
// long as the value is whole.
func IntValue(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
	}
	return 0, false
}

// Package convert transforms validated legacy documents into the target
// schema by dispatching each part to its declarative transformation rule
// and assembling the converted envelope.
package convert

import (
	"fmt"

	"github.com/edforge/qconvert/internal/question"
	"github.com/edforge/qconvert/internal/rules"
)

// Engine drives per-part rule dispatch and envelope assembly.
type Engine struct {
	rules *rules.Registry
}

// New returns an Engine backed by the given rule registry.
func New(reg *rules.Registry) *Engine {
	return &Engine{rules: reg}
}

// Convert transforms one legacy document into the target schema. Identity
// and locale resolution failures surface as *question.ValidationError
// before any part is touched; rule failures surface as
// *question.ConversionError naming the offending part type.
func (e *Engine) Convert(doc question.Document, filename string) (question.Converted, error) {
	md, err := extractMetadata(doc, filename)
	if err != nil {
		return nil, err
	}

	parts := doc.Parts()
	converted := make([]any, 0, len(parts))
	for i, part := range parts {
		partType := part.Type()
		if !partType.Valid() {
			return nil, &question.ConversionError{
				Message:  fmt.Sprintf("Unknown part type: %v", part["type"]),
				PartType: partType,
			}
		}

		explanation := partExplanation(doc["answer"], md.NumberOfParts, i+1)
		result, err := e.rules.Eval(partType, part, md.LanguageCode, explanation)
		if err != nil {
			return nil, &question.ConversionError{
				Message:  fmt.Sprintf("Rule conversion failed for %s part", partType),
				PartType: partType,
				Err:      err,
			}
		}
		converted = append(converted, result)
	}

	return assemble(md, converted, doc), nil
}

// assemble builds the converted envelope. The statement is copied verbatim
// from the legacy root iff the document is multi-part.
func assemble(md metadata, parts []any, doc question.Document) question.Converted {
	content := map[string]any{}
	if md.NumberOfParts > 1 {
		statement, _ := doc["statement"].(string)
		content["statement"] = statement
	}
	content["parts"] = parts

	return question.Converted{
		"question_id":     md.QuestionID,
		"parent_id":       md.ParentID,
		"language_code":   md.LanguageCode,
		"language":        md.Language,
		"country_code":    md.CountryCode,
		"country":         md.Country,
		"subject":         md.Subject,
		"subject_id":      md.SubjectID,
		"grade":           md.Grade,
		"grade_id":        md.GradeID,
		"number_of_parts": md.NumberOfParts,
		"section_id":      md.SectionID,
		"source":          md.Source,
		"content":         content,
	}
}

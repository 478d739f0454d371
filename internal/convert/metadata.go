package convert

import (
	"fmt"

	"github.com/edforge/qconvert/internal/question"
)

// metadata carries the resolved root fields shared by every converted part
// and the envelope.
type metadata struct {
	question.Identity
	Subject       any
	SubjectID     any
	Grade         string
	GradeID       string
	SectionID     string
	Source        string
	NumberOfParts int
}

// extractMetadata resolves identity/locale strictly and reads the remaining
// required root fields. Subject fields pass through verbatim; grade and
// section fields are stringified since legacy documents carry them as
// either numbers or strings.
func extractMetadata(doc question.Document, filename string) (metadata, error) {
	identity, err := question.ResolveIdentity(doc, filename)
	if err != nil {
		return metadata{}, err
	}

	md := metadata{
		Identity:      identity,
		Subject:       doc["subject"],
		SubjectID:     doc["subject_id"],
		Grade:         question.Stringify(doc["grade"]),
		GradeID:       question.Stringify(doc["grade_id"]),
		SectionID:     question.Stringify(doc["section_id"]),
		Source:        question.Source(doc),
		NumberOfParts: len(doc.Parts()),
	}

	for _, f := range []struct {
		name  string
		value any
	}{
		{"subject", md.Subject},
		{"subject_id", md.SubjectID},
		{"grade", md.Grade},
		{"grade_id", md.GradeID},
		{"section_id", md.SectionID},
	} {
		if question.IsEmpty(f.value) {
			return metadata{}, &question.ValidationError{
				Message:  fmt.Sprintf("Missing required field '%s'", f.name),
				Field:    f.name,
				Actual:   f.value,
				Expected: "Non-empty string",
			}
		}
	}

	return md, nil
}

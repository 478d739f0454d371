package question

import (
	"fmt"
	"strings"
)

// Identity is the resolved identity and locale shared by every pipeline
// stage.
type Identity struct {
	QuestionID   string
	ParentID     string
	LanguageCode string
	Language     string
	CountryCode  string
	Country      string
}

// ValidateIdentity checks that metadata.mapped_id, question_id, and the
// filename stem agree after trimming, and returns the agreed ID.
func ValidateIdentity(doc Document, filename string) (string, error) {
	mappedID := strings.TrimSpace(Stringify(doc.Metadata()["mapped_id"]))
	questionID := strings.TrimSpace(Stringify(doc["question_id"]))
	fileID := strings.TrimSpace(strings.TrimSuffix(filename, ".json"))

	if mappedID == "" {
		return "", &ValidationError{
			Message:  "Missing metadata.mapped_id",
			Field:    "metadata.mapped_id",
			Actual:   "missing",
			Expected: "Non-empty ID",
		}
	}
	if mappedID != questionID || questionID != fileID {
		return "", &ValidationError{
			Message:  fmt.Sprintf("ID mismatch: mapped_id=%s, question_id=%s, filename=%s", mappedID, questionID, fileID),
			Field:    "metadata.mapped_id",
			Actual:   fmt.Sprintf("mapped_id=%s, question_id=%s, file=%s", mappedID, questionID, fileID),
			Expected: "Mapped ID, question ID, and filename must match",
		}
	}
	return mappedID, nil
}

// ParentID reads metadata.id. Empty or missing is an error: the target
// schema nominally allows a null parent_id, but the legacy system never
// produced one, so the document is rejected instead of silently relaxed.
func ParentID(doc Document) (string, error) {
	metaID := strings.TrimSpace(Stringify(doc.Metadata()["id"]))
	if metaID == "" {
		return "", &ValidationError{
			Message:  "Invalid parent_id",
			Field:    "parent_id",
			Actual:   nil,
			Expected: "Valid parent ID",
		}
	}
	return metaID, nil
}

// Source returns the document source, defaulting to DefaultSource.
func Source(doc Document) string {
	if s, ok := doc["source"].(string); ok && s != "" {
		return s
	}
	return DefaultSource
}

// ResolveIdentity bundles the strict identity and locale resolution used
// when constructing final output. Any failure aborts before conversion
// touches a part.
func ResolveIdentity(doc Document, filename string) (Identity, error) {
	questionID, err := ValidateIdentity(doc, filename)
	if err != nil {
		return Identity{}, err
	}
	parentID, err := ParentID(doc)
	if err != nil {
		return Identity{}, err
	}
	langCode, err := LanguageCode(doc)
	if err != nil {
		return Identity{}, err
	}
	countryCode, err := CountryCode(doc)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		QuestionID:   questionID,
		ParentID:     parentID,
		LanguageCode: langCode,
		Language:     Languages[langCode],
		CountryCode:  countryCode,
		Country:      Countries[countryCode],
	}, nil
}

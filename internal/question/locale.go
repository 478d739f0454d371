package question

import (
	"fmt"
	"sort"
	"strings"
)

// Languages maps supported language codes to display names.
var Languages = map[string]string{
	"en": "English",
	"ar": "Arabic",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"it": "Italian",
	"pt": "Portuguese",
	"zh": "Chinese",
}

// Countries maps supported country codes to display names.
var Countries = map[string]string{
	"eg": "Egypt",
	"us": "United States",
	"uk": "United Kingdom",
	"sa": "Saudi Arabia",
	"in": "India",
	"zz": "ZZ",
}

// DefaultSource is used when a document carries no source field.
const DefaultSource = "human"

// LanguageCode resolves the document's language code. The root field takes
// priority over metadata; the value is lower-cased and trimmed and must be a
// supported code.
func LanguageCode(doc Document) (string, error) {
	v := doc["language"]
	if IsEmpty(v) {
		v = doc.Metadata()["language"]
	}
	if s, ok := v.(string); ok && !IsEmpty(s) {
		code := strings.ToLower(strings.TrimSpace(s))
		if _, ok := Languages[code]; ok {
			return code, nil
		}
		v = code
	}
	return "", &ValidationError{
		Message:  "No valid language code found",
		Field:    "language",
		Actual:   v,
		Expected: fmt.Sprintf("One of: %s", strings.Join(sortedKeys(Languages), ", ")),
	}
}

// CountryCode resolves the document's country code strictly: candidates are
// read root-first then metadata, normalized, and filtered to the supported
// set. "eg" wins outright wherever it appears; otherwise the first valid
// candidate does. No valid candidate is an error.
func CountryCode(doc Document) (string, error) {
	if code, ok := pickCountry(doc); ok {
		return code, nil
	}
	return "", &ValidationError{
		Message:  "Invalid country code",
		Field:    "country",
		Actual:   rawCountry(doc),
		Expected: fmt.Sprintf("One of: %s", strings.Join(sortedKeys(Countries), ", ")),
	}
}

// CountryCodeOrRaw is the loose variant used during pre-validation: the same
// resolution, but when no candidate validates it returns the raw observed
// value so country-dependent per-type rules still see something.
func CountryCodeOrRaw(doc Document) string {
	if code, ok := pickCountry(doc); ok {
		return code
	}
	return Stringify(rawCountry(doc))
}

// pickCountry applies the shared candidate-collection and precedence rules.
func pickCountry(doc Document) (string, bool) {
	var valid []string
	for _, v := range []any{doc["country"], doc.Metadata()["country"]} {
		s, ok := v.(string)
		if !ok || IsEmpty(s) {
			continue
		}
		norm := strings.ToLower(strings.TrimSpace(s))
		if _, ok := Countries[norm]; ok {
			valid = append(valid, norm)
		}
	}
	if len(valid) == 0 {
		return "", false
	}
	for _, code := range valid {
		if code == "eg" {
			return "eg", true
		}
	}
	return valid[0], true
}

func rawCountry(doc Document) any {
	if v := doc["country"]; !IsEmpty(v) {
		return v
	}
	return doc.Metadata()["country"]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

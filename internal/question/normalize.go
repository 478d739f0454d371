package question

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// NormalizeSpace collapses whitespace runs to single spaces and trims the
// ends.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(spaceRuns.ReplaceAllString(s, " "))
}

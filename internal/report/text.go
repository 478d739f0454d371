package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/edforge/qconvert/internal/pipeline"
	"github.com/edforge/qconvert/internal/question"
)

const timeLayout = "2006-01-02 15:04:05"

// WriteTextLog writes the human-readable run log: summary counters followed
// by every error and warning in order.
func WriteTextLog(stats *pipeline.Stats, path string) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintf(&b, "%s\nJSON CONVERSION LOG\n%s\n\n", rule, rule)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format(timeLayout))

	fmt.Fprintf(&b, "SUMMARY\n%s\n", thin)
	fmt.Fprintf(&b, "Total files processed: %d\n", stats.Total)
	fmt.Fprintf(&b, "Successfully converted: %d\n", stats.Converted)
	fmt.Fprintf(&b, "Pre-validation failed: %d\n", stats.PreValidationFailed)
	fmt.Fprintf(&b, "Conversion failed: %d\n", stats.ConversionFailed)
	fmt.Fprintf(&b, "Post-validation failed: %d\n", stats.PostValidationFailed)
	fmt.Fprintf(&b, "Total failed: %d\n", stats.Failed())
	fmt.Fprintf(&b, "Total warnings: %d\n", len(stats.Warnings))
	if stats.Total > 0 {
		fmt.Fprintf(&b, "Success rate: %.2f%%\n", float64(stats.Converted)/float64(stats.Total)*100)
	}

	fmt.Fprintf(&b, "\n%s\nERRORS\n%s\n\n", rule, rule)
	for _, e := range stats.Errors {
		fmt.Fprintf(&b, "File: %s\n", e.Filename)
		fmt.Fprintf(&b, "Question ID: %s\n", e.QuestionID)
		fmt.Fprintf(&b, "Error Type: %s\n", e.Stage)
		fmt.Fprintf(&b, "Message: %s\n", e.Message)
		if e.Field != "" {
			fmt.Fprintf(&b, "Field: %s\n", e.Field)
		}
		if !question.IsEmpty(e.Actual) {
			fmt.Fprintf(&b, "Actual: %v\n", e.Actual)
		}
		if e.Expected != "" {
			fmt.Fprintf(&b, "Expected: %s\n", e.Expected)
		}
		fmt.Fprintf(&b, "Timestamp: %s\n%s\n\n", e.Timestamp.Format(timeLayout), thin)
	}

	if len(stats.Warnings) > 0 {
		fmt.Fprintf(&b, "\n%s\nWARNINGS\n%s\n\n", rule, rule)
		for _, w := range stats.Warnings {
			fmt.Fprintf(&b, "File: %s\n", w.Filename)
			fmt.Fprintf(&b, "Question ID: %s\n", w.QuestionID)
			fmt.Fprintf(&b, "Warning: %s\n", w.Message)
			fmt.Fprintf(&b, "Timestamp: %s\n%s\n\n", w.Timestamp.Format(timeLayout), thin)
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

package report

import (
	"fmt"
	"strings"

	"github.com/edforge/qconvert/internal/pipeline"
	"github.com/edforge/qconvert/internal/ui/theme"
)

// Summary renders the end-of-run counters for the terminal.
func Summary(stats *pipeline.Stats) string {
	var b strings.Builder
	rule := theme.Hint.Render(strings.Repeat("=", 60))

	b.WriteString(rule + "\n")
	b.WriteString(theme.Title.Render("CONVERSION SUMMARY") + "\n")
	b.WriteString(rule + "\n")

	line := func(label string, n int, style func(int) string) {
		fmt.Fprintf(&b, "%-28s %s\n", label, style(n))
	}
	plain := func(n int) string { return theme.Body.Render(fmt.Sprint(n)) }
	good := func(n int) string { return theme.Good.Render(fmt.Sprint(n)) }
	bad := func(n int) string {
		if n == 0 {
			return theme.Body.Render("0")
		}
		return theme.Bad.Render(fmt.Sprint(n))
	}
	warn := func(n int) string {
		if n == 0 {
			return theme.Body.Render("0")
		}
		return theme.Warn.Render(fmt.Sprint(n))
	}

	line("Total files processed:", stats.Total, plain)
	line("Successfully converted:", stats.Converted, good)
	line("Pre-validation failed:", stats.PreValidationFailed, bad)
	line("Conversion failed:", stats.ConversionFailed, bad)
	line("Post-validation failed:", stats.PostValidationFailed, bad)
	line("Total failed:", stats.Failed(), bad)
	line("Total warnings:", len(stats.Warnings), warn)

	if stats.Total > 0 {
		rate := float64(stats.Converted) / float64(stats.Total) * 100
		fmt.Fprintf(&b, "%-28s %s\n", "Success rate:", theme.Body.Render(fmt.Sprintf("%.2f%%", rate)))
	}
	b.WriteString(rule)
	return b.String()
}

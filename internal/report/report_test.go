package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/edforge/qconvert/internal/pipeline"
)

func sampleStats() *pipeline.Stats {
	ts := time.Date(2026, 8, 26, 10, 30, 0, 0, time.UTC)
	return &pipeline.Stats{
		Total:               3,
		Converted:           1,
		PreValidationFailed: 1,
		ConversionFailed:    1,
		Errors: []pipeline.ErrorRecord{
			{
				Filename:   "a.json",
				QuestionID: "a",
				Stage:      pipeline.StagePreValidation,
				Message:    "Part 1 (mcq): Missing required field 'stem'",
				Timestamp:  ts,
			},
			{
				Filename:   "b.json",
				QuestionID: "b",
				Stage:      pipeline.StageConversion,
				Message:    "Missing required field: subject",
				Field:      "subject",
				Actual:     nil,
				Expected:   "Non-empty value",
				Timestamp:  ts,
			},
		},
		Warnings: []pipeline.WarningRecord{
			{Filename: "c.json", QuestionID: "c", Message: "Multi-part question missing 'statement' field", Timestamp: ts},
		},
	}
}

func TestWriteTextLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conversion.log")
	if err := WriteTextLog(sampleStats(), path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	log := string(raw)

	for _, want := range []string{
		"JSON CONVERSION LOG",
		"Total files processed: 3",
		"Successfully converted: 1",
		"Total failed: 2",
		"Success rate: 33.33%",
		"Error Type: Pre-Conversion Validation",
		"Field: subject",
		"Expected: Non-empty value",
		"Warning: Multi-part question missing 'statement' field",
	} {
		if !strings.Contains(log, want) {
			t.Errorf("log missing %q", want)
		}
	}
}

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.xlsx")
	if err := WriteExcel(sampleStats(), path); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Errors")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("error rows = %d", len(rows))
	}
	if rows[0][0] != "Filename" || rows[0][7] != "Timestamp" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[2][4] != "subject" {
		t.Errorf("failed field cell = %q", rows[2][4])
	}

	warnRows, err := f.GetRows("Warnings")
	if err != nil {
		t.Fatal(err)
	}
	if len(warnRows) != 2 {
		t.Fatalf("warning rows = %d", len(warnRows))
	}
}

func TestWriteExcelNoWarningsSheet(t *testing.T) {
	stats := sampleStats()
	stats.Warnings = nil
	path := filepath.Join(t.TempDir(), "errors.xlsx")
	if err := WriteExcel(stats, path); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex("Warnings"); idx != -1 {
		t.Error("warnings sheet should not exist")
	}
}

func TestSummaryCounters(t *testing.T) {
	out := Summary(sampleStats())
	for _, want := range []string{"CONVERSION SUMMARY", "3", "33.33%"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edforge/qconvert/internal/pipeline"
	"github.com/edforge/qconvert/internal/question"
)

var errorColumns = []string{
	"Filename",
	"Question ID",
	"Error Type",
	"Error Message",
	"Failed Field",
	"Actual Value",
	"Expected Format",
	"Timestamp",
}

var warningColumns = []string{
	"Filename",
	"Question ID",
	"Warning Message",
	"Timestamp",
}

// WriteExcel writes the spreadsheet error report: an Errors sheet always,
// and a Warnings sheet when there are warnings.
func WriteExcel(stats *pipeline.Stats, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const errSheet = "Errors"
	if err := f.SetSheetName("Sheet1", errSheet); err != nil {
		return err
	}

	rows := [][]any{anyRow(errorColumns)}
	for _, e := range stats.Errors {
		rows = append(rows, []any{
			e.Filename,
			e.QuestionID,
			string(e.Stage),
			e.Message,
			e.Field,
			question.Stringify(e.Actual),
			e.Expected,
			e.Timestamp.Format(timeLayout),
		})
	}
	if err := writeSheet(f, errSheet, rows); err != nil {
		return err
	}

	if len(stats.Warnings) > 0 {
		const warnSheet = "Warnings"
		if _, err := f.NewSheet(warnSheet); err != nil {
			return err
		}
		rows := [][]any{anyRow(warningColumns)}
		for _, w := range stats.Warnings {
			rows = append(rows, []any{
				w.Filename,
				w.QuestionID,
				w.Message,
				w.Timestamp.Format(timeLayout),
			})
		}
		if err := writeSheet(f, warnSheet, rows); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeSheet fills one sheet and sizes each column to its longest cell,
// capped so one huge message does not stretch the whole sheet.
func writeSheet(f *excelize.File, sheet string, rows [][]any) error {
	widths := make([]float64, len(rows[0]))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		for col, v := range row {
			if w := float64(len(fmt.Sprint(v))) + 2; col < len(widths) && w > widths[col] {
				widths[col] = w
			}
		}
	}

	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return err
		}
	}
	return nil
}

func anyRow(ss []string) []any {
	row := make([]any, len(ss))
	for i, s := range ss {
		row[i] = s
	}
	return row
}

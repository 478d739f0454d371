package pipeline

import (
	"errors"
	"time"

	"github.com/edforge/qconvert/internal/question"
)

// Stage names match the report headings the pipeline has always used.
type Stage string

const (
	StagePreValidation  Stage = "Pre-Conversion Validation"
	StageConversion     Stage = "Conversion"
	StagePostValidation Stage = "Post-Conversion Validation"
)

// stageOf maps a failure status to its report stage.
func stageOf(s Status) Stage {
	switch s {
	case StatusPreValidationFailed:
		return StagePreValidation
	case StatusConversionFailed:
		return StageConversion
	case StatusPostValidationFailed:
		return StagePostValidation
	}
	return ""
}

// ErrorRecord is one reportable error. Field, Actual, and Expected are
// filled when the underlying error carried structure; validator message
// strings leave them blank.
type ErrorRecord struct {
	Filename   string
	QuestionID string
	Stage      Stage
	Message    string
	Field      string
	Actual     any
	Expected   string
	Timestamp  time.Time
}

// WarningRecord is one reportable warning.
type WarningRecord struct {
	Filename   string
	QuestionID string
	Message    string
	Timestamp  time.Time
}

// Stats accumulates counters and records across a run. Append-only; records
// keep per-document order.
type Stats struct {
	Total                int
	Converted            int
	PreValidationFailed  int
	ConversionFailed     int
	PostValidationFailed int

	Errors   []ErrorRecord
	Warnings []WarningRecord
}

// Record folds one outcome into the stats.
func (s *Stats) Record(out Outcome) {
	s.Total++
	switch out.Status {
	case StatusSuccess:
		s.Converted++
	case StatusPreValidationFailed:
		s.PreValidationFailed++
	case StatusConversionFailed:
		s.ConversionFailed++
	case StatusPostValidationFailed:
		s.PostValidationFailed++
	}

	now := time.Now()
	stage := stageOf(out.Status)
	for _, msg := range out.Errors {
		rec := ErrorRecord{
			Filename:   out.Filename,
			QuestionID: out.QuestionID,
			Stage:      stage,
			Message:    msg,
			Timestamp:  now,
		}
		var verr *question.ValidationError
		if out.Err != nil && errors.As(out.Err, &verr) && verr.Error() == msg {
			rec.Field = verr.Field
			rec.Actual = verr.Actual
			rec.Expected = verr.Expected
		}
		s.Errors = append(s.Errors, rec)
	}
	for _, msg := range out.Warnings {
		s.Warnings = append(s.Warnings, WarningRecord{
			Filename:   out.Filename,
			QuestionID: out.QuestionID,
			Message:    msg,
			Timestamp:  now,
		})
	}
}

// Failed reports how many documents failed at any stage.
func (s *Stats) Failed() int {
	return s.PreValidationFailed + s.ConversionFailed + s.PostValidationFailed
}

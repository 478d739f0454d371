package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/edforge/qconvert/internal/convert"
	"github.com/edforge/qconvert/internal/postvalidate"
	"github.com/edforge/qconvert/internal/prevalidate"
	"github.com/edforge/qconvert/internal/question"
	"github.com/edforge/qconvert/internal/rules"
)

// Status classifies the result of processing one document. A failure is
// always attributed to exactly one stage.
type Status string

const (
	StatusSuccess              Status = "success"
	StatusPreValidationFailed  Status = "pre_validation_failed"
	StatusConversionFailed     Status = "conversion_failed"
	StatusPostValidationFailed Status = "post_validation_failed"
)

// Outcome is the per-document processing result.
type Outcome struct {
	Filename   string
	QuestionID string
	Status     Status
	Errors     []string
	Warnings   []string

	// Converted is set on success and on post-validation failure, where
	// the converted artifact itself is what gets quarantined.
	Converted question.Converted

	// Err carries the conversion-stage error, when that stage failed.
	Err error
}

// Failed reports whether the document did not come out the other end.
func (o Outcome) Failed() bool { return o.Status != StatusSuccess }

// Pipeline runs pre-validation, transformation, and post-validation over
// documents, accumulating run statistics.
type Pipeline struct {
	engine *convert.Engine
	Stats  Stats
}

func New(reg *rules.Registry) *Pipeline {
	return &Pipeline{engine: convert.New(reg)}
}

// ProcessFile loads one JSON file and processes it. Unreadable or invalid
// JSON is classified as a conversion failure so the batch keeps going.
func (p *Pipeline) ProcessFile(path string) Outcome {
	filename := filepath.Base(path)
	doc, err := question.LoadFile(path)
	if err != nil {
		out := Outcome{
			Filename:   filename,
			QuestionID: stem(filename),
			Status:     StatusConversionFailed,
			Errors:     []string{err.Error()},
			Err:        err,
		}
		p.Stats.Record(out)
		return out
	}
	return p.Process(doc, filename)
}

// Process runs the three stages over an already-parsed document. A panic
// anywhere in the stages is recovered and reported as a conversion failure;
// one bad document never takes the batch down.
func (p *Pipeline) Process(doc question.Document, filename string) Outcome {
	out := p.run(doc, filename)
	p.Stats.Record(out)
	return out
}

func (p *Pipeline) run(doc question.Document, filename string) (out Outcome) {
	out = Outcome{Filename: filename, QuestionID: questionID(doc, filename)}

	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusConversionFailed
			out.Converted = nil
			out.Errors = append(out.Errors, fmt.Sprintf("Unexpected error: %v", r))
		}
	}()

	errs, warns := prevalidate.Validate(doc, filename)
	out.Warnings = warns
	if len(errs) > 0 {
		out.Status = StatusPreValidationFailed
		out.Errors = errs
		return out
	}

	conv, err := p.engine.Convert(doc, filename)
	if err != nil {
		out.Status = StatusConversionFailed
		out.Errors = []string{err.Error()}
		out.Err = err
		return out
	}

	if ok, postErrs := postvalidate.Validate(conv); !ok {
		out.Status = StatusPostValidationFailed
		out.Errors = postErrs
		out.Converted = conv
		return out
	}

	out.Status = StatusSuccess
	out.Converted = conv
	return out
}

func questionID(doc question.Document, filename string) string {
	if id, ok := doc["question_id"].(string); ok && id != "" {
		return id
	}
	return stem(filename)
}

func stem(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}

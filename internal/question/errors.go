package question

import "fmt"

// ValidationError describes a structural problem in a document: which field
// failed, the value actually observed, and what was expected.
type ValidationError struct {
	Message  string
	Field    string
	Actual   any
	Expected string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConversionError indicates a transformation-rule or assembly failure for a
// specific part type.
type ConversionError struct {
	Message  string
	PartType PartType
	Err      error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConversionError) Unwrap() error { return e.Err }

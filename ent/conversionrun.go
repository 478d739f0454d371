// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/google/uuid"
)

// ConversionRun is the model entity for the ConversionRun schema.
type ConversionRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID uuid.UUID `json:"run_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt time.Time `json:"finished_at,omitempty"`
	// InputPath holds the value of the "input_path" field.
	InputPath string `json:"input_path,omitempty"`
	// OutputPath holds the value of the "output_path" field.
	OutputPath string `json:"output_path,omitempty"`
	// DryRun holds the value of the "dry_run" field.
	DryRun bool `json:"dry_run,omitempty"`
	// Total holds the value of the "total" field.
	Total int `json:"total,omitempty"`
	// Converted holds the value of the "converted" field.
	Converted int `json:"converted,omitempty"`
	// PreValidationFailed holds the value of the "pre_validation_failed" field.
	PreValidationFailed int `json:"pre_validation_failed,omitempty"`
	// ConversionFailed holds the value of the "conversion_failed" field.
	ConversionFailed int `json:"conversion_failed,omitempty"`
	// PostValidationFailed holds the value of the "post_validation_failed" field.
	PostValidationFailed int `json:"post_validation_failed,omitempty"`
	// WarningCount holds the value of the "warning_count" field.
	WarningCount int `json:"warning_count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConversionRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversionrun.FieldDryRun:
			values[i] = new(sql.NullBool)
		case conversionrun.FieldID, conversionrun.FieldTotal, conversionrun.FieldConverted, conversionrun.FieldPreValidationFailed, conversionrun.FieldConversionFailed, conversionrun.FieldPostValidationFailed, conversionrun.FieldWarningCount:
			values[i] = new(sql.NullInt64)
		case conversionrun.FieldInputPath, conversionrun.FieldOutputPath:
			values[i] = new(sql.NullString)
		case conversionrun.FieldStartedAt, conversionrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case conversionrun.FieldRunID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConversionRun fields.
func (_m *ConversionRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversionrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conversionrun.FieldRunID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value != nil {
				_m.RunID = *value
			}
		case conversionrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case conversionrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		case conversionrun.FieldInputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_path", values[i])
			} else if value.Valid {
				_m.InputPath = value.String
			}
		case conversionrun.FieldOutputPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_path", values[i])
			} else if value.Valid {
				_m.OutputPath = value.String
			}
		case conversionrun.FieldDryRun:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field dry_run", values[i])
			} else if value.Valid {
				_m.DryRun = value.Bool
			}
		case conversionrun.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case conversionrun.FieldConverted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field converted", values[i])
			} else if value.Valid {
				_m.Converted = int(value.Int64)
			}
		case conversionrun.FieldPreValidationFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field pre_validation_failed", values[i])
			} else if value.Valid {
				_m.PreValidationFailed = int(value.Int64)
			}
		case conversionrun.FieldConversionFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conversion_failed", values[i])
			} else if value.Valid {
				_m.ConversionFailed = int(value.Int64)
			}
		case conversionrun.FieldPostValidationFailed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field post_validation_failed", values[i])
			} else if value.Valid {
				_m.PostValidationFailed = int(value.Int64)
			}
		case conversionrun.FieldWarningCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field warning_count", values[i])
			} else if value.Valid {
				_m.WarningCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConversionRun.
// This includes values selected through modifiers, order, etc.
func (_m *ConversionRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConversionRun.
// Note that you need to call ConversionRun.Unwrap() before calling this method if this ConversionRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConversionRun) Update() *ConversionRunUpdateOne {
	return NewConversionRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConversionRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConversionRun) Unwrap() *ConversionRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConversionRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConversionRun) String() string {
	var builder strings.Builder
	builder.WriteString("ConversionRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunID))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("input_path=")
	builder.WriteString(_m.InputPath)
	builder.WriteString(", ")
	builder.WriteString("output_path=")
	builder.WriteString(_m.OutputPath)
	builder.WriteString(", ")
	builder.WriteString("dry_run=")
	builder.WriteString(fmt.Sprintf("%v", _m.DryRun))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("converted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Converted))
	builder.WriteString(", ")
	builder.WriteString("pre_validation_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PreValidationFailed))
	builder.WriteString(", ")
	builder.WriteString("conversion_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConversionFailed))
	builder.WriteString(", ")
	builder.WriteString("post_validation_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostValidationFailed))
	builder.WriteString(", ")
	builder.WriteString("warning_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WarningCount))
	builder.WriteByte(')')
	return builder.String()
}

// ConversionRuns is a parsable slice of ConversionRun.
type ConversionRuns []*ConversionRun

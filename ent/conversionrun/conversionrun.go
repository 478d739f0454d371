// Code generated by ent, DO NOT EDIT.

package conversionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the conversionrun type in the database.
	Label = "conversion_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldInputPath holds the string denoting the input_path field in the database.
	FieldInputPath = "input_path"
	// FieldOutputPath holds the string denoting the output_path field in the database.
	FieldOutputPath = "output_path"
	// FieldDryRun holds the string denoting the dry_run field in the database.
	FieldDryRun = "dry_run"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldConverted holds the string denoting the converted field in the database.
	FieldConverted = "converted"
	// FieldPreValidationFailed holds the string denoting the pre_validation_failed field in the database.
	FieldPreValidationFailed = "pre_validation_failed"
	// FieldConversionFailed holds the string denoting the conversion_failed field in the database.
	FieldConversionFailed = "conversion_failed"
	// FieldPostValidationFailed holds the string denoting the post_validation_failed field in the database.
	FieldPostValidationFailed = "post_validation_failed"
	// FieldWarningCount holds the string denoting the warning_count field in the database.
	FieldWarningCount = "warning_count"
	// Table holds the table name of the conversionrun in the database.
	Table = "conversion_runs"
)

// Columns holds all SQL columns for conversionrun fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldStartedAt,
	FieldFinishedAt,
	FieldInputPath,
	FieldOutputPath,
	FieldDryRun,
	FieldTotal,
	FieldConverted,
	FieldPreValidationFailed,
	FieldConversionFailed,
	FieldPostValidationFailed,
	FieldWarningCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRunID holds the default value on creation for the "run_id" field.
	DefaultRunID func() uuid.UUID
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultDryRun holds the default value on creation for the "dry_run" field.
	DefaultDryRun bool
)

// OrderOption defines the ordering options for the ConversionRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByInputPath orders the results by the input_path field.
func ByInputPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputPath, opts...).ToFunc()
}

// ByOutputPath orders the results by the output_path field.
func ByOutputPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputPath, opts...).ToFunc()
}

// ByDryRun orders the results by the dry_run field.
func ByDryRun(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDryRun, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByConverted orders the results by the converted field.
func ByConverted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConverted, opts...).ToFunc()
}

// ByPreValidationFailed orders the results by the pre_validation_failed field.
func ByPreValidationFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreValidationFailed, opts...).ToFunc()
}

// ByConversionFailed orders the results by the conversion_failed field.
func ByConversionFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversionFailed, opts...).ToFunc()
}

// ByPostValidationFailed orders the results by the post_validation_failed field.
func ByPostValidationFailed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostValidationFailed, opts...).ToFunc()
}

// ByWarningCount orders the results by the warning_count field.
func ByWarningCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarningCount, opts...).ToFunc()
}

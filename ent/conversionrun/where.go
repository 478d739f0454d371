// Code generated by ent, DO NOT EDIT.

package conversionrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edforge/qconvert/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldRunID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldFinishedAt, v))
}

// InputPath applies equality check predicate on the "input_path" field. It's identical to InputPathEQ.
func InputPath(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldInputPath, v))
}

// OutputPath applies equality check predicate on the "output_path" field. It's identical to OutputPathEQ.
func OutputPath(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldOutputPath, v))
}

// DryRun applies equality check predicate on the "dry_run" field. It's identical to DryRunEQ.
func DryRun(v bool) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldDryRun, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldTotal, v))
}

// Converted applies equality check predicate on the "converted" field. It's identical to ConvertedEQ.
func Converted(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldConverted, v))
}

// PreValidationFailed applies equality check predicate on the "pre_validation_failed" field. It's identical to PreValidationFailedEQ.
func PreValidationFailed(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldPreValidationFailed, v))
}

// ConversionFailed applies equality check predicate on the "conversion_failed" field. It's identical to ConversionFailedEQ.
func ConversionFailed(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldConversionFailed, v))
}

// PostValidationFailed applies equality check predicate on the "post_validation_failed" field. It's identical to PostValidationFailedEQ.
func PostValidationFailed(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldPostValidationFailed, v))
}

// WarningCount applies equality check predicate on the "warning_count" field. It's identical to WarningCountEQ.
func WarningCount(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldWarningCount, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v uuid.UUID) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldRunID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldFinishedAt, v))
}

// InputPathEQ applies the EQ predicate on the "input_path" field.
func InputPathEQ(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldInputPath, v))
}

// InputPathNEQ applies the NEQ predicate on the "input_path" field.
func InputPathNEQ(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldInputPath, v))
}

// InputPathIn applies the In predicate on the "input_path" field.
func InputPathIn(vs ...string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldInputPath, vs...))
}

// InputPathNotIn applies the NotIn predicate on the "input_path" field.
func InputPathNotIn(vs ...string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldInputPath, vs...))
}

// InputPathGT applies the GT predicate on the "input_path" field.
func InputPathGT(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldInputPath, v))
}

// InputPathGTE applies the GTE predicate on the "input_path" field.
func InputPathGTE(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldInputPath, v))
}

// InputPathLT applies the LT predicate on the "input_path" field.
func InputPathLT(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldInputPath, v))
}

// InputPathLTE applies the LTE predicate on the "input_path" field.
func InputPathLTE(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldInputPath, v))
}

// InputPathContains applies the Contains predicate on the "input_path" field.
func InputPathContains(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldContains(FieldInputPath, v))
}

// InputPathHasPrefix applies the HasPrefix predicate on the "input_path" field.
func InputPathHasPrefix(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldHasPrefix(FieldInputPath, v))
}

// InputPathHasSuffix applies the HasSuffix predicate on the "input_path" field.
func InputPathHasSuffix(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldHasSuffix(FieldInputPath, v))
}

// InputPathEqualFold applies the EqualFold predicate on the "input_path" field.
func InputPathEqualFold(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEqualFold(FieldInputPath, v))
}

// InputPathContainsFold applies the ContainsFold predicate on the "input_path" field.
func InputPathContainsFold(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldContainsFold(FieldInputPath, v))
}

// OutputPathEQ applies the EQ predicate on the "output_path" field.
func OutputPathEQ(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldOutputPath, v))
}

// OutputPathNEQ applies the NEQ predicate on the "output_path" field.
func OutputPathNEQ(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldOutputPath, v))
}

// OutputPathIn applies the In predicate on the "output_path" field.
func OutputPathIn(vs ...string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldOutputPath, vs...))
}

// OutputPathNotIn applies the NotIn predicate on the "output_path" field.
func OutputPathNotIn(vs ...string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldOutputPath, vs...))
}

// OutputPathGT applies the GT predicate on the "output_path" field.
func OutputPathGT(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldOutputPath, v))
}

// OutputPathGTE applies the GTE predicate on the "output_path" field.
func OutputPathGTE(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldOutputPath, v))
}

// OutputPathLT applies the LT predicate on the "output_path" field.
func OutputPathLT(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldOutputPath, v))
}

// OutputPathLTE applies the LTE predicate on the "output_path" field.
func OutputPathLTE(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldOutputPath, v))
}

// OutputPathContains applies the Contains predicate on the "output_path" field.
func OutputPathContains(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldContains(FieldOutputPath, v))
}

// OutputPathHasPrefix applies the HasPrefix predicate on the "output_path" field.
func OutputPathHasPrefix(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldHasPrefix(FieldOutputPath, v))
}

// OutputPathHasSuffix applies the HasSuffix predicate on the "output_path" field.
func OutputPathHasSuffix(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldHasSuffix(FieldOutputPath, v))
}

// OutputPathEqualFold applies the EqualFold predicate on the "output_path" field.
func OutputPathEqualFold(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEqualFold(FieldOutputPath, v))
}

// OutputPathContainsFold applies the ContainsFold predicate on the "output_path" field.
func OutputPathContainsFold(v string) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldContainsFold(FieldOutputPath, v))
}

// DryRunEQ applies the EQ predicate on the "dry_run" field.
func DryRunEQ(v bool) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldDryRun, v))
}

// DryRunNEQ applies the NEQ predicate on the "dry_run" field.
func DryRunNEQ(v bool) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldDryRun, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldTotal, v))
}

// ConvertedEQ applies the EQ predicate on the "converted" field.
func ConvertedEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldConverted, v))
}

// ConvertedNEQ applies the NEQ predicate on the "converted" field.
func ConvertedNEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldConverted, v))
}

// ConvertedIn applies the In predicate on the "converted" field.
func ConvertedIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldConverted, vs...))
}

// ConvertedNotIn applies the NotIn predicate on the "converted" field.
func ConvertedNotIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldConverted, vs...))
}

// ConvertedGT applies the GT predicate on the "converted" field.
func ConvertedGT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldConverted, v))
}

// ConvertedGTE applies the GTE predicate on the "converted" field.
func ConvertedGTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldConverted, v))
}

// ConvertedLT applies the LT predicate on the "converted" field.
func ConvertedLT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldConverted, v))
}

// ConvertedLTE applies the LTE predicate on the "converted" field.
func ConvertedLTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldConverted, v))
}

// PreValidationFailedEQ applies the EQ predicate on the "pre_validation_failed" field.
func PreValidationFailedEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldPreValidationFailed, v))
}

// PreValidationFailedNEQ applies the NEQ predicate on the "pre_validation_failed" field.
func PreValidationFailedNEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldPreValidationFailed, v))
}

// PreValidationFailedIn applies the In predicate on the "pre_validation_failed" field.
func PreValidationFailedIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldPreValidationFailed, vs...))
}

// PreValidationFailedNotIn applies the NotIn predicate on the "pre_validation_failed" field.
func PreValidationFailedNotIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldPreValidationFailed, vs...))
}

// PreValidationFailedGT applies the GT predicate on the "pre_validation_failed" field.
func PreValidationFailedGT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldPreValidationFailed, v))
}

// PreValidationFailedGTE applies the GTE predicate on the "pre_validation_failed" field.
func PreValidationFailedGTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldPreValidationFailed, v))
}

// PreValidationFailedLT applies the LT predicate on the "pre_validation_failed" field.
func PreValidationFailedLT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldPreValidationFailed, v))
}

// PreValidationFailedLTE applies the LTE predicate on the "pre_validation_failed" field.
func PreValidationFailedLTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldPreValidationFailed, v))
}

// ConversionFailedEQ applies the EQ predicate on the "conversion_failed" field.
func ConversionFailedEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldConversionFailed, v))
}

// ConversionFailedNEQ applies the NEQ predicate on the "conversion_failed" field.
func ConversionFailedNEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldConversionFailed, v))
}

// ConversionFailedIn applies the In predicate on the "conversion_failed" field.
func ConversionFailedIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldConversionFailed, vs...))
}

// ConversionFailedNotIn applies the NotIn predicate on the "conversion_failed" field.
func ConversionFailedNotIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldConversionFailed, vs...))
}

// ConversionFailedGT applies the GT predicate on the "conversion_failed" field.
func ConversionFailedGT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldConversionFailed, v))
}

// ConversionFailedGTE applies the GTE predicate on the "conversion_failed" field.
func ConversionFailedGTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldConversionFailed, v))
}

// ConversionFailedLT applies the LT predicate on the "conversion_failed" field.
func ConversionFailedLT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldConversionFailed, v))
}

// ConversionFailedLTE applies the LTE predicate on the "conversion_failed" field.
func ConversionFailedLTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldConversionFailed, v))
}

// PostValidationFailedEQ applies the EQ predicate on the "post_validation_failed" field.
func PostValidationFailedEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldPostValidationFailed, v))
}

// PostValidationFailedNEQ applies the NEQ predicate on the "post_validation_failed" field.
func PostValidationFailedNEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldPostValidationFailed, v))
}

// PostValidationFailedIn applies the In predicate on the "post_validation_failed" field.
func PostValidationFailedIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldPostValidationFailed, vs...))
}

// PostValidationFailedNotIn applies the NotIn predicate on the "post_validation_failed" field.
func PostValidationFailedNotIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldPostValidationFailed, vs...))
}

// PostValidationFailedGT applies the GT predicate on the "post_validation_failed" field.
func PostValidationFailedGT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldPostValidationFailed, v))
}

// PostValidationFailedGTE applies the GTE predicate on the "post_validation_failed" field.
func PostValidationFailedGTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldPostValidationFailed, v))
}

// PostValidationFailedLT applies the LT predicate on the "post_validation_failed" field.
func PostValidationFailedLT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldPostValidationFailed, v))
}

// PostValidationFailedLTE applies the LTE predicate on the "post_validation_failed" field.
func PostValidationFailedLTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldPostValidationFailed, v))
}

// WarningCountEQ applies the EQ predicate on the "warning_count" field.
func WarningCountEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldEQ(FieldWarningCount, v))
}

// WarningCountNEQ applies the NEQ predicate on the "warning_count" field.
func WarningCountNEQ(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNEQ(FieldWarningCount, v))
}

// WarningCountIn applies the In predicate on the "warning_count" field.
func WarningCountIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldIn(FieldWarningCount, vs...))
}

// WarningCountNotIn applies the NotIn predicate on the "warning_count" field.
func WarningCountNotIn(vs ...int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldNotIn(FieldWarningCount, vs...))
}

// WarningCountGT applies the GT predicate on the "warning_count" field.
func WarningCountGT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGT(FieldWarningCount, v))
}

// WarningCountGTE applies the GTE predicate on the "warning_count" field.
func WarningCountGTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldGTE(FieldWarningCount, v))
}

// WarningCountLT applies the LT predicate on the "warning_count" field.
func WarningCountLT(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLT(FieldWarningCount, v))
}

// WarningCountLTE applies the LTE predicate on the "warning_count" field.
func WarningCountLTE(v int) predicate.ConversionRun {
	return predicate.ConversionRun(sql.FieldLTE(FieldWarningCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversionRun) predicate.ConversionRun {
	return predicate.ConversionRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversionRun) predicate.ConversionRun {
	return predicate.ConversionRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversionRun) predicate.ConversionRun {
	return predicate.ConversionRun(sql.NotPredicates(p))
}

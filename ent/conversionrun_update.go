// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/edforge/qconvert/ent/predicate"
)

// ConversionRunUpdate is the builder for updating ConversionRun entities.
type ConversionRunUpdate struct {
	config
	hooks    []Hook
	mutation *ConversionRunMutation
}

// Where appends a list predicates to the ConversionRunUpdate builder.
func (_u *ConversionRunUpdate) Where(ps ...predicate.ConversionRun) *ConversionRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ConversionRunUpdate) SetFinishedAt(v time.Time) *ConversionRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableFinishedAt(v *time.Time) *ConversionRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetInputPath sets the "input_path" field.
func (_u *ConversionRunUpdate) SetInputPath(v string) *ConversionRunUpdate {
	_u.mutation.SetInputPath(v)
	return _u
}

// SetNillableInputPath sets the "input_path" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableInputPath(v *string) *ConversionRunUpdate {
	if v != nil {
		_u.SetInputPath(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *ConversionRunUpdate) SetOutputPath(v string) *ConversionRunUpdate {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableOutputPath(v *string) *ConversionRunUpdate {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetDryRun sets the "dry_run" field.
func (_u *ConversionRunUpdate) SetDryRun(v bool) *ConversionRunUpdate {
	_u.mutation.SetDryRun(v)
	return _u
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableDryRun(v *bool) *ConversionRunUpdate {
	if v != nil {
		_u.SetDryRun(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ConversionRunUpdate) SetTotal(v int) *ConversionRunUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableTotal(v *int) *ConversionRunUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ConversionRunUpdate) AddTotal(v int) *ConversionRunUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetConverted sets the "converted" field.
func (_u *ConversionRunUpdate) SetConverted(v int) *ConversionRunUpdate {
	_u.mutation.ResetConverted()
	_u.mutation.SetConverted(v)
	return _u
}

// SetNillableConverted sets the "converted" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableConverted(v *int) *ConversionRunUpdate {
	if v != nil {
		_u.SetConverted(*v)
	}
	return _u
}

// AddConverted adds value to the "converted" field.
func (_u *ConversionRunUpdate) AddConverted(v int) *ConversionRunUpdate {
	_u.mutation.AddConverted(v)
	return _u
}

// SetPreValidationFailed sets the "pre_validation_failed" field.
func (_u *ConversionRunUpdate) SetPreValidationFailed(v int) *ConversionRunUpdate {
	_u.mutation.ResetPreValidationFailed()
	_u.mutation.SetPreValidationFailed(v)
	return _u
}

// SetNillablePreValidationFailed sets the "pre_validation_failed" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillablePreValidationFailed(v *int) *ConversionRunUpdate {
	if v != nil {
		_u.SetPreValidationFailed(*v)
	}
	return _u
}

// AddPreValidationFailed adds value to the "pre_validation_failed" field.
func (_u *ConversionRunUpdate) AddPreValidationFailed(v int) *ConversionRunUpdate {
	_u.mutation.AddPreValidationFailed(v)
	return _u
}

// SetConversionFailed sets the "conversion_failed" field.
func (_u *ConversionRunUpdate) SetConversionFailed(v int) *ConversionRunUpdate {
	_u.mutation.ResetConversionFailed()
	_u.mutation.SetConversionFailed(v)
	return _u
}

// SetNillableConversionFailed sets the "conversion_failed" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableConversionFailed(v *int) *ConversionRunUpdate {
	if v != nil {
		_u.SetConversionFailed(*v)
	}
	return _u
}

// AddConversionFailed adds value to the "conversion_failed" field.
func (_u *ConversionRunUpdate) AddConversionFailed(v int) *ConversionRunUpdate {
	_u.mutation.AddConversionFailed(v)
	return _u
}

// SetPostValidationFailed sets the "post_validation_failed" field.
func (_u *ConversionRunUpdate) SetPostValidationFailed(v int) *ConversionRunUpdate {
	_u.mutation.ResetPostValidationFailed()
	_u.mutation.SetPostValidationFailed(v)
	return _u
}

// SetNillablePostValidationFailed sets the "post_validation_failed" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillablePostValidationFailed(v *int) *ConversionRunUpdate {
	if v != nil {
		_u.SetPostValidationFailed(*v)
	}
	return _u
}

// AddPostValidationFailed adds value to the "post_validation_failed" field.
func (_u *ConversionRunUpdate) AddPostValidationFailed(v int) *ConversionRunUpdate {
	_u.mutation.AddPostValidationFailed(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ConversionRunUpdate) SetWarningCount(v int) *ConversionRunUpdate {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ConversionRunUpdate) SetNillableWarningCount(v *int) *ConversionRunUpdate {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ConversionRunUpdate) AddWarningCount(v int) *ConversionRunUpdate {
	_u.mutation.AddWarningCount(v)
	return _u
}

// Mutation returns the ConversionRunMutation object of the builder.
func (_u *ConversionRunUpdate) Mutation() *ConversionRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversionRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversionRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversionRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversionrun.Table, conversionrun.Columns, sqlgraph.NewFieldSpec(conversionrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(conversionrun.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InputPath(); ok {
		_spec.SetField(conversionrun.FieldInputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(conversionrun.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DryRun(); ok {
		_spec.SetField(conversionrun.FieldDryRun, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(conversionrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(conversionrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Converted(); ok {
		_spec.SetField(conversionrun.FieldConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConverted(); ok {
		_spec.AddField(conversionrun.FieldConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreValidationFailed(); ok {
		_spec.SetField(conversionrun.FieldPreValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreValidationFailed(); ok {
		_spec.AddField(conversionrun.FieldPreValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConversionFailed(); ok {
		_spec.SetField(conversionrun.FieldConversionFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversionFailed(); ok {
		_spec.AddField(conversionrun.FieldConversionFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostValidationFailed(); ok {
		_spec.SetField(conversionrun.FieldPostValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostValidationFailed(); ok {
		_spec.AddField(conversionrun.FieldPostValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(conversionrun.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(conversionrun.FieldWarningCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversionRunUpdateOne is the builder for updating a single ConversionRun entity.
type ConversionRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversionRunMutation
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ConversionRunUpdateOne) SetFinishedAt(v time.Time) *ConversionRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableFinishedAt(v *time.Time) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// SetInputPath sets the "input_path" field.
func (_u *ConversionRunUpdateOne) SetInputPath(v string) *ConversionRunUpdateOne {
	_u.mutation.SetInputPath(v)
	return _u
}

// SetNillableInputPath sets the "input_path" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableInputPath(v *string) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetInputPath(*v)
	}
	return _u
}

// SetOutputPath sets the "output_path" field.
func (_u *ConversionRunUpdateOne) SetOutputPath(v string) *ConversionRunUpdateOne {
	_u.mutation.SetOutputPath(v)
	return _u
}

// SetNillableOutputPath sets the "output_path" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableOutputPath(v *string) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetOutputPath(*v)
	}
	return _u
}

// SetDryRun sets the "dry_run" field.
func (_u *ConversionRunUpdateOne) SetDryRun(v bool) *ConversionRunUpdateOne {
	_u.mutation.SetDryRun(v)
	return _u
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableDryRun(v *bool) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetDryRun(*v)
	}
	return _u
}

// SetTotal sets the "total" field.
func (_u *ConversionRunUpdateOne) SetTotal(v int) *ConversionRunUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableTotal(v *int) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ConversionRunUpdateOne) AddTotal(v int) *ConversionRunUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetConverted sets the "converted" field.
func (_u *ConversionRunUpdateOne) SetConverted(v int) *ConversionRunUpdateOne {
	_u.mutation.ResetConverted()
	_u.mutation.SetConverted(v)
	return _u
}

// SetNillableConverted sets the "converted" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableConverted(v *int) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetConverted(*v)
	}
	return _u
}

// AddConverted adds value to the "converted" field.
func (_u *ConversionRunUpdateOne) AddConverted(v int) *ConversionRunUpdateOne {
	_u.mutation.AddConverted(v)
	return _u
}

// SetPreValidationFailed sets the "pre_validation_failed" field.
func (_u *ConversionRunUpdateOne) SetPreValidationFailed(v int) *ConversionRunUpdateOne {
	_u.mutation.ResetPreValidationFailed()
	_u.mutation.SetPreValidationFailed(v)
	return _u
}

// SetNillablePreValidationFailed sets the "pre_validation_failed" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillablePreValidationFailed(v *int) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetPreValidationFailed(*v)
	}
	return _u
}

// AddPreValidationFailed adds value to the "pre_validation_failed" field.
func (_u *ConversionRunUpdateOne) AddPreValidationFailed(v int) *ConversionRunUpdateOne {
	_u.mutation.AddPreValidationFailed(v)
	return _u
}

// SetConversionFailed sets the "conversion_failed" field.
func (_u *ConversionRunUpdateOne) SetConversionFailed(v int) *ConversionRunUpdateOne {
	_u.mutation.ResetConversionFailed()
	_u.mutation.SetConversionFailed(v)
	return _u
}

// SetNillableConversionFailed sets the "conversion_failed" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableConversionFailed(v *int) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetConversionFailed(*v)
	}
	return _u
}

// AddConversionFailed adds value to the "conversion_failed" field.
func (_u *ConversionRunUpdateOne) AddConversionFailed(v int) *ConversionRunUpdateOne {
	_u.mutation.AddConversionFailed(v)
	return _u
}

// SetPostValidationFailed sets the "post_validation_failed" field.
func (_u *ConversionRunUpdateOne) SetPostValidationFailed(v int) *ConversionRunUpdateOne {
	_u.mutation.ResetPostValidationFailed()
	_u.mutation.SetPostValidationFailed(v)
	return _u
}

// SetNillablePostValidationFailed sets the "post_validation_failed" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillablePostValidationFailed(v *int) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetPostValidationFailed(*v)
	}
	return _u
}

// AddPostValidationFailed adds value to the "post_validation_failed" field.
func (_u *ConversionRunUpdateOne) AddPostValidationFailed(v int) *ConversionRunUpdateOne {
	_u.mutation.AddPostValidationFailed(v)
	return _u
}

// SetWarningCount sets the "warning_count" field.
func (_u *ConversionRunUpdateOne) SetWarningCount(v int) *ConversionRunUpdateOne {
	_u.mutation.ResetWarningCount()
	_u.mutation.SetWarningCount(v)
	return _u
}

// SetNillableWarningCount sets the "warning_count" field if the given value is not nil.
func (_u *ConversionRunUpdateOne) SetNillableWarningCount(v *int) *ConversionRunUpdateOne {
	if v != nil {
		_u.SetWarningCount(*v)
	}
	return _u
}

// AddWarningCount adds value to the "warning_count" field.
func (_u *ConversionRunUpdateOne) AddWarningCount(v int) *ConversionRunUpdateOne {
	_u.mutation.AddWarningCount(v)
	return _u
}

// Mutation returns the ConversionRunMutation object of the builder.
func (_u *ConversionRunUpdateOne) Mutation() *ConversionRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversionRunUpdate builder.
func (_u *ConversionRunUpdateOne) Where(ps ...predicate.ConversionRun) *ConversionRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversionRunUpdateOne) Select(field string, fields ...string) *ConversionRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConversionRun entity.
func (_u *ConversionRunUpdateOne) Save(ctx context.Context) (*ConversionRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversionRunUpdateOne) SaveX(ctx context.Context) *ConversionRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversionRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversionRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ConversionRunUpdateOne) sqlSave(ctx context.Context) (_node *ConversionRun, err error) {
	_spec := sqlgraph.NewUpdateSpec(conversionrun.Table, conversionrun.Columns, sqlgraph.NewFieldSpec(conversionrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConversionRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversionrun.FieldID)
		for _, f := range fields {
			if !conversionrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversionrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(conversionrun.FieldFinishedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InputPath(); ok {
		_spec.SetField(conversionrun.FieldInputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputPath(); ok {
		_spec.SetField(conversionrun.FieldOutputPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DryRun(); ok {
		_spec.SetField(conversionrun.FieldDryRun, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(conversionrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(conversionrun.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Converted(); ok {
		_spec.SetField(conversionrun.FieldConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConverted(); ok {
		_spec.AddField(conversionrun.FieldConverted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PreValidationFailed(); ok {
		_spec.SetField(conversionrun.FieldPreValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPreValidationFailed(); ok {
		_spec.AddField(conversionrun.FieldPreValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ConversionFailed(); ok {
		_spec.SetField(conversionrun.FieldConversionFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConversionFailed(); ok {
		_spec.AddField(conversionrun.FieldConversionFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PostValidationFailed(); ok {
		_spec.SetField(conversionrun.FieldPostValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPostValidationFailed(); ok {
		_spec.AddField(conversionrun.FieldPostValidationFailed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WarningCount(); ok {
		_spec.SetField(conversionrun.FieldWarningCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWarningCount(); ok {
		_spec.AddField(conversionrun.FieldWarningCount, field.TypeInt, value)
	}
	_node = &ConversionRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversionrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/edforge/qconvert/ent/fileresult"
	"github.com/edforge/qconvert/ent/predicate"
)

// FileResultUpdate is the builder for updating FileResult entities.
type FileResultUpdate struct {
	config
	hooks    []Hook
	mutation *FileResultMutation
}

// Where appends a list predicates to the FileResultUpdate builder.
func (_u *FileResultUpdate) Where(ps ...predicate.FileResult) *FileResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *FileResultUpdate) SetFilename(v string) *FileResultUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableFilename(v *string) *FileResultUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *FileResultUpdate) SetQuestionID(v string) *FileResultUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableQuestionID(v *string) *FileResultUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileResultUpdate) SetStatus(v string) *FileResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileResultUpdate) SetNillableStatus(v *string) *FileResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrors sets the "errors" field.
func (_u *FileResultUpdate) SetErrors(v []string) *FileResultUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *FileResultUpdate) AppendErrors(v []string) *FileResultUpdate {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *FileResultUpdate) ClearErrors() *FileResultUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *FileResultUpdate) SetWarnings(v []string) *FileResultUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *FileResultUpdate) AppendWarnings(v []string) *FileResultUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *FileResultUpdate) ClearWarnings() *FileResultUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// Mutation returns the FileResultMutation object of the builder.
func (_u *FileResultUpdate) Mutation() *FileResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FileResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fileresult.Table, fileresult.Columns, sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(fileresult.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(fileresult.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fileresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(fileresult.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fileresult.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(fileresult.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(fileresult.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fileresult.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(fileresult.FieldWarnings, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileResultUpdateOne is the builder for updating a single FileResult entity.
type FileResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileResultMutation
}

// SetFilename sets the "filename" field.
func (_u *FileResultUpdateOne) SetFilename(v string) *FileResultUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableFilename(v *string) *FileResultUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *FileResultUpdateOne) SetQuestionID(v string) *FileResultUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableQuestionID(v *string) *FileResultUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileResultUpdateOne) SetStatus(v string) *FileResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileResultUpdateOne) SetNillableStatus(v *string) *FileResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrors sets the "errors" field.
func (_u *FileResultUpdateOne) SetErrors(v []string) *FileResultUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *FileResultUpdateOne) AppendErrors(v []string) *FileResultUpdateOne {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *FileResultUpdateOne) ClearErrors() *FileResultUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *FileResultUpdateOne) SetWarnings(v []string) *FileResultUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *FileResultUpdateOne) AppendWarnings(v []string) *FileResultUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *FileResultUpdateOne) ClearWarnings() *FileResultUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// Mutation returns the FileResultMutation object of the builder.
func (_u *FileResultUpdateOne) Mutation() *FileResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the FileResultUpdate builder.
func (_u *FileResultUpdateOne) Where(ps ...predicate.FileResult) *FileResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileResultUpdateOne) Select(field string, fields ...string) *FileResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileResult entity.
func (_u *FileResultUpdateOne) Save(ctx context.Context) (*FileResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileResultUpdateOne) SaveX(ctx context.Context) *FileResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FileResultUpdateOne) sqlSave(ctx context.Context) (_node *FileResult, err error) {
	_spec := sqlgraph.NewUpdateSpec(fileresult.Table, fileresult.Columns, sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FileResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fileresult.FieldID)
		for _, f := range fields {
			if !fileresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fileresult.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(fileresult.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(fileresult.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fileresult.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(fileresult.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fileresult.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(fileresult.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(fileresult.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fileresult.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(fileresult.FieldWarnings, field.TypeJSON)
	}
	_node = &FileResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fileresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

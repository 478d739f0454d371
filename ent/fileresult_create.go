// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edforge/qconvert/ent/fileresult"
	"github.com/google/uuid"
)

// FileResultCreate is the builder for creating a FileResult entity.
type FileResultCreate struct {
	config
	mutation *FileResultMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *FileResultCreate) SetRunID(v uuid.UUID) *FileResultCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *FileResultCreate) SetFilename(v string) *FileResultCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *FileResultCreate) SetQuestionID(v string) *FileResultCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FileResultCreate) SetStatus(v string) *FileResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetErrors sets the "errors" field.
func (_c *FileResultCreate) SetErrors(v []string) *FileResultCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *FileResultCreate) SetWarnings(v []string) *FileResultCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// Mutation returns the FileResultMutation object of the builder.
func (_c *FileResultCreate) Mutation() *FileResultMutation {
	return _c.mutation
}

// Save creates the FileResult in the database.
func (_c *FileResultCreate) Save(ctx context.Context) (*FileResult, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileResultCreate) SaveX(ctx context.Context) *FileResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileResultCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "FileResult.run_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "FileResult.filename"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "FileResult.question_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FileResult.status"`)}
	}
	return nil
}

func (_c *FileResultCreate) sqlSave(ctx context.Context) (*FileResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileResultCreate) createSpec() (*FileResult, *sqlgraph.CreateSpec) {
	var (
		_node = &FileResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fileresult.Table, sqlgraph.NewFieldSpec(fileresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(fileresult.FieldRunID, field.TypeUUID, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(fileresult.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(fileresult.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fileresult.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(fileresult.FieldErrors, field.TypeJSON, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(fileresult.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	return _node, _spec
}

// FileResultCreateBulk is the builder for creating many FileResult entities in bulk.
type FileResultCreateBulk struct {
	config
	err      error
	builders []*FileResultCreate
}

// Save creates the FileResult entities in the database.
func (_c *FileResultCreateBulk) Save(ctx context.Context) ([]*FileResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FileResultCreateBulk) SaveX(ctx context.Context) []*FileResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

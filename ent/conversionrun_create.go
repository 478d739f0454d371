// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/google/uuid"
)

// ConversionRunCreate is the builder for creating a ConversionRun entity.
type ConversionRunCreate struct {
	config
	mutation *ConversionRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ConversionRunCreate) SetRunID(v uuid.UUID) *ConversionRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *ConversionRunCreate) SetNillableRunID(v *uuid.UUID) *ConversionRunCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ConversionRunCreate) SetStartedAt(v time.Time) *ConversionRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ConversionRunCreate) SetNillableStartedAt(v *time.Time) *ConversionRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ConversionRunCreate) SetFinishedAt(v time.Time) *ConversionRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetInputPath sets the "input_path" field.
func (_c *ConversionRunCreate) SetInputPath(v string) *ConversionRunCreate {
	_c.mutation.SetInputPath(v)
	return _c
}

// SetOutputPath sets the "output_path" field.
func (_c *ConversionRunCreate) SetOutputPath(v string) *ConversionRunCreate {
	_c.mutation.SetOutputPath(v)
	return _c
}

// SetDryRun sets the "dry_run" field.
func (_c *ConversionRunCreate) SetDryRun(v bool) *ConversionRunCreate {
	_c.mutation.SetDryRun(v)
	return _c
}

// SetNillableDryRun sets the "dry_run" field if the given value is not nil.
func (_c *ConversionRunCreate) SetNillableDryRun(v *bool) *ConversionRunCreate {
	if v != nil {
		_c.SetDryRun(*v)
	}
	return _c
}

// SetTotal sets the "total" field.
func (_c *ConversionRunCreate) SetTotal(v int) *ConversionRunCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetConverted sets the "converted" field.
func (_c *ConversionRunCreate) SetConverted(v int) *ConversionRunCreate {
	_c.mutation.SetConverted(v)
	return _c
}

// SetPreValidationFailed sets the "pre_validation_failed" field.
func (_c *ConversionRunCreate) SetPreValidationFailed(v int) *ConversionRunCreate {
	_c.mutation.SetPreValidationFailed(v)
	return _c
}

// SetConversionFailed sets the "conversion_failed" field.
func (_c *ConversionRunCreate) SetConversionFailed(v int) *ConversionRunCreate {
	_c.mutation.SetConversionFailed(v)
	return _c
}

// SetPostValidationFailed sets the "post_validation_failed" field.
func (_c *ConversionRunCreate) SetPostValidationFailed(v int) *ConversionRunCreate {
	_c.mutation.SetPostValidationFailed(v)
	return _c
}

// SetWarningCount sets the "warning_count" field.
func (_c *ConversionRunCreate) SetWarningCount(v int) *ConversionRunCreate {
	_c.mutation.SetWarningCount(v)
	return _c
}

// Mutation returns the ConversionRunMutation object of the builder.
func (_c *ConversionRunCreate) Mutation() *ConversionRunMutation {
	return _c.mutation
}

// Save creates the ConversionRun in the database.
func (_c *ConversionRunCreate) Save(ctx context.Context) (*ConversionRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversionRunCreate) SaveX(ctx context.Context) *ConversionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversionRunCreate) defaults() {
	if _, ok := _c.mutation.RunID(); !ok {
		v := conversionrun.DefaultRunID()
		_c.mutation.SetRunID(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := conversionrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.DryRun(); !ok {
		v := conversionrun.DefaultDryRun
		_c.mutation.SetDryRun(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversionRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ConversionRun.run_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ConversionRun.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "ConversionRun.finished_at"`)}
	}
	if _, ok := _c.mutation.InputPath(); !ok {
		return &ValidationError{Name: "input_path", err: errors.New(`ent: missing required field "ConversionRun.input_path"`)}
	}
	if _, ok := _c.mutation.OutputPath(); !ok {
		return &ValidationError{Name: "output_path", err: errors.New(`ent: missing required field "ConversionRun.output_path"`)}
	}
	if _, ok := _c.mutation.DryRun(); !ok {
		return &ValidationError{Name: "dry_run", err: errors.New(`ent: missing required field "ConversionRun.dry_run"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ConversionRun.total"`)}
	}
	if _, ok := _c.mutation.Converted(); !ok {
		return &ValidationError{Name: "converted", err: errors.New(`ent: missing required field "ConversionRun.converted"`)}
	}
	if _, ok := _c.mutation.PreValidationFailed(); !ok {
		return &ValidationError{Name: "pre_validation_failed", err: errors.New(`ent: missing required field "ConversionRun.pre_validation_failed"`)}
	}
	if _, ok := _c.mutation.ConversionFailed(); !ok {
		return &ValidationError{Name: "conversion_failed", err: errors.New(`ent: missing required field "ConversionRun.conversion_failed"`)}
	}
	if _, ok := _c.mutation.PostValidationFailed(); !ok {
		return &ValidationError{Name: "post_validation_failed", err: errors.New(`ent: missing required field "ConversionRun.post_validation_failed"`)}
	}
	if _, ok := _c.mutation.WarningCount(); !ok {
		return &ValidationError{Name: "warning_count", err: errors.New(`ent: missing required field "ConversionRun.warning_count"`)}
	}
	return nil
}

func (_c *ConversionRunCreate) sqlSave(ctx context.Context) (*ConversionRun, error) {
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

func (_c *ConversionRunCreate) createSpec() (*ConversionRun, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversionRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversionrun.Table, sqlgraph.NewFieldSpec(conversionrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(conversionrun.FieldRunID, field.TypeUUID, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(conversionrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(conversionrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	if value, ok := _c.mutation.InputPath(); ok {
		_spec.SetField(conversionrun.FieldInputPath, field.TypeString, value)
		_node.InputPath = value
	}
	if value, ok := _c.mutation.OutputPath(); ok {
		_spec.SetField(conversionrun.FieldOutputPath, field.TypeString, value)
		_node.OutputPath = value
	}
	if value, ok := _c.mutation.DryRun(); ok {
		_spec.SetField(conversionrun.FieldDryRun, field.TypeBool, value)
		_node.DryRun = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(conversionrun.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Converted(); ok {
		_spec.SetField(conversionrun.FieldConverted, field.TypeInt, value)
		_node.Converted = value
	}
	if value, ok := _c.mutation.PreValidationFailed(); ok {
		_spec.SetField(conversionrun.FieldPreValidationFailed, field.TypeInt, value)
		_node.PreValidationFailed = value
	}
	if value, ok := _c.mutation.ConversionFailed(); ok {
		_spec.SetField(conversionrun.FieldConversionFailed, field.TypeInt, value)
		_node.ConversionFailed = value
	}
	if value, ok := _c.mutation.PostValidationFailed(); ok {
		_spec.SetField(conversionrun.FieldPostValidationFailed, field.TypeInt, value)
		_node.PostValidationFailed = value
	}
	if value, ok := _c.mutation.WarningCount(); ok {
		_spec.SetField(conversionrun.FieldWarningCount, field.TypeInt, value)
		_node.WarningCount = value
	}
	return _node, _spec
}

// ConversionRunCreateBulk is the builder for creating many ConversionRun entities in bulk.
type ConversionRunCreateBulk struct {
	config
	err      error
	builders []*ConversionRunCreate
}

// Save creates the ConversionRun entities in the database.
func (_c *ConversionRunCreateBulk) Save(ctx context.Context) ([]*ConversionRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversionRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversionRunMutation)
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
func (_c *ConversionRunCreateBulk) SaveX(ctx context.Context) []*ConversionRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversionRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversionRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

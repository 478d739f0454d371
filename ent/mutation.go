// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/edforge/qconvert/ent/conversionrun"
	"github.com/edforge/qconvert/ent/fileresult"
	"github.com/edforge/qconvert/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversionRun = "ConversionRun"
	TypeFileResult    = "FileResult"
)

// ConversionRunMutation represents an operation that mutates the ConversionRun nodes in the graph.
type ConversionRunMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	run_id                    *uuid.UUID
	started_at                *time.Time
	finished_at               *time.Time
	input_path                *string
	output_path               *string
	dry_run                   *bool
	total                     *int
	addtotal                  *int
	converted                 *int
	addconverted              *int
	pre_validation_failed     *int
	addpre_validation_failed  *int
	conversion_failed         *int
	addconversion_failed      *int
	post_validation_failed    *int
	addpost_validation_failed *int
	warning_count             *int
	addwarning_count          *int
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ConversionRun, error)
	predicates                []predicate.ConversionRun
}

var _ ent.Mutation = (*ConversionRunMutation)(nil)

// conversionrunOption allows management of the mutation configuration using functional options.
type conversionrunOption func(*ConversionRunMutation)

// newConversionRunMutation creates new mutation for the ConversionRun entity.
func newConversionRunMutation(c config, op Op, opts ...conversionrunOption) *ConversionRunMutation {
	m := &ConversionRunMutation{
		config:        c,
		op:            op,
		typ:           TypeConversionRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversionRunID sets the ID field of the mutation.
func withConversionRunID(id int) conversionrunOption {
	return func(m *ConversionRunMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversionRun
		)
		m.oldValue = func(ctx context.Context) (*ConversionRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversionRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversionRun sets the old ConversionRun of the mutation.
func withConversionRun(node *ConversionRun) conversionrunOption {
	return func(m *ConversionRunMutation) {
		m.oldValue = func(context.Context) (*ConversionRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversionRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversionRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversionRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversionRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversionRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ConversionRunMutation) SetRunID(u uuid.UUID) {
	m.run_id = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ConversionRunMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ConversionRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ConversionRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ConversionRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ConversionRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ConversionRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ConversionRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ConversionRunMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// SetInputPath sets the "input_path" field.
func (m *ConversionRunMutation) SetInputPath(s string) {
	m.input_path = &s
}

// InputPath returns the value of the "input_path" field in the mutation.
func (m *ConversionRunMutation) InputPath() (r string, exists bool) {
	v := m.input_path
	if v == nil {
		return
	}
	return *v, true
}

// OldInputPath returns the old "input_path" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldInputPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputPath: %w", err)
	}
	return oldValue.InputPath, nil
}

// ResetInputPath resets all changes to the "input_path" field.
func (m *ConversionRunMutation) ResetInputPath() {
	m.input_path = nil
}

// SetOutputPath sets the "output_path" field.
func (m *ConversionRunMutation) SetOutputPath(s string) {
	m.output_path = &s
}

// OutputPath returns the value of the "output_path" field in the mutation.
func (m *ConversionRunMutation) OutputPath() (r string, exists bool) {
	v := m.output_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputPath returns the old "output_path" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldOutputPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputPath: %w", err)
	}
	return oldValue.OutputPath, nil
}

// ResetOutputPath resets all changes to the "output_path" field.
func (m *ConversionRunMutation) ResetOutputPath() {
	m.output_path = nil
}

// SetDryRun sets the "dry_run" field.
func (m *ConversionRunMutation) SetDryRun(b bool) {
	m.dry_run = &b
}

// DryRun returns the value of the "dry_run" field in the mutation.
func (m *ConversionRunMutation) DryRun() (r bool, exists bool) {
	v := m.dry_run
	if v == nil {
		return
	}
	return *v, true
}

// OldDryRun returns the old "dry_run" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldDryRun(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDryRun is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDryRun requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDryRun: %w", err)
	}
	return oldValue.DryRun, nil
}

// ResetDryRun resets all changes to the "dry_run" field.
func (m *ConversionRunMutation) ResetDryRun() {
	m.dry_run = nil
}

// SetTotal sets the "total" field.
func (m *ConversionRunMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ConversionRunMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *ConversionRunMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ConversionRunMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ConversionRunMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetConverted sets the "converted" field.
func (m *ConversionRunMutation) SetConverted(i int) {
	m.converted = &i
	m.addconverted = nil
}

// Converted returns the value of the "converted" field in the mutation.
func (m *ConversionRunMutation) Converted() (r int, exists bool) {
	v := m.converted
	if v == nil {
		return
	}
	return *v, true
}

// OldConverted returns the old "converted" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldConverted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConverted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConverted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConverted: %w", err)
	}
	return oldValue.Converted, nil
}

// AddConverted adds i to the "converted" field.
func (m *ConversionRunMutation) AddConverted(i int) {
	if m.addconverted != nil {
		*m.addconverted += i
	} else {
		m.addconverted = &i
	}
}

// AddedConverted returns the value that was added to the "converted" field in this mutation.
func (m *ConversionRunMutation) AddedConverted() (r int, exists bool) {
	v := m.addconverted
	if v == nil {
		return
	}
	return *v, true
}

// ResetConverted resets all changes to the "converted" field.
func (m *ConversionRunMutation) ResetConverted() {
	m.converted = nil
	m.addconverted = nil
}

// SetPreValidationFailed sets the "pre_validation_failed" field.
func (m *ConversionRunMutation) SetPreValidationFailed(i int) {
	m.pre_validation_failed = &i
	m.addpre_validation_failed = nil
}

// PreValidationFailed returns the value of the "pre_validation_failed" field in the mutation.
func (m *ConversionRunMutation) PreValidationFailed() (r int, exists bool) {
	v := m.pre_validation_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldPreValidationFailed returns the old "pre_validation_failed" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldPreValidationFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreValidationFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreValidationFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreValidationFailed: %w", err)
	}
	return oldValue.PreValidationFailed, nil
}

// AddPreValidationFailed adds i to the "pre_validation_failed" field.
func (m *ConversionRunMutation) AddPreValidationFailed(i int) {
	if m.addpre_validation_failed != nil {
		*m.addpre_validation_failed += i
	} else {
		m.addpre_validation_failed = &i
	}
}

// AddedPreValidationFailed returns the value that was added to the "pre_validation_failed" field in this mutation.
func (m *ConversionRunMutation) AddedPreValidationFailed() (r int, exists bool) {
	v := m.addpre_validation_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPreValidationFailed resets all changes to the "pre_validation_failed" field.
func (m *ConversionRunMutation) ResetPreValidationFailed() {
	m.pre_validation_failed = nil
	m.addpre_validation_failed = nil
}

// SetConversionFailed sets the "conversion_failed" field.
func (m *ConversionRunMutation) SetConversionFailed(i int) {
	m.conversion_failed = &i
	m.addconversion_failed = nil
}

// ConversionFailed returns the value of the "conversion_failed" field in the mutation.
func (m *ConversionRunMutation) ConversionFailed() (r int, exists bool) {
	v := m.conversion_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldConversionFailed returns the old "conversion_failed" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldConversionFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversionFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversionFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversionFailed: %w", err)
	}
	return oldValue.ConversionFailed, nil
}

// AddConversionFailed adds i to the "conversion_failed" field.
func (m *ConversionRunMutation) AddConversionFailed(i int) {
	if m.addconversion_failed != nil {
		*m.addconversion_failed += i
	} else {
		m.addconversion_failed = &i
	}
}

// AddedConversionFailed returns the value that was added to the "conversion_failed" field in this mutation.
func (m *ConversionRunMutation) AddedConversionFailed() (r int, exists bool) {
	v := m.addconversion_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetConversionFailed resets all changes to the "conversion_failed" field.
func (m *ConversionRunMutation) ResetConversionFailed() {
	m.conversion_failed = nil
	m.addconversion_failed = nil
}

// SetPostValidationFailed sets the "post_validation_failed" field.
func (m *ConversionRunMutation) SetPostValidationFailed(i int) {
	m.post_validation_failed = &i
	m.addpost_validation_failed = nil
}

// PostValidationFailed returns the value of the "post_validation_failed" field in the mutation.
func (m *ConversionRunMutation) PostValidationFailed() (r int, exists bool) {
	v := m.post_validation_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldPostValidationFailed returns the old "post_validation_failed" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldPostValidationFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostValidationFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostValidationFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostValidationFailed: %w", err)
	}
	return oldValue.PostValidationFailed, nil
}

// AddPostValidationFailed adds i to the "post_validation_failed" field.
func (m *ConversionRunMutation) AddPostValidationFailed(i int) {
	if m.addpost_validation_failed != nil {
		*m.addpost_validation_failed += i
	} else {
		m.addpost_validation_failed = &i
	}
}

// AddedPostValidationFailed returns the value that was added to the "post_validation_failed" field in this mutation.
func (m *ConversionRunMutation) AddedPostValidationFailed() (r int, exists bool) {
	v := m.addpost_validation_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPostValidationFailed resets all changes to the "post_validation_failed" field.
func (m *ConversionRunMutation) ResetPostValidationFailed() {
	m.post_validation_failed = nil
	m.addpost_validation_failed = nil
}

// SetWarningCount sets the "warning_count" field.
func (m *ConversionRunMutation) SetWarningCount(i int) {
	m.warning_count = &i
	m.addwarning_count = nil
}

// WarningCount returns the value of the "warning_count" field in the mutation.
func (m *ConversionRunMutation) WarningCount() (r int, exists bool) {
	v := m.warning_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWarningCount returns the old "warning_count" field's value of the ConversionRun entity.
// If the ConversionRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversionRunMutation) OldWarningCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarningCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarningCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarningCount: %w", err)
	}
	return oldValue.WarningCount, nil
}

// AddWarningCount adds i to the "warning_count" field.
func (m *ConversionRunMutation) AddWarningCount(i int) {
	if m.addwarning_count != nil {
		*m.addwarning_count += i
	} else {
		m.addwarning_count = &i
	}
}

// AddedWarningCount returns the value that was added to the "warning_count" field in this mutation.
func (m *ConversionRunMutation) AddedWarningCount() (r int, exists bool) {
	v := m.addwarning_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWarningCount resets all changes to the "warning_count" field.
func (m *ConversionRunMutation) ResetWarningCount() {
	m.warning_count = nil
	m.addwarning_count = nil
}

// Where appends a list predicates to the ConversionRunMutation builder.
func (m *ConversionRunMutation) Where(ps ...predicate.ConversionRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversionRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversionRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversionRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversionRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversionRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversionRun).
func (m *ConversionRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversionRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.run_id != nil {
		fields = append(fields, conversionrun.FieldRunID)
	}
	if m.started_at != nil {
		fields = append(fields, conversionrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, conversionrun.FieldFinishedAt)
	}
	if m.input_path != nil {
		fields = append(fields, conversionrun.FieldInputPath)
	}
	if m.output_path != nil {
		fields = append(fields, conversionrun.FieldOutputPath)
	}
	if m.dry_run != nil {
		fields = append(fields, conversionrun.FieldDryRun)
	}
	if m.total != nil {
		fields = append(fields, conversionrun.FieldTotal)
	}
	if m.converted != nil {
		fields = append(fields, conversionrun.FieldConverted)
	}
	if m.pre_validation_failed != nil {
		fields = append(fields, conversionrun.FieldPreValidationFailed)
	}
	if m.conversion_failed != nil {
		fields = append(fields, conversionrun.FieldConversionFailed)
	}
	if m.post_validation_failed != nil {
		fields = append(fields, conversionrun.FieldPostValidationFailed)
	}
	if m.warning_count != nil {
		fields = append(fields, conversionrun.FieldWarningCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversionRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversionrun.FieldRunID:
		return m.RunID()
	case conversionrun.FieldStartedAt:
		return m.StartedAt()
	case conversionrun.FieldFinishedAt:
		return m.FinishedAt()
	case conversionrun.FieldInputPath:
		return m.InputPath()
	case conversionrun.FieldOutputPath:
		return m.OutputPath()
	case conversionrun.FieldDryRun:
		return m.DryRun()
	case conversionrun.FieldTotal:
		return m.Total()
	case conversionrun.FieldConverted:
		return m.Converted()
	case conversionrun.FieldPreValidationFailed:
		return m.PreValidationFailed()
	case conversionrun.FieldConversionFailed:
		return m.ConversionFailed()
	case conversionrun.FieldPostValidationFailed:
		return m.PostValidationFailed()
	case conversionrun.FieldWarningCount:
		return m.WarningCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversionRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversionrun.FieldRunID:
		return m.OldRunID(ctx)
	case conversionrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case conversionrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case conversionrun.FieldInputPath:
		return m.OldInputPath(ctx)
	case conversionrun.FieldOutputPath:
		return m.OldOutputPath(ctx)
	case conversionrun.FieldDryRun:
		return m.OldDryRun(ctx)
	case conversionrun.FieldTotal:
		return m.OldTotal(ctx)
	case conversionrun.FieldConverted:
		return m.OldConverted(ctx)
	case conversionrun.FieldPreValidationFailed:
		return m.OldPreValidationFailed(ctx)
	case conversionrun.FieldConversionFailed:
		return m.OldConversionFailed(ctx)
	case conversionrun.FieldPostValidationFailed:
		return m.OldPostValidationFailed(ctx)
	case conversionrun.FieldWarningCount:
		return m.OldWarningCount(ctx)
	}
	return nil, fmt.Errorf("unknown ConversionRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversionrun.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case conversionrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case conversionrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case conversionrun.FieldInputPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputPath(v)
		return nil
	case conversionrun.FieldOutputPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputPath(v)
		return nil
	case conversionrun.FieldDryRun:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDryRun(v)
		return nil
	case conversionrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case conversionrun.FieldConverted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConverted(v)
		return nil
	case conversionrun.FieldPreValidationFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreValidationFailed(v)
		return nil
	case conversionrun.FieldConversionFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversionFailed(v)
		return nil
	case conversionrun.FieldPostValidationFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostValidationFailed(v)
		return nil
	case conversionrun.FieldWarningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarningCount(v)
		return nil
	}
	return fmt.Errorf("unknown ConversionRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversionRunMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, conversionrun.FieldTotal)
	}
	if m.addconverted != nil {
		fields = append(fields, conversionrun.FieldConverted)
	}
	if m.addpre_validation_failed != nil {
		fields = append(fields, conversionrun.FieldPreValidationFailed)
	}
	if m.addconversion_failed != nil {
		fields = append(fields, conversionrun.FieldConversionFailed)
	}
	if m.addpost_validation_failed != nil {
		fields = append(fields, conversionrun.FieldPostValidationFailed)
	}
	if m.addwarning_count != nil {
		fields = append(fields, conversionrun.FieldWarningCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversionRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversionrun.FieldTotal:
		return m.AddedTotal()
	case conversionrun.FieldConverted:
		return m.AddedConverted()
	case conversionrun.FieldPreValidationFailed:
		return m.AddedPreValidationFailed()
	case conversionrun.FieldConversionFailed:
		return m.AddedConversionFailed()
	case conversionrun.FieldPostValidationFailed:
		return m.AddedPostValidationFailed()
	case conversionrun.FieldWarningCount:
		return m.AddedWarningCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversionRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversionrun.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case conversionrun.FieldConverted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConverted(v)
		return nil
	case conversionrun.FieldPreValidationFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPreValidationFailed(v)
		return nil
	case conversionrun.FieldConversionFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConversionFailed(v)
		return nil
	case conversionrun.FieldPostValidationFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPostValidationFailed(v)
		return nil
	case conversionrun.FieldWarningCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWarningCount(v)
		return nil
	}
	return fmt.Errorf("unknown ConversionRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversionRunMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversionRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversionRunMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConversionRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversionRunMutation) ResetField(name string) error {
	switch name {
	case conversionrun.FieldRunID:
		m.ResetRunID()
		return nil
	case conversionrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case conversionrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case conversionrun.FieldInputPath:
		m.ResetInputPath()
		return nil
	case conversionrun.FieldOutputPath:
		m.ResetOutputPath()
		return nil
	case conversionrun.FieldDryRun:
		m.ResetDryRun()
		return nil
	case conversionrun.FieldTotal:
		m.ResetTotal()
		return nil
	case conversionrun.FieldConverted:
		m.ResetConverted()
		return nil
	case conversionrun.FieldPreValidationFailed:
		m.ResetPreValidationFailed()
		return nil
	case conversionrun.FieldConversionFailed:
		m.ResetConversionFailed()
		return nil
	case conversionrun.FieldPostValidationFailed:
		m.ResetPostValidationFailed()
		return nil
	case conversionrun.FieldWarningCount:
		m.ResetWarningCount()
		return nil
	}
	return fmt.Errorf("unknown ConversionRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversionRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversionRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversionRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversionRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversionRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversionRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversionRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConversionRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversionRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConversionRun edge %s", name)
}

// FileResultMutation represents an operation that mutates the FileResult nodes in the graph.
type FileResultMutation struct {
	config
	op             Op
	typ            string
	id             *int
	run_id         *uuid.UUID
	filename       *string
	question_id    *string
	status         *string
	errors         *[]string
	appenderrors   []string
	warnings       *[]string
	appendwarnings []string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*FileResult, error)
	predicates     []predicate.FileResult
}

var _ ent.Mutation = (*FileResultMutation)(nil)

// fileresultOption allows management of the mutation configuration using functional options.
type fileresultOption func(*FileResultMutation)

// newFileResultMutation creates new mutation for the FileResult entity.
func newFileResultMutation(c config, op Op, opts ...fileresultOption) *FileResultMutation {
	m := &FileResultMutation{
		config:        c,
		op:            op,
		typ:           TypeFileResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileResultID sets the ID field of the mutation.
func withFileResultID(id int) fileresultOption {
	return func(m *FileResultMutation) {
		var (
			err   error
			once  sync.Once
			value *FileResult
		)
		m.oldValue = func(ctx context.Context) (*FileResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileResult sets the old FileResult of the mutation.
func withFileResult(node *FileResult) fileresultOption {
	return func(m *FileResultMutation) {
		m.oldValue = func(context.Context) (*FileResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *FileResultMutation) SetRunID(u uuid.UUID) {
	m.run_id = &u
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *FileResultMutation) RunID() (r uuid.UUID, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldRunID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *FileResultMutation) ResetRunID() {
	m.run_id = nil
}

// SetFilename sets the "filename" field.
func (m *FileResultMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *FileResultMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *FileResultMutation) ResetFilename() {
	m.filename = nil
}

// SetQuestionID sets the "question_id" field.
func (m *FileResultMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *FileResultMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *FileResultMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetStatus sets the "status" field.
func (m *FileResultMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FileResultMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileResultMutation) ResetStatus() {
	m.status = nil
}

// SetErrors sets the "errors" field.
func (m *FileResultMutation) SetErrors(s []string) {
	m.errors = &s
	m.appenderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *FileResultMutation) Errors() (r []string, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AppendErrors adds s to the "errors" field.
func (m *FileResultMutation) AppendErrors(s []string) {
	m.appenderrors = append(m.appenderrors, s...)
}

// AppendedErrors returns the list of values that were appended to the "errors" field in this mutation.
func (m *FileResultMutation) AppendedErrors() ([]string, bool) {
	if len(m.appenderrors) == 0 {
		return nil, false
	}
	return m.appenderrors, true
}

// ClearErrors clears the value of the "errors" field.
func (m *FileResultMutation) ClearErrors() {
	m.errors = nil
	m.appenderrors = nil
	m.clearedFields[fileresult.FieldErrors] = struct{}{}
}

// ErrorsCleared returns if the "errors" field was cleared in this mutation.
func (m *FileResultMutation) ErrorsCleared() bool {
	_, ok := m.clearedFields[fileresult.FieldErrors]
	return ok
}

// ResetErrors resets all changes to the "errors" field.
func (m *FileResultMutation) ResetErrors() {
	m.errors = nil
	m.appenderrors = nil
	delete(m.clearedFields, fileresult.FieldErrors)
}

// SetWarnings sets the "warnings" field.
func (m *FileResultMutation) SetWarnings(s []string) {
	m.warnings = &s
	m.appendwarnings = nil
}

// Warnings returns the value of the "warnings" field in the mutation.
func (m *FileResultMutation) Warnings() (r []string, exists bool) {
	v := m.warnings
	if v == nil {
		return
	}
	return *v, true
}

// OldWarnings returns the old "warnings" field's value of the FileResult entity.
// If the FileResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileResultMutation) OldWarnings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWarnings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWarnings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWarnings: %w", err)
	}
	return oldValue.Warnings, nil
}

// AppendWarnings adds s to the "warnings" field.
func (m *FileResultMutation) AppendWarnings(s []string) {
	m.appendwarnings = append(m.appendwarnings, s...)
}

// AppendedWarnings returns the list of values that were appended to the "warnings" field in this mutation.
func (m *FileResultMutation) AppendedWarnings() ([]string, bool) {
	if len(m.appendwarnings) == 0 {
		return nil, false
	}
	return m.appendwarnings, true
}

// ClearWarnings clears the value of the "warnings" field.
func (m *FileResultMutation) ClearWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	m.clearedFields[fileresult.FieldWarnings] = struct{}{}
}

// WarningsCleared returns if the "warnings" field was cleared in this mutation.
func (m *FileResultMutation) WarningsCleared() bool {
	_, ok := m.clearedFields[fileresult.FieldWarnings]
	return ok
}

// ResetWarnings resets all changes to the "warnings" field.
func (m *FileResultMutation) ResetWarnings() {
	m.warnings = nil
	m.appendwarnings = nil
	delete(m.clearedFields, fileresult.FieldWarnings)
}

// Where appends a list predicates to the FileResultMutation builder.
func (m *FileResultMutation) Where(ps ...predicate.FileResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileResult).
func (m *FileResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run_id != nil {
		fields = append(fields, fileresult.FieldRunID)
	}
	if m.filename != nil {
		fields = append(fields, fileresult.FieldFilename)
	}
	if m.question_id != nil {
		fields = append(fields, fileresult.FieldQuestionID)
	}
	if m.status != nil {
		fields = append(fields, fileresult.FieldStatus)
	}
	if m.errors != nil {
		fields = append(fields, fileresult.FieldErrors)
	}
	if m.warnings != nil {
		fields = append(fields, fileresult.FieldWarnings)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fileresult.FieldRunID:
		return m.RunID()
	case fileresult.FieldFilename:
		return m.Filename()
	case fileresult.FieldQuestionID:
		return m.QuestionID()
	case fileresult.FieldStatus:
		return m.Status()
	case fileresult.FieldErrors:
		return m.Errors()
	case fileresult.FieldWarnings:
		return m.Warnings()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fileresult.FieldRunID:
		return m.OldRunID(ctx)
	case fileresult.FieldFilename:
		return m.OldFilename(ctx)
	case fileresult.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case fileresult.FieldStatus:
		return m.OldStatus(ctx)
	case fileresult.FieldErrors:
		return m.OldErrors(ctx)
	case fileresult.FieldWarnings:
		return m.OldWarnings(ctx)
	}
	return nil, fmt.Errorf("unknown FileResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fileresult.FieldRunID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case fileresult.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case fileresult.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case fileresult.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fileresult.FieldErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case fileresult.FieldWarnings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWarnings(v)
		return nil
	}
	return fmt.Errorf("unknown FileResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fileresult.FieldErrors) {
		fields = append(fields, fileresult.FieldErrors)
	}
	if m.FieldCleared(fileresult.FieldWarnings) {
		fields = append(fields, fileresult.FieldWarnings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileResultMutation) ClearField(name string) error {
	switch name {
	case fileresult.FieldErrors:
		m.ClearErrors()
		return nil
	case fileresult.FieldWarnings:
		m.ClearWarnings()
		return nil
	}
	return fmt.Errorf("unknown FileResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileResultMutation) ResetField(name string) error {
	switch name {
	case fileresult.FieldRunID:
		m.ResetRunID()
		return nil
	case fileresult.FieldFilename:
		m.ResetFilename()
		return nil
	case fileresult.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case fileresult.FieldStatus:
		m.ResetStatus()
		return nil
	case fileresult.FieldErrors:
		m.ResetErrors()
		return nil
	case fileresult.FieldWarnings:
		m.ResetWarnings()
		return nil
	}
	return fmt.Errorf("unknown FileResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FileResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FileResult edge %s", name)
}

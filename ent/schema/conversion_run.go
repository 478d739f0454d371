package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ConversionRun records one invocation of the converter: where it read
// from, where it wrote to, and the per-stage counters.
type ConversionRun struct {
	ent.Schema
}

func (ConversionRun) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at"),
		field.String("input_path"),
		field.String("output_path"),
		field.Bool("dry_run").
			Default(false),
		field.Int("total"),
		field.Int("converted"),
		field.Int("pre_validation_failed"),
		field.Int("conversion_failed"),
		field.Int("post_validation_failed"),
		field.Int("warning_count"),
	}
}

func (ConversionRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
	}
}

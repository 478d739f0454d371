package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// FileResult records the outcome of one document within a run.
type FileResult struct {
	ent.Schema
}

func (FileResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("run_id", uuid.UUID{}).
			Immutable().
			Comment("Run this result belongs to"),
		field.String("filename"),
		field.String("question_id"),
		field.String("status").
			Comment("success, pre_validation_failed, conversion_failed, or post_validation_failed"),
		field.JSON("errors", []string{}).
			Optional(),
		field.JSON("warnings", []string{}).
			Optional(),
	}
}

func (FileResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("status"),
	}
}

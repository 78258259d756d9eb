package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one submitted quiz answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Run that produced the answer"),
		field.String("function").
			Comment("SIN, COS or TAN"),
		field.Float("angle").
			Comment("Question angle in radians"),
		field.String("correct_answer").
			Comment("Exact value formatted to two decimals"),
		field.String("learner_answer").
			Comment("Option the learner picked"),
		field.Bool("correct"),
		field.Int64("time_ms").
			Default(0).
			Comment("Milliseconds from question to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("UUID grouping events in a session"),
		field.String("action").
			Comment("start or end"),
		field.String("mode").
			Default(""),
		field.String("function").
			Default(""),
		field.Int("score").
			Default(0).
			Comment("Correct answers (on end only)"),
		field.Int("total").
			Default(0).
			Comment("Answered questions (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}

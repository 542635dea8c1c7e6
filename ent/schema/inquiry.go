package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Inquiry is a question raised by a student about a subject.
type Inquiry struct {
	ent.Schema
}

func (Inquiry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("student_id"),
		field.String("student_name"),
		field.String("subject_id"),
		field.Text("question"),
		field.Text("answer").
			Optional(),
		field.Enum("status").
			Values("Pending", "Resolved").
			Default("Pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("answered_at").
			Optional().
			Nillable(),
	}
}

func (Inquiry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id"),
		index.Fields("status"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is one flush of tracked study time. Totals are derived by
// summing rows; rows are never updated.
type StudySession struct {
	ent.Schema
}

func (StudySession) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.Float("hours").
			Comment("Fractional hours logged by this flush"),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Preference is a durable key-value pair: the theme choice, the signed-in
// account and similar settings.
type Preference struct {
	ent.Schema
}

func (Preference) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique(),
		field.String("value").
			Default(""),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a portal account. The id is assigned at provisioning and never
// updated afterwards.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("Stable account id, e.g. u1 or a uuid"),
		field.String("name"),
		field.Enum("role").
			Values("Student", "Nurse", "Doctor", "Admin"),
		field.String("college").
			Default(""),
		field.String("year").
			Default("").
			Comment("Academic phase label; drives the accent theme"),
		field.String("avatar").
			Default(""),
		field.String("email").
			Unique(),
		field.String("password_hash").
			Sensitive().
			Comment("bcrypt hash"),
		field.String("blood_group").
			Default(""),
		field.String("emergency_contact").
			Default(""),
		field.String("contact_number").
			Default(""),
		field.String("cgpa").
			Default(""),
		field.String("percentage").
			Default(""),
		field.Time("last_login").
			Optional().
			Nillable(),
		field.JSON("completed_topics", []string{}).
			Comment("Sorted, duplicate-free topic ids"),
		field.JSON("completed_chapters", []string{}).
			Comment("Sorted, duplicate-free chapter ids"),
		field.JSON("quiz_scores", map[string]float64{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
	}
}

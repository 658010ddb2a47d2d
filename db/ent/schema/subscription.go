package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Subscription struct{ ent.Schema }

func (Subscription) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subscriptions"},
	}
}

func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("customer_email").NotEmpty(),
		field.String("price_id").Default(""),
		field.String("status").Default(""),
		field.Time("current_period_end").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("subscriptions").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		// one provider subscription per customer email
		index.Fields("customer_email").Unique(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type SubscriptionTier struct{ ent.Schema }

func (SubscriptionTier) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subscription_tiers"},
	}
}

func (SubscriptionTier) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.Int("monthly_export_limit").Default(0),
		field.Int("file_size_limit_mb").Default(0),
		field.JSON("features", []string{}).Optional(),
	}
}

func (SubscriptionTier) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}

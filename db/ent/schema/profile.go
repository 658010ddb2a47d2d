package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/db/ent/schema/utils"
)

type Profile struct{ ent.Schema }

func (Profile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "profiles"},
	}
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("email").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("subscription_tier").
			Default(string(constants.TierFree)).
			Validate(utils.EnumValidator(constants.PlanTiers...)),
		field.String("default_currency").NotEmpty().MinLen(3).MaxLen(3).
			Default("USD").
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Profile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("field_mappings", FieldMapping.Type),
		edge.To("invoices", Invoice.Type),
		edge.To("exports", ExportHistory.Type),
		edge.To("subscriptions", Subscription.Type),
	}
}

func (Profile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InvoiceItem struct{ ent.Schema }

func (InvoiceItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_items"},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("description").Default(""),
		field.Float("quantity").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("unit_price").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (InvoiceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}

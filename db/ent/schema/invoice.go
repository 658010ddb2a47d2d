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

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("vendor_name").Optional().Nillable(),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("subtotal").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("discount_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("additional_fees").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").Default("").MaxLen(8),
		field.String("payment_terms").Optional().Nillable(),
		field.String("purchase_order_number").Optional().Nillable(),
		field.String("billing_address").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("shipping_address").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("payment_method").Optional().Nillable(),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("file_url").Default(""),
		field.String("status").
			Default(string(constants.InvoiceStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.InvoiceStatusPending),
				string(constants.InvoiceStatusProcessed),
				string(constants.InvoiceStatusFailed),
			)),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("invoices").
			Field("profile_id").
			Required().
			Unique(),
		edge.To("items", InvoiceItem.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
		index.Fields("profile_id", "invoice_date"),
	}
}

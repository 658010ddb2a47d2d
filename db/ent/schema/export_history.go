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
	"github.com/seyi-ajadi/invoiceflow/constants"
	"github.com/seyi-ajadi/invoiceflow/db/ent/schema/utils"
)

type ExportHistory struct{ ent.Schema }

func (ExportHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "export_history"},
	}
}

func (ExportHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.JSON("invoice_ids", []uuid.UUID{}),
		field.String("export_type").NotEmpty().
			Validate(utils.EnumValidator(constants.ExportTypes...)),
		field.String("file_name").NotEmpty(),
		field.Int64("file_size").Optional().Nillable(),
		field.String("file_url").Optional().Nillable(),
		field.String("status").
			Default(string(constants.ExportStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.ExportStatusPending),
				string(constants.ExportStatusCompleted),
				string(constants.ExportStatusFailed),
			)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExportHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("exports").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (ExportHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "created_at"),
		index.Fields("profile_id", "status"),
	}
}

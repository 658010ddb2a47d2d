package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type FieldMapping struct{ ent.Schema }

func (FieldMapping) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_mappings"},
	}
}

func (FieldMapping) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("field_name").NotEmpty(),
		field.String("validation_kind").Optional().Nillable(),
		field.String("validation_pattern").Optional().Nillable(),
		field.String("validation_message").Optional().Nillable(),
		field.Bool("required").Default(false),
		field.JSON("custom_rules", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FieldMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("profile", Profile.Type).
			Ref("field_mappings").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (FieldMapping) Indexes() []ent.Index {
	return []ent.Index{
		// field names are unique per owner
		index.Fields("profile_id", "field_name").Unique(),
	}
}

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

type User struct{ ent.Schema }

func (User) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "users"},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		// Normalized digit strings (no "+"). phone_number is the number the
		// user sends from; whatsapp_incoming_number is the business number
		// their customers send to.
		field.String("phone_number").Optional().Nillable(),
		field.String("whatsapp_incoming_number").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type),
		edge.To("categories", Category.Type),
		edge.To("transactions", Transaction.Type),
		edge.To("jobs", OCRJob.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone_number"),
		index.Fields("whatsapp_incoming_number"),
	}
}

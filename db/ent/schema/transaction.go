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

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/db/ent/schema/utils"
)

// Transaction is a ledger entry created directly from inbound free text
// ("quick transaction"), bypassing documents and OCR entirely.
type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("category_id", uuid.UUID{}),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypes...)),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			Default(string(constants.LocalCurrency)).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("vendor").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("transactions").
			Field("user_id").
			Required().
			Unique(),
		edge.From("category", Category.Type).
			Ref("transactions").
			Field("category_id").
			Required().
			Unique(),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date"),
	}
}

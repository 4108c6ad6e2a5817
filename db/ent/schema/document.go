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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("type").NotEmpty().
			Validate(utils.EnumValidator(constants.DocTypes...)),
		field.Time("date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			Default(string(constants.LocalCurrency)).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("vendor").Default(constants.PlaceholderVendor),
		field.UUID("category_id", uuid.UUID{}).Optional().Nillable(),
		field.String("description").Optional().Nillable(),
		field.String("doc_number").Optional().Nillable(),
		// object storage reference
		field.String("file_key").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("file_mime").NotEmpty(),
		field.Int("file_size").NonNegative(),
		// sha256 hex of the raw bytes, for dedup
		field.String("content_hash").NotEmpty().MinLen(64).MaxLen(64),
		field.String("ocr_status").
			Default(string(constants.OCRPending)).
			Validate(utils.EnumValidator(constants.OCRStatuses...)),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("documents").
			Field("user_id").
			Required().
			Unique(),
		edge.From("category", Category.Type).
			Ref("documents").
			Field("category_id").
			Unique(),
		edge.To("job", OCRJob.Type).
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "content_hash").Unique(),
		index.Fields("user_id", "created_at"),
		index.Fields("user_id", "ocr_status"),
	}
}

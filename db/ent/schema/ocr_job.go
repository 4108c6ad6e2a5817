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

// OCRJob is the durable queue row driving one document's extraction
// lifecycle. Rows are never deleted; terminal rows are the audit trail.
type OCRJob struct{ ent.Schema }

func (OCRJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_jobs"},
	}
}

func (OCRJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		// unique: at most one job per document, ever
		field.UUID("doc_id", uuid.UUID{}).Unique(),
		field.String("status").
			Default(string(constants.JobPending)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.Int("attempts").Default(0).NonNegative(),
		// null means eligible immediately
		field.Time("next_run_at").Optional().Nillable(),
		field.String("last_error").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (OCRJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Required().
			Unique(),
		edge.From("document", Document.Type).
			Ref("job").
			Field("doc_id").
			Required().
			Unique(),
	}
}

func (OCRJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_run_at", "created_at"),
		index.Fields("user_id", "status"),
	}
}

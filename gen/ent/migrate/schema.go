// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "categories_users_categories",
				Columns:    []*schema.Column{CategoriesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "category_user_id_name",
				Unique:  true,
				Columns: []*schema.Column{CategoriesColumns[3], CategoriesColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "ILS", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "vendor", Type: field.TypeString, Default: "—"},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "doc_number", Type: field.TypeString, Nullable: true},
		{Name: "file_key", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_mime", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeString, Size: 64},
		{Name: "ocr_status", Type: field.TypeString, Default: "pending"},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_categories_documents",
				Columns:    []*schema.Column{DocumentsColumns[17]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "documents_users_documents",
				Columns:    []*schema.Column{DocumentsColumns[18]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_user_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[18], DocumentsColumns[12]},
			},
			{
				Name:    "document_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[18], DocumentsColumns[15]},
			},
			{
				Name:    "document_user_id_ocr_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[18], DocumentsColumns[13]},
			},
		},
	}
	// OcrJobsColumns holds the columns for the "ocr_jobs" table.
	OcrJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_run_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_error", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "doc_id", Type: field.TypeUUID, Unique: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// OcrJobsTable holds the schema information for the "ocr_jobs" table.
	OcrJobsTable = &schema.Table{
		Name:       "ocr_jobs",
		Columns:    OcrJobsColumns,
		PrimaryKey: []*schema.Column{OcrJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_jobs_documents_job",
				Columns:    []*schema.Column{OcrJobsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "ocr_jobs_users_jobs",
				Columns:    []*schema.Column{OcrJobsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrjob_status_next_run_at_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[1], OcrJobsColumns[3], OcrJobsColumns[7]},
			},
			{
				Name:    "ocrjob_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{OcrJobsColumns[9], OcrJobsColumns[1]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "ILS", SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "vendor", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_categories_transactions",
				Columns:    []*schema.Column{TransactionsColumns[8]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "transactions_users_transactions",
				Columns:    []*schema.Column{TransactionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_user_id_date",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[9], TransactionsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "phone_number", Type: field.TypeString, Nullable: true},
		{Name: "whatsapp_incoming_number", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_phone_number",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
			{
				Name:    "user_whatsapp_incoming_number",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		DocumentsTable,
		OcrJobsTable,
		TransactionsTable,
		UsersTable,
	}
)

func init() {
	CategoriesTable.ForeignKeys[0].RefTable = UsersTable
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	DocumentsTable.ForeignKeys[0].RefTable = CategoriesTable
	DocumentsTable.ForeignKeys[1].RefTable = UsersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	OcrJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	OcrJobsTable.ForeignKeys[1].RefTable = UsersTable
	OcrJobsTable.Annotation = &entsql.Annotation{
		Table: "ocr_jobs",
	}
	TransactionsTable.ForeignKeys[0].RefTable = CategoriesTable
	TransactionsTable.ForeignKeys[1].RefTable = UsersTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
}

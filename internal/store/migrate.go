package store

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	questionColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "kind", Type: field.TypeString},
		{Name: "section", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		// uint64 seed stored bit-for-bit in a signed column
		{Name: "seed", Type: field.TypeInt64},
		{Name: "engine_version", Type: field.TypeString},
		{Name: "payload", Type: field.TypeBytes},
		// unix milliseconds
		{Name: "created_at", Type: field.TypeInt64},
	}
	questionsTable = &schema.Table{
		Name:       "questions",
		Columns:    questionColumns,
		PrimaryKey: []*schema.Column{questionColumns[0]},
		Indexes: []*schema.Index{
			{Name: "question_kind", Columns: []*schema.Column{questionColumns[1]}},
			{Name: "question_section", Columns: []*schema.Column{questionColumns[2]}},
			{Name: "question_created_at", Columns: []*schema.Column{questionColumns[7]}},
		},
	}

	llmRequestColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 1 << 20, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 1 << 20, Default: ""},
	}
	llmRequestsTable = &schema.Table{
		Name:       "llm_requests",
		Columns:    llmRequestColumns,
		PrimaryKey: []*schema.Column{llmRequestColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequest_purpose", Columns: []*schema.Column{llmRequestColumns[4]}},
			{Name: "llmrequest_model", Columns: []*schema.Column{llmRequestColumns[3]}},
		},
	}

	tables = []*schema.Table{questionsTable, llmRequestsTable}
)

// migrate creates or updates the tables. Columns are only ever added.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv, schema.WithDropColumn(false), schema.WithDropIndex(false))
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

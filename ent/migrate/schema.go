// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversionRunsColumns holds the columns for the "conversion_runs" table.
	ConversionRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeUUID, Unique: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
		{Name: "input_path", Type: field.TypeString},
		{Name: "output_path", Type: field.TypeString},
		{Name: "dry_run", Type: field.TypeBool, Default: false},
		{Name: "total", Type: field.TypeInt},
		{Name: "converted", Type: field.TypeInt},
		{Name: "pre_validation_failed", Type: field.TypeInt},
		{Name: "conversion_failed", Type: field.TypeInt},
		{Name: "post_validation_failed", Type: field.TypeInt},
		{Name: "warning_count", Type: field.TypeInt},
	}
	// ConversionRunsTable holds the schema information for the "conversion_runs" table.
	ConversionRunsTable = &schema.Table{
		Name:       "conversion_runs",
		Columns:    ConversionRunsColumns,
		PrimaryKey: []*schema.Column{ConversionRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversionrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{ConversionRunsColumns[2]},
			},
		},
	}
	// FileResultsColumns holds the columns for the "file_results" table.
	FileResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "errors", Type: field.TypeJSON, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
	}
	// FileResultsTable holds the schema information for the "file_results" table.
	FileResultsTable = &schema.Table{
		Name:       "file_results",
		Columns:    FileResultsColumns,
		PrimaryKey: []*schema.Column{FileResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fileresult_run_id",
				Unique:  false,
				Columns: []*schema.Column{FileResultsColumns[1]},
			},
			{
				Name:    "fileresult_status",
				Unique:  false,
				Columns: []*schema.Column{FileResultsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversionRunsTable,
		FileResultsTable,
	}
)

func init() {
}

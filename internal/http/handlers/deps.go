package handlers

import (
	"context"

	"github.com/ororso11/m-led/internal/modules/schema"
)

// SchemaSource provides the current dynamic schema snapshot to the public
// read handlers.
type SchemaSource interface {
	Snapshot() schema.Document
}

// SettingsStore is the schema store surface the admin settings handlers
// drive.
type SettingsStore interface {
	SchemaSource
	Save(ctx context.Context, categories map[string]schema.CategoryDefinition, columns []schema.TableColumn, baseVersion int64) error
	AddCategory(ctx context.Context, key, label string) error
	DeleteCategory(ctx context.Context, key string) error
	AddCategoryValue(ctx context.Context, key, value string) error
	DeleteCategoryValue(ctx context.Context, key, value string) error
	AddColumn(ctx context.Context, label, placeholder string) (schema.TableColumn, error)
	DeleteColumn(ctx context.Context, id string) error
}

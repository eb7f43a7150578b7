package view

import "github.com/ororso11/m-led/internal/modules/schema"

// Settings is the public schema payload: what the catalog and the admin
// form both render from.
type Settings struct {
	Categories map[string]schema.CategoryDefinition `json:"categories"`
	Columns    []schema.TableColumn                 `json:"tableColumns"`
	Version    int64                                `json:"version"`
}

func SettingsFrom(doc schema.Document) Settings {
	return Settings{Categories: doc.Categories, Columns: doc.Columns, Version: doc.Version}
}

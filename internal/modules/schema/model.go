package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PrimaryCategoryKey is the one mandatory, non-deletable category that
// drives top-level product grouping and the primary catalog filter.
const PrimaryCategoryKey = "productType"

// AllValue is the "show everything" sentinel for the primary category.
const AllValue = "ALL"

type CategoryDefinition struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type TableColumn struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// Document is the decoded settings document: the whole dynamic schema that
// the admin form and the public catalog stay synchronized on.
type Document struct {
	Categories map[string]CategoryDefinition `json:"categories"`
	Columns    []TableColumn                 `json:"tableColumns"`
	Version    int64                         `json:"version"`
}

// Settings is the single persisted settings row.
type Settings struct {
	ID           uint           `gorm:"primaryKey"`
	Categories   datatypes.JSON `gorm:"type:json;not null"`
	TableColumns datatypes.JSON `gorm:"type:json;not null"`
	Version      int64          `gorm:"not null;default:0"`
	UpdatedAt    time.Time      `gorm:"type:datetime(3);not null"`
}

func (Settings) TableName() string { return "settings" }

const settingsRowID = 1

// DefaultDocument seeds a fresh installation: the primary classification
// plus the original fixed specification table.
func DefaultDocument() Document {
	return Document{
		Categories: map[string]CategoryDefinition{
			PrimaryCategoryKey: {Label: "PRODUCT TYPE", Values: []string{AllValue}},
			"watt":             {Label: "WATT", Values: []string{}},
			"cct":              {Label: "CCT", Values: []string{}},
			"ip":               {Label: "IP", Values: []string{}},
		},
		Columns: []TableColumn{
			{ID: "item", Label: "ITEM", Placeholder: "Product name"},
			{ID: "voltage", Label: "VOLTAGE", Placeholder: "e.g. AC 220V"},
			{ID: "current", Label: "CURRENT", Placeholder: "e.g. 350mA"},
			{ID: "maxOutput", Label: "MAX OUTPUT", Placeholder: "e.g. 1200lm"},
			{ID: "efficiency", Label: "EFFICIENCY", Placeholder: "e.g. 110lm/W"},
			{ID: "dimension", Label: "DIMENSION", Placeholder: "e.g. Ø90 x H55"},
			{ID: "guarantee", Label: "GUARANTEE", Placeholder: "e.g. 3 years"},
		},
	}
}

// Clone returns a deep copy so callers can mutate without racing the store.
func (d Document) Clone() Document {
	out := Document{
		Categories: make(map[string]CategoryDefinition, len(d.Categories)),
		Columns:    make([]TableColumn, len(d.Columns)),
		Version:    d.Version,
	}
	for k, def := range d.Categories {
		values := make([]string, len(def.Values))
		copy(values, def.Values)
		out.Categories[k] = CategoryDefinition{Label: def.Label, Values: values}
	}
	copy(out.Columns, d.Columns)
	return out
}

// ColumnByID returns the column with the given id, if declared.
func (d Document) ColumnByID(id string) (TableColumn, bool) {
	for _, col := range d.Columns {
		if col.ID == id {
			return col, true
		}
	}
	return TableColumn{}, false
}

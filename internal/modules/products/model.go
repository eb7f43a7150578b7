package products

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Mark is a badge/icon attached to a product, shown in the detail view and
// on the spec sheet.
type Mark struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Product is the persisted row. The dynamic, schema-driven parts live in
// JSON columns so the admin can add categories and table columns without a
// migration.
type Product struct {
	ID            string         `gorm:"primaryKey;type:char(36)"`
	Name          string         `gorm:"type:varchar(255);not null"`
	ProductNumber string         `gorm:"type:varchar(64)"`
	Thumbnail     string         `gorm:"type:varchar(1024);not null"`
	DetailImages  datatypes.JSON `gorm:"type:json"`
	Specs         string         `gorm:"type:text"`
	SpecsList     datatypes.JSON `gorm:"type:json"`
	TableData     datatypes.JSON `gorm:"type:json"`
	Categories    datatypes.JSON `gorm:"type:json"`
	Marks         datatypes.JSON `gorm:"type:json"`
	CreatedAt     time.Time      `gorm:"type:datetime(3);not null"`
	UpdatedAt     time.Time      `gorm:"type:datetime(3);not null"`
}

func (Product) TableName() string { return "products" }

// Record is the decoded product used by the catalog, detail and spec-sheet
// paths. Historical rows may carry stale or missing keys in TableData and
// Categories; readers must substitute placeholders, never fail.
type Record struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ProductNumber string            `json:"productNumber,omitempty"`
	Thumbnail     string            `json:"thumbnail"`
	DetailImages  []string          `json:"detailImages"`
	Specs         string            `json:"specs"`
	SpecsList     []string          `json:"specsList"`
	TableData     map[string]string `json:"tableData"`
	Categories    map[string]string `json:"categories"`
	Marks         []Mark            `json:"marks"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// Decode converts a row into a Record, tolerating null or malformed JSON
// columns by substituting empty collections.
func (p Product) Decode() Record {
	r := Record{
		ID:            p.ID,
		Name:          p.Name,
		ProductNumber: p.ProductNumber,
		Thumbnail:     p.Thumbnail,
		Specs:         p.Specs,
		DetailImages:  []string{},
		SpecsList:     []string{},
		TableData:     map[string]string{},
		Categories:    map[string]string{},
		Marks:         []Mark{},
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	decodeJSON(p.DetailImages, &r.DetailImages)
	decodeJSON(p.SpecsList, &r.SpecsList)
	decodeJSON(p.TableData, &r.TableData)
	decodeJSON(p.Categories, &r.Categories)
	decodeJSON(p.Marks, &r.Marks)
	// JSON null decodes collections to nil; keep them non-nil for render code.
	r.DetailImages = orEmptySlice(r.DetailImages)
	r.SpecsList = orEmptySlice(r.SpecsList)
	if r.TableData == nil {
		r.TableData = map[string]string{}
	}
	if r.Categories == nil {
		r.Categories = map[string]string{}
	}
	if r.Marks == nil {
		r.Marks = []Mark{}
	}
	return r
}

// Encode converts a Record back into a persistable row.
func (r Record) Encode() (Product, error) {
	p := Product{
		ID:            r.ID,
		Name:          r.Name,
		ProductNumber: r.ProductNumber,
		Thumbnail:     r.Thumbnail,
		Specs:         r.Specs,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	for _, enc := range []struct {
		src any
		dst *datatypes.JSON
	}{
		{orEmptySlice(r.DetailImages), &p.DetailImages},
		{orEmptySlice(r.SpecsList), &p.SpecsList},
		{r.TableData, &p.TableData},
		{r.Categories, &p.Categories},
		{r.Marks, &p.Marks},
	} {
		b, err := json.Marshal(enc.src)
		if err != nil {
			return Product{}, err
		}
		*enc.dst = b
	}
	return p, nil
}

func decodeJSON(raw datatypes.JSON, dst any) {
	if len(raw) == 0 {
		return
	}
	// Malformed historical data renders as empty, it never errors out.
	_ = json.Unmarshal(raw, dst)
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

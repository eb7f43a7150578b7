package view

import (
	"github.com/ororso11/m-led/internal/modules/catalog"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
)

// ProductCard is one catalog grid entry.
type ProductCard struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Thumbnail   string            `json:"thumbnail"`
	Specs       string            `json:"specs,omitempty"`
	ProductType string            `json:"productType,omitempty"`
	Categories  map[string]string `json:"categories"`
}

// ProductList is the catalog listing response: the page of cards plus the
// state the client needs to render filters and pagination.
type ProductList struct {
	Products   []ProductCard         `json:"products"`
	Pagination catalog.Pagination    `json:"pagination"`
	Filters    []catalog.FilterGroup `json:"filters"`
	Types      []string              `json:"types"`
}

// TableRow is one labeled specification value on the detail view, in the
// declared column order.
type TableRow struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductDetail is the full product as the detail page shows it.
type ProductDetail struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	ProductNumber string            `json:"productNumber,omitempty"`
	Thumbnail     string            `json:"thumbnail"`
	DetailImages  []string          `json:"detailImages"`
	Specs         string            `json:"specs"`
	SpecsList     []string          `json:"specsList"`
	Table         []TableRow        `json:"table"`
	Categories    map[string]string `json:"categories"`
	Marks         []products.Mark   `json:"marks"`
}

func Card(rec products.Record) ProductCard {
	return ProductCard{
		ID:          rec.ID,
		Name:        rec.Name,
		Thumbnail:   rec.Thumbnail,
		Specs:       rec.Specs,
		ProductType: rec.Categories[schema.PrimaryCategoryKey],
		Categories:  rec.Categories,
	}
}

func Cards(recs []products.Record) []ProductCard {
	out := make([]ProductCard, len(recs))
	for i, rec := range recs {
		out[i] = Card(rec)
	}
	return out
}

// Detail builds the detail view model. Rows follow the declared column
// order; columns the product has no value for render as a dash.
func Detail(rec products.Record, columns []schema.TableColumn) ProductDetail {
	rows := make([]TableRow, len(columns))
	for i, col := range columns {
		value := rec.TableData[col.ID]
		if value == "" {
			value = "-"
		}
		rows[i] = TableRow{ID: col.ID, Label: col.Label, Value: value}
	}
	return ProductDetail{
		ID:            rec.ID,
		Name:          rec.Name,
		ProductNumber: rec.ProductNumber,
		Thumbnail:     rec.Thumbnail,
		DetailImages:  rec.DetailImages,
		Specs:         rec.Specs,
		SpecsList:     rec.SpecsList,
		Table:         rows,
		Categories:    rec.Categories,
		Marks:         rec.Marks,
	}
}

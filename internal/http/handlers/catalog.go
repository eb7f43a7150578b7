package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/modules/catalog"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
	"github.com/ororso11/m-led/pkg/view"
)

// CatalogHandler serves the public product listing with filtering, search
// and pagination, all against the in-memory product mirror.
type CatalogHandler struct {
	store  *products.Store
	schema SchemaSource
}

func NewCatalogHandler(store *products.Store, schemaStore SchemaSource) *CatalogHandler {
	return &CatalogHandler{store: store, schema: schemaStore}
}

// List handles GET /api/products. Non-primary categories filter via
// repeated query params named after the category key, e.g. ?watt=10W&watt=20W.
func (h *CatalogHandler) List(c *gin.Context) {
	doc := h.schema.Snapshot()
	records := h.store.Records()

	f := catalog.Filters{
		Search:      c.Query("q"),
		PrimaryType: c.Query("productType"),
		Categories:  map[string][]string{},
	}
	for key := range doc.Categories {
		if key == schema.PrimaryCategoryKey {
			continue
		}
		if selected := c.QueryArray(key); len(selected) > 0 {
			f.Categories[key] = selected
		}
	}

	filtered := catalog.Apply(records, f)

	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	pageRecords, pagination := catalog.Slice(filtered, page, catalog.DefaultPageSize)

	c.JSON(http.StatusOK, view.ProductList{
		Products:   view.Cards(pageRecords),
		Pagination: pagination,
		Filters:    catalog.CollectOptions(records, doc.Categories),
		Types:      doc.Categories[schema.PrimaryCategoryKey].Values,
	})
}

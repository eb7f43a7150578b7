package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/http/middleware"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/shared/apperr"
	"github.com/ororso11/m-led/pkg/view"
)

type ProductDetailHandler struct {
	store  *products.Store
	schema SchemaSource
}

func NewProductDetailHandler(store *products.Store, schemaStore SchemaSource) *ProductDetailHandler {
	return &ProductDetailHandler{store: store, schema: schemaStore}
}

// Detail handles GET /api/products/:id.
func (h *ProductDetailHandler) Detail(c *gin.Context) {
	rec, ok := h.store.Find(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	doc := h.schema.Snapshot()
	c.JSON(http.StatusOK, view.Detail(rec, doc.Columns))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/pkg/view"
)

type SettingsHandler struct {
	schema SchemaSource
}

func NewSettingsHandler(schemaStore SchemaSource) *SettingsHandler {
	return &SettingsHandler{schema: schemaStore}
}

// Get handles GET /api/settings: the dynamic schema both the catalog and
// the admin form render from.
func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, view.SettingsFrom(h.schema.Snapshot()))
}

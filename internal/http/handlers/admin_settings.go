package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/http/middleware"
	"github.com/ororso11/m-led/internal/http/validation"
	"github.com/ororso11/m-led/internal/modules/schema"
	"github.com/ororso11/m-led/internal/shared/apperr"
	"github.com/ororso11/m-led/pkg/view"
)

// AdminSettingsHandler mutates the dynamic schema. Every mutation responds
// with the full updated settings document so the admin UI can re-render.
type AdminSettingsHandler struct {
	schema SettingsStore
}

func NewAdminSettingsHandler(schemaStore SettingsStore) *AdminSettingsHandler {
	return &AdminSettingsHandler{schema: schemaStore}
}

type settingsInput struct {
	Categories map[string]schema.CategoryDefinition `json:"categories" binding:"required"`
	Columns    []schema.TableColumn                 `json:"tableColumns" binding:"required"`
	Version    int64                                `json:"version"`
}

// Replace handles PUT /api/admin/settings: a wholesale settings write,
// guarded by the version the client read.
func (h *AdminSettingsHandler) Replace(c *gin.Context) {
	var in settingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.schema.Save(c.Request.Context(), in.Categories, in.Columns, in.Version); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

type categoryInput struct {
	Key   string `json:"key" binding:"required,max=64"`
	Label string `json:"label" binding:"required,max=255"`
}

// AddCategory handles POST /api/admin/settings/categories.
func (h *AdminSettingsHandler) AddCategory(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.schema.AddCategory(c.Request.Context(), in.Key, in.Label); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

// DeleteCategory handles DELETE /api/admin/settings/categories/:key.
func (h *AdminSettingsHandler) DeleteCategory(c *gin.Context) {
	if err := h.schema.DeleteCategory(c.Request.Context(), c.Param("key")); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

type categoryValueInput struct {
	Value string `json:"value" binding:"required,max=255"`
}

// AddCategoryValue handles POST /api/admin/settings/categories/:key/values.
func (h *AdminSettingsHandler) AddCategoryValue(c *gin.Context) {
	var in categoryValueInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if err := h.schema.AddCategoryValue(c.Request.Context(), c.Param("key"), in.Value); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

// DeleteCategoryValue handles DELETE /api/admin/settings/categories/:key/values?value=…
// The value rides in the query string because values may contain slashes.
func (h *AdminSettingsHandler) DeleteCategoryValue(c *gin.Context) {
	value := c.Query("value")
	if value == "" {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", map[string]string{
			"value": "This field is required.",
		}))
		return
	}
	if err := h.schema.DeleteCategoryValue(c.Request.Context(), c.Param("key"), value); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

type columnInput struct {
	Label       string `json:"label" binding:"required,max=255"`
	Placeholder string `json:"placeholder" binding:"max=255"`
}

// AddColumn handles POST /api/admin/settings/columns.
func (h *AdminSettingsHandler) AddColumn(c *gin.Context) {
	var in columnInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", validation.FromBindError(err, &in)))
		return
	}

	if _, err := h.schema.AddColumn(c.Request.Context(), in.Label, in.Placeholder); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

// DeleteColumn handles DELETE /api/admin/settings/columns/:id.
func (h *AdminSettingsHandler) DeleteColumn(c *gin.Context) {
	if err := h.schema.DeleteColumn(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	h.respond(c)
}

func (h *AdminSettingsHandler) respond(c *gin.Context) {
	c.JSON(http.StatusOK, view.SettingsFrom(h.schema.Snapshot()))
}

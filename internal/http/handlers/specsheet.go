package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/http/middleware"
	"github.com/ororso11/m-led/internal/http/validation"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/specsheet"
	"github.com/ororso11/m-led/internal/shared/apperr"
)

type SpecsheetHandler struct {
	store  *products.Store
	schema SchemaSource
	gen    *specsheet.Generator
}

func NewSpecsheetHandler(store *products.Store, schemaStore SchemaSource, gen *specsheet.Generator) *SpecsheetHandler {
	return &SpecsheetHandler{store: store, schema: schemaStore, gen: gen}
}

type specsheetInput struct {
	Code     string `json:"code" form:"code" binding:"required,max=64"`
	Project  string `json:"project" form:"project" binding:"max=255"`
	Area     string `json:"area" form:"area" binding:"max=255"`
	Location string `json:"location" form:"location" binding:"max=255"`
}

// Export handles POST /api/products/:id/specsheet and streams the
// generated PDF as an attachment.
func (h *SpecsheetHandler) Export(c *gin.Context) {
	var in specsheetInput
	if err := c.ShouldBind(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("The submitted data is invalid.", validation.FromBindError(err, &in)))
		return
	}
	if specsheet.HasUnsafeChars(in.Code) {
		middleware.Fail(c, apperr.InvalidErr("The product code contains characters that cannot be used in a filename.", map[string]string{
			"code": `Remove any of \ / : * ? " < > |`,
		}))
		return
	}

	rec, ok := h.store.Find(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	doc := h.schema.Snapshot()
	data, filename, err := h.gen.Generate(c.Request.Context(), rec, doc.Columns, specsheet.Input{
		Code:     in.Code,
		Project:  in.Project,
		Area:     in.Area,
		Location: in.Location,
	})
	if err != nil {
		ae := apperr.Wrap(err)
		ae.PublicMsg = specsheet.CategorizeError(err)
		middleware.Fail(c, ae)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/http/middleware"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/shared/apperr"
)

// AdminProductsHandler is the multipart product editor API.
type AdminProductsHandler struct {
	svc *products.Service
}

func NewAdminProductsHandler(svc *products.Service) *AdminProductsHandler {
	return &AdminProductsHandler{svc: svc}
}

// Create handles POST /api/admin/products.
func (h *AdminProductsHandler) Create(c *gin.Context) {
	in, closeFiles, err := h.parseForm(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	defer closeFiles()

	rec, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /api/admin/products/:id.
func (h *AdminProductsHandler) Update(c *gin.Context) {
	in, closeFiles, err := h.parseForm(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	defer closeFiles()

	rec, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /api/admin/products/:id.
func (h *AdminProductsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseForm reads the multipart admin form into a SubmitInput. Images are
// optional at this layer; the service decides what create vs edit requires.
func (h *AdminProductsHandler) parseForm(c *gin.Context) (products.SubmitInput, func(), error) {
	noop := func() {}

	form, err := c.MultipartForm()
	if err != nil {
		return products.SubmitInput{}, noop, apperr.InvalidErr("The submitted data is invalid.", nil)
	}

	in := products.SubmitInput{
		Name:          c.PostForm("name"),
		ProductNumber: c.PostForm("productNumber"),
		Specs:         c.PostForm("specs"),
		SpecsList:     form.Value["specsList"],
		Categories:    c.PostFormMap("categories"),
		TableValues:   c.PostFormMap("tableData"),
	}

	if raw := c.PostForm("marks"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Marks); err != nil {
			return products.SubmitInput{}, noop, apperr.InvalidErr("The submitted data is invalid.", map[string]string{
				"marks": "Invalid value.",
			})
		}
	}

	var opened []multipart.File
	closeFiles := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}

	if headers := form.File["thumbnail"]; len(headers) > 0 {
		img, f, err := openImage(headers[0])
		if err != nil {
			closeFiles()
			return products.SubmitInput{}, noop, err
		}
		opened = append(opened, f)
		in.Thumbnail = &img
	}
	for _, hdr := range form.File["detailImages"] {
		img, f, err := openImage(hdr)
		if err != nil {
			closeFiles()
			return products.SubmitInput{}, noop, err
		}
		opened = append(opened, f)
		in.DetailImages = append(in.DetailImages, img)
	}

	return in, closeFiles, nil
}

func openImage(hdr *multipart.FileHeader) (products.ImageFile, multipart.File, error) {
	f, err := hdr.Open()
	if err != nil {
		return products.ImageFile{}, nil, apperr.Wrap(err)
	}
	return products.ImageFile{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Size:        hdr.Size,
		Reader:      f,
	}, f, nil
}

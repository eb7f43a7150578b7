package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ororso11/m-led/internal/modules/products"
)

type StatusHandler struct {
	store *products.Store
}

func NewStatusHandler(store *products.Store) *StatusHandler {
	return &StatusHandler{store: store}
}

// Status handles GET /api/status: whether the product mirror is serving
// fresh data. Clients surface this as the connection indicator.
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"connected": h.store.Connected(),
		"products":  len(h.store.Records()),
	})
}

// Healthz is the liveness probe.
func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

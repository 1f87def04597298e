// Package handlers exposes the styled QR renderer over HTTP for the serve
// mode: one image endpoint plus a health probe.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// Handler carries the base render configuration requests start from.
// Query parameters override individual fields per request.
type Handler struct {
	base render.Config
}

// New returns a Handler rendering from the given base configuration.
func New(base render.Config) *Handler { return &Handler{base: base} }

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

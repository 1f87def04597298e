package handlers

import (
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	// Optional: cap length to avoid abuse
	if len(v) > 4096 {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// QRCodeHandler renders a styled QR code for the url query parameter and
// streams it back as PNG. Supported overrides: size (final pixel width,
// invalid values fall back to the configured default), fill and eye (color
// name or hex), level (L/M/Q/H), logo=none to skip the configured logo.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	rawURL := strings.TrimSpace(c.Query("url"))
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL parameter is required"})
		return
	}
	normalizedURL, err := normalizeHTTPURL(rawURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := h.base
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TargetSize = n
		}
	}
	if v := c.Query("fill"); v != "" {
		col, err := render.ParseColor(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid fill color %q", v)})
			return
		}
		cfg.FillColor = col
	}
	if v := c.Query("eye"); v != "" {
		col, err := render.ParseColor(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid eye color %q", v)})
			return
		}
		cfg.EyeColor = col
	}
	if v := c.Query("level"); v != "" {
		cfg.Level = qr.ParseLevel(v)
	}
	if c.Query("logo") == "none" {
		cfg.LogoPath = ""
	}

	img, err := render.Render(normalizedURL, cfg)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, qr.ErrPayloadTooLarge):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, qr.ErrUnknownVersion):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "public, max-age=3600") // Cache for 1 hour
	if err := png.Encode(c.Writer, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send QR code"})
		return
	}
	fmt.Printf("[QR] sent PNG url=%q size=%d\n", normalizedURL, cfg.TargetSize)
}

package render_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"
	"github.com/cristianadrielbraun/qrbrand/internal/render"
)

func baseConfig() render.Config {
	cfg := render.DefaultConfig()
	cfg.BorderSize = 0
	return cfg
}

func TestRenderTargetSizeArithmetic(t *testing.T) {
	// Version 6, no border, target 2048 at 4x: working size 8192, box size
	// 8192/41 = 199, canvas 8159, final 8159/4 = 2039.
	cfg := baseConfig()
	cfg.TargetSize = 2048

	img, err := render.Render("https://example.com", cfg)
	require.NoError(t, err)
	assert.Equal(t, 2039, img.Bounds().Dx())
	assert.Equal(t, 2039, img.Bounds().Dy())
}

func TestRenderDownsampleExactDivision(t *testing.T) {
	// Target 41 makes the box size exactly 4, so the working canvas is a
	// multiple of the supersampling factor and the division is exact.
	cfg := baseConfig()
	cfg.TargetSize = 41

	img, err := render.Render("https://example.com", cfg)
	require.NoError(t, err)
	assert.Equal(t, 41, img.Bounds().Dx())
	assert.Equal(t, 41, img.Bounds().Dy())
}

func TestRenderPayloadTooLarge(t *testing.T) {
	cfg := baseConfig()
	cfg.TargetSize = 128

	_, err := render.Render(strings.Repeat("x", 500), cfg)
	assert.ErrorIs(t, err, qr.ErrPayloadTooLarge)
}

func TestRenderUnknownVersion(t *testing.T) {
	cfg := baseConfig()
	cfg.Version = 99

	_, err := render.Render("https://example.com", cfg)
	assert.ErrorIs(t, err, qr.ErrUnknownVersion)
}

func TestRenderMissingLogoAbortsEarly(t *testing.T) {
	cfg := baseConfig()
	cfg.TargetSize = 128
	cfg.LogoPath = filepath.Join(t.TempDir(), "missing.png")

	_, err := render.Render("https://example.com", cfg)
	assert.ErrorIs(t, err, render.ErrLogoNotFound)
}

func TestRenderWithLogo(t *testing.T) {
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "logo.png")
	f, err := os.Create(logoPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 16, 16))))
	require.NoError(t, f.Close())

	cfg := baseConfig()
	cfg.TargetSize = 256
	cfg.LogoPath = logoPath

	img, err := render.Render("https://example.com", cfg)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "qr.png")

	cfg := baseConfig()
	cfg.TargetSize = 128

	img, err := render.RenderToFile("https://example.com", out, cfg)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestRenderToFileNoPartialOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "qr.png")

	cfg := baseConfig()
	cfg.TargetSize = 128

	_, err := render.RenderToFile(strings.Repeat("x", 500), out, cfg)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

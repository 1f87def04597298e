package render

import (
	"image/color"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"
)

// Defaults mirror the interactive tool: a version 6 symbol at the highest
// error correction level (the logo eats into the correction budget, so the
// encoder keeps the maximum headroom), a four-module quiet zone and a 2048px
// target rendered at 4x and downsampled.
const (
	DefaultVersion     = 6
	DefaultTargetSize  = 2048
	DefaultBorderSize  = 4
	DefaultSuperSample = 4

	defaultRadiusRatio = 0.5
)

// Config holds every knob of one render. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Version fixes the QR symbol version (1-40); the module count and with
	// it the whole output geometry derive from it.
	Version int
	// Level is the error correction level the symbol is encoded at.
	Level qr.Level

	// TargetSize is the requested final image width and height in pixels.
	TargetSize int
	// BorderSize is the quiet zone width in modules. May be zero.
	BorderSize int

	FillColor color.RGBA
	BackColor color.RGBA
	EyeColor  color.RGBA

	// ModuleRadiusRatio is the fraction of the module box used as corner
	// radius. The effective radius is clamped to half the box.
	ModuleRadiusRatio float64

	// LogoPath points at an optional PNG, JPEG or SVG logo. Empty disables
	// the logo stage entirely.
	LogoPath string

	// SuperSample is the linear oversampling factor used for anti-aliasing.
	SuperSample int
}

// DefaultConfig returns the configuration the CLI offers as defaults:
// black modules and eyes on white.
func DefaultConfig() Config {
	return Config{
		Version:           DefaultVersion,
		Level:             qr.LevelH,
		TargetSize:        DefaultTargetSize,
		BorderSize:        DefaultBorderSize,
		FillColor:         color.RGBA{0, 0, 0, 255},
		BackColor:         color.RGBA{255, 255, 255, 255},
		EyeColor:          color.RGBA{0, 0, 0, 255},
		ModuleRadiusRatio: defaultRadiusRatio,
		SuperSample:       DefaultSuperSample,
	}
}

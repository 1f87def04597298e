// Package render draws a QR module matrix as a styled raster image: modules
// as rounded tiles whose corner rounding follows their neighbours, custom
// finder glyphs at the three marker corners, and an optional centered logo
// over a cleared, rounded backing patch. Everything is drawn hard-edged at a
// supersampled scale and Lanczos-downsampled once at the end, which is where
// the anti-aliasing comes from.
package render

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"
)

// Render runs the full pipeline for one payload and returns the final image.
// Each render builds its own matrix and canvas; nothing is shared between
// calls. Any stage failure aborts the whole render.
func Render(payload string, cfg Config) (image.Image, error) {
	if cfg.TargetSize < 1 {
		cfg.TargetSize = DefaultTargetSize
	}
	if cfg.SuperSample < 1 {
		cfg.SuperSample = 1
	}

	// The logo loads before any canvas work so a bad path fails fast.
	var logo image.Image
	if cfg.LogoPath != "" {
		var err error
		logo, err = loadLogo(cfg.LogoPath)
		if err != nil {
			return nil, err
		}
	}

	modules, err := qr.ModulesForVersion(cfg.Version)
	if err != nil {
		return nil, err
	}

	matrix, err := qr.Build(payload, cfg.Version, cfg.Level)
	if err != nil {
		return nil, err
	}

	span := modules + 2*cfg.BorderSize
	workingSize := cfg.TargetSize * cfg.SuperSample
	boxSize := workingSize / span
	if boxSize < 1 {
		boxSize = 1
	}
	canvasSize := span * boxSize

	// Clearing runs before module painting so the emptied cells render as
	// background and feed into the rounding decisions of their neighbours.
	var logoRect image.Rectangle
	if logo != nil {
		maxSize := canvasSize/4 - logoPadding*cfg.SuperSample
		logo = normalizeLogo(logo, maxSize)
		logoRect = logoPlacement(canvasSize, canvasSize, logo)
		clearLogoArea(matrix, logoRect, boxSize, cfg.BorderSize)
	}

	dc := gg.NewContext(canvasSize, canvasSize)
	dc.SetColor(cfg.BackColor)
	dc.Clear()
	drawModules(dc, matrix, cfg, boxSize)

	canvas := dc.Image().(*image.RGBA)
	drawEyes(canvas, cfg, boxSize)

	// Patch before logo, both after the eyes. The quarter-canvas size cap
	// keeps the logo rectangle clear of the marker regions.
	if logo != nil {
		drawLogoPatch(canvas, logoRect, cfg.BackColor, float64(boxSize)/2)
		pasteLogo(canvas, logo, logoRect)
	}

	if cfg.SuperSample == 1 {
		return canvas, nil
	}
	final := canvasSize / cfg.SuperSample
	return imaging.Resize(canvas, final, final, imaging.Lanczos), nil
}

// RenderToFile renders the payload and writes the result to path. The format
// follows the file extension. Nothing is written when the render fails.
func RenderToFile(payload, path string, cfg Config) (image.Image, error) {
	img, err := Render(payload, cfg)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(img, path); err != nil {
		return nil, fmt.Errorf("write output image %s: %w", path, err)
	}
	return img, nil
}

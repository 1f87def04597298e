package render

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"
)

// eyeSpan is the canonical finder pattern width in modules.
const eyeSpan = 7

// drawEyes overwrites the three position-marker regions with the styled
// glyph. The QR structure guarantees those regions always hold the fixed
// finder pattern, so replacing whatever the module stage painted there is
// safe. The target region is cleared to the background first to erase any
// rounding that bled in from adjacent modules.
func drawEyes(canvas *image.RGBA, cfg Config, boxSize int) {
	glyph := eyeGlyph(cfg, boxSize)
	borderPx := cfg.BorderSize * boxSize
	span := eyeSpan * boxSize
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()

	// Top-left, top-right, bottom-left. Standard QR has no marker at the
	// bottom-right corner.
	anchors := [3]image.Point{
		{borderPx, borderPx},
		{w - borderPx - span, borderPx},
		{borderPx, h - borderPx - span},
	}
	for _, at := range anchors {
		region := image.Rect(at.X, at.Y, at.X+span, at.Y+span)
		draw.Draw(canvas, region, image.NewUniform(cfg.BackColor), image.Point{}, draw.Src)
		draw.Draw(canvas, region, glyph, image.Point{}, draw.Over)
	}
}

// eyeGlyph renders one finder glyph: an outer rounded square in the eye
// color, a centered background gap ring and an innermost pupil in the module
// fill color, with corner radii of one, half and a third of a box.
func eyeGlyph(cfg Config, boxSize int) image.Image {
	span := eyeSpan * boxSize
	box := float64(boxSize)
	gapSize := 5 * boxSize
	pupilSize := 3 * boxSize
	gapOff := float64((span - gapSize) / 2)
	pupilOff := float64((span - pupilSize) / 2)

	dc := gg.NewContext(span, span)
	dc.SetColor(cfg.BackColor)
	dc.Clear()

	dc.SetColor(cfg.EyeColor)
	dc.DrawRoundedRectangle(0, 0, float64(span), float64(span), box)
	dc.Fill()

	dc.SetColor(cfg.BackColor)
	dc.DrawRoundedRectangle(gapOff, gapOff, float64(gapSize), float64(gapSize), box/2)
	dc.Fill()

	dc.SetColor(cfg.FillColor)
	dc.DrawRoundedRectangle(pupilOff, pupilOff, float64(pupilSize), float64(pupilSize), box/3)
	dc.Fill()

	return dc.Image()
}

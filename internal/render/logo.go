package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var (
	// ErrLogoNotFound reports a logo path with no file behind it.
	ErrLogoNotFound = errors.New("logo file not found")
	// ErrLogoDecode reports a logo file that could not be decoded.
	ErrLogoDecode = errors.New("logo file could not be decoded")
)

// logoPadding is subtracted from the quarter-canvas logo cap, in final-image
// pixels. It scales with the supersampling factor at render time.
const logoPadding = 2

// svgRasterSize is the fallback raster edge for SVG logos without a viewbox.
const svgRasterSize = 512

// loadLogo reads a logo from disk. Raster formats go through image.Decode;
// an .svg extension takes the vector path and is rasterized first.
func loadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrLogoNotFound, path)
		}
		return nil, fmt.Errorf("open logo %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return rasterizeSVG(f)
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}
	return img, nil
}

// rasterizeSVG renders an SVG icon at its native viewbox size.
func rasterizeSVG(r io.Reader) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLogoDecode, err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		w, h = svgRasterSize, svgRasterSize
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// normalizeLogo scales the source to cover a square box and center-crops the
// excess, never letterboxing or distorting. If the result still exceeds
// maxSize it is shrunk further, preserving aspect ratio.
func normalizeLogo(src image.Image, maxSize int) image.Image {
	b := src.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}
	if side < 1 {
		return src
	}

	logo := imaging.Fill(src, side, side, imaging.Center, imaging.Lanczos)
	if maxSize > 0 && (logo.Bounds().Dx() > maxSize || logo.Bounds().Dy() > maxSize) {
		return imaging.Fit(logo, maxSize, maxSize, imaging.Lanczos)
	}
	return logo
}

// logoPlacement centers the logo on the canvas and returns its pixel
// rectangle.
func logoPlacement(canvasW, canvasH int, logo image.Image) image.Rectangle {
	w := logo.Bounds().Dx()
	h := logo.Bounds().Dy()
	left := (canvasW - w) / 2
	top := (canvasH - h) / 2
	return image.Rect(left, top, left+w, top+h)
}

// clearLogoArea marks every module even partially covered by rect inactive.
// The top/left bounds round down and the bottom/right bounds round up, so a
// rectangle landing exactly on a module boundary still clears the adjacent
// module. Indices are translated into matrix space by subtracting the border;
// anything that falls outside the matrix is skipped.
func clearLogoArea(m *qr.Matrix, rect image.Rectangle, boxSize, borderSize int) {
	if boxSize < 1 {
		return
	}
	left := rect.Min.X / boxSize
	top := rect.Min.Y / boxSize
	right := (rect.Max.X + boxSize - 1) / boxSize
	bottom := (rect.Max.Y + boxSize - 1) / boxSize

	for row := top; row < bottom; row++ {
		for col := left; col < right; col++ {
			m.Clear(row-borderSize, col-borderSize)
		}
	}
}

// drawLogoPatch alpha-composes a rounded background-colored patch spanning
// exactly the logo rectangle, so the logo never sits directly against module
// edges.
func drawLogoPatch(canvas *image.RGBA, rect image.Rectangle, back color.RGBA, radius float64) {
	overlay := gg.NewContext(canvas.Bounds().Dx(), canvas.Bounds().Dy())
	overlay.SetColor(back)
	overlay.DrawRoundedRectangle(
		float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()), radius)
	overlay.Fill()
	draw.Draw(canvas, canvas.Bounds(), overlay.Image(), image.Point{}, draw.Over)
}

// pasteLogo pastes the logo using its own alpha channel as the mask, so
// transparent logos keep their silhouette.
func pasteLogo(canvas *image.RGBA, logo image.Image, rect image.Rectangle) {
	draw.Draw(canvas, rect, logo, logo.Bounds().Min, draw.Over)
}

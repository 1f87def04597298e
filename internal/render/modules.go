package render

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"
)

type corner int

const (
	cornerTopLeft corner = iota
	cornerTopRight
	cornerBottomRight
	cornerBottomLeft
)

type cornerStyle int

const (
	cornerSharp cornerStyle = iota
	cornerRounded
)

// cornerFor decides how one corner of the module at (row, col) is drawn.
// A corner stays sharp while either of the two orthogonal neighbours sharing
// it is active, so rounding only ever appears on the outward boundary of a
// contiguous blob, never at a junction between two active modules. Neighbours
// outside the matrix count as inactive.
func cornerFor(m *qr.Matrix, row, col int, c corner) cornerStyle {
	var a, b bool
	switch c {
	case cornerTopLeft:
		a, b = m.At(row-1, col), m.At(row, col-1)
	case cornerTopRight:
		a, b = m.At(row-1, col), m.At(row, col+1)
	case cornerBottomRight:
		a, b = m.At(row+1, col), m.At(row, col+1)
	case cornerBottomLeft:
		a, b = m.At(row+1, col), m.At(row, col-1)
	}
	if a || b {
		return cornerSharp
	}
	return cornerRounded
}

// moduleRadius converts the configured ratio into a pixel radius, clamped so
// two rounded corners never overlap inside one box.
func moduleRadius(boxSize int, ratio float64) float64 {
	r := math.Round(float64(boxSize) * ratio)
	if max := float64(boxSize) / 2; r > max {
		r = max
	}
	if r < 0 {
		r = 0
	}
	return r
}

// drawModules paints every active module of the matrix onto dc. The canvas is
// assumed to already be filled with the background color, so inactive cells
// need no paint. Cells are painted independently; the only shared state is
// the canvas itself.
func drawModules(dc *gg.Context, m *qr.Matrix, cfg Config, boxSize int) {
	radius := moduleRadius(boxSize, cfg.ModuleRadiusRatio)
	box := float64(boxSize)
	offset := float64(cfg.BorderSize * boxSize)

	dc.SetColor(cfg.FillColor)
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !m.At(row, col) {
				continue
			}
			x := offset + float64(col)*box
			y := offset + float64(row)*box
			drawModule(dc, m, row, col, x, y, box, radius)
		}
	}
}

// drawModule fills one module tile: a central plus shape covering the tile
// except its four corner squares, then per corner either the sharp square or
// a quarter-disc facing outward.
func drawModule(dc *gg.Context, m *qr.Matrix, row, col int, x, y, box, radius float64) {
	if radius <= 0 {
		dc.DrawRectangle(x, y, box, box)
		dc.Fill()
		return
	}

	dc.DrawRectangle(x+radius, y, box-2*radius, box)
	dc.DrawRectangle(x, y+radius, box, box-2*radius)

	geom := [4]struct {
		c      corner
		sx, sy float64 // corner square origin
		cx, cy float64 // quarter-disc center
		a1, a2 float64 // arc sweep, radians
	}{
		{cornerTopLeft, x, y, x + radius, y + radius, math.Pi, 1.5 * math.Pi},
		{cornerTopRight, x + box - radius, y, x + box - radius, y + radius, 1.5 * math.Pi, 2 * math.Pi},
		{cornerBottomRight, x + box - radius, y + box - radius, x + box - radius, y + box - radius, 0, 0.5 * math.Pi},
		{cornerBottomLeft, x, y + box - radius, x + radius, y + box - radius, 0.5 * math.Pi, math.Pi},
	}
	for _, g := range geom {
		if cornerFor(m, row, col, g.c) == cornerSharp {
			dc.DrawRectangle(g.sx, g.sy, radius, radius)
			continue
		}
		dc.MoveTo(g.cx, g.cy)
		dc.DrawArc(g.cx, g.cy, radius, g.a1, g.a2)
		dc.ClosePath()
	}
	dc.Fill()
}

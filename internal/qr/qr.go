// Package qr wraps the QR symbol encoder and exposes the encoded symbol as a
// mutable boolean module grid. The encoder itself (data analysis, Reed-Solomon,
// mask selection) is consumed as a black box; this package pins the symbol
// version so the module count, and with it the output geometry, stays fixed.
package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Level selects the QR error correction level.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

var (
	// ErrPayloadTooLarge reports a payload that does not fit the fixed version.
	ErrPayloadTooLarge = errors.New("payload exceeds the capacity of the configured QR version")
	// ErrUnknownVersion reports a version with no known module-count mapping.
	ErrUnknownVersion = errors.New("unknown QR version")
)

// ParseLevel maps the single-letter level names L, M, Q and H (any case) to a
// Level. Unrecognized input returns LevelH, the most damage-tolerant setting.
func ParseLevel(s string) Level {
	switch s {
	case "l", "L":
		return LevelL
	case "m", "M":
		return LevelM
	case "q", "Q":
		return LevelQ
	default:
		return LevelH
	}
}

func (l Level) recovery() qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelM:
		return qrcode.Medium
	case LevelQ:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}

// ModulesForVersion returns the module span of a QR symbol version: 21 for
// version 1, growing by 4 per version up to 177 for version 40.
func ModulesForVersion(version int) (int, error) {
	if version < 1 || version > 40 {
		return 0, fmt.Errorf("%w: %d (expected 1-40)", ErrUnknownVersion, version)
	}
	return 17 + 4*version, nil
}

// Matrix is the square module grid of one QR symbol. Cells may be cleared
// after construction to carve out room for a logo; they are never set back to
// active. Out-of-bounds reads are valid and report an inactive module.
type Matrix struct {
	size  int
	cells [][]bool
}

// NewMatrix returns an empty size x size matrix.
func NewMatrix(size int) *Matrix {
	cells := make([][]bool, size)
	for i := range cells {
		cells[i] = make([]bool, size)
	}
	return &Matrix{size: size, cells: cells}
}

// Size returns the module count along one edge.
func (m *Matrix) Size() int { return m.size }

// At reports whether the module at (row, col) is active. Coordinates outside
// [0, Size) read as inactive.
func (m *Matrix) At(row, col int) bool {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return false
	}
	return m.cells[row][col]
}

// Set marks the module at (row, col) active. Used while populating the grid;
// out-of-bounds coordinates are ignored.
func (m *Matrix) Set(row, col int) {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return
	}
	m.cells[row][col] = true
}

// Clear marks the module at (row, col) inactive. Out-of-bounds coordinates
// are ignored.
func (m *Matrix) Clear(row, col int) {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return
	}
	m.cells[row][col] = false
}

// Build encodes payload at the fixed version and error correction level and
// returns the resulting module matrix without a quiet zone.
func Build(payload string, version int, level Level) (*Matrix, error) {
	size, err := ModulesForVersion(version)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.NewWithForcedVersion(payload, version, level.recovery())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadTooLarge, err)
	}
	code.DisableBorder = true

	bitmap := code.Bitmap()
	// The bitmap may still carry a quiet zone; center-crop to the symbol span.
	offset := (len(bitmap) - size) / 2
	if offset < 0 {
		return nil, fmt.Errorf("encoder returned a %d-module symbol, expected %d", len(bitmap), size)
	}

	m := NewMatrix(size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if bitmap[row+offset][col+offset] {
				m.Set(row, col)
			}
		}
	}
	return m, nil
}

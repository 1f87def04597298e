package qr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/qrbrand/internal/qr"
)

func TestModulesForVersion(t *testing.T) {
	cases := []struct {
		version int
		modules int
	}{
		{1, 21},
		{6, 41},
		{10, 57},
		{40, 177},
	}
	for _, tc := range cases {
		got, err := qr.ModulesForVersion(tc.version)
		require.NoError(t, err)
		assert.Equal(t, tc.modules, got, "version %d", tc.version)
	}

	for _, v := range []int{0, -1, 41, 100} {
		_, err := qr.ModulesForVersion(v)
		assert.ErrorIs(t, err, qr.ErrUnknownVersion, "version %d", v)
	}
}

func TestBuildFixedVersion(t *testing.T) {
	m, err := qr.Build("https://example.com", 6, qr.LevelH)
	require.NoError(t, err)
	require.Equal(t, 41, m.Size())

	// The finder pattern corners are always dark and the separators light.
	assert.True(t, m.At(0, 0))
	assert.True(t, m.At(0, 40))
	assert.True(t, m.At(40, 0))
	assert.False(t, m.At(7, 7))

	// Out-of-bounds reads are inactive, never a panic.
	assert.False(t, m.At(-1, 0))
	assert.False(t, m.At(0, -1))
	assert.False(t, m.At(41, 0))
	assert.False(t, m.At(0, 41))
}

func TestBuildDeterministic(t *testing.T) {
	a, err := qr.Build("https://example.com", 6, qr.LevelH)
	require.NoError(t, err)
	b, err := qr.Build("https://example.com", 6, qr.LevelH)
	require.NoError(t, err)

	for row := 0; row < a.Size(); row++ {
		for col := 0; col < a.Size(); col++ {
			require.Equal(t, a.At(row, col), b.At(row, col), "module (%d,%d)", row, col)
		}
	}
}

func TestBuildPayloadTooLarge(t *testing.T) {
	_, err := qr.Build(strings.Repeat("A", 500), 6, qr.LevelH)
	assert.ErrorIs(t, err, qr.ErrPayloadTooLarge)
}

func TestBuildUnknownVersion(t *testing.T) {
	_, err := qr.Build("hello", 0, qr.LevelL)
	assert.ErrorIs(t, err, qr.ErrUnknownVersion)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, qr.LevelL, qr.ParseLevel("l"))
	assert.Equal(t, qr.LevelL, qr.ParseLevel("L"))
	assert.Equal(t, qr.LevelM, qr.ParseLevel("M"))
	assert.Equal(t, qr.LevelQ, qr.ParseLevel("q"))
	assert.Equal(t, qr.LevelH, qr.ParseLevel("H"))
	assert.Equal(t, qr.LevelH, qr.ParseLevel("whatever"))
}

func TestMatrixSetClear(t *testing.T) {
	m := qr.NewMatrix(3)
	assert.Equal(t, 3, m.Size())
	assert.False(t, m.At(1, 1))

	m.Set(1, 1)
	assert.True(t, m.At(1, 1))

	m.Clear(1, 1)
	assert.False(t, m.At(1, 1))

	// Out-of-bounds writes are ignored.
	m.Set(-1, 0)
	m.Set(0, 3)
	m.Clear(3, 0)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			assert.False(t, m.At(row, col))
		}
	}
}

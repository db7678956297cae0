package paper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNamed(t *testing.T) {
	tests := []struct {
		spec string
		want Size
	}{
		{"a4", SizeA4},
		{"A4", SizeA4},
		{"  letter ", SizeLetter},
		{"a3", SizeA3},
	}

	for _, tt := range tests {
		got, err := Resolve(tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		assert.Equal(t, tt.want, got, "spec %q", tt.spec)
	}
}

func TestParseCustom(t *testing.T) {
	tests := []struct {
		spec          string
		width, height float64
	}{
		{"210x297mm", 210 * Millimeter, 297 * Millimeter},
		{"210 x 297", 210 * Millimeter, 297 * Millimeter},
		{"21x29.7cm", 210 * Millimeter, 297 * Millimeter},
		{"8.5x11in", 612, 792},
		{"100X148MM", 100 * Millimeter, 148 * Millimeter},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec)
		require.NoError(t, err, "spec %q", tt.spec)
		assert.InDelta(t, tt.width, got.Width, 1e-9, "spec %q width", tt.spec)
		assert.InDelta(t, tt.height, got.Height, 1e-9, "spec %q height", tt.spec)
	}
}

func TestParseRoundTrip(t *testing.T) {
	mm, err := Parse("210x297mm")
	require.NoError(t, err)
	cm, err := Parse("21x29.7cm")
	require.NoError(t, err)
	in, err := Parse("8.2677165354x11.6929133858in")
	require.NoError(t, err)

	assert.InDelta(t, mm.Width, cm.Width, 1e-6)
	assert.InDelta(t, mm.Height, cm.Height, 1e-6)
	assert.InDelta(t, mm.Width, in.Width, 1e-4)
	assert.InDelta(t, mm.Height, in.Height, 1e-4)

	a4, err := Resolve("a4")
	require.NoError(t, err)
	assert.InDelta(t, a4.Width, mm.Width, 1e-9)
	assert.InDelta(t, a4.Height, mm.Height, 1e-9)
}

func TestResolveInvalid(t *testing.T) {
	invalid := []string{
		"",
		"210x",
		"x297mm",
		"210x297km",
		"b5",
		"210*297mm",
		"axbmm",
	}

	for _, spec := range invalid {
		_, err := Resolve(spec)
		assert.ErrorIs(t, err, ErrInvalidSpec, "spec %q", spec)
	}
}

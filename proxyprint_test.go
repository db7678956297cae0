package proxyprint_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxyprint/proxyprint"
)

func writeCardPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 63, 88))
	for y := 0; y < 88; y++ {
		for x := 0; x < 63; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 2), B: 200, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestGenerateDirThroughFacade(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.png", "2.png", "3.png"} {
		writeCardPNG(t, filepath.Join(dir, name))
	}
	out := filepath.Join(t.TempDir(), "out.pdf")

	g := proxyprint.New().
		WithOption(proxyprint.WithPaper("a4")).
		WithOption(proxyprint.WithCropMarks(true)).
		WithOption(proxyprint.WithOrientation(proxyprint.OrientationPortrait))

	result, err := g.GenerateDir(dir, out)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Images)
	assert.Equal(t, 3, result.Placed)
	assert.Equal(t, 9, result.PerPage)
	assert.Equal(t, 1, result.Pages)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateDirEmptyFolder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")
	_, err := proxyprint.New().GenerateDir(t.TempDir(), out)
	assert.ErrorIs(t, err, proxyprint.ErrNoImages)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

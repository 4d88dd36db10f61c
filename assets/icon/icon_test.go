package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSizes(t *testing.T) {
	imgs := Generate()
	require.Len(t, imgs, 2)
	require.Equal(t, image.Rect(0, 0, 64, 64), imgs[0].Bounds())
	require.Equal(t, image.Rect(0, 0, 32, 32), imgs[1].Bounds())
}

func TestGenerateCornersTransparent(t *testing.T) {
	img := generate(64).(*image.RGBA)
	require.Zero(t, img.RGBAAt(0, 0).A, "rounded corner")
	require.Equal(t, uint8(0xFF), img.RGBAAt(32, 2).A)
}

func TestBlendPixel(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	blendPixel(img, 0, 0, color.RGBA{A: 0x80})

	got := img.RGBAAt(0, 0)
	require.InDelta(t, 0x7F, int(got.R), 1)
	require.Equal(t, uint8(0xFF), got.A)
}

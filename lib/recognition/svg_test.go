package recognition

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

const halfFilledSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 6"><rect x="0" y="0" width="5" height="6" fill="#000"/></svg>`

func requireWhite(t *testing.T, c color.Color) {
	t.Helper()
	r, g, b, _ := c.RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Equal(t, uint32(0xffff), g)
	require.Equal(t, uint32(0xffff), b)
}

func requireDark(t *testing.T, c color.Color) {
	t.Helper()
	r, g, b, _ := c.RGBA()
	require.Less(t, r, uint32(0x2000))
	require.Less(t, g, uint32(0x2000))
	require.Less(t, b, uint32(0x2000))
}

func TestSVGRasterizerDefaultScale(t *testing.T) {
	img, err := SVGRasterizer{}.Rasterize([]byte(halfFilledSvg))
	require.NoError(t, err)

	bounds := img.Bounds()
	require.Equal(t, 40, bounds.Dx())
	require.Equal(t, 24, bounds.Dy())

	// the rect covers the left half, the right half stays background
	requireDark(t, img.At(10, 12))
	requireWhite(t, img.At(35, 12))
}

func TestSVGRasterizerCustomScale(t *testing.T) {
	img, err := SVGRasterizer{Scale: 2}.Rasterize([]byte(halfFilledSvg))
	require.NoError(t, err)

	bounds := img.Bounds()
	require.Equal(t, 20, bounds.Dx())
	require.Equal(t, 12, bounds.Dy())
}

func TestSVGRasterizerRejectsGarbage(t *testing.T) {
	_, err := SVGRasterizer{}.Rasterize([]byte("not an svg document"))
	require.Error(t, err)
}

package recognition

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const defaultScale = 4

// SVGRasterizer renders svg documents onto a white background,
// upscaled so small formula glyphs survive recognition.
type SVGRasterizer struct {
	// Scale multiplies the document view box. Defaults to 4.
	Scale float64
}

func (r SVGRasterizer) Rasterize(data []byte) (image.Image, error) {
	scale := r.Scale
	if scale <= 0 {
		scale = defaultScale
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	width := int(icon.ViewBox.W * scale)
	height := int(icon.ViewBox.H * scale)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf(
			"svg has a degenerate view box: %gx%g",
			icon.ViewBox.W, icon.ViewBox.H,
		)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

	return img, nil
}

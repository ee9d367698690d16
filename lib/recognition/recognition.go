// Package recognition turns rendered formula images back into text.
package recognition

import (
	"context"
	"image"
)

// Backend extracts the text content of a rendered formula image.
type Backend interface {
	Recognize(ctx context.Context, img image.Image) (string, error)
}

// Rasterizer renders a vector document into a bitmap a Backend can
// work with.
type Rasterizer interface {
	Rasterize(data []byte) (image.Image, error)
}

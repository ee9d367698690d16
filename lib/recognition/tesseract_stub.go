//go:build !ocr

package recognition

import (
	"context"
	"errors"
	"image"
)

// TesseractBackend is a stub without the "ocr" build tag, recognition
// always fails with an explanatory error.
type TesseractBackend struct {
	Language string
}

func NewTesseractBackend() *TesseractBackend {
	return &TesseractBackend{Language: "eng+equ"}
}

func (b *TesseractBackend) Recognize(ctx context.Context, img image.Image) (string, error) {
	return "", errors.New("tesseract support is not compiled in, rebuild with -tags ocr")
}

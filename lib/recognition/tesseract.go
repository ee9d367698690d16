//go:build ocr

package recognition

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// TesseractBackend recognizes formula images through a local tesseract
// install. Only compiled in with the "ocr" build tag since gosseract
// needs the tesseract C libraries at link time.
type TesseractBackend struct {
	// Language is a tesseract language code. Defaults to "eng+equ".
	Language string
}

func NewTesseractBackend() *TesseractBackend {
	return &TesseractBackend{Language: "eng+equ"}
}

func (b *TesseractBackend) Recognize(ctx context.Context, img image.Image) (string, error) {
	var buf bytes.Buffer
	err := png.Encode(&buf, img)
	if err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	language := b.Language
	if language == "" {
		language = "eng+equ"
	}
	err = client.SetLanguage(language)
	if err != nil {
		return "", err
	}
	err = client.SetImageFromBytes(buf.Bytes())
	if err != nil {
		return "", err
	}

	text, err := client.Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

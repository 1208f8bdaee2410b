package canvas

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// EncodePNG serializes img to PNG bytes. A positive maxWidth smaller than the
// image triggers an aspect-preserving downscale first; the height comes out
// as round(maxWidth * h / w).
func EncodePNG(img image.Image, maxWidth int) ([]byte, error) {
	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

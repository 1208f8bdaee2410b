package cards

import (
	"image"

	"github.com/pkg/errors"

	"cardforge/pkg/canvas"
)

// ErrNotBuilt is returned when card bytes are requested before Build.
var ErrNotBuilt = errors.New("card not built")

// Card is an assembled but not yet flattened render. Build consumes the
// underlying canvas exactly once; Bytes refuses to serve anything before
// that instead of handing back empty bytes.
type Card struct {
	Name   string
	canvas *canvas.Canvas
	built  *image.NRGBA
}

func newCard(name string, c *canvas.Canvas) *Card {
	return &Card{Name: name, canvas: c}
}

// Build flattens the component stack into the final raster.
func (c *Card) Build() *image.NRGBA {
	c.built = c.canvas.Flatten()
	return c.built
}

// Image returns the flattened raster, or ErrNotBuilt before Build.
func (c *Card) Image() (*image.NRGBA, error) {
	if c.built == nil {
		return nil, ErrNotBuilt
	}
	return c.built, nil
}

// Bytes PNG-encodes the flattened raster. maxWidth > 0 constrains the output
// width, preserving aspect ratio.
func (c *Card) Bytes(maxWidth int) ([]byte, error) {
	if c.built == nil {
		return nil, ErrNotBuilt
	}
	return canvas.EncodePNG(c.built, maxWidth)
}

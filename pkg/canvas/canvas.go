package canvas

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// New builds a canvas from a base image. A zero width or height is inherited
// from the base; explicit dimensions resample the base to exactly that size
// (never crop). A nil base yields a transparent canvas.
func New(width, height int, base image.Image, name string) *Canvas {
	if base == nil {
		if width == 0 {
			width = 1920
		}
		if height == 0 {
			height = 1080
		}
		return &Canvas{
			base:   imaging.New(width, height, color.NRGBA{}),
			width:  width,
			height: height,
			name:   name,
		}
	}

	b := base.Bounds()
	if width == 0 {
		width = b.Dx()
	}
	if height == 0 {
		height = b.Dy()
	}

	owned := imaging.Clone(base)
	if width != b.Dx() || height != b.Dy() {
		owned = imaging.Resize(owned, width, height, imaging.Lanczos)
	}

	return &Canvas{
		base:   owned,
		width:  width,
		height: height,
		name:   name,
	}
}

// Canvas owns a base raster and an ordered list of overlay components.
// Insertion order is paint order: first added paints at the bottom. A canvas
// is built once per render request and consumed by a single Flatten call.
type Canvas struct {
	base     *image.NRGBA
	width    int
	height   int
	name     string
	overlays []*Component
}

func (c *Canvas) Name() string {
	return c.name
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return c.height
}

// AddOverlay appends a component to the paint order. Positions are not
// validated; anything outside the canvas is clipped silently at flatten time.
func (c *Canvas) AddOverlay(overlay *Component) {
	c.overlays = append(c.overlays, overlay)
}

// Write renders text directly onto the base raster, beneath every overlay.
func (c *Canvas) Write(f *Font, text string, opts TextOptions) error {
	return drawText(c.base, f, text, opts)
}

// Flatten composites every overlay onto a copy of the base, bottom layer
// first. Overlays carrying transparency are alpha blended; fully opaque ones
// replace the covered region outright. The canvas itself is not mutated.
func (c *Canvas) Flatten() *image.NRGBA {
	out := imaging.Clone(c.base)
	for _, overlay := range c.overlays {
		at := image.Pt(overlay.x, overlay.y)
		if overlay.HasTransparency() {
			out = imaging.Overlay(out, overlay.img, at, 1.0)
		} else {
			out = imaging.Paste(out, overlay.img, at)
		}
	}
	return out
}

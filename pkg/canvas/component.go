package canvas

import (
	"image"

	"github.com/disintegration/imaging"
)

// NewComponent wraps img as a movable layer at (x, y). The pixel buffer is
// cloned so later mutation of the source image never leaks into the layer.
func NewComponent(img image.Image, x, y int, name string) *Component {
	return &Component{
		img:  imaging.Clone(img),
		x:    x,
		y:    y,
		name: name,
	}
}

// Component is a positioned image layer. The name is only used for
// diagnostics and carries no identity.
type Component struct {
	img  *image.NRGBA
	x    int
	y    int
	name string
}

func (c *Component) Name() string {
	return c.name
}

func (c *Component) X() int {
	return c.x
}

func (c *Component) Y() int {
	return c.y
}

func (c *Component) Width() int {
	return c.img.Bounds().Dx()
}

func (c *Component) Height() int {
	return c.img.Bounds().Dy()
}

func (c *Component) SetX(x int) {
	c.x = x
}

func (c *Component) SetY(y int) {
	c.y = y
}

// SetCenterX centers the component within a parent of the given width.
func (c *Component) SetCenterX(parentWidth int) {
	c.x = (parentWidth - c.Width()) / 2
}

// SetCenterY centers the component within a parent of the given height.
func (c *Component) SetCenterY(parentHeight int) {
	c.y = (parentHeight - c.Height()) / 2
}

// SetRelativeCenterX centers the component around another component's
// horizontal midpoint by treating that midpoint as the center of a virtual
// parent of width 2*other.x + other.width. Templates depend on this exact
// arithmetic, keep it in terms of SetCenterX.
func (c *Component) SetRelativeCenterX(other *Component) {
	c.SetCenterX(2*other.x + other.Width())
}

// SetRelativeCenterY is the vertical counterpart of SetRelativeCenterX.
func (c *Component) SetRelativeCenterY(other *Component) {
	c.SetCenterY(2*other.y + other.Height())
}

// Resize resamples the buffer to exactly width x height. Aspect ratio is not
// preserved; callers pick final dimensions explicitly. Position is untouched,
// re-center afterwards if needed.
func (c *Component) Resize(width, height int) {
	c.img = imaging.Resize(c.img, width, height, imaging.Lanczos)
}

// HasTransparency reports whether any pixel is less than fully opaque. The
// flatten step uses it to pick between alpha compositing and a plain paste.
func (c *Component) HasTransparency() bool {
	for i := 3; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] != 0xff {
			return true
		}
	}
	return false
}

// Write renders text onto the component's own buffer, for layers that are
// themselves text panels. Coordinates in opts.Box are component-local.
func (c *Component) Write(f *Font, text string, opts TextOptions) error {
	return drawText(c.img, f, text, opts)
}

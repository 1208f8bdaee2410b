package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func TestSetCenterX(t *testing.T) {
	for _, tc := range []struct {
		parent, width, want int
	}{
		{100, 40, 30},
		{101, 40, 30},
		{50, 50, 0},
		{7, 4, 1},
	} {
		c := NewComponent(solid(tc.width, 10, red), 0, 0, "c")
		c.SetCenterX(tc.parent)
		assert.Equal(t, tc.want, c.X(), "parent=%d width=%d", tc.parent, tc.width)

		// re-applying with the same parent width must not move it
		c.SetCenterX(tc.parent)
		assert.Equal(t, tc.want, c.X())
	}
}

func TestSetCenterY(t *testing.T) {
	c := NewComponent(solid(10, 20, red), 0, 0, "c")
	c.SetCenterY(101)
	assert.Equal(t, 40, c.Y())
}

func TestSetRelativeCenterMatchesVirtualParent(t *testing.T) {
	for _, tc := range []struct {
		otherX, otherW, width int
	}{
		{175, 275, 90},
		{0, 100, 30},
		{830, 275, 111},
	} {
		other := NewComponent(solid(tc.otherW, 10, red), tc.otherX, 0, "other")

		a := NewComponent(solid(tc.width, 10, green), 0, 0, "a")
		a.SetRelativeCenterX(other)

		b := NewComponent(solid(tc.width, 10, green), 0, 0, "b")
		b.SetCenterX(2*tc.otherX + tc.otherW)

		assert.Equal(t, b.X(), a.X(), "other=(%d,%d) width=%d", tc.otherX, tc.otherW, tc.width)
	}
}

func TestResizeExactDimensions(t *testing.T) {
	c := NewComponent(solid(100, 80, red), 5, 7, "c")
	c.Resize(30, 60)

	assert.Equal(t, 30, c.Width())
	assert.Equal(t, 60, c.Height())
	// position is independent of size
	assert.Equal(t, 5, c.X())
	assert.Equal(t, 7, c.Y())
}

func TestComponentOwnsItsBuffer(t *testing.T) {
	src := solid(4, 4, red)
	c := NewComponent(src, 0, 0, "c")

	src.SetNRGBA(0, 0, green)

	require.Equal(t, red, c.img.NRGBAAt(0, 0))
}

func TestHasTransparency(t *testing.T) {
	opaque := NewComponent(solid(4, 4, red), 0, 0, "opaque")
	assert.False(t, opaque.HasTransparency())

	src := solid(4, 4, red)
	src.SetNRGBA(2, 1, color.NRGBA{R: 0xff, A: 0x80})
	translucent := NewComponent(src, 0, 0, "translucent")
	assert.True(t, translucent.HasTransparency())
}

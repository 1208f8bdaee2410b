package canvas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func testFont(t *testing.T) *Font {
	t.Helper()
	f, err := NewFont(goregular.TTF)
	require.NoError(t, err)
	return f
}

func TestTextOrigin(t *testing.T) {
	box := image.Rect(0, 0, 200, 50)

	for _, tc := range []struct {
		align Align
		wantX int
	}{
		{AlignLeft, 0},
		{AlignCenter, 80},
		{AlignRight, 160},
		{Align("wat"), 0}, // unrecognized values fall back to left
		{Align(""), 0},
	} {
		got := textOrigin(box, 40, 20, tc.align)
		assert.Equal(t, tc.wantX, got.X, "align=%q", tc.align)
		assert.Equal(t, 15, got.Y, "vertical centering is unconditional")
	}
}

func TestTextOriginOffsetBox(t *testing.T) {
	got := textOrigin(image.Rect(100, 40, 300, 90), 40, 20, AlignCenter)
	assert.Equal(t, 180, got.X)
	assert.Equal(t, 55, got.Y)
}

func TestMeasureGrowsWithSize(t *testing.T) {
	f := testFont(t)

	small, err := f.face(20)
	require.NoError(t, err)
	defer small.Close()
	large, err := f.face(60)
	require.NoError(t, err)
	defer large.Close()

	ws, hs := measure(small, "Player One")
	wl, hl := measure(large, "Player One")
	assert.Greater(t, wl, ws)
	assert.Greater(t, hl, hs)
}

func TestMeasureMultiline(t *testing.T) {
	f := testFont(t)
	face, err := f.face(DefaultFontSize)
	require.NoError(t, err)
	defer face.Close()

	_, one := measure(face, "line")
	wTwo, two := measure(face, "line\nlonger line")
	wOne, _ := measure(face, "longer line")

	assert.Equal(t, 2*(one-2*measureStroke)+2*measureStroke, two, "two lines stack full line heights")
	assert.Equal(t, wOne, wTwo, "width follows the widest line")
}

func TestWritePaintsInsideBox(t *testing.T) {
	c := NewComponent(solid(200, 60, black), 0, 0, "panel")
	err := c.Write(testFont(t), "hello", TextOptions{
		Box:   image.Rect(0, 0, 200, 60),
		Align: AlignCenter,
		Color: red,
	})
	require.NoError(t, err)

	var painted bool
	for i := 0; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted, "expected red glyph coverage")
}

func TestWriteDefaultsToFullTarget(t *testing.T) {
	c := NewComponent(solid(120, 40, black), 0, 0, "panel")
	require.NoError(t, c.Write(testFont(t), "x", TextOptions{Color: red}))
}

func TestWriteStrokeOutlinesFill(t *testing.T) {
	c := NewComponent(solid(300, 100, black), 0, 0, "panel")
	err := c.Write(testFont(t), "VS", TextOptions{
		Size:   48,
		Align:  AlignCenter,
		Color:  red,
		Stroke: blue,
	})
	require.NoError(t, err)

	var fill, stroke bool
	for i := 0; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] > 0x80 {
			fill = true
		}
		if c.img.Pix[i+2] > 0x80 {
			stroke = true
		}
	}
	assert.True(t, fill)
	assert.True(t, stroke)
}

// the size of one write must not leak into the next
func TestWriteSizeIsCallScoped(t *testing.T) {
	f := testFont(t)

	big := NewComponent(solid(400, 120, black), 0, 0, "big")
	require.NoError(t, big.Write(f, "abc", TextOptions{Size: 90, Color: red}))

	def := NewComponent(solid(400, 120, black), 0, 0, "def")
	require.NoError(t, def.Write(f, "abc", TextOptions{Color: red}))

	face, err := f.face(DefaultFontSize)
	require.NoError(t, err)
	defer face.Close()
	w, _ := measure(face, "abc")

	bigCoverage := coverage(big)
	defCoverage := coverage(def)
	assert.Greater(t, bigCoverage, defCoverage, "size 90 covers more than the default")
	assert.Greater(t, w, 0)
}

func coverage(c *Component) int {
	var n int
	for i := 0; i < len(c.img.Pix); i += 4 {
		if c.img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

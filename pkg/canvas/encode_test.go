package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodePNGWidthConstrained(t *testing.T) {
	bs, err := EncodePNG(solid(1280, 720, blue), 500)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)

	assert.Equal(t, 500, img.Bounds().Dx())
	assert.Equal(t, 281, img.Bounds().Dy(), "height = round(500*720/1280)")
}

func TestEncodePNGNeverUpscales(t *testing.T) {
	bs, err := EncodePNG(solid(100, 50, blue), 400)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)

	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

// full pipeline: composite, serialize, decode back, verify pixels
func TestFlattenEncodeRoundTrip(t *testing.T) {
	c := New(0, 0, solid(300, 200, blue), "card")
	c.AddOverlay(NewComponent(solid(50, 50, red), 10, 10, "patch"))

	bs, err := EncodePNG(c.Flatten(), 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	at := func(x, y int) (uint32, uint32, uint32) {
		r, g, b, _ := img.At(x, y).RGBA()
		return r >> 8, g >> 8, b >> 8
	}

	for _, p := range [][2]int{{10, 10}, {35, 35}, {59, 59}} {
		r, g, b := at(p[0], p[1])
		assert.Equal(t, [3]uint32{255, 0, 0}, [3]uint32{r, g, b}, "red at %v", p)
	}
	for _, p := range [][2]int{{9, 9}, {60, 60}, {0, 0}, {299, 199}, {9, 35}, {60, 10}} {
		r, g, b := at(p[0], p[1])
		assert.Equal(t, [3]uint32{0, 0, 255}, [3]uint32{r, g, b}, "background at %v", p)
	}
}

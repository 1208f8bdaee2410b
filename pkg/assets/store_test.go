package assets

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePNG(t *testing.T, fs afero.Fs, name string, w, h int, c color.NRGBA) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(w, h, c), imaging.PNG))
	require.NoError(t, afero.WriteFile(fs, name, buf.Bytes(), 0644))
}

func testStore(t *testing.T) *Store {
	t.Helper()
	fs := afero.NewMemMapFs()
	writePNG(t, fs, "Player_Player_clean.png", 1280, 720, color.NRGBA{R: 0x20, A: 0xff})
	writePNG(t, fs, "Winner_Loser_clean.png", 1280, 720, color.NRGBA{G: 0x20, A: 0xff})
	writePNG(t, fs, "Player_clean.png", 1280, 720, color.NRGBA{B: 0x20, A: 0xff})
	writePNG(t, fs, "battle_log_bg.png", 1280, 720, color.NRGBA{R: 0x40, A: 0xff})
	writePNG(t, fs, "Vs_sign.png", 120, 120, color.NRGBA{R: 0xff, G: 0xff, A: 0xff})

	s, err := NewStoreFs(fs, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestStoreImage(t *testing.T) {
	s := testStore(t)

	img, err := s.MatchBackground()
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())
}

func TestStoreMissingAssetFails(t *testing.T) {
	s := testStore(t)

	_, err := s.Image("Nope.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nope.png")
}

func TestStoreCorruptAssetFails(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.png", []byte("not a png"), 0644))

	s, err := NewStoreFs(fs, zap.NewNop())
	require.NoError(t, err)

	_, err = s.Image("bad.png")
	assert.Error(t, err)
}

// a bare assets dir still gets a working typeface via the embedded fallback
func TestStoreFontFallback(t *testing.T) {
	s, err := NewStoreFs(afero.NewMemMapFs(), zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, s.Font())
}

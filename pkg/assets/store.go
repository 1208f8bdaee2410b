package assets

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"cardforge/pkg/canvas"
)

const fontFile = "lilitaone-regular.ttf"

func newFs(path string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	return afero.NewBasePathFs(fs, path), nil
}

// NewStore opens the local asset directory and parses the card typeface.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	fs, err := newFs(dir)
	if err != nil {
		return nil, fmt.Errorf("open assets dir: %w", err)
	}
	return NewStoreFs(fs, logger)
}

// NewStoreFs is NewStore over an explicit filesystem. When the typeface file
// is absent the embedded Go Regular face is used instead, so a bare assets
// dir still renders text.
func NewStoreFs(fs afero.Fs, logger *zap.Logger) (*Store, error) {
	s := &Store{fs: fs, log: logger}

	data, err := afero.ReadFile(fs, fontFile)
	if err != nil {
		logger.With(zap.String("file", fontFile), zap.Error(err)).Info("font missing, using embedded fallback")
		data = goregular.TTF
	}

	fnt, err := canvas.NewFont(data)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	s.font = fnt

	return s, nil
}

// Store resolves local template assets: card backgrounds, decorations and
// the shared typeface. A missing or corrupt asset is fatal for the render
// that needs it.
type Store struct {
	fs   afero.Fs
	log  *zap.Logger
	font *canvas.Font
}

func (s *Store) Font() *canvas.Font {
	return s.font
}

// Image reads and decodes a named asset file.
func (s *Store) Image(name string) (image.Image, error) {
	bs, err := afero.ReadFile(s.fs, name)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", name, err)
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("decode asset %q: %w", name, err)
	}

	return img, nil
}

func (s *Store) MatchBackground() (image.Image, error) {
	return s.Image("Player_Player_clean.png")
}

func (s *Store) ResultBackground() (image.Image, error) {
	return s.Image("Winner_Loser_clean.png")
}

func (s *Store) ProfileBackground() (image.Image, error) {
	return s.Image("Player_clean.png")
}

func (s *Store) BattleLogBackground() (image.Image, error) {
	return s.Image("battle_log_bg.png")
}

func (s *Store) VsSign() (image.Image, error) {
	return s.Image("Vs_sign.png")
}

func (s *Store) VsLine() (image.Image, error) {
	return s.Image("Vs_line.png")
}

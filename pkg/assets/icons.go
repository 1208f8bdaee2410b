package assets

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const defaultIconCDN = "https://cdn-old.brawlify.com"

type IconOption func(f *IconFetcher)

// WithBaseURL points the fetcher at a different CDN root.
func WithBaseURL(url string) IconOption {
	return func(f *IconFetcher) {
		f.cli.SetBaseURL(url)
	}
}

// WithCacheFs stores fetched icons on the given filesystem.
func WithCacheFs(fs afero.Fs) IconOption {
	return func(f *IconFetcher) {
		f.cache = fs
	}
}

// NewIconFetcher builds a remote icon fetcher. cacheDir may be empty to skip
// disk caching.
func NewIconFetcher(cacheDir string, logger *zap.Logger, opts ...IconOption) (*IconFetcher, error) {
	f := &IconFetcher{
		cli:      resty.New().SetBaseURL(defaultIconCDN),
		log:      logger,
		fallback: imaging.New(200, 200, color.NRGBA{R: 0x78, G: 0x6c, B: 0x98, A: 0xff}),
	}

	if cacheDir != "" {
		fs, err := newFs(cacheDir)
		if err != nil {
			return nil, fmt.Errorf("create icon cache: %w", err)
		}
		f.cache = fs
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// IconFetcher resolves remote player and game-mode icons. Any HTTP or decode
// failure degrades to a fixed local fallback raster so a render never dies on
// a missing icon.
type IconFetcher struct {
	cli      *resty.Client
	cache    afero.Fs
	log      *zap.Logger
	fallback *image.NRGBA
}

// Fallback returns the raster substituted for unfetchable icons.
func (f *IconFetcher) Fallback() image.Image {
	return f.fallback
}

// Profile fetches a player profile icon by id.
func (f *IconFetcher) Profile(ctx context.Context, id int64) image.Image {
	return f.fetch(ctx, fmt.Sprintf("/profile/%d.png", id))
}

// GameMode fetches the icon of a battle mode, e.g. "gemGrab".
func (f *IconFetcher) GameMode(ctx context.Context, mode string) image.Image {
	return f.fetch(ctx, fmt.Sprintf("/gamemode/%s.png", mode))
}

func (f *IconFetcher) fetch(ctx context.Context, path string) image.Image {
	if img, ok := f.cached(path); ok {
		return img
	}

	log := f.log.With(zap.String("icon", path))

	resp, err := f.cli.R().SetContext(ctx).Get(path)
	if err != nil {
		log.With(zap.Error(err)).Info("icon fetch failed, using fallback")
		return f.fallback
	}
	if resp.StatusCode() != 200 {
		log.With(zap.Int("status", resp.StatusCode())).Info("icon fetch failed, using fallback")
		return f.fallback
	}

	img, err := imaging.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		log.With(zap.Error(err)).Info("icon decode failed, using fallback")
		return f.fallback
	}

	f.store(path, resp.Body())
	return img
}

func (f *IconFetcher) cached(path string) (image.Image, bool) {
	if f.cache == nil {
		return nil, false
	}

	bs, err := afero.ReadFile(f.cache, path)
	if err != nil {
		return nil, false
	}

	img, err := imaging.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, false
	}

	return img, true
}

func (f *IconFetcher) store(path string, bs []byte) {
	if f.cache == nil {
		return
	}

	if err := f.cache.MkdirAll("profile", 0755); err != nil {
		return
	}
	if err := f.cache.MkdirAll("gamemode", 0755); err != nil {
		return
	}

	if err := afero.WriteFile(f.cache, path, bs, 0644); err != nil {
		f.log.With(zap.String("icon", path), zap.Error(err)).Debug("icon cache write failed")
	}
}

package cards

import (
	"context"
	"image"
	"image/color"

	"github.com/inhies/go-bytesize"
	"go.uber.org/zap"

	"cardforge/pkg/assets"
	"cardforge/pkg/canvas"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// NewRenderer wires the template assemblers to their asset collaborators.
func NewRenderer(store *assets.Store, icons *assets.IconFetcher, logger *zap.Logger) *Renderer {
	return &Renderer{
		assets: store,
		icons:  icons,
		log:    logger,
	}
}

// Renderer assembles cards. Every call builds a fresh request-local canvas,
// nothing is shared between concurrent renders.
type Renderer struct {
	assets *assets.Store
	icons  *assets.IconFetcher
	log    *zap.Logger
}

// Render flattens and encodes a card in one go, logging the payload size.
func (r *Renderer) Render(card *Card, maxWidth int) ([]byte, error) {
	card.Build()
	bs, err := card.Bytes(maxWidth)
	if err != nil {
		return nil, err
	}

	r.log.With(
		zap.String("card", card.Name),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
	).Debug("card rendered")

	return bs, nil
}

// duoCard lays out the shared two-player geometry used by both the match and
// the result card: two 275x275 icons, both display names, and the VS badge
// appended last so it paints above the icons.
func (r *Renderer) duoCard(ctx context.Context, name string, bg image.Image, left, right Player) (*Card, error) {
	c := canvas.New(0, 0, bg, name)
	fnt := r.assets.Font()

	const iconSize = 275

	icon1 := canvas.NewComponent(r.icons.Profile(ctx, left.Icon), 175, 175, "icon1")
	icon1.Resize(iconSize, iconSize)
	icon2 := canvas.NewComponent(r.icons.Profile(ctx, right.Icon), 830, 175, "icon2")
	icon2.Resize(iconSize, iconSize)

	if err := c.Write(fnt, left.DiscordName, canvas.TextOptions{
		Box:   image.Rect(125, 460, 500, 530),
		Align: canvas.AlignCenter,
		Color: white,
	}); err != nil {
		return nil, err
	}
	if err := c.Write(fnt, right.DiscordName, canvas.TextOptions{
		Box:   image.Rect(780, 460, 1155, 530),
		Align: canvas.AlignCenter,
		Color: white,
	}); err != nil {
		return nil, err
	}

	c.AddOverlay(icon1)
	c.AddOverlay(icon2)

	vsImg, err := r.assets.VsSign()
	if err != nil {
		return nil, err
	}
	vs := canvas.NewComponent(vsImg, 0, 0, "vs")
	vs.SetCenterX(c.Width())
	vs.SetCenterY(c.Height())
	c.AddOverlay(vs)

	return newCard(name, c), nil
}

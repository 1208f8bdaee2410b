package cards

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"

	"cardforge/pkg/canvas"
)

// Profile builds the player profile card: icon, identity lines, tournament
// stats and a QR code of the player tag in the bottom-right corner.
func (r *Renderer) Profile(ctx context.Context, req ProfileRequest) (*Card, error) {
	bg, err := r.assets.ProfileBackground()
	if err != nil {
		return nil, fmt.Errorf("load profile background: %w", err)
	}

	c := canvas.New(0, 0, bg, "profile")
	fnt := r.assets.Font()
	p := req.Player

	const iconSize = 300

	icon := canvas.NewComponent(r.icons.Profile(ctx, p.Icon), 100, 150, "icon")
	icon.Resize(iconSize, iconSize)
	c.AddOverlay(icon)

	w, h := c.Width(), c.Height()

	if err := c.Write(fnt, p.DiscordName, canvas.TextOptions{
		Size:  40,
		Box:   image.Rect(0, 30, w, 110),
		Align: canvas.AlignCenter,
		Color: white,
	}); err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("%s %s", p.PlayerName, p.PlayerTag),
		fmt.Sprintf("Trophies: %d", p.Trophies),
		fmt.Sprintf("Brawlers: %d", p.BrawlerCount),
		fmt.Sprintf("Tournament: %s", p.TournamentID),
	}
	for i, line := range lines {
		if err := c.Write(fnt, line, canvas.TextOptions{
			Box:   image.Rect(450, 150+i*70, w-60, 220+i*70),
			Align: canvas.AlignLeft,
			Color: white,
		}); err != nil {
			return nil, err
		}
	}

	qr, err := tagQR(p.PlayerTag)
	if err != nil {
		return nil, fmt.Errorf("player tag qr: %w", err)
	}
	qrc := canvas.NewComponent(qr, w-190, h-190, "tag-qr")
	qrc.Resize(150, 150)
	c.AddOverlay(qrc)

	return newCard("profile", c), nil
}

func tagQR(tag string) (image.Image, error) {
	bs, err := qrcode.Encode(tag, qrcode.Medium, 150)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(bs))
}

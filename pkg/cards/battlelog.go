package cards

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"cardforge/pkg/canvas"
)

const (
	panelWidth  = 1280
	panelHeight = 720
	panelGap    = 10
)

var (
	panelColor  = color.NRGBA{R: 0x82, G: 0x74, B: 0xa0, A: 0xff}
	headerColor = color.NRGBA{R: 0x78, G: 0x6c, B: 0x98, A: 0xff}
	yellow      = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
)

// BattleLog builds a sheet of stacked battle panels, one per logged battle.
func (r *Renderer) BattleLog(ctx context.Context, req BattleLogRequest) (*Card, error) {
	n := len(req.BattleLogs)
	if n == 0 {
		return nil, errors.New("empty battle log")
	}

	bg, err := r.assets.BattleLogBackground()
	if err != nil {
		return nil, fmt.Errorf("load battle log background: %w", err)
	}

	height := panelHeight*n + panelGap*(n-1)
	c := canvas.New(panelWidth, height, bg, "battle_log")

	vsImg, err := r.assets.VsSign()
	if err != nil {
		return nil, fmt.Errorf("load vs sign: %w", err)
	}

	fnt := r.assets.Font()

	for i, log := range req.BattleLogs {
		top := (panelHeight + panelGap) * i
		if err := r.battlePanel(ctx, c, fnt, vsImg, log, top, i); err != nil {
			return nil, fmt.Errorf("battle panel %d: %w", i, err)
		}
	}

	return newCard("battle_log", c), nil
}

func (r *Renderer) battlePanel(ctx context.Context, c *canvas.Canvas, fnt *canvas.Font, vsImg image.Image, log Battle, top, index int) error {
	result := "This battle ended in a draw!"
	if log.Result != nil {
		switch *log.Result {
		case log.Player1.DiscordID:
			result = log.Player1.DiscordName + "\nwon this battle"
		default:
			result = log.Player2.DiscordName + "\nwon this battle"
		}
	}

	const (
		padding  = 50
		iconSize = 200
	)

	panel := canvas.NewComponent(
		imaging.New(panelWidth, panelHeight, panelColor),
		0, top,
		fmt.Sprintf("panel%d", index),
	)

	if err := panel.Write(fnt, log.BattleTime, canvas.TextOptions{
		Size:  30,
		Box:   image.Rect(0, 0, panelWidth, 48),
		Align: canvas.AlignRight,
		Color: white,
	}); err != nil {
		return err
	}
	if err := panel.Write(fnt, log.Player1.DiscordName, canvas.TextOptions{
		Size:  30,
		Box:   image.Rect(padding, iconSize+padding, padding+iconSize, 600),
		Align: canvas.AlignCenter,
		Color: white,
	}); err != nil {
		return err
	}
	if err := panel.Write(fnt, log.Player2.DiscordName, canvas.TextOptions{
		Size:  30,
		Box:   image.Rect(panelWidth-padding-iconSize, iconSize+padding, panelWidth-padding, 600),
		Align: canvas.AlignCenter,
		Color: white,
	}); err != nil {
		return err
	}

	header := canvas.NewComponent(
		imaging.New(panelWidth, 96, headerColor),
		0, top+48,
		fmt.Sprintf("header%d", index),
	)

	if err := header.Write(fnt, ModeName(log.Mode)+"\n"+log.Map, canvas.TextOptions{
		Size:  30,
		Box:   image.Rect(100, 0, panelWidth, 96),
		Align: canvas.AlignLeft,
		Color: white,
	}); err != nil {
		return err
	}
	if err := header.Write(fnt, result, canvas.TextOptions{
		Size:  40,
		Align: canvas.AlignCenter,
		Color: yellow,
	}); err != nil {
		return err
	}

	modeIcon := canvas.NewComponent(r.icons.GameMode(ctx, log.Mode), 0, top+48, "mode-icon")
	modeIcon.Resize(90, 90)

	icon1 := canvas.NewComponent(r.icons.Profile(ctx, log.Player1.Icon), padding, top+200, log.Player1.DiscordName)
	icon1.Resize(iconSize, iconSize)
	icon2 := canvas.NewComponent(r.icons.Profile(ctx, log.Player2.Icon), panelWidth-padding-iconSize, top+200, log.Player2.DiscordName)
	icon2.Resize(iconSize, iconSize)

	// vs badge goes in last so it paints above both icons
	vs := canvas.NewComponent(vsImg, 0, 0, "vs")
	vs.SetX((panelWidth - vs.Width()) / 2)
	vs.SetY(top + (panelHeight-vs.Height())/2)

	c.AddOverlay(panel)
	c.AddOverlay(header)
	c.AddOverlay(modeIcon)
	c.AddOverlay(icon1)
	c.AddOverlay(icon2)
	c.AddOverlay(vs)

	return nil
}

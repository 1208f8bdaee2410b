package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"cardforge/pkg/cards"
)

// New builds the Telegram delivery bot. Commands carry the same JSON bodies
// as the HTTP routes; an empty payload renders a demo card instead.
func New(token string, renderer *cards.Renderer) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	return &Bot{
		b:        b,
		renderer: renderer,
		h:        newHistory(),
	}, nil
}

type Bot struct {
	b        *tele.Bot
	renderer *cards.Renderer
	h        *history
}

func demoPlayer(name string, icon int64) cards.Player {
	return cards.Player{
		DiscordID:   name,
		DiscordName: name,
		PlayerTag:   "#DEMO",
		PlayerName:  name,
		Icon:        icon,
	}
}

func (b *Bot) handle() {
	b.b.Handle("/match", func(c tele.Context) error {
		req := cards.MatchRequest{
			Player1: demoPlayer("Player One", 28000000),
			Player2: demoPlayer("Player Two", 28000001),
		}
		if err := payload(c, &req); err != nil {
			return c.Reply(fmt.Sprintf("bad payload: %s", err))
		}
		return b.deliver(c, func(ctx context.Context) (*cards.Card, error) {
			return b.renderer.Match(ctx, req)
		})
	})

	b.b.Handle("/result", func(c tele.Context) error {
		req := cards.ResultRequest{
			Winner: demoPlayer("Winner", 28000000),
			Loser:  demoPlayer("Loser", 28000001),
		}
		if err := payload(c, &req); err != nil {
			return c.Reply(fmt.Sprintf("bad payload: %s", err))
		}
		return b.deliver(c, func(ctx context.Context) (*cards.Card, error) {
			return b.renderer.Result(ctx, req)
		})
	})

	b.b.Handle("/battlelog", func(c tele.Context) error {
		winner := "p1"
		req := cards.BattleLogRequest{
			BattleLogs: []cards.Battle{{
				Player1:    demoPlayer("p1", 28000000),
				Player2:    demoPlayer("p2", 28000001),
				BattleTime: time.Now().UTC().Format("2006-01-02 15:04"),
				Duration:   120,
				Mode:       "gemGrab",
				Map:        "Hard Rock Mine",
				Type:       "ranked",
				Result:     &winner,
			}},
		}
		if err := payload(c, &req); err != nil {
			return c.Reply(fmt.Sprintf("bad payload: %s", err))
		}
		return b.deliver(c, func(ctx context.Context) (*cards.Card, error) {
			return b.renderer.BattleLog(ctx, req)
		})
	})

	b.b.Handle("/last", func(c tele.Context) error {
		log := b.h.Curr()
		if log == nil {
			return c.Reply("Nothing rendered yet")
		}
		return c.Reply(&tele.Photo{File: tele.FromReader(bytes.NewReader(log.bytes))})
	})
}

func payload(c tele.Context, req any) error {
	in := c.Message().Payload
	if in == "" {
		return nil
	}
	return json.Unmarshal([]byte(in), req)
}

func (b *Bot) deliver(c tele.Context, build func(ctx context.Context) (*cards.Card, error)) error {
	card, err := build(context.Background())
	if err != nil {
		return c.Reply(fmt.Sprintf("render failed: %s", err))
	}

	bs, err := b.renderer.Render(card, 0)
	if err != nil {
		return c.Reply(fmt.Sprintf("render failed: %s", err))
	}

	b.h.Add(card.Name, bs)
	return c.Reply(&tele.Photo{File: tele.FromReader(bytes.NewReader(bs))})
}

func (b *Bot) Start() {
	b.handle()
	go b.b.Start()
}

func (b *Bot) Stop() {
	go b.b.Stop()
}

package bot

import "github.com/samber/lo"

// history keeps the last few rendered payloads so /last can resend without
// re-rendering.
type history struct {
	max   int
	items []*renderLog
}

type renderLog struct {
	card  string
	bytes []byte
}

func newHistory() *history {
	return &history{max: 3}
}

func (h *history) Add(card string, bs []byte) {
	h.items = append(h.items, &renderLog{card: card, bytes: bs})
	if len(h.items) > h.max {
		h.items = h.items[1:]
	}
}

func (h *history) Curr() *renderLog {
	log, _ := lo.Last(h.items)
	return log
}

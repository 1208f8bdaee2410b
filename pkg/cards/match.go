package cards

import (
	"context"
	"fmt"
)

// Match builds the pre-match announcement card for two players.
func (r *Renderer) Match(ctx context.Context, req MatchRequest) (*Card, error) {
	bg, err := r.assets.MatchBackground()
	if err != nil {
		return nil, fmt.Errorf("load match background: %w", err)
	}
	return r.duoCard(ctx, "match", bg, req.Player1, req.Player2)
}

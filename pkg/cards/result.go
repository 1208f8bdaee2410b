package cards

import (
	"context"
	"fmt"
)

// Result builds the post-match card, winner on the left.
func (r *Renderer) Result(ctx context.Context, req ResultRequest) (*Card, error) {
	bg, err := r.assets.ResultBackground()
	if err != nil {
		return nil, fmt.Errorf("load result background: %w", err)
	}
	return r.duoCard(ctx, "result", bg, req.Winner, req.Loser)
}

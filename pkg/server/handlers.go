package server

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cardforge/pkg/cards"
)

type handlers struct {
	renderer *cards.Renderer
	log      *zap.Logger
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) match(c *gin.Context) {
	var req cards.MatchRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}
	h.respond(c, func(ctx context.Context) (*cards.Card, error) {
		return h.renderer.Match(ctx, req)
	})
}

func (h *handlers) result(c *gin.Context) {
	var req cards.ResultRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}
	h.respond(c, func(ctx context.Context) (*cards.Card, error) {
		return h.renderer.Result(ctx, req)
	})
}

func (h *handlers) profile(c *gin.Context) {
	var req cards.ProfileRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}
	h.respond(c, func(ctx context.Context) (*cards.Card, error) {
		return h.renderer.Profile(ctx, req)
	})
}

func (h *handlers) battleLog(c *gin.Context) {
	var req cards.BattleLogRequest
	if err := c.BindJSON(&req); err != nil {
		return
	}
	h.respond(c, func(ctx context.Context) (*cards.Card, error) {
		return h.renderer.BattleLog(ctx, req)
	})
}

// respond renders a card and writes it as base64 PNG text, the format the
// consuming bot expects. Render failures become a structured 500.
func (h *handlers) respond(c *gin.Context, build func(ctx context.Context) (*cards.Card, error)) {
	card, err := build(c.Request.Context())
	if err != nil {
		h.log.With(zap.Error(err)).Info("card assembly failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bs, err := h.renderer.Render(card, 0)
	if err != nil {
		h.log.With(zap.Error(err)).Info("card render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, base64.StdEncoding.EncodeToString(bs))
}

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cardforge/pkg/cards"
)

// NewEngine builds the gin router with the card routes. The original bot
// client issues GET requests with a JSON body, so every image route is
// registered for both GET and POST.
func NewEngine(renderer *cards.Renderer, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	e := gin.New()
	e.Use(gin.Recovery(), requestLog(logger))

	h := &handlers{renderer: renderer, log: logger}

	e.GET("/health", h.health)
	for _, register := range []func(string, ...gin.HandlerFunc) gin.IRoutes{e.GET, e.POST} {
		register("/image/match", h.match)
		register("/image/result", h.result)
		register("/image/profile", h.profile)
		register("/image/battle_log", h.battleLog)
	}

	return e
}

// Serve attaches the engine to the HTTP server and ties it to the fx
// lifecycle.
func Serve(engine *gin.Engine, srv *http.Server, logger *zap.Logger, lifecycle fx.Lifecycle) {
	srv.Handler = engine

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.With(zap.String("addr", srv.Addr)).Info("serving")
			go func() {
				if err := srv.ListenAndServe(); err != http.ErrServerClosed {
					logger.With(zap.Error(err)).Error("server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

func requestLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := xid.New().String()
		c.Set("request_id", id)

		start := time.Now()
		c.Next()

		logger.With(
			zap.String("id", id),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		).Debug("request")
	}
}

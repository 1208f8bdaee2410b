package main

import (
	"context"
	"net/http"

	"github.com/samber/lo"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cardforge/pkg/assets"
	"cardforge/pkg/bot"
	"cardforge/pkg/cards"
	"cardforge/pkg/server"
)

var listen = flag.String("listen", ":8080", "listen addr")
var assetsDir = flag.String("assets", "assets", "assets dir")
var iconCache = flag.String("icon-cache", "", "icon cache dir, empty disables")
var tgToken = flag.String("tg-token", "", "telegram bot token, empty disables")
var debug = flag.Bool("debug", false, "debug logging")

func main() {
	flag.Parse()

	fx.New(
		fx.Provide(
			func() (*zap.Logger, error) {
				return lo.Ternary(*debug, zap.NewDevelopment, zap.NewProduction)()
			},
			func(logger *zap.Logger) (*assets.Store, error) {
				return assets.NewStore(*assetsDir, logger)
			},
			func(logger *zap.Logger) (*assets.IconFetcher, error) {
				return assets.NewIconFetcher(*iconCache, logger)
			},
			cards.NewRenderer,
			server.NewEngine,
			func() *http.Server {
				return &http.Server{Addr: *listen}
			},
		),
		fx.Invoke(
			server.Serve,
			startBot,
		),
	).Run()
}

func startBot(renderer *cards.Renderer, logger *zap.Logger, lifecycle fx.Lifecycle) error {
	if *tgToken == "" {
		return nil
	}

	b, err := bot.New(*tgToken, renderer)
	if err != nil {
		return err
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("telegram bot starting")
			b.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			b.Stop()
			return nil
		},
	})

	return nil
}

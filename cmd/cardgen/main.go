package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"cardforge/pkg/assets"
	"cardforge/pkg/cards"
)

var cardType = flag.String("type", "match", "card type: match, result, profile, battle_log")
var assetsDir = flag.String("assets", "assets", "assets dir")
var iconCache = flag.String("icon-cache", "", "icon cache dir")
var outDir = flag.String("out", ".", "output dir")
var maxWidth = flag.Int("width", 0, "constrain output width, 0 keeps original")

// cardgen renders request JSON files to PNGs offline: cardgen -type match req.json ...
func main() {
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("no request files given")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}

	store, err := assets.NewStore(*assetsDir, logger)
	if err != nil {
		log.Fatal(err)
	}

	icons, err := assets.NewIconFetcher(*iconCache, logger)
	if err != nil {
		log.Fatal(err)
	}

	renderer := cards.NewRenderer(store, icons, logger)

	bar := progressbar.Default(int64(len(files)))
	for _, file := range files {
		if err := renderOne(renderer, file); err != nil {
			log.Fatalf("%s: %s", file, err)
		}
		_ = bar.Add(1)
	}
}

func renderOne(renderer *cards.Renderer, file string) error {
	bs, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	card, err := assemble(renderer, bs)
	if err != nil {
		return err
	}

	out, err := renderer.Render(card, *maxWidth)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".png"
	return os.WriteFile(filepath.Join(*outDir, name), out, 0644)
}

func assemble(renderer *cards.Renderer, bs []byte) (*cards.Card, error) {
	ctx := context.Background()

	switch *cardType {
	case "result":
		var req cards.ResultRequest
		if err := json.Unmarshal(bs, &req); err != nil {
			return nil, err
		}
		return renderer.Result(ctx, req)
	case "profile":
		var req cards.ProfileRequest
		if err := json.Unmarshal(bs, &req); err != nil {
			return nil, err
		}
		return renderer.Profile(ctx, req)
	case "battle_log":
		var req cards.BattleLogRequest
		if err := json.Unmarshal(bs, &req); err != nil {
			return nil, err
		}
		return renderer.BattleLog(ctx, req)
	default:
		var req cards.MatchRequest
		if err := json.Unmarshal(bs, &req); err != nil {
			return nil, err
		}
		return renderer.Match(ctx, req)
	}
}

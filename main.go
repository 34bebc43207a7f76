package main

import (
	"context"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/house-roads/houses"
	"github.com/oliverbestmann/house-roads/internal/cli"
	"github.com/oliverbestmann/house-roads/internal/config"
	"go.uber.org/zap"
)

func main() {
	opts := cli.Options{
		Play:    play,
		Profile: ProfileStart,
	}

	if err := cli.Execute(context.Background(), opts, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func play(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	screenWidth, screenHeight := cfg.Window.Width, cfg.Window.Height
	source := cfg.Map.Source

	game := &Loader[*houses.Map]{
		Logger:       logger,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,

		// load the map in the background
		Promise: AsyncTask(func(yield func(string)) Loaded[*houses.Map] {
			if source == "" {
				yield("Loading sample map")
			} else {
				yield("Loading " + source)
			}

			m, err := houses.LoadOrSample(ctx, source)
			return Loaded[*houses.Map]{Value: m, Err: err}
		}),

		Next: func(m *houses.Map) ebiten.Game {
			logger.Info("map loaded",
				zap.String("source", source),
				zap.Int("houses", len(m.Houses)),
				zap.Int("roads", len(m.Roads)))

			return NewGame(logger, cfg.Animation, m, screenWidth, screenHeight)
		},
	}

	scale := cfg.Window.Scale

	ebiten.SetWindowSize(int(float64(screenWidth)*scale), int(float64(screenHeight)*scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}

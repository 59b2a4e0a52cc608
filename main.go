package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"raycore/internal/assets"
	"raycore/internal/config"
	"raycore/internal/game"
	"raycore/internal/logging"
	"raycore/internal/world"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")
	logging.Init(cfg.Log.Level, cfg.Log.Format)
	log := logging.For("main")

	level, err := world.LoadMap(cfg.Level.Map)
	if err != nil {
		log.WithError(err).Fatal("failed to load level")
	}

	loaded, err := game.LoadArt(assets.NewLoader(os.DirFS(".")), cfg, level.WallIDs())
	if err != nil {
		log.WithError(err).Fatal("failed to load assets")
	}

	var watcher *world.Watcher
	if cfg.Level.HotReload {
		if watcher, err = world.NewWatcher(cfg.Level.Map); err != nil {
			log.WithError(err).Warn("level hot reload disabled")
			watcher = nil
		}
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	g, err := game.NewGame(cfg, level, loaded.Upload(), world.LoadMap, watcher)
	if err != nil {
		log.WithError(err).Fatal("failed to start level")
	}
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Error("game exited with error")
	}
}

package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycore/internal/config"
	"raycore/internal/logging"
	"raycore/internal/monitoring"
	"raycore/internal/threading"
	"raycore/internal/world"
)

// LevelLoader rebuilds a level from disk, used on restart and hot reload.
type LevelLoader func(path string) (*world.Level, error)

// Game implements ebiten.Game around a Session.
type Game struct {
	config  *config.Config
	art     *Art
	loadMap LevelLoader
	workers *threading.Components
	monitor *monitoring.FrameMonitor
	watcher *world.Watcher
	log     *logrus.Entry

	session  *Session
	gameLoop *GameLoop
}

// NewGame starts the first session on level. watcher may be nil.
func NewGame(cfg *config.Config, level *world.Level, art *Art, loadMap LevelLoader, watcher *world.Watcher) (*Game, error) {
	workers := threading.NewComponents(cfg.Render.Workers)
	g := &Game{
		config:  cfg,
		art:     art,
		loadMap: loadMap,
		workers: workers,
		monitor: workers.Monitor,
		watcher: watcher,
		log:     logging.For("game"),
	}
	session, err := NewSession(cfg, level, art, workers.Pool, g.monitor, time.Now())
	if err != nil {
		workers.Shutdown()
		return nil, err
	}
	g.session = session
	g.gameLoop = NewGameLoop(g)
	return g, nil
}

// Session returns the running session.
func (g *Game) Session() *Session { return g.session }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.gameLoop.Update()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.gameLoop.Draw(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.gameLoop.Layout(outsideWidth, outsideHeight)
}

// Close stops background workers and the level watcher.
func (g *Game) Close() {
	g.workers.Shutdown()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.WithError(err).Warn("closing level watcher")
		}
	}
}

// reload replaces the session with a fresh one on the level at path. A level
// that fails to load keeps the current session running.
func (g *Game) reload(path string, now time.Time) error {
	level, err := g.loadMap(path)
	if err != nil {
		return fmt.Errorf("reloading level %s: %w", path, err)
	}
	session, err := NewSession(g.config, level, g.art, g.workers.Pool, g.monitor, now)
	if err != nil {
		return fmt.Errorf("restarting level %s: %w", path, err)
	}
	g.session = session
	return nil
}

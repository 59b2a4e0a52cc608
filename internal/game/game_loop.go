package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycore/internal/render"
)

// GameLoop manages the main game update and render cycle
type GameLoop struct {
	game         *Game
	inputHandler *InputHandler
	canvas       *render.EbitenCanvas

	lastUpdate time.Time
	lastReport time.Time
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *Game) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(),
		canvas:       render.NewEbitenCanvas(nil),
	}
}

// Update handles input and logic for one frame.
func (gl *GameLoop) Update() error {
	now := time.Now()
	// Counters cover the previous Update and Draw until StartFrame resets them.
	gl.updatePerformanceMetrics(now)

	frameTimer := gl.game.monitor.StartFrame()
	defer frameTimer.EndFrame()

	if gl.inputHandler.QuitRequested() {
		return ebiten.Termination
	}

	dtMs := 1000.0 / float64(ebiten.TPS())
	if !gl.lastUpdate.IsZero() {
		dtMs = float64(now.Sub(gl.lastUpdate).Microseconds()) / 1000
	}
	gl.lastUpdate = now
	if dtMs <= 0 {
		dtMs = 1
	}

	gl.pollHotReload(now)

	if restart := gl.game.session.Tick(now, gl.inputHandler.Read(), dtMs); restart {
		gl.restart(now)
	}
	return nil
}

// Draw renders the frame onto screen.
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	gl.canvas.Screen = screen
	gl.game.session.Render(gl.canvas, time.Now())
}

// Layout returns the screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}

func (gl *GameLoop) pollHotReload(now time.Time) {
	if gl.game.watcher == nil {
		return
	}
	path, ok := gl.game.watcher.Poll()
	if !ok {
		return
	}
	if err := gl.game.reload(path, now); err != nil {
		gl.game.log.WithError(err).Error("hot reload failed")
		return
	}
	gl.inputHandler.Reset()
	gl.game.log.WithField("map", path).Info("level reloaded")
}

func (gl *GameLoop) restart(now time.Time) {
	path := gl.game.config.Level.Map
	if err := gl.game.reload(path, now); err != nil {
		gl.game.log.WithError(err).Error("restart failed")
		return
	}
	gl.inputHandler.Reset()
}

// updatePerformanceMetrics shows FPS in the title and logs counters once a second.
func (gl *GameLoop) updatePerformanceMetrics(now time.Time) {
	if now.Sub(gl.lastReport) < time.Second {
		return
	}
	gl.lastReport = now
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %.1f FPS", gl.game.config.Display.WindowTitle, ebiten.ActualFPS()))

	snap := gl.game.monitor.Snapshot()
	gl.game.log.WithFields(logrus.Fields{
		"avg_frame":    snap.AvgFrame,
		"queue_len":    snap.QueueLen,
		"projected":    snap.Projected,
		"culled":       snap.Culled,
		"path_queries": snap.TotalPathQueries,
		"agents":       len(gl.game.session.Agents()),
	}).Debug("frame stats")
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycore/internal/game/keytracker"
)

// InputHandler reads ebiten keyboard and mouse state into an Input.
type InputHandler struct {
	fire     *keytracker.Trigger
	lastX    int
	hasLastX bool
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{
		fire: keytracker.NewTrigger([]ebiten.Key{ebiten.KeySpace, ebiten.KeyControlLeft}, ebiten.MouseButtonLeft),
	}
}

// Read samples the devices for this frame.
func (ih *InputHandler) Read() Input {
	in := Input{
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:    ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:   ebiten.IsKeyPressed(ebiten.KeyRight),
		Fire:        ih.fire.JustPressed(),
	}

	x, _ := ebiten.CursorPosition()
	if ih.hasLastX {
		in.MouseDX = float64(x - ih.lastX)
	}
	ih.lastX, ih.hasLastX = x, true
	return in
}

// QuitRequested reports whether Escape was pressed this frame.
func (ih *InputHandler) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Reset forgets the last cursor position so a reload does not turn the view.
func (ih *InputHandler) Reset() {
	ih.hasLastX = false
}

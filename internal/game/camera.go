package game

import (
	"math"

	"raycore/internal/mathutil"
	"raycore/internal/nav"
	"raycore/internal/render"
)

// playerSizeScale widens the collision probe so the eye never gets close
// enough to a wall for the projection to blow up.
const playerSizeScale = 60.0

// Player is the viewer: a first-person camera with health.
type Player struct {
	X, Y   float64
	Angle  float64
	Health int

	// Rel is this frame's angular motion in mouse pixels, used to scroll the sky.
	Rel float64
	// Hurt is set on the frame the player took damage.
	Hurt bool
}

// NewPlayer places a player at (x, y) facing angle.
func NewPlayer(x, y, angle float64, health int) *Player {
	return &Player{X: x, Y: y, Angle: mathutil.WrapFloat(angle, 2*math.Pi), Health: health}
}

// GetForwardX returns the X component of the forward direction vector
func (p *Player) GetForwardX() float64 {
	return math.Cos(p.Angle)
}

// GetForwardY returns the Y component of the forward direction vector
func (p *Player) GetForwardY() float64 {
	return math.Sin(p.Angle)
}

// Viewer returns the projection pose.
func (p *Player) Viewer() render.Viewer {
	return render.Viewer{X: p.X, Y: p.Y, Angle: p.Angle}
}

// Cell returns the grid cell the player stands in.
func (p *Player) Cell() nav.Cell {
	return nav.CellOf(p.X, p.Y)
}

// Rotate turns the player, keeping the heading in [0, 2Pi).
func (p *Player) Rotate(angle float64) {
	p.Angle = mathutil.WrapFloat(p.Angle+angle, 2*math.Pi)
}

// Move applies one frame of movement input. dtMs is the frame time in
// milliseconds; solid reports walls at world positions.
func (p *Player) Move(in Input, speed, dtMs float64, solid func(x, y float64) bool) {
	step := speed * dtMs
	sin, cos := math.Sincos(p.Angle)
	sinStep, cosStep := sin*step, cos*step

	var dx, dy float64
	if in.Forward {
		dx += cosStep
		dy += sinStep
	}
	if in.Back {
		dx -= cosStep
		dy -= sinStep
	}
	if in.StrafeLeft {
		dx += sinStep
		dy -= cosStep
	}
	if in.StrafeRight {
		dx -= sinStep
		dy += cosStep
	}

	scale := playerSizeScale / dtMs
	if !solid(p.X+dx*scale, p.Y) {
		p.X += dx
	}
	if !solid(p.X, p.Y+dy*scale) {
		p.Y += dy
	}
}

// Damage lowers health and flags the hurt overlay.
func (p *Player) Damage(amount int) {
	p.Health -= amount
	p.Hurt = true
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.Health > 0
}

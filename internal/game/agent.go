package game

import (
	"math"
	"time"

	"raycore/internal/nav"
	"raycore/internal/sprite"
)

// Agent is a mobile enemy. Navigation only needs its cell and alive flag.
type Agent struct {
	*sprite.Sprite
	Health     int
	Alive      bool
	lastAttack time.Time
}

// NewAgent spawns an agent in the middle of cell.
func NewAgent(s *sprite.Sprite, cell nav.Cell, health int) *Agent {
	s.X, s.Y = cell.Center()
	return &Agent{Sprite: s, Health: health, Alive: true}
}

// Cell returns the grid cell the agent stands in.
func (a *Agent) Cell() nav.Cell {
	return nav.CellOf(a.X, a.Y)
}

// StepToward moves the agent up to speed map units toward the centre of next.
func (a *Agent) StepToward(next nav.Cell, speed float64) {
	tx, ty := next.Center()
	dx, dy := tx-a.X, ty-a.Y
	dist := math.Hypot(dx, dy)
	if dist <= speed {
		a.X, a.Y = tx, ty
		return
	}
	a.X += dx / dist * speed
	a.Y += dy / dist * speed
}

// TakeHit applies damage and reports whether the agent died.
func (a *Agent) TakeHit(damage int) bool {
	if !a.Alive {
		return false
	}
	a.Health -= damage
	if a.Health <= 0 {
		a.Alive = false
	}
	return !a.Alive
}

// CanAttack reports whether the attack cooldown has elapsed.
func (a *Agent) CanAttack(now time.Time, cooldown time.Duration) bool {
	return a.lastAttack.IsZero() || now.Sub(a.lastAttack) >= cooldown
}

// MarkAttack records an attack at now.
func (a *Agent) MarkAttack(now time.Time) {
	a.lastAttack = now
}

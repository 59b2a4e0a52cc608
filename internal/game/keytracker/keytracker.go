// Package keytracker turns held keys and mouse buttons into one-shot triggers.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Trigger fires once per press of any of its keys or mouse buttons.
type Trigger struct {
	Keys        []ebiten.Key
	Buttons     []ebiten.MouseButton
	prevPressed bool
}

// NewTrigger returns a trigger bound to keys and buttons.
func NewTrigger(keys []ebiten.Key, buttons ...ebiten.MouseButton) *Trigger {
	return &Trigger{Keys: keys, Buttons: buttons}
}

// JustPressed reports true on the first frame any bound input goes down.
// Holding the input does not fire again until everything is released.
func (t *Trigger) JustPressed() bool {
	return t.Update(t.pressed())
}

// Update feeds the current pressed state and reports a rising edge.
func (t *Trigger) Update(pressed bool) bool {
	just := pressed && !t.prevPressed
	t.prevPressed = pressed
	return just
}

func (t *Trigger) pressed() bool {
	for _, k := range t.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, b := range t.Buttons {
		if ebiten.IsMouseButtonPressed(b) {
			return true
		}
	}
	return false
}

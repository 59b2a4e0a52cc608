package sprite

import (
	"time"

	"raycore/internal/render"
)

// Kind tags the sprite variant.
type Kind int

const (
	Static Kind = iota
	Animated
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Animated:
		return "animated"
	default:
		return "unknown"
	}
}

// Sprite is a billboarded entity in the world. It keeps the last projection
// so other systems (hit testing) can reuse it until the next frame.
type Sprite struct {
	X, Y  float64
	Scale float64
	Shift float64

	kind  Kind
	image render.Drawable
	anim  *Animation

	// Last projection results.
	ScreenX   float64
	Dist      float64
	NormDist  float64
	HalfWidth float64
	Visible   bool
}

// NewStatic returns a sprite that always shows img.
func NewStatic(img render.Drawable, x, y, scale, shift float64) *Sprite {
	return &Sprite{X: x, Y: y, Scale: scale, Shift: shift, kind: Static, image: img, Dist: 1, NormDist: 1}
}

// NewAnimated returns a sprite that cycles through anim.
func NewAnimated(anim *Animation, x, y, scale, shift float64) *Sprite {
	return &Sprite{X: x, Y: y, Scale: scale, Shift: shift, kind: Animated, anim: anim, image: anim.Current(), Dist: 1, NormDist: 1}
}

// Kind returns the sprite variant.
func (s *Sprite) Kind() Kind {
	return s.kind
}

// Image returns the displayed image.
func (s *Sprite) Image() render.Drawable {
	return s.image
}

// Animation returns the frame ring of an animated sprite, nil otherwise.
func (s *Sprite) Animation() *Animation {
	return s.anim
}

// SetAnimation swaps the frame ring, e.g. when an agent changes state.
// A static sprite becomes animated.
func (s *Sprite) SetAnimation(anim *Animation) {
	s.kind = Animated
	s.anim = anim
	s.image = anim.Current()
}

// Project runs the projection for this frame, appending to q when visible,
// and caches the result on the sprite. A sprite without an image still gets
// its position cached but is never visible.
func (s *Sprite) Project(q *render.Queue, view render.View, viewer render.Viewer) bool {
	p := view.Project(q, viewer, render.Subject{
		X:     s.X,
		Y:     s.Y,
		Image: s.image,
		Scale: s.Scale,
		Shift: s.Shift,
	})
	s.ScreenX = p.ScreenX
	s.Dist = p.Dist
	s.NormDist = p.NormDist
	s.HalfWidth = p.HalfWidth
	s.Visible = p.Visible
	return p.Visible
}

// Covers reports whether the last projection spans screen column x.
func (s *Sprite) Covers(x float64) bool {
	return s.Visible && s.ScreenX-s.HalfWidth < x && x < s.ScreenX+s.HalfWidth
}

// Advance moves an animated sprite to its next frame when due. Static sprites
// never change.
func (s *Sprite) Advance(now time.Time) bool {
	if s.kind != Animated || s.anim == nil {
		return false
	}
	if !s.anim.Advance(now) {
		return false
	}
	s.image = s.anim.Current()
	return true
}

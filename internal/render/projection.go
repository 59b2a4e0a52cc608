package render

import (
	"math"

	"raycore/internal/mathutil"
)

// MinDepth is the normalized depth at or below which sprites are culled.
const MinDepth = 0.5

// View holds the screen and ray constants shared by the wall caster and the
// sprite projection. Build it with NewView.
type View struct {
	Width, Height         int
	HalfWidth, HalfHeight float64
	FOV, HalfFOV          float64
	NumRays               int
	HalfNumRays           float64
	// DeltaAngle is the angular step between adjacent rays.
	DeltaAngle float64
	// ScreenDist is the distance from the eye to the projection plane in pixels.
	ScreenDist float64
	// Scale is the pixel width of one ray column.
	Scale float64
}

// NewView derives the projection constants for a screen and field of view.
func NewView(width, height int, fov float64, numRays int) View {
	halfFOV := fov / 2
	halfWidth := float64(width) / 2
	return View{
		Width:       width,
		Height:      height,
		HalfWidth:   halfWidth,
		HalfHeight:  float64(height) / 2,
		FOV:         fov,
		HalfFOV:     halfFOV,
		NumRays:     numRays,
		HalfNumRays: float64(numRays) / 2,
		DeltaAngle:  fov / float64(numRays),
		ScreenDist:  halfWidth / math.Tan(halfFOV),
		Scale:       float64(width) / float64(numRays),
	}
}

// Viewer is the eye position and heading in world units and radians.
type Viewer struct {
	X, Y  float64
	Angle float64
}

// Subject is an entity to project.
type Subject struct {
	X, Y  float64
	Image Drawable
	// Scale multiplies the projected height.
	Scale float64
	// Shift moves the sprite down by this fraction of its projected height.
	Shift float64
}

// Projection is the outcome of projecting one subject. It is computed every
// frame whether or not the subject ends up on screen.
type Projection struct {
	// Delta is the bearing relative to the view direction, in (-Pi, Pi].
	Delta    float64
	ScreenX  float64
	Dist     float64
	NormDist float64
	// HalfWidth is half the projected pixel width; zero when culled.
	HalfWidth float64
	Visible   bool
}

// Project computes where s lands on screen for viewer v. If it is visible,
// exactly one entry is appended to q.
func (v View) Project(q *Queue, viewer Viewer, s Subject) Projection {
	dx := s.X - viewer.X
	dy := s.Y - viewer.Y
	theta := math.Atan2(dy, dx)

	delta := mathutil.NormalizeAngle(theta - viewer.Angle)
	deltaRays := delta / v.DeltaAngle

	p := Projection{
		Delta:   delta,
		ScreenX: (v.HalfNumRays + deltaRays) * v.Scale,
		Dist:    math.Hypot(dx, dy),
	}
	p.NormDist = p.Dist * math.Cos(delta)

	if s.Image == nil || p.NormDist <= MinDepth {
		return p
	}
	bounds := s.Image.Bounds()
	imageHalfWidth := float64(bounds.Dx()) / 2
	if p.ScreenX <= -imageHalfWidth || p.ScreenX >= float64(v.Width)+imageHalfWidth {
		return p
	}

	projH := v.ScreenDist / p.NormDist * s.Scale
	projW := projH
	if bounds.Dy() > 0 {
		projW = projH * float64(bounds.Dx()) / float64(bounds.Dy())
	}

	q.Push(Entry{
		Depth: p.NormDist,
		Image: s.Image,
		X:     p.ScreenX - projW/2,
		Y:     v.HalfHeight - projH/2 + projH*s.Shift,
		W:     projW,
		H:     projH,
	})
	p.HalfWidth = projW / 2
	p.Visible = true
	return p
}

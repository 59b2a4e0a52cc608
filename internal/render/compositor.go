package render

import (
	"image/color"
	"strconv"

	"raycore/internal/mathutil"
)

// Canvas is the display surface the compositor draws on.
type Canvas interface {
	// Blit draws img with its top-left corner at (x, y), scaled to w x h.
	Blit(img Drawable, x, y, w, h float64)
	FillRect(x, y, w, h float64, clr color.Color)
}

// PercentGlyph is the index of the glyph drawn after the health digits.
const PercentGlyph = 10

// Textures are the fixed images the compositor draws around the queue.
type Textures struct {
	Sky Drawable
	// Digits holds glyphs 0-9 followed by the percent glyph.
	Digits   [11]Drawable
	Damage   Drawable
	Win      Drawable
	GameOver Drawable
}

// CompositorConfig tunes the background and HUD.
type CompositorConfig struct {
	FloorColor color.Color
	// SkyScroll converts the viewer's angular motion this frame into pixels.
	SkyScroll float64
	DigitSize float64
}

// Overlays are the HUD state flags set by game logic for one frame.
type Overlays struct {
	Health   int
	Damage   bool
	Win      bool
	GameOver bool
}

// Compositor owns the frame's render queue and turns it into draw calls.
type Compositor struct {
	view      View
	cfg       CompositorConfig
	tex       Textures
	queue     *Queue
	skyOffset float64
}

// NewCompositor returns a compositor for view.
func NewCompositor(view View, cfg CompositorConfig, tex Textures) *Compositor {
	return &Compositor{
		view:  view,
		cfg:   cfg,
		tex:   tex,
		queue: NewQueue(view.NumRays + 64),
	}
}

// BeginFrame empties the render queue and returns it for this frame's wall
// casting and sprite projection.
func (c *Compositor) BeginFrame() *Queue {
	c.queue.Reset()
	return c.queue
}

// SkyOffset returns the current horizontal sky scroll in pixels.
func (c *Compositor) SkyOffset() float64 {
	return c.skyOffset
}

// Draw renders the frame: sky, floor, queued entries far to near, then the
// HUD overlays. The queue is empty when Draw returns.
func (c *Compositor) Draw(canvas Canvas, angularVelocity float64, ov Overlays) {
	c.drawBackground(canvas, angularVelocity)

	c.queue.SortFarToNear()
	for _, e := range c.queue.Entries() {
		canvas.Blit(e.Image, e.X, e.Y, e.W, e.H)
	}
	c.queue.Reset()

	c.drawHealth(canvas, ov.Health)
	w, h := float64(c.view.Width), float64(c.view.Height)
	if ov.Damage && c.tex.Damage != nil {
		canvas.Blit(c.tex.Damage, 0, 0, w, h)
	}
	if ov.Win && c.tex.Win != nil {
		canvas.Blit(c.tex.Win, 0, 0, w, h)
	}
	if ov.GameOver && c.tex.GameOver != nil {
		canvas.Blit(c.tex.GameOver, 0, 0, w, h)
	}
}

func (c *Compositor) drawBackground(canvas Canvas, angularVelocity float64) {
	w := float64(c.view.Width)
	c.skyOffset = mathutil.WrapFloat(c.skyOffset+c.cfg.SkyScroll*angularVelocity, w)
	if c.tex.Sky != nil {
		canvas.Blit(c.tex.Sky, -c.skyOffset, 0, w, c.view.HalfHeight)
		canvas.Blit(c.tex.Sky, -c.skyOffset+w, 0, w, c.view.HalfHeight)
	}
	canvas.FillRect(0, c.view.HalfHeight, w, float64(c.view.Height)-c.view.HalfHeight, c.cfg.FloorColor)
}

func (c *Compositor) drawHealth(canvas Canvas, health int) {
	if health < 0 {
		health = 0
	}
	size := c.cfg.DigitSize
	digits := strconv.Itoa(health)
	for i, ch := range digits {
		if glyph := c.tex.Digits[ch-'0']; glyph != nil {
			canvas.Blit(glyph, float64(i)*size, 0, size, size)
		}
	}
	if glyph := c.tex.Digits[PercentGlyph]; glyph != nil {
		canvas.Blit(glyph, float64(len(digits))*size, 0, size, size)
	}
}

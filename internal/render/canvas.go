package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas draws onto an ebiten screen image.
type EbitenCanvas struct {
	Screen *ebiten.Image
	// converted caches GPU copies of plain image.Image drawables.
	converted map[image.Image]*ebiten.Image
}

// NewEbitenCanvas wraps screen.
func NewEbitenCanvas(screen *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{Screen: screen, converted: make(map[image.Image]*ebiten.Image)}
}

// Blit implements Canvas.
func (c *EbitenCanvas) Blit(img Drawable, x, y, w, h float64) {
	src := c.toEbiten(img)
	if src == nil {
		return
	}
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	opts.GeoM.Translate(x, y)
	opts.Filter = ebiten.FilterNearest
	c.Screen.DrawImage(src, opts)
}

// FillRect implements Canvas.
func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.Screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *EbitenCanvas) toEbiten(img Drawable) *ebiten.Image {
	switch v := img.(type) {
	case *ebiten.Image:
		return v
	case image.Image:
		if cached, ok := c.converted[v]; ok {
			return cached
		}
		converted := ebiten.NewImageFromImage(v)
		c.converted[v] = converted
		return converted
	default:
		return nil
	}
}

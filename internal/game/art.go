package game

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"raycore/internal/assets"
	"raycore/internal/config"
	"raycore/internal/raycast"
	"raycore/internal/render"
)

// LoadedArt is decoded, pre-scaled art still in CPU memory.
type LoadedArt struct {
	Textures    *assets.Textures
	Sprites     [][]image.Image
	AgentFrames []image.Image
}

// LoadArt decodes the wall textures in wallIDs, the HUD art and every sprite
// the config places.
func LoadArt(loader *assets.Loader, cfg *config.Config, wallIDs []int) (*LoadedArt, error) {
	tex, err := loader.LoadTextures(assets.TextureSpec{
		Dir:           cfg.Render.TexturesDir,
		WallSize:      cfg.Render.TextureSize,
		ScreenW:       cfg.Display.ScreenWidth,
		ScreenH:       cfg.Display.ScreenHeight,
		DigitSize:     cfg.Render.DigitSize,
		WallTextureID: wallIDs,
	})
	if err != nil {
		return nil, err
	}

	art := &LoadedArt{Textures: tex}
	for i, sc := range cfg.Level.Sprites {
		frames, err := loadSprite(loader, sc)
		if err != nil {
			return nil, fmt.Errorf("level sprite %d: %w", i, err)
		}
		art.Sprites = append(art.Sprites, frames)
	}
	if cfg.Level.Agent.Image != "" || cfg.Level.Agent.Frames != "" {
		if art.AgentFrames, err = loadSprite(loader, cfg.Level.Agent); err != nil {
			return nil, fmt.Errorf("agent sprite: %w", err)
		}
	}
	return art, nil
}

func loadSprite(loader *assets.Loader, sc config.SpriteConfig) ([]image.Image, error) {
	if sc.Animated() {
		return loader.Frames(sc.Frames)
	}
	img, err := loader.Image(sc.Image)
	if err != nil {
		return nil, err
	}
	return []image.Image{img}, nil
}

// Upload copies art to GPU images once so per-frame wall slices are
// sub-images of ebiten images rather than fresh uploads.
func (l *LoadedArt) Upload() *Art {
	return l.convert(func(img image.Image) imageWithSub {
		return ebiten.NewImageFromImage(img)
	})
}

// imageWithSub is an image that can be sliced into wall columns.
type imageWithSub interface {
	render.Drawable
	SubImage(r image.Rectangle) image.Image
}

func (l *LoadedArt) convert(conv func(image.Image) imageWithSub) *Art {
	art := &Art{Walls: make(map[int]raycast.Texture, len(l.Textures.Walls))}
	for id, img := range l.Textures.Walls {
		art.Walls[id] = conv(img)
	}

	drawable := func(img image.Image) render.Drawable {
		if img == nil {
			return nil
		}
		return conv(img)
	}
	art.HUD = render.Textures{
		Sky:      drawable(l.Textures.Sky),
		Damage:   drawable(l.Textures.Damage),
		Win:      drawable(l.Textures.Win),
		GameOver: drawable(l.Textures.GameOver),
	}
	for i, d := range l.Textures.Digits {
		art.HUD.Digits[i] = drawable(d)
	}

	art.Sprites = make([][]render.Drawable, len(l.Sprites))
	for i, frames := range l.Sprites {
		for _, f := range frames {
			art.Sprites[i] = append(art.Sprites[i], conv(f))
		}
	}
	for _, f := range l.AgentFrames {
		art.AgentFrames = append(art.AgentFrames, conv(f))
	}
	return art
}

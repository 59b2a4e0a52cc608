package assets

import (
	"fmt"
	"image"
	"path"
	"sort"
)

// Textures are the decoded images the renderer needs for a level.
type Textures struct {
	Walls    map[int]image.Image
	Sky      image.Image
	Digits   [11]image.Image
	Damage   image.Image
	Win      image.Image
	GameOver image.Image
}

// TextureSpec says where textures live and how big to make them.
type TextureSpec struct {
	Dir           string
	WallSize      int
	ScreenW       int
	ScreenH       int
	DigitSize     int
	WallTextureID []int
}

// LoadTextures loads every texture in spec. Wall textures are <Dir>/<id>.png,
// digits <Dir>/digits/<0-10>.png; the sky covers the top half of the screen.
func (l *Loader) LoadTextures(spec TextureSpec) (*Textures, error) {
	tex := &Textures{Walls: make(map[int]image.Image, len(spec.WallTextureID))}

	ids := append([]int(nil), spec.WallTextureID...)
	sort.Ints(ids)
	for _, id := range ids {
		if _, done := tex.Walls[id]; done {
			continue
		}
		img, err := l.Scaled(path.Join(spec.Dir, fmt.Sprintf("%d.png", id)), spec.WallSize, spec.WallSize)
		if err != nil {
			return nil, err
		}
		tex.Walls[id] = img
	}

	var err error
	if tex.Sky, err = l.Scaled(path.Join(spec.Dir, "sky.png"), spec.ScreenW, spec.ScreenH/2); err != nil {
		return nil, err
	}
	if tex.Damage, err = l.Scaled(path.Join(spec.Dir, "blood_screen.png"), spec.ScreenW, spec.ScreenH); err != nil {
		return nil, err
	}
	if tex.Win, err = l.Scaled(path.Join(spec.Dir, "win.png"), spec.ScreenW, spec.ScreenH); err != nil {
		return nil, err
	}
	if tex.GameOver, err = l.Scaled(path.Join(spec.Dir, "game_over.png"), spec.ScreenW, spec.ScreenH); err != nil {
		return nil, err
	}
	for i := range tex.Digits {
		name := path.Join(spec.Dir, "digits", fmt.Sprintf("%d.png", i))
		if tex.Digits[i], err = l.Scaled(name, spec.DigitSize, spec.DigitSize); err != nil {
			return nil, err
		}
	}
	return tex, nil
}

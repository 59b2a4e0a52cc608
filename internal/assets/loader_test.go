package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFramesAreOrderedNumerically(t *testing.T) {
	fsys := fstest.MapFS{}
	for i := 0; i < 12; i++ {
		fsys[fmt.Sprintf("anim/%d.png", i)] = &fstest.MapFile{Data: encodePNG(t, 4, 4+i, color.White)}
	}
	fsys["anim/sub/ignored.png"] = &fstest.MapFile{Data: encodePNG(t, 1, 1, color.White)}

	frames, err := NewLoader(fsys).Frames("anim")
	if err != nil {
		t.Fatalf("Frames failed: %v", err)
	}
	if len(frames) != 12 {
		t.Fatalf("expected 12 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Bounds().Dy() != 4+i {
			t.Fatalf("frame %d has height %d, frames out of order", i, f.Bounds().Dy())
		}
	}
}

func TestLoaderErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	l := NewLoader(fsys)

	if _, err := l.Image("missing.png"); err == nil {
		t.Error("expected error for missing texture")
	}
	if _, err := l.Image("broken.png"); err == nil {
		t.Error("expected error for undecodable texture")
	}
	if _, err := l.Frames("nowhere"); err == nil {
		t.Error("expected error for missing frame directory")
	}
}

func TestResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if Resize(src, 8, 8) != image.Image(src) {
		t.Error("same-size resize should return the source")
	}
	if b := Resize(src, 16, 4).Bounds(); b.Dx() != 16 || b.Dy() != 4 {
		t.Errorf("resized bounds %v", b)
	}
}

func TestLoadTextures(t *testing.T) {
	fsys := fstest.MapFS{
		"tex/1.png":            {Data: encodePNG(t, 8, 8, color.White)},
		"tex/3.png":            {Data: encodePNG(t, 8, 8, color.White)},
		"tex/sky.png":          {Data: encodePNG(t, 16, 4, color.White)},
		"tex/blood_screen.png": {Data: encodePNG(t, 4, 4, color.White)},
		"tex/win.png":          {Data: encodePNG(t, 4, 4, color.White)},
		"tex/game_over.png":    {Data: encodePNG(t, 4, 4, color.White)},
	}
	for i := 0; i <= 10; i++ {
		fsys[fmt.Sprintf("tex/digits/%d.png", i)] = &fstest.MapFile{Data: encodePNG(t, 2, 2, color.White)}
	}
	spec := TextureSpec{Dir: "tex", WallSize: 32, ScreenW: 64, ScreenH: 48, DigitSize: 9, WallTextureID: []int{3, 1, 3}}

	tex, err := NewLoader(fsys).LoadTextures(spec)
	if err != nil {
		t.Fatalf("LoadTextures failed: %v", err)
	}
	if len(tex.Walls) != 2 || tex.Walls[3].Bounds().Dx() != 32 {
		t.Errorf("unexpected wall textures %v", tex.Walls)
	}
	if b := tex.Sky.Bounds(); b.Dx() != 64 || b.Dy() != 24 {
		t.Errorf("sky bounds %v", b)
	}
	if b := tex.Digits[10].Bounds(); b.Dx() != 9 {
		t.Errorf("digit bounds %v", b)
	}

	spec.WallTextureID = []int{2}
	if _, err := NewLoader(fsys).LoadTextures(spec); err == nil {
		t.Error("expected fatal error for missing wall texture 2")
	}
}

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("display:\n  screen_width: 800\n  screen_height: 600\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if cfg.Camera.NumRays != 400 {
		t.Errorf("num_rays default %d, want half the width", cfg.Camera.NumRays)
	}
	if cfg.AnimationInterval() != 120*time.Millisecond {
		t.Errorf("animation interval %v", cfg.AnimationInterval())
	}
	if cfg.DecisionInterval() != 40*time.Millisecond {
		t.Errorf("decision interval %v", cfg.DecisionInterval())
	}
	if c := cfg.FloorColor(); c.R != 30 || c.A != 255 {
		t.Errorf("floor colour %v", c)
	}

	v := cfg.View()
	if v.Scale != 2 || v.HalfNumRays != 200 {
		t.Errorf("view scale=%v halfRays=%v", v.Scale, v.HalfNumRays)
	}
	wantDist := 400 / math.Tan(math.Pi/6)
	if math.Abs(v.ScreenDist-wantDist) > 1e-6 {
		t.Errorf("screen distance %.3f, want %.3f", v.ScreenDist, wantDist)
	}
	if math.Abs(v.DeltaAngle-math.Pi/3/400) > 1e-12 {
		t.Errorf("delta angle %v", v.DeltaAngle)
	}
}

func TestParseConfigLevelSprites(t *testing.T) {
	src := `
level:
  map: levels/test.map
  hot_reload: true
  sprites:
    - image: sprites/candlebra.png
      x: 10.5
      y: 3.5
      scale: 0.7
      shift: 0.27
    - frames: sprites/green_light
      x: 11.5
      y: 3.5
      scale: 0.8
      shift: 0.16
nav:
  clamp_to_bounds: true
`
	cfg, err := ParseConfig([]byte(src))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if len(cfg.Level.Sprites) != 2 || cfg.Level.Sprites[0].Animated() || !cfg.Level.Sprites[1].Animated() {
		t.Fatalf("unexpected sprites %+v", cfg.Level.Sprites)
	}
	if !cfg.Nav.ClampToBounds || !cfg.Level.HotReload || cfg.Level.Map != "levels/test.map" {
		t.Errorf("unexpected level/nav config %+v %+v", cfg.Level, cfg.Nav)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{"bad yaml", "display: [unclosed"},
		{"negative rays", "camera:\n  num_rays: -4\n"},
		{"fov too wide", "camera:\n  field_of_view: 3.5\n"},
		{"sprite without art", "level:\n  sprites:\n    - x: 1\n      y: 1\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tc.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestMustLoadConfigPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing config")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display:\n  window_title: test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.WindowTitle != "test" || cfg.GetScreenWidth() != 1600 || cfg.GetScreenHeight() != 900 {
		t.Errorf("unexpected display config %+v", cfg.Display)
	}
}

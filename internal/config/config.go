package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"raycore/internal/render"
)

// Config holds all engine configuration values
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Camera    CameraConfig    `yaml:"camera"`
	Render    RenderConfig    `yaml:"render"`
	Animation AnimationConfig `yaml:"animation"`
	Logic     LogicConfig     `yaml:"logic"`
	Level     LevelConfig     `yaml:"level"`
	Nav       NavConfig       `yaml:"nav"`
	Log       LogConfig       `yaml:"log"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"` // frame-pacing target
}

type CameraConfig struct {
	FieldOfView      float64 `yaml:"field_of_view"` // radians
	NumRays          int     `yaml:"num_rays"`      // 0 means one ray per two pixels
	StartAngle       float64 `yaml:"start_angle"`
	MoveSpeed        float64 `yaml:"move_speed"`     // map units per millisecond
	RotationSpeed    float64 `yaml:"rotation_speed"` // radians per millisecond
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	MouseMaxRel      int     `yaml:"mouse_max_rel"`
}

type RenderConfig struct {
	FloorColor        [3]int  `yaml:"floor_color"`
	SkyScroll         float64 `yaml:"sky_scroll"`
	DigitSize         int     `yaml:"digit_size"`
	DamageFlashFrames int     `yaml:"damage_flash_frames"` // logic ticks
	TexturesDir       string  `yaml:"textures_dir"`
	TextureSize       int     `yaml:"texture_size"`
	Workers           int     `yaml:"workers"` // wall-casting goroutines, 0 = NumCPU
}

type AnimationConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

type LogicConfig struct {
	DecisionIntervalMs int     `yaml:"decision_interval_ms"`
	AgentSpeed         float64 `yaml:"agent_speed"` // map units per frame
	AttackDistance     float64 `yaml:"attack_distance"`
	AttackDamage       int     `yaml:"attack_damage"`
	AttackCooldownMs   int     `yaml:"attack_cooldown_ms"`
	PlayerMaxHealth    int     `yaml:"player_max_health"`
	AgentHealth        int     `yaml:"agent_health"`
	WeaponDamage       int     `yaml:"weapon_damage"`
	RestartDelayMs     int     `yaml:"restart_delay_ms"`
}

type LevelConfig struct {
	Map       string         `yaml:"map"`
	HotReload bool           `yaml:"hot_reload"`
	Sprites   []SpriteConfig `yaml:"sprites"`
	Agent     SpriteConfig   `yaml:"agent"`
}

// SpriteConfig places a decoration or describes the agent look. Image is a
// single PNG for static sprites; Frames is a directory of PNGs for animated ones.
type SpriteConfig struct {
	Image  string  `yaml:"image,omitempty"`
	Frames string  `yaml:"frames,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Scale  float64 `yaml:"scale"`
	Shift  float64 `yaml:"shift"`
}

// Animated reports whether the sprite uses a frame ring.
func (s SpriteConfig) Animated() bool {
	return s.Frames != ""
}

type NavConfig struct {
	ClampToBounds bool `yaml:"clamp_to_bounds"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML and fills unset values with defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoadConfig loads configuration and panics on error
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 1600
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 900
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "raycore"
	}
	if c.Display.TPS == 0 {
		c.Display.TPS = 60
	}
	if c.Camera.FieldOfView == 0 {
		c.Camera.FieldOfView = 1.0471975511965976 // Pi / 3
	}
	if c.Camera.NumRays == 0 {
		c.Camera.NumRays = c.Display.ScreenWidth / 2
	}
	if c.Camera.MoveSpeed == 0 {
		c.Camera.MoveSpeed = 0.004
	}
	if c.Camera.RotationSpeed == 0 {
		c.Camera.RotationSpeed = 0.002
	}
	if c.Camera.MouseSensitivity == 0 {
		c.Camera.MouseSensitivity = 0.0003
	}
	if c.Camera.MouseMaxRel == 0 {
		c.Camera.MouseMaxRel = 40
	}
	if c.Render.FloorColor == [3]int{} {
		c.Render.FloorColor = [3]int{30, 30, 30}
	}
	if c.Render.SkyScroll == 0 {
		c.Render.SkyScroll = 4.5
	}
	if c.Render.DigitSize == 0 {
		c.Render.DigitSize = 90
	}
	if c.Render.DamageFlashFrames == 0 {
		c.Render.DamageFlashFrames = 6
	}
	if c.Render.TexturesDir == "" {
		c.Render.TexturesDir = "assets/textures"
	}
	if c.Render.TextureSize == 0 {
		c.Render.TextureSize = 256
	}
	if c.Animation.IntervalMs == 0 {
		c.Animation.IntervalMs = 120
	}
	if c.Logic.DecisionIntervalMs == 0 {
		c.Logic.DecisionIntervalMs = 40
	}
	if c.Logic.AgentSpeed == 0 {
		c.Logic.AgentSpeed = 0.03
	}
	if c.Logic.AttackDistance == 0 {
		c.Logic.AttackDistance = 1.0
	}
	if c.Logic.AttackDamage == 0 {
		c.Logic.AttackDamage = 5
	}
	if c.Logic.AttackCooldownMs == 0 {
		c.Logic.AttackCooldownMs = 1000
	}
	if c.Logic.PlayerMaxHealth == 0 {
		c.Logic.PlayerMaxHealth = 100
	}
	if c.Logic.AgentHealth == 0 {
		c.Logic.AgentHealth = 100
	}
	if c.Logic.WeaponDamage == 0 {
		c.Logic.WeaponDamage = 50
	}
	if c.Logic.RestartDelayMs == 0 {
		c.Logic.RestartDelayMs = 1500
	}
	if c.Level.Map == "" {
		c.Level.Map = "assets/levels/level1.map"
	}
	if c.Level.Agent.Scale == 0 {
		c.Level.Agent.Scale = 0.6
	}
	if c.Level.Agent.Shift == 0 {
		c.Level.Agent.Shift = 0.38
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Camera.NumRays <= 0 {
		return fmt.Errorf("num_rays must be positive, got %d", c.Camera.NumRays)
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 3.14159 {
		return fmt.Errorf("field_of_view must be in (0, Pi), got %v", c.Camera.FieldOfView)
	}
	for i, s := range c.Level.Sprites {
		if s.Image == "" && s.Frames == "" {
			return fmt.Errorf("level sprite %d has neither image nor frames", i)
		}
	}
	return nil
}

// GetScreenWidth returns the screen width
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

// GetScreenHeight returns the screen height
func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// View derives the projection constants shared by walls and sprites.
func (c *Config) View() render.View {
	return render.NewView(c.Display.ScreenWidth, c.Display.ScreenHeight, c.Camera.FieldOfView, c.Camera.NumRays)
}

// FloorColor returns the floor fill colour.
func (c *Config) FloorColor() color.RGBA {
	fc := c.Render.FloorColor
	return color.RGBA{uint8(fc[0]), uint8(fc[1]), uint8(fc[2]), 255}
}

// AnimationInterval returns the frame-ring advance interval.
func (c *Config) AnimationInterval() time.Duration {
	return time.Duration(c.Animation.IntervalMs) * time.Millisecond
}

// DecisionInterval returns the agent decision cadence.
func (c *Config) DecisionInterval() time.Duration {
	return time.Duration(c.Logic.DecisionIntervalMs) * time.Millisecond
}

// RestartDelay is how long the win or game-over screen stays up.
func (c *Config) RestartDelay() time.Duration {
	return time.Duration(c.Logic.RestartDelayMs) * time.Millisecond
}

// AttackCooldown is the minimum time between two attacks of one agent.
func (c *Config) AttackCooldown() time.Duration {
	return time.Duration(c.Logic.AttackCooldownMs) * time.Millisecond
}

// CompositorConfig returns the compositor settings.
func (c *Config) CompositorConfig() render.CompositorConfig {
	return render.CompositorConfig{
		FloorColor: c.FloorColor(),
		SkyScroll:  c.Render.SkyScroll,
		DigitSize:  float64(c.Render.DigitSize),
	}
}

package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
)

// WindowConfig contains host window settings
type WindowConfig struct {
	Title      string     `toml:"title"`
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	VSync      bool       `toml:"vsync"`
	ClearColor color.RGBA `toml:"-"`
}

// CharacterConfig contains all character-related configuration values
type CharacterConfig struct {
	// Movement
	Speed       float64 `toml:"speed"`        // units per second
	JumpImpulse float64 `toml:"jump_impulse"` // units, applied once per jump
	StickyJump  bool    `toml:"sticky_jump"`  // keep Jumping while above ground

	// Spawn
	SpawnX float64 `toml:"spawn_x"`
	SpawnY float64 `toml:"spawn_y"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity  float64 `toml:"gravity"`   // units per tick
	Ground   float64 `toml:"ground"`    // ground plane height
	TimeStep float64 `toml:"time_step"` // nominal seconds per tick for horizontal movement
	MaxDelta float64 `toml:"max_delta"` // clamp for measured elapsed time
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FramePeriod float64 `toml:"frame_period"` // seconds per frame
	SheetDir    string  `toml:"sheet_dir"`
}

// LoggingConfig selects the zap encoder and level
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `toml:"overlay"` // Draw state overlay
}

type Config struct {
	Window    WindowConfig    `toml:"window"`
	Character CharacterConfig `toml:"character"`
	Physics   PhysicsConfig   `toml:"physics"`
	Animation AnimationConfig `toml:"animation"`
	Logging   LoggingConfig   `toml:"logging"`
	Debug     DebugConfig     `toml:"debug"`
}

// C is the active configuration used by the host layer.
var C = Default()

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Tenagra",
			Width:      1000,
			Height:     500,
			VSync:      true,
			ClearColor: color.RGBA{R: 10, G: 10, B: 10, A: 255},
		},
		Character: CharacterConfig{
			Speed:       300,
			JumpImpulse: 50,
		},
		Physics: PhysicsConfig{
			Gravity:  1.75,
			Ground:   0,
			TimeStep: 1.0 / 60.0,
			MaxDelta: 0.25,
		},
		Animation: AnimationConfig{
			FramePeriod: 0.10,
			SheetDir:    "assets/images",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the tick loop cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.TimeStep <= 0 {
		return fmt.Errorf("physics.time_step must be positive, got %v", c.Physics.TimeStep)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Animation.FramePeriod <= 0 {
		return fmt.Errorf("animation.frame_period must be positive, got %v", c.Animation.FramePeriod)
	}
	return nil
}

package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (world units per second)
	Speed float64 `yaml:"speed"`

	// Physics
	Mass  float64 `yaml:"mass"`
	HalfW float64 `yaml:"half_w"`
	HalfH float64 `yaml:"half_h"`

	// Dimensions
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	SpriteKey   string `yaml:"sprite_key"`
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Speed      float64 `yaml:"speed"`
	ChaseRange float64 `yaml:"chase_range"` // Distance at which enemies start chasing

	Mass  float64 `yaml:"mass"`
	HalfW float64 `yaml:"half_w"`
	HalfH float64 `yaml:"half_h"`

	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	SpriteKey   string `yaml:"sprite_key"`
}

// GoalConfig contains the win tile configuration
type GoalConfig struct {
	HalfW  float64 `yaml:"half_w"`
	HalfH  float64 `yaml:"half_h"`
	Sprite string  `yaml:"sprite"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	WallFriction float64 `yaml:"wall_friction"` // Friction of merged wall colliders
	Damping      float64 `yaml:"damping"`       // Fraction of velocity kept per second
	Iterations   int     `yaml:"iterations"`
	MaxSpeed     float64 `yaml:"max_speed"` // Per-axis cap on character velocity

	// Resolv space cell size used for sensor checks
	SpatialCellSize int `yaml:"spatial_cell_size"`
}

// LevelConfig contains level loading configuration
type LevelConfig struct {
	Dir        string // Directory inside the embedded assets
	StartIndex int
	ChunkSize  int // Tiles per chunk side
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Scale        float64 `yaml:"scale"`         // Orthographic projection scale (0.5 = 2x zoom)
	CursorFollow float64 `yaml:"cursor_follow"` // Fraction of the cursor offset added to the camera
}

// WinConfig contains win overlay configuration
type WinConfig struct {
	Text        string
	TextColor   color.RGBA
	FadeSeconds float32
	Margin      int
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	BackgroundColor color.RGBA
	WallColor       color.RGBA

	// Debug colors
	DebugColliderColor color.RGBA
	DebugPlayerColor   color.RGBA
	DebugEnemyColor    color.RGBA
	DebugGoalColor     color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowColliders bool   // Draw merged wall colliders
	LogWallPass   bool   // Log one line per wall merge pass
	TuningFile    string // Optional YAML overrides, hot reloaded
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Goal GoalConfig
var Physics PhysicsConfig
var Level LevelConfig
var Camera CameraConfig
var Win WinConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Night        = color.RGBA{R: 8, G: 8, B: 16, A: 255}
	Stone        = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:       100,
		Mass:        1,
		HalfW:       7,
		HalfH:       14,
		FrameWidth:  32,
		FrameHeight: 32,
		SpriteKey:   "player",
	}

	Enemy = EnemyConfig{
		Speed:       90,
		ChaseRange:  200,
		Mass:        1,
		HalfW:       8,
		HalfH:       8,
		FrameWidth:  32,
		FrameHeight: 32,
		SpriteKey:   "enemy",
	}

	Goal = GoalConfig{
		HalfW:  8,
		HalfH:  8,
		Sprite: "meta.png",
	}

	Physics = PhysicsConfig{
		WallFriction:    0.1,
		Damping:         1.0,
		Iterations:      10,
		MaxSpeed:        300,
		SpatialCellSize: 16,
	}

	Level = LevelConfig{
		Dir:        "levels",
		StartIndex: 0,
		ChunkSize:  16,
	}

	Camera = CameraConfig{
		Scale:        0.5,
		CursorFollow: 0.5,
	}

	Win = WinConfig{
		Text:        "You Win!!!",
		TextColor:   White,
		FadeSeconds: 0.75,
		Margin:      5,
	}

	UI = UIConfig{
		BackgroundColor:    Night,
		WallColor:          Stone,
		DebugColliderColor: Cyan,
		DebugPlayerColor:   Blue,
		DebugEnemyColor:    Red,
		DebugGoalColor:     Yellow,
	}
}

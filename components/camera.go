package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // World position, y up
	Scale      float64   // World units per screen pixel
	LastCursor math.Vec2 // Cursor offset from the window center, in world units
}

var Camera = donburi.NewComponentType[CameraData]()

// SettingsData holds runtime toggles.
type SettingsData struct {
	Debug bool // Collider overlay
	Quit  bool
}

var Settings = donburi.NewComponentType[SettingsData]()

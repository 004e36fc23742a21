package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PlayerData struct {
	Direction Vector // Normalized movement input
	FlipX     bool   // Sprite faces left
}

var Player = donburi.NewComponentType[PlayerData]()

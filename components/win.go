package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WinData stores the state of the win overlay
type WinData struct {
	IsWon bool
	Fade  *gween.Tween
	Alpha float32 // Current overlay opacity
	Wins  int     // Saved total, including this run
}

var Win = donburi.NewComponentType[WinData]()

package components

import (
	"github.com/automoto/nightfield/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	SpriteSheet      *ebiten.Image
	CachedFrames     map[int]*ebiten.Image // Pre-calculated subimages keyed by frame index
	FrameWidth       int
	FrameHeight      int
}

var Animation = donburi.NewComponentType[AnimationData]()

package factory

import (
	"fmt"
	"image"

	"github.com/automoto/nightfield/assets"
	"github.com/automoto/nightfield/assets/animations"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations creates an AnimationData component for a character key
// (e.g. "player", "enemy") using its definition in config.
func GenerateAnimations(key string, frameWidth, frameHeight int) *components.AnimationData {
	def, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definition found for key: %s", key))
	}

	sheet := assets.GetSheet(key)
	animData := &components.AnimationData{
		CurrentAnimation: animations.NewAnimation(def.First, def.Last, def.Step, def.Speed),
		SpriteSheet:      sheet,
		CachedFrames:     make(map[int]*ebiten.Image),
		FrameWidth:       frameWidth,
		FrameHeight:      frameHeight,
	}

	step := def.Step
	if step <= 0 {
		step = 1
	}
	for i := def.First; i <= def.Last; i += step {
		sx := i * frameWidth
		srcRect := image.Rect(sx, 0, sx+frameWidth, frameHeight)
		animData.CachedFrames[i] = sheet.SubImage(srcRect).(*ebiten.Image)
	}

	return animData
}

package systems

import (
	"github.com/automoto/nightfield/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawAnimated renders characters at their current animation frame.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraGeoM(camera, screen)

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}
		img := anim.CachedFrames[anim.CurrentAnimation.Frame()]
		if img == nil {
			return
		}

		flip := false
		if e.HasComponent(components.Player) {
			flip = components.Player.Get(e).FlipX
		}

		pos := transform.WorldPosition(e)
		drawCentered(screen, img, pos.X, pos.Y, flip, view)
	})
}

// DrawSprites renders static sprites such as the goal.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraGeoM(camera, screen)

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}
		pos := transform.WorldPosition(e)
		drawCentered(screen, sprite.Image, pos.X, pos.Y, sprite.FlipX, view)
	})
}

// drawCentered draws a y-down image centered on a world position.
func drawCentered(screen, img *ebiten.Image, x, y float64, flipX bool, view ebiten.GeoM) {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if flipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(w, 0)
	}
	drawOp.GeoM.Scale(1, -1)
	drawOp.GeoM.Translate(x-w/2, y+h/2)
	drawOp.GeoM.Concat(view)

	screen.DrawImage(img, drawOp)
}

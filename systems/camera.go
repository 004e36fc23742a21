package systems

import (
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/gamemath"
	"github.com/automoto/nightfield/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateCamera centers the camera on the player, pushed toward the cursor.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Scale <= 0 {
		camera.Scale = cfg.Camera.Scale
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player, leave the camera where it is
	}

	input := getOrCreateInput(e)
	ox, oy := gamemath.CursorOffset(input.CursorX, input.CursorY, cfg.C.Width, cfg.C.Height, camera.Scale)
	camera.LastCursor = dmath.NewVec2(ox, oy)

	pos := transform.WorldPosition(playerEntry)
	camera.Position = dmath.NewVec2(
		pos.X+ox*cfg.Camera.CursorFollow,
		pos.Y+oy*cfg.Camera.CursorFollow,
	)
}

// cameraGeoM maps y-up world coordinates to screen pixels.
func cameraGeoM(camera *components.CameraData, screen *ebiten.Image) ebiten.GeoM {
	scale := camera.Scale
	if scale <= 0 {
		scale = 1
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	var g ebiten.GeoM
	g.Translate(-camera.Position.X, -camera.Position.Y)
	g.Scale(1/scale, -1/scale)
	g.Translate(float64(width)/2, float64(height)/2)
	return g
}

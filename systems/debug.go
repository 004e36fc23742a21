package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/fonts"
	"github.com/automoto/nightfield/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the sensor space, merged wall
// colliders included, and prints collider counts per level.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	view := cameraGeoM(camera, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// y is flipped, so the top-left corner on screen is (X, Y+H) in the world
			x0, y0 := view.Apply(obj.X, obj.Y+obj.H)
			x1, y1 := view.Apply(obj.X+obj.W, obj.Y)
			if x1 < 0 || x0 > width || y1 < 0 || y0 > height {
				continue
			}

			var c color.RGBA
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = cfg.UI.DebugColliderColor
			case obj.HasTags(tags.ResolvPlayer):
				c = cfg.UI.DebugPlayerColor
			case obj.HasTags(tags.ResolvEnemy):
				c = cfg.UI.DebugEnemyColor
			case obj.HasTags(tags.ResolvGoal):
				c = cfg.UI.DebugGoalColor
			default:
				c = cfg.White
			}

			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), 1, c, false)
		}
	}

	face := fonts.Small.Get()
	y := 12
	components.Level.Each(ecs.World, func(e *donburi.Entry) {
		level := components.Level.Get(e)
		line := fmt.Sprintf("%s: %d wall colliders", level.Name, level.Colliders)
		text.Draw(screen, line, face, 4, y, cfg.White)
		y += 12
	})
}

package systems

import (
	"log"

	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateLevelLoad publishes LevelTransformed for every level whose wall
// tiles have all been merged. Tiles with a broken owner chain do not hold a
// level back.
func UpdateLevelLoad(ecs *ecs.ECS) {
	pending := make(map[donburi.Entity]int)
	newWallQuery.Each(ecs.World, func(tile *donburi.Entry) {
		if level, err := ResolveLevel(tile); err == nil {
			pending[level.Entity()]++
		}
	})

	components.Level.Each(ecs.World, func(e *donburi.Entry) {
		level := components.Level.Get(e)
		if level.Ready || pending[e.Entity()] > 0 {
			return
		}
		level.Ready = true
		components.LevelEvents.Publish(ecs.World, components.LevelEvent{
			Kind:  components.LevelTransformed,
			Level: e.Entity(),
		})
	})
}

// ProcessLevelEvents delivers queued level events to their subscribers.
func ProcessLevelEvents(ecs *ecs.ECS) {
	components.LevelEvents.ProcessEvents(ecs.World)
}

// OnLevelEvent pauses the physics simulation while a level is being placed.
func OnLevelEvent(w donburi.World, event components.LevelEvent) {
	entry, ok := components.PhysicsWorld.First(w)
	if !ok {
		return
	}
	physics := components.PhysicsWorld.Get(entry)

	switch event.Kind {
	case components.LevelSpawnTriggered:
		physics.TimeScale = 0
	case components.LevelTransformed:
		physics.TimeScale = 1
	}
	log.Printf("level %v %s, physics time scale %.0f", event.Level, event.Kind, physics.TimeScale)
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	screen.Fill(cfg.UI.BackgroundColor)

	components.Level.Each(ecs.World, func(e *donburi.Entry) {
		level := components.Level.Get(e)
		if level.Background == nil || level.Geometry == nil {
			return
		}

		// The background is y-down with its top edge at the level height.
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Scale(1, -1)
		origin := transform.WorldPosition(e)
		opts.GeoM.Translate(origin.X, origin.Y+float64(level.Geometry.PixelHeight()))
		opts.GeoM.Concat(cameraGeoM(camera, screen))
		screen.DrawImage(level.Background, opts)
	})
}

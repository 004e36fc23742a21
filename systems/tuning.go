package systems

import (
	"log"

	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewTuningSystem returns a system that applies tuning file changes reported
// by the watcher. Changes are drained between frames, never mid-update.
func NewTuningSystem(watcher *cfg.TuningWatcher) ecs.System {
	return func(e *ecs.ECS) {
		for {
			select {
			case path := <-watcher.Events:
				if err := cfg.LoadTuning(path); err != nil {
					log.Printf("Warning: Could not reload tuning: %v", err)
					continue
				}
				ApplyTuning(e)
				log.Printf("tuning reloaded from %s", path)
			case err := <-watcher.Errors:
				log.Printf("Warning: tuning watcher: %v", err)
			default:
				return
			}
		}
	}
}

// ApplyTuning pushes the current config values into live entities.
func ApplyTuning(e *ecs.ECS) {
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		enemy.Speed = cfg.Enemy.Speed
		enemy.ChaseRange = cfg.Enemy.ChaseRange
	})

	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		if shape := components.Collider.Get(entry).Shape; shape != nil {
			shape.SetFriction(cfg.Physics.WallFriction)
		}
	})

	if entry, ok := components.PhysicsWorld.First(e.World); ok {
		if space := components.PhysicsWorld.Get(entry).Space; space != nil {
			space.SetDamping(cfg.Physics.Damping)
		}
	}

	if entry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(entry).Scale = cfg.Camera.Scale
	}
}

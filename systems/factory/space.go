package factory

import (
	"github.com/automoto/nightfield/archetypes"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Collision types for the rigid-body space.
const (
	CollisionTypeWall cp.CollisionType = iota + 1
	CollisionTypePlayer
	CollisionTypeEnemy
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreatePhysicsWorld spawns the rigid-body space. The game is top-down so
// there is no gravity.
func CreatePhysicsWorld(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.PhysicsWorld.Spawn(ecs)

	space := cp.NewSpace()
	space.Iterations = uint(cfg.Physics.Iterations)
	space.SetGravity(cp.Vector{})
	space.SetDamping(cfg.Physics.Damping)

	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{
		Space:     space,
		TimeScale: 1,
	})
	return entry
}

// physicsSpace returns the rigid-body space, if one has been created.
func physicsSpace(w donburi.World) (*cp.Space, bool) {
	entry, ok := components.PhysicsWorld.First(w)
	if !ok {
		return nil, false
	}
	return components.PhysicsWorld.Get(entry).Space, true
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func removeFromSpace(w donburi.World, obj *resolv.Object) {
	if obj == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}

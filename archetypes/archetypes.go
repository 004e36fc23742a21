package archetypes

import (
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Level = newArchetype(
		components.Level,
		transform.Transform,
	)
	Chunk = newArchetype(
		components.Chunk,
		transform.Transform,
	)
	WallTile = newArchetype(
		tags.Wall,
		components.GridCoords,
		components.NewWall,
		transform.Transform,
	)
	WallCollider = newArchetype(
		tags.WallCollider,
		components.Collider,
		components.Object,
		transform.Transform,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Animation,
		transform.Transform,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Animation,
		transform.Transform,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
		components.Sprite,
		transform.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

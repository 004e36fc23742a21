package factory

import (
	"github.com/automoto/nightfield/archetypes"
	"github.com/automoto/nightfield/assets"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreateGoal creates the win tile. It is a sensor only and has no body.
func CreateGoal(ecs *ecs.ECS, level *donburi.Entry, x, y float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	transform.Transform.Get(goal).LocalPosition = dmath.NewVec2(x, y)
	transform.AppendChild(level, goal, false)
	pos := transform.WorldPosition(goal)

	attachObject(ecs, goal, pos.X, pos.Y, cfg.Goal.HalfW, cfg.Goal.HalfH, tags.ResolvGoal)
	components.Sprite.SetValue(goal, components.SpriteData{
		Image: assets.GetObjectImage(cfg.Goal.Sprite),
	})

	return goal
}

package factory

import (
	"github.com/automoto/nightfield/archetypes"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

func CreateEnemy(ecs *ecs.ECS, level *donburi.Entry, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	transform.Transform.Get(enemy).LocalPosition = dmath.NewVec2(x, y)
	transform.AppendChild(level, enemy, false)
	pos := transform.WorldPosition(enemy)

	attachBody(ecs, enemy, pos.X, pos.Y, cfg.Enemy.HalfW, cfg.Enemy.HalfH, cfg.Enemy.Mass, CollisionTypeEnemy)
	attachObject(ecs, enemy, pos.X, pos.Y, cfg.Enemy.HalfW, cfg.Enemy.HalfH, "character", tags.ResolvEnemy)

	components.Enemy.SetValue(enemy, components.EnemyData{
		Speed:      cfg.Enemy.Speed,
		ChaseRange: cfg.Enemy.ChaseRange,
	})
	components.Animation.Set(enemy, GenerateAnimations(cfg.Enemy.SpriteKey, cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight))

	return enemy
}

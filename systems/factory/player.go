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

// CreatePlayer spawns the player centered at (x, y) relative to the level.
func CreatePlayer(ecs *ecs.ECS, level *donburi.Entry, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	transform.Transform.Get(player).LocalPosition = dmath.NewVec2(x, y)
	transform.AppendChild(level, player, false)
	pos := transform.WorldPosition(player)

	attachBody(ecs, player, pos.X, pos.Y, cfg.Player.HalfW, cfg.Player.HalfH, cfg.Player.Mass, CollisionTypePlayer)
	attachObject(ecs, player, pos.X, pos.Y, cfg.Player.HalfW, cfg.Player.HalfH, "character", tags.ResolvPlayer)

	components.Player.SetValue(player, components.PlayerData{})
	components.Animation.Set(player, GenerateAnimations(cfg.Player.SpriteKey, cfg.Player.FrameWidth, cfg.Player.FrameHeight))

	return player
}

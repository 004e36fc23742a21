package systems

import (
	"github.com/automoto/nightfield/components"
	"github.com/automoto/nightfield/shared/gamemath"
	"github.com/automoto/nightfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateEnemies steers every enemy toward the player while it is in chase
// range. Out of range an enemy keeps whatever velocity it had.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	target := transform.WorldPosition(playerEntry)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		pos := transform.WorldPosition(e)

		vx, vy, chasing := gamemath.ChaseVelocity(pos.X, pos.Y, target.X, target.Y, enemy.ChaseRange, enemy.Speed)
		enemy.Chasing = chasing
		if !chasing {
			return
		}

		body := components.Body.Get(e)
		if body.Body != nil {
			body.Body.SetVelocity(vx, vy)
		}
	})
}

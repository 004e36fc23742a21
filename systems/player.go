package systems

import (
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/gamemath"
	"github.com/automoto/nightfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns held directions into the player's velocity. The sprite
// faces the cursor.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)

		x, y := gamemath.InputDirection(
			input.Current[cfg.ActionMoveUp],
			input.Current[cfg.ActionMoveDown],
			input.Current[cfg.ActionMoveLeft],
			input.Current[cfg.ActionMoveRight],
		)
		player.Direction = components.Vector{X: x, Y: y}
		player.FlipX = input.CursorX < cfg.C.Width/2

		body := components.Body.Get(e)
		if body.Body != nil {
			body.Body.SetVelocity(x*cfg.Player.Speed, y*cfg.Player.Speed)
		}
	})
}

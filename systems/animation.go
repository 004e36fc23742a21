package systems

import (
	"github.com/automoto/nightfield/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Characters slower than this are drawn standing still.
const movingThreshold = 1.0

// UpdateAnimations advances walk cycles of moving characters and rests the
// others on their first frame.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation == nil {
			return
		}

		if isMoving(e) {
			anim.CurrentAnimation.Tick()
		} else {
			anim.CurrentAnimation.Rest()
		}
	})
}

func isMoving(e *donburi.Entry) bool {
	if e.HasComponent(components.Player) {
		d := components.Player.Get(e).Direction
		return d.X != 0 || d.Y != 0
	}
	if e.HasComponent(components.Body) {
		if body := components.Body.Get(e).Body; body != nil {
			return body.Velocity().Length() > movingThreshold
		}
	}
	return false
}

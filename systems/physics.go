package systems

import (
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/gamemath"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// UpdatePhysics steps the rigid-body space and copies body positions back
// into transforms and sensor objects.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return
	}
	physics := components.PhysicsWorld.Get(entry)
	if physics.Space == nil || physics.TimeScale <= 0 {
		return
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if body := components.Body.Get(e).Body; body != nil {
			clampVelocity(body, cfg.Physics.MaxSpeed)
		}
	})

	physics.Space.Step(1.0 / float64(cfg.C.TPS) * physics.TimeScale)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Body == nil {
			return
		}
		pos := body.Body.Position()
		transform.SetWorldPosition(e, dmath.NewVec2(pos.X, pos.Y))

		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			obj.X = pos.X - obj.W/2
			obj.Y = pos.Y - obj.H/2
			obj.Update()
		}
	})
}

// clampVelocity caps each velocity axis at max. A max of zero disables it.
func clampVelocity(body *cp.Body, max float64) {
	if max <= 0 {
		return
	}
	v := body.Velocity()
	body.SetVelocity(gamemath.ClampSpeed(v.X, max), gamemath.ClampSpeed(v.Y, max))
}

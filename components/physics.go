package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body.
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()

// PhysicsWorldData owns the rigid-body space.
type PhysicsWorldData struct {
	Space     *cp.Space
	TimeScale float64 // 0 pauses the simulation
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

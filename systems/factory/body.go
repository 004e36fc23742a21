package factory

import (
	"math"

	"github.com/automoto/nightfield/components"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attachBody gives a character a rotation-locked box body centered at
// (x, y). Without a physics world the entry keeps an empty BodyData.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, x, y, halfW, halfH, mass float64, kind cp.CollisionType) {
	space, ok := physicsSpace(ecs.World)
	if !ok {
		return
	}
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.UserData = entry

	shape := cp.NewBox(body, halfW*2, halfH*2, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(kind)

	space.AddBody(body)
	space.AddShape(shape)

	components.Body.SetValue(entry, components.BodyData{Body: body, Shape: shape})
}

// attachObject registers a sensor box centered at (x, y).
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, x, y, halfW, halfH float64, tags ...string) *resolv.Object {
	w, h := halfW*2, halfH*2
	obj := resolv.NewObject(x-halfW, y-halfH, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)
	return obj
}

// detach removes an entry's body and sensor from their spaces.
func detach(w donburi.World, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		removeFromSpace(w, components.Object.Get(entry).Object)
	}

	space, ok := physicsSpace(w)
	if !ok {
		return
	}
	if entry.HasComponent(components.Body) {
		b := components.Body.Get(entry)
		if b.Shape != nil {
			space.RemoveShape(b.Shape)
		}
		if b.Body != nil {
			space.RemoveBody(b.Body)
		}
	}
	if entry.HasComponent(components.Collider) {
		if c := components.Collider.Get(entry); c.Shape != nil {
			space.RemoveShape(c.Shape)
		}
	}
}

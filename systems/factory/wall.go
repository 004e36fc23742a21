package factory

import (
	"github.com/automoto/nightfield/archetypes"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/wallmerge"
	"github.com/automoto/nightfield/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreateWallTile spawns one wall cell under its chunk. The NewWall marker
// queues it for the next wall collision pass.
func CreateWallTile(ecs *ecs.ECS, chunk *donburi.Entry, coord wallmerge.GridCoord, localX, localY float64) *donburi.Entry {
	tile := archetypes.WallTile.Spawn(ecs)
	components.GridCoords.SetValue(tile, coord)

	transform.Transform.Get(tile).LocalPosition = dmath.NewVec2(localX, localY)
	if chunk != nil {
		transform.AppendChild(chunk, tile, false)
	}
	return tile
}

// CreateWallCollider spawns the static collider for one merged rectangle and
// binds it to the level so it is destroyed with it.
func CreateWallCollider(ecs *ecs.ECS, level *donburi.Entry, rect wallmerge.Rect, cellSize float64) *donburi.Entry {
	collider := archetypes.WallCollider.Spawn(ecs)
	box := rect.WorldBox(cellSize)

	transform.Transform.Get(collider).LocalPosition = dmath.NewVec2(box.CenterX, box.CenterY)
	transform.AppendChild(level, collider, false)
	center := transform.WorldPosition(collider)

	world := box
	world.CenterX, world.CenterY = center.X, center.Y
	left, bottom := world.Min()
	w, h := box.HalfW*2, box.HalfH*2

	data := components.ColliderData{Rect: rect, Box: box}
	if space, ok := physicsSpace(ecs.World); ok {
		bb := cp.BB{L: left, B: bottom, R: left + w, T: bottom + h}
		shape := cp.NewBox2(space.StaticBody, bb, 0)
		shape.SetFriction(cfg.Physics.WallFriction)
		shape.SetCollisionType(CollisionTypeWall)
		space.AddShape(shape)
		data.Shape = shape
	}
	components.Collider.SetValue(collider, data)

	obj := resolv.NewObject(left, bottom, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = collider // Link for O(1) lookup

	components.Object.SetValue(collider, components.ObjectData{Object: obj})
	addToSpace(ecs.World, obj)

	return collider
}

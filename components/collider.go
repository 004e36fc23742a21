package components

import (
	"github.com/automoto/nightfield/shared/wallmerge"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// ColliderData is a static wall collider built from merged wall tiles.
type ColliderData struct {
	Rect  wallmerge.Rect // Grid bounds
	Box   wallmerge.Box  // World center and half extents, relative to the level
	Shape *cp.Shape
}

var Collider = donburi.NewComponentType[ColliderData]()

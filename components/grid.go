package components

import (
	"github.com/automoto/nightfield/shared/wallmerge"
	"github.com/yohamta/donburi"
)

// GridCoords is the cell a tile occupies in its level grid.
var GridCoords = donburi.NewComponentType[wallmerge.GridCoord]()

// NewWallData marks a wall tile that has not been merged into a collider yet.
type NewWallData struct{}

var NewWall = donburi.NewComponentType[NewWallData]()

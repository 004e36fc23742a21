// Package leveldata provides TMX level parsing for the wall merge pass and
// entity placement. It has no dependencies on ebitengine, donburi, or the
// physics backend, pure data only.
package leveldata

import "github.com/automoto/nightfield/shared/wallmerge"

// Layer names and entity identifiers expected in a level file.
const (
	WallLayer    = "walls"
	EntityGroup  = "entities"
	EntityPlayer = "Player"
	EntityEnemy  = "Enemy"
	EntityWin    = "Win"
)

// Geometry holds everything parsed from a level file that the game needs
// besides its look.
type Geometry struct {
	Name     string
	Layers   []Layer
	Walls    []wallmerge.GridCoord
	Entities []EntitySpawn
}

// Layer describes one tile layer grid.
type Layer struct {
	Name     string
	Width    int // tiles
	Height   int // tiles
	GridSize int // world units per tile
}

// EntitySpawn is an entity placement in world units, y up, centered.
type EntitySpawn struct {
	Identifier string
	X, Y       float64
	W, H       float64
}

// PixelWidth is the width of the first layer in world units.
func (g *Geometry) PixelWidth() int {
	if len(g.Layers) == 0 {
		return 0
	}
	return g.Layers[0].Width * g.Layers[0].GridSize
}

// PixelHeight is the height of the first layer in world units.
func (g *Geometry) PixelHeight() int {
	if len(g.Layers) == 0 {
		return 0
	}
	return g.Layers[0].Height * g.Layers[0].GridSize
}

// WallSet returns the wall cells as a set.
func (g *Geometry) WallSet() wallmerge.WallSet {
	return wallmerge.NewWallSet(g.Walls...)
}

// SpawnsOf returns the entity placements with the given identifier.
func (g *Geometry) SpawnsOf(identifier string) []EntitySpawn {
	var out []EntitySpawn
	for _, e := range g.Entities {
		if e.Identifier == identifier {
			out = append(out, e)
		}
	}
	return out
}

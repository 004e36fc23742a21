package systems

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/leveldata"
	"github.com/automoto/nightfield/shared/wallmerge"
	"github.com/automoto/nightfield/systems/factory"
	"github.com/automoto/nightfield/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
	"github.com/yohamta/donburi/filter"
)

var (
	ErrNoChunk = errors.New("wall tile has no parent chunk")
	ErrNoLevel = errors.New("chunk has no parent level")
)

var newWallQuery = donburi.NewQuery(filter.Contains(
	tags.Wall,
	components.GridCoords,
	components.NewWall,
))

// ResolveLevel walks tile -> chunk -> level.
func ResolveLevel(tile *donburi.Entry) (*donburi.Entry, error) {
	chunk, ok := transform.GetParent(tile)
	if !ok || !chunk.Valid() || !chunk.HasComponent(components.Chunk) {
		return nil, ErrNoChunk
	}
	level, ok := transform.GetParent(chunk)
	if !ok || !level.Valid() || !level.HasComponent(components.Level) {
		return nil, ErrNoLevel
	}
	return level, nil
}

// ExtractWalls groups every newly added wall tile by its owning level. It
// also returns the tiles that were grouped. Tiles whose owner cannot be
// resolved are left out of both and keep their marker; each one is warned
// about once.
func ExtractWalls(w donburi.World) (map[donburi.Entity]wallmerge.WallSet, []*donburi.Entry) {
	walls := make(map[donburi.Entity]wallmerge.WallSet)
	var consumed, orphans []*donburi.Entry

	newWallQuery.Each(w, func(tile *donburi.Entry) {
		level, err := ResolveLevel(tile)
		if err != nil {
			if !tile.HasComponent(tags.OrphanWall) {
				coord := components.GridCoords.Get(tile)
				log.Printf("Warning: skipping wall tile %v at (%d, %d) until it has an owner: %v", tile.Entity(), coord.X, coord.Y, err)
				orphans = append(orphans, tile)
			}
			return
		}

		set, ok := walls[level.Entity()]
		if !ok {
			set = wallmerge.NewWallSet()
			walls[level.Entity()] = set
		}
		set.Add(*components.GridCoords.Get(tile))
		consumed = append(consumed, tile)
	})

	// archetype changes wait until the query is done
	for _, tile := range orphans {
		tile.AddComponent(tags.OrphanWall)
	}

	return walls, consumed
}

// UpdateWallCollisions merges newly added wall tiles into static colliders,
// one pass per level that received tiles.
func UpdateWallCollisions(ecs *ecs.ECS) {
	walls, consumed := ExtractWalls(ecs.World)
	if len(walls) == 0 {
		return
	}

	levels := make([]donburi.Entity, 0, len(walls))
	for e := range walls {
		levels = append(levels, e)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })

	for _, e := range levels {
		EmitWallColliders(ecs, ecs.World.Entry(e), walls[e])
	}

	for _, tile := range consumed {
		tile.RemoveComponent(components.NewWall)
		if tile.HasComponent(tags.OrphanWall) {
			tile.RemoveComponent(tags.OrphanWall)
		}
	}
}

// EmitWallColliders runs the merge for one level and spawns a collider per
// rectangle. It returns the number of colliders spawned.
func EmitWallColliders(ecs *ecs.ECS, level *donburi.Entry, walls wallmerge.WallSet) int {
	geometry := MustLevelGeometry(level)
	layer := geometry.Layers[0]

	pass := wallmerge.Run(walls, layer.Width, layer.Height)
	for _, rect := range pass.Rects {
		factory.CreateWallCollider(ecs, level, rect, float64(layer.GridSize))
	}

	data := components.Level.Get(level)
	data.Colliders += len(pass.Rects)

	if cfg.Debug.LogWallPass {
		log.Printf("wall pass: level %q cells=%d plates=%d colliders=%d",
			geometry.Name, walls.Len(), pass.PlateCount(), len(pass.Rects))
	}
	return len(pass.Rects)
}

// MustLevelGeometry returns the geometry of a level that owns wall tiles.
// A level with walls but no geometry or no layers is a load-order bug.
func MustLevelGeometry(level *donburi.Entry) *leveldata.Geometry {
	data := components.Level.Get(level)
	if data.Geometry == nil {
		panic(fmt.Sprintf("level %d (%s) has wall tiles but its geometry is not loaded", data.Index, data.Name))
	}
	if len(data.Geometry.Layers) == 0 {
		panic(fmt.Sprintf("level %d (%s) has wall tiles but no layers", data.Index, data.Name))
	}
	return data.Geometry
}

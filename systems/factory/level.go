package factory

import (
	"log"

	"github.com/automoto/nightfield/archetypes"
	"github.com/automoto/nightfield/assets"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// CreateLevel spawns a loaded level with its walls and entities. Physics is
// paused until the wall collision pass reports the level as transformed.
func CreateLevel(ecs *ecs.ECS, index int, level assets.Level) *donburi.Entry {
	entry := SpawnLevel(ecs, index, level.Geometry, level.Background)
	components.LevelEvents.Publish(ecs.World, components.LevelEvent{
		Kind:  components.LevelSpawnTriggered,
		Level: entry.Entity(),
	})
	SpawnEntities(ecs, entry)
	return entry
}

// SpawnLevel spawns the level entity and its wall tiles, grouped into
// chunks. A nil geometry spawns an empty level.
func SpawnLevel(ecs *ecs.ECS, index int, geometry *leveldata.Geometry, background *ebiten.Image) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	data := components.LevelData{
		Index:      index,
		Geometry:   geometry,
		Background: background,
	}
	if geometry != nil {
		data.Name = geometry.Name
	}
	components.Level.SetValue(level, data)

	if geometry == nil || len(geometry.Layers) == 0 {
		return level
	}

	size := cfg.Level.ChunkSize
	if size <= 0 {
		size = 16
	}
	grid := float64(geometry.Layers[0].GridSize)

	chunks := make(map[components.ChunkData]*donburi.Entry)
	for _, c := range geometry.Walls {
		key := components.ChunkData{X: c.X / size, Y: c.Y / size}
		chunk, ok := chunks[key]
		if !ok {
			chunk = CreateChunk(ecs, level, key, float64(size)*grid)
			chunks[key] = chunk
		}
		localX := float64(c.X-key.X*size) * grid
		localY := float64(c.Y-key.Y*size) * grid
		CreateWallTile(ecs, chunk, c, localX, localY)
	}

	return level
}

// CreateChunk spawns a chunk under the level. span is the chunk side in
// world units.
func CreateChunk(ecs *ecs.ECS, level *donburi.Entry, at components.ChunkData, span float64) *donburi.Entry {
	chunk := archetypes.Chunk.Spawn(ecs)
	components.Chunk.SetValue(chunk, at)

	transform.Transform.Get(chunk).LocalPosition = dmath.NewVec2(float64(at.X)*span, float64(at.Y)*span)
	if level != nil {
		transform.AppendChild(level, chunk, false)
	}
	return chunk
}

// SpawnEntities places the player, enemies and goal listed in the level
// geometry. Only the first player spawn is used.
func SpawnEntities(ecs *ecs.ECS, level *donburi.Entry) {
	geometry := components.Level.Get(level).Geometry
	if geometry == nil {
		return
	}

	players := geometry.SpawnsOf(leveldata.EntityPlayer)
	if len(players) == 0 {
		log.Printf("Warning: level %q has no player spawn", geometry.Name)
	} else {
		CreatePlayer(ecs, level, players[0].X, players[0].Y)
	}

	for _, s := range geometry.SpawnsOf(leveldata.EntityEnemy) {
		CreateEnemy(ecs, level, s.X, s.Y)
	}
	for _, s := range geometry.SpawnsOf(leveldata.EntityWin) {
		CreateGoal(ecs, level, s.X, s.Y)
	}
}

// DespawnLevel removes the level with everything parented to it, including
// the physics shapes of its colliders and characters.
func DespawnLevel(ecs *ecs.ECS, level *donburi.Entry) {
	var owned []*donburi.Entry
	transform.Transform.Each(ecs.World, func(e *donburi.Entry) {
		if e != level && IsDescendant(e, level) {
			owned = append(owned, e)
		}
	})
	for _, e := range owned {
		detach(ecs.World, e)
	}
	transform.RemoveRecursive(level)
}

// IsDescendant reports whether ancestor is above e in the transform tree.
func IsDescendant(e, ancestor *donburi.Entry) bool {
	for {
		parent, ok := transform.GetParent(e)
		if !ok || !parent.Valid() {
			return false
		}
		if parent.Entity() == ancestor.Entity() {
			return true
		}
		e = parent
	}
}

// DestroyEntity removes a single spawned entity and its children from the
// world and from both spaces.
func DestroyEntity(ecs *ecs.ECS, entry *donburi.Entry) {
	detach(ecs.World, entry)
	transform.RemoveRecursive(entry)
}

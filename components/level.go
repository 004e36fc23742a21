package components

import (
	"github.com/automoto/nightfield/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type LevelData struct {
	Index      int
	Name       string
	Geometry   *leveldata.Geometry // nil until the level asset is loaded
	Background *ebiten.Image
	Colliders  int  // Merged wall colliders emitted for this level
	Ready      bool // Every wall tile has been merged
}

var Level = donburi.NewComponentType[LevelData]()

// ChunkData groups the tiles of one square section of a level.
type ChunkData struct {
	X, Y int // Chunk coordinates, in chunks
}

var Chunk = donburi.NewComponentType[ChunkData]()

type LevelEventKind int

const (
	// LevelSpawnTriggered is published when a level starts spawning.
	LevelSpawnTriggered LevelEventKind = iota
	// LevelTransformed is published once the level's colliders are in place.
	LevelTransformed
)

func (k LevelEventKind) String() string {
	switch k {
	case LevelSpawnTriggered:
		return "spawn-triggered"
	case LevelTransformed:
		return "transformed"
	}
	return "unknown"
}

type LevelEvent struct {
	Kind  LevelEventKind
	Level donburi.Entity
}

var LevelEvents = events.NewEventType[LevelEvent]()

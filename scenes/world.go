package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/nightfield/assets"
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/systems"
	"github.com/automoto/nightfield/systems/factory"
	"github.com/automoto/nightfield/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

type WorldScene struct {
	ecs        *ecs.ECS
	levelIndex int
	watcher    *cfg.TuningWatcher
	once       sync.Once
}

// NewWorldScene creates the game scene for the level at levelIndex.
func NewWorldScene(levelIndex int, watcher *cfg.TuningWatcher) *WorldScene {
	return &WorldScene{levelIndex: levelIndex, watcher: watcher}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

// Done reports whether the player asked to quit.
func (ws *WorldScene) Done() bool {
	return ws.ecs != nil && systems.QuitRequested(ws.ecs)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	if ws.watcher != nil {
		ecs.AddSystem(systems.NewTuningSystem(ws.watcher))
	}

	// Level placement, then physics once the level is transformed
	ecs.AddSystem(systems.UpdateWallCollisions)
	ecs.AddSystem(systems.UpdateLevelLoad)
	ecs.AddSystem(systems.ProcessLevelEvents)

	// Gameplay stops while paused and once the goal is reached
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateGoal))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.UpdateWin)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawWin)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	components.LevelEvents.Subscribe(ecs.World, systems.OnLevelEvent)

	loader := assets.NewLevelLoader(cfg.Level.Dir)
	levels := loader.MustLoadLevels()

	// Clamp index to valid range
	if ws.levelIndex < 0 || ws.levelIndex >= len(levels) {
		log.Printf("Warning: level index %d out of range, using 0", ws.levelIndex)
		ws.levelIndex = 0
	}
	level := levels[ws.levelIndex]

	// Spaces must exist before anything that registers bodies or sensors.
	factory.CreateSpace(ws.ecs,
		level.Geometry.PixelWidth(),
		level.Geometry.PixelHeight(),
		cfg.Physics.SpatialCellSize, cfg.Physics.SpatialCellSize,
	)
	factory.CreatePhysicsWorld(ws.ecs)
	factory.CreateCamera(ws.ecs)

	factory.CreateLevel(ws.ecs, ws.levelIndex, level)

	// Snap camera to the player to prevent panning from (0,0)
	if cameraEntry, ok := components.Camera.First(ws.ecs.World); ok {
		if playerEntry, ok := tags.Player.First(ws.ecs.World); ok {
			components.Camera.Get(cameraEntry).Position = transform.WorldPosition(playerEntry)
		}
	}

	progress := systems.LoadProgress()
	log.Printf("loaded level %q (%d/%d), %d wins so far",
		level.Geometry.Name, ws.levelIndex+1, len(levels), progress.Wins)
}

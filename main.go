package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/fonts"
	"github.com/automoto/nightfield/scenes"
	"github.com/automoto/nightfield/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelIndex := flag.Int("level", config.Level.StartIndex, "Index of the level to play")
	debug := flag.Bool("debug", false, "Show merged wall colliders (toggle with F1)")
	logWalls := flag.Bool("log-walls", false, "Log one line per wall merge pass")
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	flag.Parse()

	config.Debug.ShowColliders = *debug
	config.Debug.LogWallPass = *logWalls
	config.Debug.TuningFile = *tuning

	var watcher *config.TuningWatcher
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.WatchTuning(*tuning)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("nightfield")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewWorldScene(*levelIndex, watcher))); err != nil {
		log.Fatal(err)
	}
}

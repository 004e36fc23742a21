package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/nightfield/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Level is a loaded level: its geometry plus the pre-rendered tile layers.
type Level struct {
	Geometry   *leveldata.Geometry
	Background *ebiten.Image
}

type LevelLoader struct {
	dir string
}

func NewLevelLoader(dir string) *LevelLoader {
	return &LevelLoader{dir: dir}
}

// LevelNames lists the embedded level files, sorted.
func (l *LevelLoader) LevelNames() ([]string, error) {
	matches, err := fs.Glob(assetFS, l.dir+"/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (l *LevelLoader) MustLoadLevels() []Level {
	paths, err := l.LevelNames()
	if err != nil {
		panic(err)
	}

	var levels []Level
	for _, p := range paths {
		levels = append(levels, l.MustLoadLevel(p))
	}

	if len(levels) == 0 {
		panic(fmt.Sprintf("No level files found in assets/%s directory", l.dir))
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Geometry: leveldata.FromMap(strings.TrimSuffix(path.Base(levelPath), ".tmx"), levelMap),
	}

	// Create a renderer that uses the embedded filesystem
	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		panic(fmt.Sprintf("Failed to create renderer: %v", err))
	}
	level.Background = ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	for i, layer := range levelMap.Layers {
		if !layer.Visible {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			fmt.Printf("Warning: Failed to render layer %d: %v\n", i, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		level.Background.DrawImage(layerImage, op)
		// Dispose temporary image to free GPU memory
		layerImage.Deallocate()
	}

	return level
}

// LoadGeometries parses every embedded level in dir without rendering.
func LoadGeometries(dir string) (map[string]*leveldata.Geometry, []string, error) {
	return leveldata.LoadAll(assetFS, dir)
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

var (
	imageLoader = NewImageLoader()
)

// GetSheet returns the sprite sheet for a character key.
func GetSheet(key string) *ebiten.Image {
	return imageLoader.MustLoadImage(fmt.Sprintf("images/%s.png", key))
}

func GetObjectImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage(path.Join("images", name))
}

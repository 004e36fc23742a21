package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/nightfield/shared/wallmerge"
	"github.com/lafriks/go-tiled"
)

// LoadGeometry parses a TMX file and returns its layer grids, wall cells and
// entity placements. It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadGeometry(fsys fs.FS, tmxPath string) (*Geometry, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return FromMap(strings.TrimSuffix(path.Base(tmxPath), ".tmx"), levelMap), nil
}

// FromMap extracts geometry from an already loaded map.
func FromMap(name string, levelMap *tiled.Map) *Geometry {
	g := &Geometry{Name: name}

	for _, layer := range levelMap.Layers {
		g.Layers = append(g.Layers, Layer{
			Name:     layer.Name,
			Width:    levelMap.Width,
			Height:   levelMap.Height,
			GridSize: levelMap.TileWidth,
		})
	}

	// TMX rows run top-down, grid rows run bottom-up
	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for row := 0; row < levelMap.Height; row++ {
			for x := 0; x < levelMap.Width; x++ {
				idx := row*levelMap.Width + x
				if idx >= len(layer.Tiles) || layer.Tiles[idx].IsNil() {
					continue
				}
				g.Walls = append(g.Walls, wallmerge.GridCoord{X: x, Y: levelMap.Height - 1 - row})
			}
		}
		break
	}

	mapH := float64(levelMap.Height * levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntityGroup {
			continue
		}
		for _, o := range og.Objects {
			id := o.Class
			if id == "" {
				id = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			if id == "" {
				id = o.Name
			}
			g.Entities = append(g.Entities, EntitySpawn{
				Identifier: id,
				X:          o.X + o.Width/2,
				Y:          mapH - (o.Y + o.Height/2),
				W:          o.Width,
				H:          o.Height,
			})
		}
	}

	return g
}

// LoadAll discovers all .tmx files in dir within fsys, loads each, and
// returns them keyed by stem name plus the sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Geometry, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Geometry, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		g, err := LoadGeometry(fsys, m)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", m, err)
		}
		levels[g.Name] = g
		names = append(names, g.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

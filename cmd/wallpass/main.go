// Command wallpass runs the wall merge over level files and reports how many
// colliders each level produces.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/nightfield/assets"
	"github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/shared/leveldata"
	"github.com/automoto/nightfield/shared/wallmerge"
)

func main() {
	dir := flag.String("dir", "", "Directory of .tmx files (default: embedded levels)")
	verbose := flag.Bool("v", false, "List every merged rectangle")
	flag.Parse()

	var (
		levels map[string]*leveldata.Geometry
		names  []string
		err    error
	)
	if *dir == "" {
		levels, names, err = assets.LoadGeometries(config.Level.Dir)
	} else {
		levels, names, err = leveldata.LoadAll(os.DirFS(*dir), ".")
	}
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	for _, name := range names {
		g := levels[name]
		if len(g.Layers) == 0 {
			log.Printf("Warning: level %q has no layers", name)
			continue
		}
		layer := g.Layers[0]
		pass := wallmerge.Run(g.WallSet(), layer.Width, layer.Height)

		fmt.Printf("%s: %dx%d cells=%d plates=%d colliders=%d\n",
			name, layer.Width, layer.Height, pass.Walls.Len(), pass.PlateCount(), len(pass.Rects))
		if !*verbose {
			continue
		}
		for _, r := range pass.Rects {
			box := r.WorldBox(float64(layer.GridSize))
			fmt.Printf("  x=[%d,%d] y=[%d,%d] center=(%.1f, %.1f) half=(%.1f, %.1f)\n",
				r.Left, r.Right, r.Bottom, r.Top, box.CenterX, box.CenterY, box.HalfW, box.HalfH)
		}
	}
}

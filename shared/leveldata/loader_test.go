package leveldata

import (
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/nightfield/shared/wallmerge"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <image source="tiles.png" width="32" height="16"/>
 </tileset>
 <layer id="1" name="walls" width="3" height="2">
  <data encoding="csv">
1,1,0,
0,0,1
</data>
 </layer>
 <objectgroup id="2" name="entities">
  <object id="1" name="start" class="Player" x="16" y="0" width="16" height="16"/>
  <object id="2" name="Enemy" x="0" y="16" width="16" height="16"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/first.tmx":  {Data: []byte(testTMX)},
		"levels/second.tmx": {Data: []byte(strings.Replace(testTMX, `name="walls"`, `name="floor"`, 1))},
	}
}

func TestLoadGeometry(t *testing.T) {
	g, err := LoadGeometry(testFS(), "levels/first.tmx")
	if err != nil {
		t.Fatalf("LoadGeometry: %v", err)
	}

	if g.Name != "first" {
		t.Fatalf("expected name first, got %q", g.Name)
	}
	wantLayers := []Layer{{Name: "walls", Width: 3, Height: 2, GridSize: 16}}
	if !reflect.DeepEqual(g.Layers, wantLayers) {
		t.Fatalf("expected layers %+v, got %+v", wantLayers, g.Layers)
	}

	// top TMX row is grid row height-1
	wantWalls := wallmerge.NewWallSet(
		wallmerge.GridCoord{X: 0, Y: 1},
		wallmerge.GridCoord{X: 1, Y: 1},
		wallmerge.GridCoord{X: 2, Y: 0},
	)
	if !reflect.DeepEqual(g.WallSet().Coords(), wantWalls.Coords()) {
		t.Fatalf("expected walls %v, got %v", wantWalls.Coords(), g.WallSet().Coords())
	}

	players := g.SpawnsOf(EntityPlayer)
	if len(players) != 1 {
		t.Fatalf("expected 1 player spawn, got %d", len(players))
	}
	if players[0].X != 24 || players[0].Y != 24 {
		t.Fatalf("expected player at (24,24), got (%v,%v)", players[0].X, players[0].Y)
	}

	// falls back to the object name when no class is set
	enemies := g.SpawnsOf(EntityEnemy)
	if len(enemies) != 1 || enemies[0].X != 8 || enemies[0].Y != 8 {
		t.Fatalf("unexpected enemy spawns %+v", enemies)
	}

	if g.PixelWidth() != 48 || g.PixelHeight() != 32 {
		t.Fatalf("expected 48x32 pixels, got %dx%d", g.PixelWidth(), g.PixelHeight())
	}
}

func TestLoadGeometryWithoutWallLayer(t *testing.T) {
	g, err := LoadGeometry(testFS(), "levels/second.tmx")
	if err != nil {
		t.Fatalf("LoadGeometry: %v", err)
	}
	if len(g.Walls) != 0 {
		t.Fatalf("expected no walls, got %v", g.Walls)
	}
}

func TestLoadGeometryMissingFile(t *testing.T) {
	if _, err := LoadGeometry(testFS(), "levels/missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"first", "second"}) {
		t.Fatalf("unexpected names %v", names)
	}
	if len(levels) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(levels))
	}

	if _, _, err := LoadAll(testFS(), "nowhere"); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}

func TestEmptyGeometryDimensions(t *testing.T) {
	g := &Geometry{}
	if g.PixelWidth() != 0 || g.PixelHeight() != 0 {
		t.Fatal("expected zero dimensions without layers")
	}
}

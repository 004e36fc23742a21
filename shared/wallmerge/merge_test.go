package wallmerge

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func sortRects(rects []Rect) []Rect {
	out := append([]Rect(nil), rects...)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Bottom != b.Bottom {
			return a.Bottom < b.Bottom
		}
		if a.Left != b.Left {
			return a.Left < b.Left
		}
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Right < b.Right
	})
	return out
}

func TestMergeScenarios(t *testing.T) {
	cases := []struct {
		name          string
		walls         []GridCoord
		width, height int
		want          []Rect
	}{
		{
			name:   "block_2x2",
			walls:  []GridCoord{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
			width:  2,
			height: 2,
			want:   []Rect{{Left: 0, Right: 1, Bottom: 0, Top: 1}},
		},
		{
			name:   "isolated_cells_same_row",
			walls:  []GridCoord{{0, 0}, {2, 0}},
			width:  3,
			height: 1,
			want: []Rect{
				{Left: 0, Right: 0, Bottom: 0, Top: 0},
				{Left: 2, Right: 2, Bottom: 0, Top: 0},
			},
		},
		{
			name:   "vertical_pair",
			walls:  []GridCoord{{0, 0}, {0, 1}},
			width:  1,
			height: 2,
			want:   []Rect{{Left: 0, Right: 0, Bottom: 0, Top: 1}},
		},
		{
			name:   "empty",
			walls:  nil,
			width:  4,
			height: 4,
			want:   nil,
		},
		{
			// different extents never merge, even though a 1x2 column fits
			name:   "l_shape_not_optimal",
			walls:  []GridCoord{{0, 0}, {1, 0}, {0, 1}},
			width:  2,
			height: 2,
			want: []Rect{
				{Left: 0, Right: 1, Bottom: 0, Top: 0},
				{Left: 0, Right: 0, Bottom: 1, Top: 1},
			},
		},
		{
			name:   "gap_row_splits_column",
			walls:  []GridCoord{{1, 0}, {1, 2}},
			width:  3,
			height: 3,
			want: []Rect{
				{Left: 1, Right: 1, Bottom: 0, Top: 0},
				{Left: 1, Right: 1, Bottom: 2, Top: 2},
			},
		},
		{
			name:   "out_of_bounds_ignored",
			walls:  []GridCoord{{0, 0}, {5, 0}, {0, 9}},
			width:  2,
			height: 2,
			want:   []Rect{{Left: 0, Right: 0, Bottom: 0, Top: 0}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := sortRects(Merge(NewWallSet(c.walls...), c.width, c.height))
			want := sortRects(c.want)
			if len(got) == 0 && len(want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("expected %+v, got %+v", want, got)
			}
		})
	}
}

func TestRowPlatesSentinelColumn(t *testing.T) {
	walls := NewWallSet(GridCoord{1, 0}, GridCoord{2, 0}, GridCoord{0, 1})
	stack := RowPlates(walls, 3, 2)

	if len(stack) != 2 {
		t.Fatalf("expected one plate list per row, got %d", len(stack))
	}
	if !reflect.DeepEqual(stack[0], []Plate{{Left: 1, Right: 2}}) {
		t.Fatalf("row 0: expected plate closing at width-1, got %+v", stack[0])
	}
	if !reflect.DeepEqual(stack[1], []Plate{{Left: 0, Right: 0}}) {
		t.Fatalf("row 1: got %+v", stack[1])
	}
}

func TestMergePlatesTopRowTerminates(t *testing.T) {
	stack := [][]Plate{
		nil,
		{{Left: 0, Right: 3}},
		{{Left: 0, Right: 3}},
	}
	rects := MergePlates(stack)
	want := []Rect{{Left: 0, Right: 3, Bottom: 1, Top: 2}}
	if !reflect.DeepEqual(rects, want) {
		t.Fatalf("expected %+v, got %+v", want, rects)
	}
	if len(stack) != 3 {
		t.Fatalf("input stack was modified: len %d", len(stack))
	}
}

func randomWalls(rng *rand.Rand, width, height int, density float64) WallSet {
	ws := make(WallSet)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rng.Float64() < density {
				ws.Add(GridCoord{X: x, Y: y})
			}
		}
	}
	return ws
}

func TestMergeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		width := 1 + rng.Intn(12)
		height := 1 + rng.Intn(12)
		walls := randomWalls(rng, width, height, rng.Float64())

		pass := Run(walls, width, height)
		rects := pass.Rects

		// coverage
		if got := Cover(rects); !reflect.DeepEqual(got.Coords(), walls.Coords()) {
			t.Fatalf("case %d: cover mismatch\nwalls %v\ncover %v", i, walls.Coords(), got.Coords())
		}

		// disjointness: areas add up to the wall count only when nothing overlaps
		area := 0
		for _, r := range rects {
			area += r.Width() * r.Height()
		}
		if area != walls.Len() {
			t.Fatalf("case %d: rects overlap, area %d for %d walls", i, area, walls.Len())
		}

		// horizontal maximality: every row slice is one of that row's plates
		for _, r := range rects {
			for y := r.Bottom; y <= r.Top; y++ {
				found := false
				for _, p := range pass.Plates[y] {
					if p.Left == r.Left && p.Right == r.Right {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("case %d: rect %+v row %d is not a plate of %+v", i, r, y, pass.Plates[y])
				}
				if walls.Contains(GridCoord{r.Left - 1, y}) || walls.Contains(GridCoord{r.Right + 1, y}) {
					t.Fatalf("case %d: rect %+v can be widened at row %d", i, r, y)
				}
			}
		}

		// idempotence
		again := Merge(walls, width, height)
		if !reflect.DeepEqual(sortRects(rects), sortRects(again)) {
			t.Fatalf("case %d: second run differs", i)
		}
	}
}

func TestRunRecordsStages(t *testing.T) {
	pass := Run(NewWallSet(GridCoord{0, 0}, GridCoord{1, 0}), 2, 1)

	want := []string{StageRowPlates, StageMergePlates}
	if !reflect.DeepEqual(pass.Stages, want) {
		t.Fatalf("expected stages %v, got %v", want, pass.Stages)
	}
	if pass.PlateCount() != 1 {
		t.Fatalf("expected 1 plate, got %d", pass.PlateCount())
	}
	if len(pass.Rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(pass.Rects))
	}
}

func TestMergeDegenerateGrid(t *testing.T) {
	walls := NewWallSet(GridCoord{0, 0}, GridCoord{1, 0})
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero_height", 4, 0},
		{"negative_height", 4, -1},
		{"zero_width", 0, 4},
		{"negative_width", -3, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if plates := RowPlates(walls, c.width, c.height); plates != nil {
				t.Fatalf("expected no plates, got %v", plates)
			}
			if rects := Merge(walls, c.width, c.height); len(rects) != 0 {
				t.Fatalf("expected no rects, got %v", rects)
			}
		})
	}
}

func TestWorldBox(t *testing.T) {
	cases := []struct {
		name     string
		rect     Rect
		cellSize float64
		want     Box
	}{
		{"single_cell", Rect{Left: 0, Right: 0, Bottom: 0, Top: 0}, 16, Box{CenterX: 8, CenterY: 8, HalfW: 8, HalfH: 8}},
		{"wide", Rect{Left: 2, Right: 5, Bottom: 1, Top: 1}, 16, Box{CenterX: 64, CenterY: 24, HalfW: 32, HalfH: 8}},
		{"tall", Rect{Left: 3, Right: 3, Bottom: 0, Top: 3}, 8, Box{CenterX: 28, CenterY: 16, HalfW: 4, HalfH: 16}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.rect.WorldBox(c.cellSize)
			if got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
			// the bottom-left corner sits on the rect's first cell
			x, y := got.Min()
			if x != float64(c.rect.Left)*c.cellSize || y != float64(c.rect.Bottom)*c.cellSize {
				t.Fatalf("expected min (%v, %v), got (%v, %v)",
					float64(c.rect.Left)*c.cellSize, float64(c.rect.Bottom)*c.cellSize, x, y)
			}
		})
	}
}

func TestWallSetCoordsSorted(t *testing.T) {
	ws := NewWallSet(GridCoord{2, 1}, GridCoord{0, 1}, GridCoord{5, 0})
	want := []GridCoord{{5, 0}, {0, 1}, {2, 1}}
	if got := ws.Coords(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

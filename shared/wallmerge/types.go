// Package wallmerge compresses a grid of wall tiles into a small set of
// axis-aligned rectangles. It has no dependencies on ebitengine, donburi or
// the physics backend, pure data only.
package wallmerge

import "sort"

// GridCoord identifies a tile cell within a level grid. Y increases upward.
type GridCoord struct {
	X, Y int
}

// WallSet holds every wall cell of one level.
type WallSet map[GridCoord]struct{}

// NewWallSet builds a set from the given coordinates.
func NewWallSet(coords ...GridCoord) WallSet {
	ws := make(WallSet, len(coords))
	for _, c := range coords {
		ws[c] = struct{}{}
	}
	return ws
}

func (ws WallSet) Add(c GridCoord) {
	ws[c] = struct{}{}
}

func (ws WallSet) Contains(c GridCoord) bool {
	_, ok := ws[c]
	return ok
}

func (ws WallSet) Len() int {
	return len(ws)
}

// Coords returns the cells sorted bottom-up, then left to right.
func (ws WallSet) Coords() []GridCoord {
	coords := make([]GridCoord, 0, len(ws))
	for c := range ws {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// Plate is a wall run one tile tall, as an inclusive column interval.
// Two plates with the same bounds are the same plate.
type Plate struct {
	Left, Right int
}

// Rect is a rectangle of wall tiles with inclusive grid bounds.
type Rect struct {
	Left, Right, Top, Bottom int
}

func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

func (r Rect) Height() int {
	return r.Top - r.Bottom + 1
}

func (r Rect) Contains(c GridCoord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}

// Cells lists every grid cell covered by r.
func (r Rect) Cells() []GridCoord {
	cells := make([]GridCoord, 0, r.Width()*r.Height())
	for y := r.Bottom; y <= r.Top; y++ {
		for x := r.Left; x <= r.Right; x++ {
			cells = append(cells, GridCoord{X: x, Y: y})
		}
	}
	return cells
}

// Box is a rectangle in world units, described by its center and half extents.
type Box struct {
	CenterX, CenterY float64
	HalfW, HalfH     float64
}

// WorldBox converts r into world units for the given cell size.
func (r Rect) WorldBox(cellSize float64) Box {
	return Box{
		CenterX: float64(r.Left+r.Right+1) * cellSize / 2,
		CenterY: float64(r.Bottom+r.Top+1) * cellSize / 2,
		HalfW:   float64(r.Right-r.Left+1) * cellSize / 2,
		HalfH:   float64(r.Top-r.Bottom+1) * cellSize / 2,
	}
}

// Min returns the bottom-left corner of the box.
func (b Box) Min() (float64, float64) {
	return b.CenterX - b.HalfW, b.CenterY - b.HalfH
}

// Cover returns the union of the cells of rects.
func Cover(rects []Rect) WallSet {
	ws := make(WallSet)
	for _, r := range rects {
		for _, c := range r.Cells() {
			ws.Add(c)
		}
	}
	return ws
}

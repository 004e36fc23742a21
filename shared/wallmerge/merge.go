package wallmerge

import "sort"

// RowPlates combines the wall tiles of every row into flat plates.
// The result is indexed by row; a grid with no cells yields nil.
func RowPlates(walls WallSet, width, height int) [][]Plate {
	if height <= 0 || width <= 0 {
		return nil
	}
	stack := make([][]Plate, 0, height)

	for y := 0; y < height; y++ {
		var row []Plate
		start, open := 0, false

		// x == width is a sentinel column so plates touching the right edge close
		for x := 0; x <= width; x++ {
			wall := x < width && walls.Contains(GridCoord{X: x, Y: y})
			switch {
			case open && !wall:
				row = append(row, Plate{Left: start, Right: x - 1})
				open = false
			case !open && wall:
				start, open = x, true
			}
		}

		stack = append(stack, row)
	}

	return stack
}

// MergePlates stacks identical plates of consecutive rows into rectangles.
// Plates only merge with plates of the exact same extent, so the result is
// not the smallest possible rectangle cover.
func MergePlates(stack [][]Plate) []Rect {
	var rects []Rect
	previous := make(map[Plate]Rect)

	// one extra empty row terminates rects touching the top edge
	rows := make([][]Plate, len(stack), len(stack)+1)
	copy(rows, stack)
	rows = append(rows, nil)

	for y, row := range rows {
		current := make(map[Plate]Rect, len(row))
		for _, plate := range row {
			if prev, ok := previous[plate]; ok {
				delete(previous, plate)
				prev.Top++
				current[plate] = prev
				continue
			}
			current[plate] = Rect{
				Left:   plate.Left,
				Right:  plate.Right,
				Top:    y,
				Bottom: y,
			}
		}

		// whatever was not continued has terminated
		rects = append(rects, finished(previous)...)
		previous = current
	}

	return rects
}

func finished(m map[Plate]Rect) []Rect {
	if len(m) == 0 {
		return nil
	}
	out := make([]Rect, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Left < out[j].Left })
	return out
}

// Merge runs the row and cross-row passes and returns the rectangles.
func Merge(walls WallSet, width, height int) []Rect {
	return MergePlates(RowPlates(walls, width, height))
}

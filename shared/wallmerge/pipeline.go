package wallmerge

// Stage names, in the order Run executes them.
const (
	StageRowPlates   = "row-plates"
	StageMergePlates = "merge-plates"
)

// Pass is the result of one merge run. Every field is a snapshot produced
// by one stage and is not touched by later stages.
type Pass struct {
	Width, Height int
	Walls         WallSet
	Plates        [][]Plate
	Rects         []Rect
	Stages        []string
}

type stage struct {
	name string
	run  func(p *Pass)
}

var stages = []stage{
	{StageRowPlates, func(p *Pass) { p.Plates = RowPlates(p.Walls, p.Width, p.Height) }},
	{StageMergePlates, func(p *Pass) { p.Rects = MergePlates(p.Plates) }},
}

// Run executes the merge stages in order for one level.
func Run(walls WallSet, width, height int) Pass {
	p := Pass{Width: width, Height: height, Walls: walls}
	for _, s := range stages {
		s.run(&p)
		p.Stages = append(p.Stages, s.name)
	}
	return p
}

// PlateCount is the number of plates found by the row stage.
func (p Pass) PlateCount() int {
	n := 0
	for _, row := range p.Plates {
		n += len(row)
	}
	return n
}

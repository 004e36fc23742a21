package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/automoto/nightfield/fonts"
	"github.com/automoto/nightfield/systems/factory"
	"github.com/automoto/nightfield/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoal checks whether the player touches the goal. Touching it removes
// the goal and starts the win overlay.
func UpdateGoal(ecs *ecs.ECS) {
	win := GetOrCreateWin(ecs)
	if win.IsWon {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry).Object

	check := playerObj.Check(0, 0, tags.ResolvGoal)
	if check == nil {
		return
	}

	for _, goalObj := range check.ObjectsByTags(tags.ResolvGoal) {
		if !overlaps(playerObj, goalObj) {
			continue
		}
		goalEntry, ok := goalObj.Data.(*donburi.Entry)
		if !ok || goalEntry == nil || !goalEntry.Valid() {
			continue
		}

		factory.DestroyEntity(ecs, goalEntry)

		win.IsWon = true
		win.Fade = gween.New(0, 1, cfg.Win.FadeSeconds, ease.OutQuad)
		win.Wins = RecordWin()
		return
	}
}

// overlaps is a strict bounding box test; resolv's Check only reports
// objects sharing a cell.
func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// UpdateWin advances the overlay fade.
func UpdateWin(ecs *ecs.ECS) {
	win := GetOrCreateWin(ecs)
	if !win.IsWon || win.Fade == nil {
		return
	}
	alpha, done := win.Fade.Update(1 / float32(cfg.C.TPS))
	win.Alpha = alpha
	if done {
		win.Alpha = 1
		win.Fade = nil
	}
}

// DrawWin renders the win text in the bottom-left corner, with the saved
// win total above it.
func DrawWin(ecs *ecs.ECS, screen *ebiten.Image) {
	win := GetOrCreateWin(ecs)
	if !win.IsWon {
		return
	}

	height := screen.Bounds().Dy()
	titleFont := fonts.Title.Get()
	bounds := text.BoundString(titleFont, cfg.Win.Text)
	x := cfg.Win.Margin
	y := height - cfg.Win.Margin - bounds.Max.Y
	text.Draw(screen, cfg.Win.Text, titleFont, x, y, fade(cfg.Win.TextColor, win.Alpha))

	if win.Wins > 0 {
		small := fonts.Small.Get()
		line := fmt.Sprintf("wins: %d", win.Wins)
		text.Draw(screen, line, small, x, y+bounds.Min.Y-cfg.Win.Margin, fade(cfg.Win.TextColor, win.Alpha))
	}
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

// GetOrCreateWin returns the singleton Win component, creating if needed
func GetOrCreateWin(e *ecs.ECS) *components.WinData {
	if _, ok := components.Win.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Win))
	}

	ent, _ := components.Win.First(e.World)
	return components.Win.Get(ent)
}

// IsWon checks if the goal has been reached
func IsWon(e *ecs.ECS) bool {
	return GetOrCreateWin(e).IsWon
}

// WithWinCheck wraps a system to skip execution once the game is won
func WithWinCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsWon(e) {
			return
		}
		system(e)
	}
}

package tags

import "github.com/yohamta/donburi"

var (
	Player       = donburi.NewTag().SetName("Player")
	Enemy        = donburi.NewTag().SetName("Enemy")
	Wall         = donburi.NewTag().SetName("Wall")
	WallCollider = donburi.NewTag().SetName("WallCollider")
	Goal         = donburi.NewTag().SetName("Goal")

	// Wall tile whose owner chain was already reported as broken
	OrphanWall = donburi.NewTag().SetName("OrphanWall")
)

// Resolv tags for sensor checks
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvGoal   = "goal"
)

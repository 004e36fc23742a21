package components

import (
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Speed      float64
	ChaseRange float64
	Chasing    bool
}

var Enemy = donburi.NewComponentType[EnemyData]()

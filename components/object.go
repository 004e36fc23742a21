package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the sensor space used for overlap checks and the debug overlay.
var Space = donburi.NewComponentType[resolv.Space]()

package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32 // ticks per frame
}

// CharacterAnimations maps a sprite key to its walk cycle. Frames only
// advance while the character moves.
var CharacterAnimations = map[string]AnimationDef{
	"player": {First: 0, Last: 5, Step: 1, Speed: 7.5}, // 1/8 s at 60 TPS
	"enemy":  {First: 0, Last: 3, Step: 1, Speed: 5},   // 1/12 s at 60 TPS
}

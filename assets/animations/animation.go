package animations

// Animation is a looping frame cycle driven by ticks.
type Animation struct {
	First      int
	Last       int
	Step       int     // frames moved per advance
	SpeedInTps float32 // ticks between advances
	ticks      float32
	frame      int
}

// Tick counts one game tick and advances the frame when its timer runs out.
func (a *Animation) Tick() {
	a.ticks -= 1.0
	if a.ticks > 0 {
		return
	}
	a.ticks += a.SpeedInTps
	a.frame += a.Step
	if a.frame > a.Last {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Rest returns to the first frame without touching the timer.
func (a *Animation) Rest() {
	a.frame = a.First
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		ticks:      speed,
		frame:      first,
	}
}

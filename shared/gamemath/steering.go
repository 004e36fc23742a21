package gamemath

import "math"

// InputDirection turns held directions into a unit vector, y up. Opposing
// directions cancel out.
func InputDirection(up, down, left, right bool) (x, y float64) {
	if right {
		x++
	}
	if left {
		x--
	}
	if up {
		y++
	}
	if down {
		y--
	}
	return Normalize(x, y)
}

// Normalize returns the unit vector of (x, y), or zero for the zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// HomingVelocity returns velocity components to home toward a target.
func HomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX, dirY := Normalize(targetX-fromX, targetY-fromY)
	return dirX * speed, dirY * speed
}

// ChaseVelocity is HomingVelocity limited to targets closer than chaseRange.
// ok is false when the target is out of range.
func ChaseVelocity(fromX, fromY, targetX, targetY, chaseRange, speed float64) (velX, velY float64, ok bool) {
	if math.Hypot(targetX-fromX, targetY-fromY) >= chaseRange {
		return 0, 0, false
	}
	velX, velY = HomingVelocity(fromX, fromY, targetX, targetY, speed)
	return velX, velY, true
}

// CursorOffset converts a cursor position in screen pixels into an offset
// from the screen center in world units, y up.
func CursorOffset(cursorX, cursorY, screenW, screenH int, scale float64) (x, y float64) {
	x = (float64(cursorX) - float64(screenW)/2) * scale
	y = (float64(screenH)/2 - float64(cursorY)) * scale
	return x, y
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

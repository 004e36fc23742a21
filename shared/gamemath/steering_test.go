package gamemath

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestInputDirection(t *testing.T) {
	d := math.Sqrt2 / 2
	tests := []struct {
		name                  string
		up, down, left, right bool
		x, y                  float64
	}{
		{"none", false, false, false, false, 0, 0},
		{"up", true, false, false, false, 0, 1},
		{"down", false, true, false, false, 0, -1},
		{"left", false, false, true, false, -1, 0},
		{"up right", true, false, false, true, d, d},
		{"down left", false, true, true, false, -d, -d},
		{"opposing", true, true, true, true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := InputDirection(tt.up, tt.down, tt.left, tt.right)
			if !near(x, tt.x) || !near(y, tt.y) {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestChaseVelocity(t *testing.T) {
	tests := []struct {
		name           string
		tx, ty         float64
		ok             bool
		wantVX, wantVY float64
	}{
		{"in range", 30, 40, true, 54, 72},
		{"out of range", 300, 400, false, 0, 0},
		{"exactly at range", 200, 0, false, 0, 0},
		{"same position", 0, 0, true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy, ok := ChaseVelocity(0, 0, tt.tx, tt.ty, 200, 90)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !near(vx, tt.wantVX) || !near(vy, tt.wantVY) {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tt.wantVX, tt.wantVY, vx, vy)
			}
		})
	}
}

func TestCursorOffset(t *testing.T) {
	x, y := CursorOffset(320, 180, 640, 360, 0.5)
	if x != 0 || y != 0 {
		t.Fatalf("centered cursor should give no offset, got (%v, %v)", x, y)
	}

	x, y = CursorOffset(0, 0, 640, 360, 0.5)
	if x != -160 || y != 90 {
		t.Fatalf("expected (-160, 90) for the top-left corner, got (%v, %v)", x, y)
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(5, 3); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
	if got := ClampSpeed(-5, 3); got != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
	if got := ClampSpeed(1, 3); got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreTuning(t *testing.T) {
	p, e, ph, c := Player, Enemy, Physics, Camera
	t.Cleanup(func() {
		Player, Enemy, Physics, Camera = p, e, ph, c
	})
}

func TestApplyTuningPartial(t *testing.T) {
	restoreTuning(t)
	before := Player

	err := ApplyTuning([]byte(`
player:
  speed: 140
enemy:
  chase_range: 320
physics:
  wall_friction: 0.3
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	if Player.Speed != 140 {
		t.Fatalf("expected player speed 140, got %v", Player.Speed)
	}
	if Player.HalfW != before.HalfW || Player.SpriteKey != before.SpriteKey {
		t.Fatalf("untouched player keys changed: %+v", Player)
	}
	if Enemy.ChaseRange != 320 {
		t.Fatalf("expected chase range 320, got %v", Enemy.ChaseRange)
	}
	if Physics.WallFriction != 0.3 {
		t.Fatalf("expected wall friction 0.3, got %v", Physics.WallFriction)
	}
}

func TestApplyTuningInvalidLeavesConfig(t *testing.T) {
	restoreTuning(t)
	before := Player

	if err := ApplyTuning([]byte("player: [not, a, map")); err == nil {
		t.Fatal("expected a parse error")
	}
	if Player != before {
		t.Fatalf("config changed after a failed parse: %+v", Player)
	}
}

func TestApplyTuningNullGroup(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty group", "player:\n"},
		{"tilde", "enemy: ~\n"},
		{"null physics with camera override", "physics: null\ncamera:\n  scale: 0.25\n"},
		{"all empty", "player:\nenemy:\nphysics:\ncamera:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreTuning(t)
			player, enemy, physics := Player, Enemy, Physics

			if err := ApplyTuning([]byte(tt.data)); err != nil {
				t.Fatalf("ApplyTuning: %v", err)
			}
			if Player != player || Enemy != enemy || Physics != physics {
				t.Fatalf("null group changed config: %+v %+v %+v", Player, Enemy, Physics)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWatchTuningReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("player:\n  speed: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tuning.yaml" {
			t.Fatalf("unexpected event path %q", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event for a write to the tuning file")
	}
}

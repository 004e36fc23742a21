package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the configuration groups that may be overridden from
// YAML. Keys left out of the file keep their current value.
type tuningFile struct {
	Player  *PlayerConfig  `yaml:"player"`
	Enemy   *EnemyConfig   `yaml:"enemy"`
	Physics *PhysicsConfig `yaml:"physics"`
	Camera  *CameraConfig  `yaml:"camera"`
}

// ApplyTuning overrides the global configuration with YAML data. Nothing is
// changed when the data fails to parse.
func ApplyTuning(data []byte) error {
	p, e, ph, c := Player, Enemy, Physics, Camera
	t := tuningFile{Player: &p, Enemy: &e, Physics: &ph, Camera: &c}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}

	// a null group ("player:" or "enemy: ~") decodes to nil and keeps its value
	if t.Player != nil {
		Player = *t.Player
	}
	if t.Enemy != nil {
		Enemy = *t.Enemy
	}
	if t.Physics != nil {
		Physics = *t.Physics
	}
	if t.Camera != nil {
		Camera = *t.Camera
	}
	return nil
}

// LoadTuning reads and applies a YAML tuning file.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ApplyTuning(data)
}

// TuningWatcher reports writes to a tuning file. Events are delivered on a
// channel so the game loop can apply them between frames.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching the directory that holds path.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	// editors often replace the file, so watch the directory
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    abs,
		Events:  make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(tw.path) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case tw.Events <- tw.path:
			default:
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case tw.Errors <- err:
			default:
			}
		case <-tw.closeCh:
			return
		}
	}
}

package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress is the progress data stored on disk
type SavedProgress struct {
	Wins int `json:"wins"`
}

const progressKey = "progress"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user save location.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "nightfield",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadProgress loads saved progress. Missing or unreadable data gives a
// zero value.
func LoadProgress() SavedProgress {
	var progress SavedProgress
	if gdataManager == nil {
		return progress
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return progress
	}
	if data == nil {
		return progress
	}

	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return SavedProgress{}
	}
	return progress
}

// SaveProgress writes progress to disk
func SaveProgress(p SavedProgress) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// RecordWin bumps the saved win counter and returns the new total.
func RecordWin() int {
	p := LoadProgress()
	p.Wins++
	_ = SaveProgress(p)
	return p.Wins
}

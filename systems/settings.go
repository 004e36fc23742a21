package systems

import (
	"github.com/automoto/nightfield/components"
	cfg "github.com/automoto/nightfield/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug toggle and the quit request.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionQuit).JustPressed {
		settings.Quit = true
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.ShowColliders,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// QuitRequested reports whether the player asked to leave the game.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreateSettings(ecs).Quit
}

package config

import (
	_ "embed"
)

//go:embed defaults/play.yaml
var defaultPlayYAML []byte

// DefaultPlayConfig returns the default session configuration.
func DefaultPlayConfig() PlayConfig {
	return PlayConfig{
		Environment: "pacman",
		TickRate:    30,
		Scale:       4,
		Scripted: ScriptedConfig{
			Steps:     50,
			BlockSize: 10,
		},
		DBPath: "~/.tui-pacman/episodes.db",
	}
}

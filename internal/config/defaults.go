package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the hardcoded default configuration.
// It mirrors defaults/chomp.yaml and serves as the last-resort fallback.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Arena: ArenaConfig{
			Left:          -450.0,
			Right:         450.0,
			Bottom:        -300.0,
			Top:           300.0,
			WallThickness: 10.0,
		},
		Player: PlayerConfig{
			Width:            20.0,
			Height:           20.0,
			Speed:            700.0,
			InitialDirection: VecConfig{X: -0.5, Y: 0.0},
			BoundsShrink:     2.75,
		},
		Food: FoodConfig{
			Width:  20.0,
			Height: 20.0,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultChompYAML
}

package config

import (
	_ "embed"

	chase "github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default Maze Chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Maze: MazeConfig{
			Width:             21,
			Height:            15,
			LoopFraction:      0.2,
			PursuerCount:      4,
			CollectibleTarget: 60,
		},
		Gameplay:    chase.DefaultSimConfig(),
		AI:          chase.DefaultAIConfig(),
		Progression: DefaultChaseProgression(),
	}
}

// DefaultChaseProgression returns the default campaign progression.
func DefaultChaseProgression() ChaseProgression {
	return ChaseProgression{
		SpeedPerLevel: 0.05,
		MaxSpeedBoost: 0.5,
		GrowEvery:     2,
		GrowStep:      2,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chase", "chase_endless":
		return defaultChaseYAML
	default:
		return nil
	}
}

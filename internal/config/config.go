// Package config provides YAML-based game configuration loading and
// difficulty management for the platform.
package config

import (
	chase "github.com/vovakirdan/mazehunt/internal/games/chase/core"
)

// ChaseConfig contains all configuration for the Maze Chase game.
type ChaseConfig struct {
	Maze        MazeConfig       `yaml:"maze"`
	Gameplay    chase.SimConfig  `yaml:"gameplay"`
	AI          chase.AIConfig   `yaml:"ai"`
	Progression ChaseProgression `yaml:"progression"`
}

// MazeConfig defines the generated maze parameters.
type MazeConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	LoopFraction      float64 `yaml:"loop_fraction"`
	PursuerCount      int     `yaml:"pursuer_count"`
	CollectibleTarget int     `yaml:"collectible_target"`
}

// ChaseProgression defines how the campaign hardens over cleared mazes.
type ChaseProgression struct {
	// SpeedPerLevel is added to the pursuer speed multiplier on every
	// cleared maze, up to MaxSpeedBoost.
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	MaxSpeedBoost float64 `yaml:"max_speed_boost"`

	// GrowEvery levels, the maze grows by GrowStep cells per axis.
	GrowEvery int `yaml:"grow_every"`
	GrowStep  int `yaml:"grow_step"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyChasePreset modifies the config based on a difficulty preset.
// The "fixed" preset disables campaign progression entirely.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Maze.PursuerCount = 3
		cfg.AI.HunterSightRange = 7
		cfg.AI.EvadeSpeedFactor = 0.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Maze.PursuerCount = 5
		cfg.AI.HunterSightRange = 14
		cfg.AI.ChasePersistence = 150
		cfg.Progression.SpeedPerLevel *= 2
	case DifficultyFixed:
		cfg.Progression.SpeedPerLevel = 0
		cfg.Progression.GrowEvery = 0
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazehunt/internal/config"
	"github.com/vovakirdan/mazehunt/internal/core"
	"github.com/vovakirdan/mazehunt/internal/games/chase"
	"github.com/vovakirdan/mazehunt/internal/platform/tui"
	"github.com/vovakirdan/mazehunt/internal/registry"
	"github.com/vovakirdan/mazehunt/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/HJKL - Move
  Space            - Sprint burst
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, fewer and slower pursuers
  normal - Defaults
  hard   - 2 lives, relentless hunters
  fixed  - No campaign progression

Examples:
  mazehunt play chase
  mazehunt play chase --seed 42
  mazehunt play chase_endless --difficulty hard
  mazehunt play chase --config ./my-chase.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalSize returns the terminal dimensions, with sane fallbacks.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// prepareChase loads the YAML config, applies the difficulty preset and
// injects the resulting settings into the chase game. When no preset
// flag was given, the interactive selector is shown; a false return
// means the user backed out.
func prepareChase(cfg core.RuntimeConfig) bool {
	chaseCfg, err := config.LoadChase(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset := config.DifficultyPreset(flagDifficulty)
	if flagDifficulty == "" {
		selection, selErr := tui.RunChaseMenu(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if selection == nil {
			return false
		}
		preset = selection.Preset
	}
	config.ApplyChasePreset(&chaseCfg, preset)

	chase.SetSettings(chaseSettings(chaseCfg))
	return true
}

// chaseSettings converts the loaded YAML config into game settings.
func chaseSettings(cfg config.ChaseConfig) chase.ChaseSettings {
	return chase.ChaseSettings{
		MazeWidth:         cfg.Maze.Width,
		MazeHeight:        cfg.Maze.Height,
		LoopFraction:      cfg.Maze.LoopFraction,
		PursuerCount:      cfg.Maze.PursuerCount,
		CollectibleTarget: cfg.Maze.CollectibleTarget,
		Sim:               cfg.Gameplay,
		AI:                cfg.AI,
		SpeedPerLevel:     cfg.Progression.SpeedPerLevel,
		MaxSpeedBoost:     cfg.Progression.MaxSpeedBoost,
		GrowEvery:         cfg.Progression.GrowEvery,
		GrowStep:          cfg.Progression.GrowStep,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mazehunt list' to see available modes.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if !prepareChase(cfg) {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

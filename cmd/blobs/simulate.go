package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/games/blobs"
	"github.com/vovakirdan/blob-arcade/internal/platform/headless"
)

var (
	flagSimTicks   uint64
	flagSimRate    int
	flagSimPolicy  string
	flagSimLevel   int
	flagSimEndless bool
	flagSimUntil   bool
	flagSimQuiet   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless",
	Long: `Run the simulation without a terminal UI and print what happened.

The same --seed and policy always produce the same run, which makes this
useful for checking level tables and difficulty settings.

Policies:
  idle    - Never touch the controls
  random  - Steer left, right or straight for random stretches

Examples:
  blobs simulate --seed 42
  blobs simulate --ticks 20000 --policy random --until-over
  blobs simulate --levels ./my-levels.yaml --level 2
  blobs simulate --rate 60 --ticks 600`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	addGameFlags(simulateCmd)
	simulateCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 3600, "Number of ticks to run (0 = until game over)")
	simulateCmd.Flags().IntVar(&flagSimRate, "rate", 0, "Ticks per second (0 = as fast as possible)")
	simulateCmd.Flags().StringVar(&flagSimPolicy, "policy", "random", "Input policy: idle, random")
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 0, "Level to start from (1-indexed)")
	simulateCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Loop the campaign endlessly")
	simulateCmd.Flags().BoolVar(&flagSimUntil, "until-over", false, "Stop as soon as the game is won or lost")
	simulateCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the summary")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "sim",
	})
	if flagSimQuiet {
		logger.SetLevel(log.WarnLevel)
	}

	blobs.SetConfigPath(flagConfig)
	blobs.SetLevelsPath(flagLevels)
	blobs.SetDifficultyPreset(flagDifficulty)
	bc, levels, err := blobs.LoadConfigured()
	if err != nil {
		logger.Warn("config fallback", "err", err)
	}

	mode := blobs.ModeCampaign
	if flagSimEndless {
		mode = blobs.ModeEndless
	}
	game := blobs.NewWithConfig(mode, bc, levels)
	game.SetStart(flagSimLevel)

	var policy headless.Policy
	switch flagSimPolicy {
	case "idle":
		policy = headless.Idle
	case "random":
		policy = headless.RandomSteering(flagSeed)
	default:
		return fmt.Errorf("unknown policy %q", flagSimPolicy)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = seed

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, runErr := headless.Run(ctx, game, cfg, headless.Options{
		Ticks:          flagSimTicks,
		Rate:           flagSimRate,
		StopOnGameOver: flagSimUntil || flagSimTicks == 0,
		Policy:         policy,
		OnEvent: func(ev core.Event) {
			logEvent(logger, ev)
		},
	})
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}

	outcome := "running"
	switch {
	case res.State.Won:
		outcome = "won"
	case res.State.GameOver:
		outcome = "lost"
	}

	fmt.Println()
	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Ticks:    %d (%s)\n", res.Ticks, res.Elapsed.Round(time.Millisecond))
	fmt.Printf("Outcome:  %s on level %d\n", outcome, res.State.Level)
	fmt.Printf("Score:    %d\n", res.State.Score)
	fmt.Printf("Progress: %.0f%%\n", res.State.Progress*100)
	fmt.Printf("Events:   %d\n", len(res.Events))
	return nil
}

func logEvent(logger *log.Logger, ev core.Event) {
	switch ev.Kind {
	case core.EventLevelStarted:
		logger.Info("level started", "level", ev.Level, "title", ev.Title)
	case core.EventLevelCleared:
		logger.Info("level cleared", "level", ev.Level, "score", ev.Score, "radius", fmt.Sprintf("%.1f", ev.Radius), "ticks", ev.Ticks)
	case core.EventLevelFailed:
		logger.Info("level failed", "level", ev.Level, "reason", ev.Reason, "score", ev.Score, "ticks", ev.Ticks)
	case core.EventCampaignWon:
		logger.Info("campaign won", "score", ev.Score)
	}
}

package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics on a simulated clock")
	scenarioPath := flag.String("scenario", "", "Scenario CSV to replay (headless)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := sim.Options{
		Headless:     *headless,
		ScenarioPath: *scenarioPath,
		OutputDir:    *outputDir,
		LogStats:     *logStats,
	}

	if *headless {
		s, err := sim.New(opts)
		if err != nil {
			slog.Error("failed to start simulator", "error", err)
			os.Exit(1)
		}
		defer s.Unload()

		slog.Info("starting headless simulation",
			"scenario", *scenarioPath,
			"max_ticks", *maxTicks,
			"tick_ms", cfg.Timers.HeadlessTickMs,
		)

		for {
			s.StepHeadless()

			if *maxTicks > 0 && s.Tick() >= *maxTicks {
				slog.Info("max ticks reached", "tick", s.Tick())
				return
			}
			if s.Finished() {
				slog.Info("scenario finished", "tick", s.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "ADAS Level-1 Simulator")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := sim.New(opts)
	if err != nil {
		slog.Error("failed to start simulator", "error", err)
		os.Exit(1)
	}
	defer s.Unload()

	for !rl.WindowShouldClose() {
		s.Frame()

		if *maxTicks > 0 && s.Tick() >= *maxTicks {
			break
		}
	}
}

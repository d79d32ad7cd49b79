// Package sim owns the main-loop state: the vehicle snapshot, the transient
// timers, the warning engine wiring, the alert dispatcher, the panels, and the
// monotonic clock. All state mutation happens on the main loop; the only
// background work is the alert tone worker.
package sim

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ORKTech/ADAS-Level-1-Simulation/alert"
	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/mid"
	"github.com/ORKTech/ADAS-Level-1-Simulation/scenario"
	"github.com/ORKTech/ADAS-Level-1-Simulation/telemetry"
	"github.com/ORKTech/ADAS-Level-1-Simulation/ui"
	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
	"github.com/ORKTech/ADAS-Level-1-Simulation/warnings"
)

// Options configures a simulator run.
type Options struct {
	Headless     bool
	ScenarioPath string
	OutputDir    string
	LogStats     bool
}

// Sim is the simulator instance.
type Sim struct {
	opts Options

	state  *vehicle.State
	timers *vehicle.Timers

	dispatcher *alert.Dispatcher
	player     *alert.TonePlayer

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	script    *scenario.Script

	controls *ui.ControlsPanel
	midPanel *ui.MIDPanel
	theme    ui.Theme

	epoch time.Time
	nowMs int64
	tick  int

	model mid.Model
}

// New creates a simulator. In graphical mode the raylib window must already
// be open; in headless mode no raylib facilities are touched and the clock is
// simulated at the configured tick period.
func New(opts Options) (*Sim, error) {
	cfg := config.Cfg()

	s := &Sim{
		opts:      opts,
		state:     vehicle.NewState(),
		timers:    &vehicle.Timers{},
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindowSec),
		theme:     ui.DefaultTheme(),
		epoch:     time.Now(),
	}

	var player alert.Player
	if !opts.Headless {
		s.player = alert.NewTonePlayer()
		player = s.player
	}
	s.dispatcher = alert.NewDispatcher(player)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	s.output = output
	if err := s.output.WriteConfig(cfg); err != nil {
		slog.Warn("writing config snapshot failed", "error", err)
	}

	if opts.ScenarioPath != "" {
		script, err := scenario.Load(opts.ScenarioPath)
		if err != nil {
			s.output.Close()
			return nil, fmt.Errorf("loading scenario: %w", err)
		}
		s.script = script
		slog.Info("scenario loaded", "path", opts.ScenarioPath, "steps", script.Len())
	}

	if !opts.Headless {
		s.controls = ui.NewControlsPanel(10, 10, 540)
		s.midPanel = ui.NewMIDPanel(560, 60, 580, 620)
	}

	return s, nil
}

// Frame runs one graphical frame: widgets (which both render and collect
// input), event application, the derivation step, and the MID paint.
func (s *Sim) Frame() {
	s.nowMs = time.Since(s.epoch).Milliseconds()

	rl.BeginDrawing()
	rl.ClearBackground(s.theme.Background)

	events := s.controls.Draw(s.state, s.nowMs)
	s.applyEvents(events)
	s.step()

	s.midPanel.Draw(s.model)

	rl.EndDrawing()
	s.tick++
}

// StepHeadless runs one headless tick on the simulated clock, applying any
// scenario events that have come due.
func (s *Sim) StepHeadless() {
	s.nowMs = int64(s.tick) * int64(config.Cfg().Timers.HeadlessTickMs)

	if s.script != nil {
		s.applyEvents(s.script.Due(s.nowMs))
	}
	s.step()
	s.tick++
}

// step derives warnings, arbitrates the audible alert, records telemetry, and
// rebuilds the MID model. Mutations applied earlier in the tick are fully
// visible to every rule.
func (s *Sim) step() {
	s.timers.Expire(s.state, s.nowMs)

	rep := warnings.Evaluate(s.state, s.timers, s.nowMs)

	if s.dispatcher.Dispatch(int(rep.Priority), s.nowMs) {
		s.collector.RecordBeep(int(rep.Priority))
	}

	rec, changed := s.collector.RecordFrame(s.nowMs, s.state, rep)
	if changed {
		if err := s.output.WriteFrame(rec); err != nil {
			slog.Warn("telemetry write failed", "error", err)
		}
	}

	if s.collector.WindowDue(s.nowMs) {
		stats := s.collector.Flush(s.nowMs)
		if s.opts.LogStats {
			stats.Log()
		}
		if err := s.output.WriteStats(stats); err != nil {
			slog.Warn("stats write failed", "error", err)
		}
	}

	s.model = mid.Build(s.state, rep)
}

// applyEvents routes input events into the snapshot.
func (s *Sim) applyEvents(events []vehicle.Event) {
	for _, e := range events {
		if s.state.Apply(e, s.timers, s.nowMs) == vehicle.DoorBlocked {
			slog.Debug("door open blocked", "corner", e.Corner.String(), "speed_kmh", s.state.SpeedKmh, "obstacle", s.state.DoorObstacle)
		}
	}
}

// Tick returns the number of completed ticks.
func (s *Sim) Tick() int {
	return s.tick
}

// Finished reports whether a scripted headless run has nothing left to do:
// all steps consumed and every transient banner expired.
func (s *Sim) Finished() bool {
	if s.script == nil || !s.script.Done() {
		return false
	}
	return !s.timers.DoorBlockActive(s.nowMs) &&
		!s.timers.LaneMsgActive(s.nowMs) &&
		!s.state.LaneChangeRequested
}

// Unload stops the alert worker and releases audio and output resources.
func (s *Sim) Unload() {
	s.dispatcher.Close()
	if s.player != nil {
		s.player.Unload()
	}
	if err := s.output.Close(); err != nil {
		slog.Warn("closing output failed", "error", err)
	}
}

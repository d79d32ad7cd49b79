package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowStartMs int64 `csv:"window_start_ms"`
	WindowEndMs   int64 `csv:"window_end_ms"`

	Frames        int `csv:"frames"`
	WarningFrames int `csv:"warning_frames"`

	// Speed and headway over the window
	SpeedMean   float64 `csv:"speed_mean"`
	SpeedStdDev float64 `csv:"speed_stddev"`
	FrontMean   float64 `csv:"front_mean"`
	FrontStdDev float64 `csv:"front_stddev"`

	// Rule fire counts (frames in which each rule fired)
	HeadlightsNight  int `csv:"headlights_night"`
	HeadlightsDay    int `csv:"headlights_day"`
	ForwardCollision int `csv:"forward_collision"`
	LowTyrePressure  int `csv:"low_tyre_pressure"`
	HandsOff         int `csv:"hands_off"`
	DoorOpenMoving   int `csv:"door_open_moving"`
	ExitObstacle     int `csv:"exit_obstacle"`
	DoorBlocked      int `csv:"door_blocked"`
	LaneChange       int `csv:"lane_change"`

	// Dispatched beep patterns by priority
	BeepsAdvisory int `csv:"beeps_advisory"`
	BeepsCaution  int `csv:"beeps_caution"`
	BeepsCritical int `csv:"beeps_critical"`
}

// Log writes the window summary through slog.
func (w WindowStats) Log() {
	slog.Info("stats window",
		"window_start_ms", w.WindowStartMs,
		"window_end_ms", w.WindowEndMs,
		"frames", w.Frames,
		"warning_frames", w.WarningFrames,
		"speed_mean", w.SpeedMean,
		"speed_stddev", w.SpeedStdDev,
		"front_mean", w.FrontMean,
		"front_stddev", w.FrontStdDev,
		"fcw", w.ForwardCollision,
		"beeps_advisory", w.BeepsAdvisory,
		"beeps_caution", w.BeepsCaution,
		"beeps_critical", w.BeepsCritical,
	)
}

// meanStdDev computes mean and standard deviation, guarding the degenerate
// sample sizes gonum leaves NaN.
func meanStdDev(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(values, nil)
}

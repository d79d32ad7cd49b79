// Package telemetry provides per-frame warning records and windowed run
// statistics for headless experiments and long interactive sessions.
package telemetry

import (
	"strings"

	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
	"github.com/ORKTech/ADAS-Level-1-Simulation/warnings"
)

// FrameRecord is one CSV row describing the warning situation of a frame.
// Rows are written edge-triggered: only when the warning set or priority
// changed since the previous frame.
type FrameRecord struct {
	ElapsedMs     int64  `csv:"elapsed_ms"`
	SpeedKmh      int    `csv:"speed_kmh"`
	FrontDistM    int    `csv:"front_dist_m"`
	FCWThresholdM int    `csv:"fcw_threshold_m"`
	Priority      int    `csv:"priority"`
	WarningCount  int    `csv:"warning_count"`
	Warnings      string `csv:"warnings"` // display texts joined by "; "
}

// NewFrameRecord builds the CSV row for one frame.
func NewFrameRecord(now int64, s *vehicle.State, rep warnings.Report) FrameRecord {
	return FrameRecord{
		ElapsedMs:     now,
		SpeedKmh:      s.SpeedKmh,
		FrontDistM:    s.FrontDistM,
		FCWThresholdM: warnings.FCWThresholdM(s.SpeedKmh),
		Priority:      int(rep.Priority),
		WarningCount:  len(rep.Warnings),
		Warnings:      strings.Join(rep.Texts(), "; "),
	}
}

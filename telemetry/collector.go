package telemetry

import (
	"strconv"
	"strings"

	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
	"github.com/ORKTech/ADAS-Level-1-Simulation/warnings"
)

// Collector accumulates frame and beep activity within fixed-duration
// windows and produces WindowStats on flush. It also performs the
// edge-triggered change detection for FrameRecord emission.
type Collector struct {
	windowMs    int64
	windowStart int64

	frames        int
	warningFrames int
	ruleCounts    [warnings.NumRules]int
	beepCounts    [4]int

	speeds []float64
	fronts []float64

	lastKey string
}

// NewCollector creates a collector with the given window duration in seconds.
func NewCollector(windowSec float64) *Collector {
	windowMs := int64(windowSec * 1000)
	if windowMs < 1 {
		windowMs = 1
	}
	return &Collector{windowMs: windowMs}
}

// RecordFrame accounts one frame and returns its record plus whether the
// warning situation changed since the previous frame.
func (c *Collector) RecordFrame(now int64, s *vehicle.State, rep warnings.Report) (FrameRecord, bool) {
	c.frames++
	if len(rep.Warnings) > 0 {
		c.warningFrames++
	}
	for _, w := range rep.Warnings {
		c.ruleCounts[w.Rule]++
	}
	c.speeds = append(c.speeds, float64(s.SpeedKmh))
	c.fronts = append(c.fronts, float64(s.FrontDistM))

	rec := NewFrameRecord(now, s, rep)

	key := strconv.Itoa(rec.Priority) + "|" + strings.Join(rep.Texts(), "\n")
	changed := key != c.lastKey
	c.lastKey = key

	return rec, changed
}

// RecordBeep accounts one dispatched pattern start.
func (c *Collector) RecordBeep(priority int) {
	if priority >= 1 && priority <= 3 {
		c.beepCounts[priority]++
	}
}

// WindowDue reports whether the current window has elapsed.
func (c *Collector) WindowDue(now int64) bool {
	return now-c.windowStart >= c.windowMs
}

// Flush closes the current window, returning its stats and starting the next
// window at now.
func (c *Collector) Flush(now int64) WindowStats {
	speedMean, speedStd := meanStdDev(c.speeds)
	frontMean, frontStd := meanStdDev(c.fronts)

	stats := WindowStats{
		WindowStartMs: c.windowStart,
		WindowEndMs:   now,
		Frames:        c.frames,
		WarningFrames: c.warningFrames,
		SpeedMean:     speedMean,
		SpeedStdDev:   speedStd,
		FrontMean:     frontMean,
		FrontStdDev:   frontStd,

		HeadlightsNight:  c.ruleCounts[warnings.RuleHeadlightsNight],
		HeadlightsDay:    c.ruleCounts[warnings.RuleHeadlightsDay],
		ForwardCollision: c.ruleCounts[warnings.RuleForwardCollision],
		LowTyrePressure:  c.ruleCounts[warnings.RuleLowTyrePressure],
		HandsOff:         c.ruleCounts[warnings.RuleHandsOff],
		DoorOpenMoving:   c.ruleCounts[warnings.RuleDoorOpenMoving],
		ExitObstacle:     c.ruleCounts[warnings.RuleExitObstacle],
		DoorBlocked:      c.ruleCounts[warnings.RuleDoorBlocked],
		LaneChange:       c.ruleCounts[warnings.RuleLaneChange],

		BeepsAdvisory: c.beepCounts[1],
		BeepsCaution:  c.beepCounts[2],
		BeepsCritical: c.beepCounts[3],
	}

	c.windowStart = now
	c.frames = 0
	c.warningFrames = 0
	c.ruleCounts = [warnings.NumRules]int{}
	c.beepCounts = [4]int{}
	c.speeds = c.speeds[:0]
	c.fronts = c.fronts[:0]

	return stats
}

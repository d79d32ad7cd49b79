// Package warnings derives the driver warning list and its highest priority
// from the vehicle snapshot. Rules run in a fixed order that also fixes the
// display order; the reported priority is the maximum over fired rules.
package warnings

import (
	"fmt"
	"math"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/physics"
	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
)

// Priority grades a warning's urgency and selects the audible pattern.
type Priority int

const (
	PriorityNone     Priority = iota
	PriorityAdvisory          // single low beep
	PriorityCaution           // two medium beeps
	PriorityCritical          // three high beeps
)

// Rule identifies which rule produced a warning, mainly for telemetry.
type Rule uint8

const (
	RuleHeadlightsNight Rule = iota
	RuleHeadlightsDay
	RuleForwardCollision
	RuleLowTyrePressure
	RuleHandsOff
	RuleDoorOpenMoving
	RuleExitObstacle
	RuleDoorBlocked
	RuleLaneChange
	NumRules
)

// Warning is one fired rule with its display text.
type Warning struct {
	Rule     Rule
	Text     string
	Priority Priority
}

// Report is the engine output for one frame.
type Report struct {
	Warnings []Warning
	Priority Priority
}

// Texts returns the display texts in rule order.
func (r Report) Texts() []string {
	out := make([]string, len(r.Warnings))
	for i, w := range r.Warnings {
		out[i] = w.Text
	}
	return out
}

// FCWThresholdM computes the adaptive forward-collision threshold: stopping
// distance plus vehicle length plus a safety margin, rounded up and capped at
// the front-distance sensor range.
func FCWThresholdM(speedKmh int) int {
	cfg := config.Cfg().Warnings

	d := physics.StoppingDistanceM(speedKmh) + cfg.VehicleLengthM
	threshold := int(math.Ceil(d + cfg.FCWMarginM))
	if threshold > cfg.FCWMaxThresholdM {
		threshold = cfg.FCWMaxThresholdM
	}
	return threshold
}

// Evaluate runs all rules against the snapshot and the banner deadlines.
// It reads state only; it never mutates.
func Evaluate(s *vehicle.State, t *vehicle.Timers, now int64) Report {
	cfg := config.Cfg().Warnings
	var rep Report

	add := func(rule Rule, text string, p Priority) {
		rep.Warnings = append(rep.Warnings, Warning{Rule: rule, Text: text, Priority: p})
		if p > rep.Priority {
			rep.Priority = p
		}
	}

	// 1. Headlights vs. ambient
	if s.NightMode && !s.HeadlightsOn {
		add(RuleHeadlightsNight, "Headlights OFF (night)", PriorityCaution)
	} else if !s.NightMode && s.HeadlightsOn {
		add(RuleHeadlightsDay, "Headlights ON (day)", PriorityAdvisory)
	}

	// 2. Forward collision, adaptive threshold
	threshold := FCWThresholdM(s.SpeedKmh)
	if s.FrontDistM < threshold {
		add(RuleForwardCollision,
			fmt.Sprintf("Forward Collision Warning (threshold %d m)", threshold),
			PriorityCritical)
	}

	// 3. Low tyre pressure, once per offending corner (strict <)
	for c := vehicle.FrontLeft; c < vehicle.NumCorners; c++ {
		if s.TyrePSI[c] < s.BasePressurePSI-cfg.LowPressureDeltaPSI {
			add(RuleLowTyrePressure, "Low Tyre Pressure", PriorityCaution)
		}
	}

	// 4. Hands off steering
	if !s.HandsOnWheel {
		add(RuleHandsOff, "Hands Off Steering", PriorityCaution)
	}

	// 5-6. Door state warnings
	if s.AnyDoorOpen() {
		if s.SpeedKmh > 0 {
			add(RuleDoorOpenMoving, "Door Open While Moving", PriorityCritical)
		}
		if s.DoorObstacle {
			add(RuleExitObstacle, "Exit Warning: Obstacle Detected - Close Door", PriorityCritical)
		}
	}

	// 7. Rejected door-open banner
	if t.DoorBlockActive(now) {
		add(RuleDoorBlocked, "Door opening blocked: obstacle or vehicle moving", PriorityCaution)
	}

	// 8. Lane change without indicator; an active indicator makes the request safe
	if s.LaneChangeRequested && !(s.LeftIndicator || s.RightIndicator) {
		add(RuleLaneChange, "Lane Change! Please use indicator", PriorityAdvisory)
	}

	return rep
}

// Package alert turns warning priorities into rate-limited audible beep
// patterns played on a background worker so the main loop never blocks.
package alert

import "time"

// Pulse is one tone in an alert pattern, followed by an optional silent gap.
type Pulse struct {
	FreqHz   float64
	Duration time.Duration
	Gap      time.Duration
}

// Pattern returns the beep pattern for a priority level. Priorities above 3
// use the critical pattern; 0 and below have no pattern.
func Pattern(priority int) []Pulse {
	switch {
	case priority >= 3:
		return []Pulse{
			{FreqHz: 1200, Duration: 150 * time.Millisecond, Gap: 100 * time.Millisecond},
			{FreqHz: 1200, Duration: 150 * time.Millisecond, Gap: 100 * time.Millisecond},
			{FreqHz: 1200, Duration: 150 * time.Millisecond},
		}
	case priority == 2:
		return []Pulse{
			{FreqHz: 900, Duration: 200 * time.Millisecond, Gap: 150 * time.Millisecond},
			{FreqHz: 900, Duration: 200 * time.Millisecond},
		}
	case priority == 1:
		return []Pulse{
			{FreqHz: 700, Duration: 200 * time.Millisecond},
		}
	}
	return nil
}

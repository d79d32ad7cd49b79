package vehicle

import "github.com/ORKTech/ADAS-Level-1-Simulation/config"

// DoorResult is the outcome of a door toggle request.
type DoorResult int

const (
	DoorApplied DoorResult = iota
	DoorBlocked
)

// String returns a log-friendly label.
func (r DoorResult) String() string {
	if r == DoorBlocked {
		return "blocked"
	}
	return "applied"
}

// RequestDoorToggle routes a door button press through the safety interlock.
// Closing is always allowed. Opening is blocked while an obstacle is present
// or the vehicle is moving; a rejected open raises the transient banner
// instead of an error.
func (s *State) RequestDoorToggle(c Corner, t *Timers, now int64) DoorResult {
	if c < 0 || c >= NumCorners {
		return DoorBlocked
	}

	if s.DoorOpen[c] {
		s.DoorOpen[c] = false
		return DoorApplied
	}

	if s.DoorObstacle || s.SpeedKmh > 0 {
		t.DoorBlockWarnUntil = now + int64(config.Cfg().Timers.DoorBlockMs)
		return DoorBlocked
	}

	s.DoorOpen[c] = true
	return DoorApplied
}

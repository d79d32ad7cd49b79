package vehicle

import "github.com/ORKTech/ADAS-Level-1-Simulation/config"

// Timers holds the two transient banner deadlines. These are deadlines, not
// running timers: a banner is active iff now is before its deadline. The zero
// value means no banner has ever been raised.
type Timers struct {
	DoorBlockWarnUntil int64 // monotonic ms; set on rejected door-open requests
	LaneMsgUntil       int64 // monotonic ms; set on lane-change requests
}

// DoorBlockActive reports whether the rejected-door banner is still showing.
func (t *Timers) DoorBlockActive(now int64) bool {
	return now < t.DoorBlockWarnUntil
}

// LaneMsgActive reports whether the lane-change banner is still showing.
func (t *Timers) LaneMsgActive(now int64) bool {
	return now < t.LaneMsgUntil
}

// Expire clears latched state whose deadline has elapsed. Called once per tick
// before the warning engine runs.
func (t *Timers) Expire(s *State, now int64) {
	if s.LaneChangeRequested && !t.LaneMsgActive(now) {
		s.LaneChangeRequested = false
	}
}

// RequestLaneChange latches the lane-change flag and refreshes its banner
// deadline, so N requests within the window keep the banner visible for the
// full duration after the last one.
func (s *State) RequestLaneChange(t *Timers, now int64) {
	s.LaneChangeRequested = true
	t.LaneMsgUntil = now + int64(config.Cfg().Timers.LaneMsgMs)
}

// Package vehicle holds the authoritative snapshot of all simulated inputs,
// the door safety interlock, the transient banner timers, and the typed input
// events that mutate them. The snapshot is owned by the main loop; only the
// event dispatcher and the door interlock mutate it.
package vehicle

import "github.com/ORKTech/ADAS-Level-1-Simulation/config"

// Corner identifies a vehicle corner for tyres and doors.
type Corner int

const (
	FrontLeft Corner = iota
	FrontRight
	RearLeft
	RearRight
	NumCorners
)

// String returns the short corner label used on the MID.
func (c Corner) String() string {
	switch c {
	case FrontLeft:
		return "FL"
	case FrontRight:
		return "FR"
	case RearLeft:
		return "RL"
	case RearRight:
		return "RR"
	}
	return "??"
}

// State is the simulated vehicle snapshot. Invariants:
// LeftIndicator and RightIndicator are never both true, and a door may open
// only while the vehicle is stationary with no door obstacle present.
type State struct {
	SpeedKmh        int
	FrontDistM      int
	BasePressurePSI int
	TyrePSI         [NumCorners]int

	HeadlightsOn bool
	NightMode    bool
	HandsOnWheel bool

	LeftIndicator  bool
	RightIndicator bool

	DoorObstacle        bool
	LaneChangeRequested bool
	DoorOpen            [NumCorners]bool
}

// NewState returns the power-on snapshot from config defaults: stationary,
// maximum headway, all tyres at base pressure, hands on the wheel.
func NewState() *State {
	cfg := config.Cfg().Vehicle

	s := &State{
		SpeedKmh:        cfg.InitialSpeedKmh,
		FrontDistM:      cfg.InitialFrontM,
		BasePressurePSI: cfg.InitialBasePSI,
		HandsOnWheel:    true,
	}
	for i := range s.TyrePSI {
		s.TyrePSI[i] = cfg.InitialBasePSI
	}
	return s
}

// SetSpeed updates vehicle speed, clamped to the configured range.
func (s *State) SetSpeed(kmh int) {
	s.SpeedKmh = clamp(kmh, 0, config.Cfg().Vehicle.SpeedMaxKmh)
}

// SetFrontDistance updates the measured headway, clamped to sensor range.
func (s *State) SetFrontDistance(m int) {
	s.FrontDistM = clamp(m, 0, config.Cfg().Vehicle.FrontDistMaxM)
}

// SetBasePressure updates the TPMS base value and bulk-syncs all four corners.
func (s *State) SetBasePressure(psi int) {
	cfg := config.Cfg().Vehicle
	s.BasePressurePSI = clamp(psi, cfg.PressureMinPSI, cfg.PressureMaxPSI)
	for i := range s.TyrePSI {
		s.TyrePSI[i] = s.BasePressurePSI
	}
}

// SetTyrePressure updates a single corner. The base value is not touched.
func (s *State) SetTyrePressure(c Corner, psi int) {
	if c < 0 || c >= NumCorners {
		return
	}
	cfg := config.Cfg().Vehicle
	s.TyrePSI[c] = clamp(psi, cfg.PressureMinPSI, cfg.PressureMaxPSI)
}

// ToggleHeadlights flips the headlight switch.
func (s *State) ToggleHeadlights() {
	s.HeadlightsOn = !s.HeadlightsOn
}

// ToggleNightMode flips the simulated ambient light.
func (s *State) ToggleNightMode() {
	s.NightMode = !s.NightMode
}

// ToggleHands flips steering-wheel hand contact.
func (s *State) ToggleHands() {
	s.HandsOnWheel = !s.HandsOnWheel
}

// ToggleObstacle flips the door-obstacle sensor.
func (s *State) ToggleObstacle() {
	s.DoorObstacle = !s.DoorObstacle
}

// ToggleLeftIndicator flips the left indicator. Asserting it clears the right
// indicator, enforcing mutual exclusion at the event boundary.
func (s *State) ToggleLeftIndicator() {
	s.LeftIndicator = !s.LeftIndicator
	if s.LeftIndicator {
		s.RightIndicator = false
	}
}

// ToggleRightIndicator flips the right indicator, clearing the left one when
// asserted.
func (s *State) ToggleRightIndicator() {
	s.RightIndicator = !s.RightIndicator
	if s.RightIndicator {
		s.LeftIndicator = false
	}
}

// AnyDoorOpen reports whether at least one door is open.
func (s *State) AnyDoorOpen() bool {
	for _, open := range s.DoorOpen {
		if open {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

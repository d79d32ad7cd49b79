package vehicle

import "fmt"

// EventType identifies a typed input event from the control surface.
type EventType uint8

const (
	EventSetSpeed EventType = iota
	EventSetFrontDistance
	EventSetBasePressure
	EventSetTyrePressure
	EventToggleHeadlights
	EventToggleNightMode
	EventToggleHands
	EventToggleObstacle
	EventToggleLeftIndicator
	EventToggleRightIndicator
	EventRequestLaneChange
	EventRequestDoorToggle
)

// eventNames maps event types to their scenario-script names.
var eventNames = map[EventType]string{
	EventSetSpeed:             "set_speed",
	EventSetFrontDistance:     "set_front_distance",
	EventSetBasePressure:      "set_base_pressure",
	EventSetTyrePressure:      "set_tyre_pressure",
	EventToggleHeadlights:     "toggle_headlights",
	EventToggleNightMode:      "toggle_night_mode",
	EventToggleHands:          "toggle_hands",
	EventToggleObstacle:       "toggle_obstacle",
	EventToggleLeftIndicator:  "toggle_left_indicator",
	EventToggleRightIndicator: "toggle_right_indicator",
	EventRequestLaneChange:    "request_lane_change",
	EventRequestDoorToggle:    "request_door_toggle",
}

// String returns the scenario-script name of the event type.
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", t)
}

// ParseEventType resolves a scenario-script name to an event type.
func ParseEventType(name string) (EventType, error) {
	for t, n := range eventNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown event type %q", name)
}

// Event is one typed input event. Value carries the slider position for Set*
// events; Corner selects the tyre or door for per-corner events.
type Event struct {
	Type   EventType
	Value  int
	Corner Corner
}

// Apply mutates the snapshot for one input event. Door requests route through
// the interlock and report its outcome; every other event reports DoorApplied.
func (s *State) Apply(e Event, t *Timers, now int64) DoorResult {
	switch e.Type {
	case EventSetSpeed:
		s.SetSpeed(e.Value)
	case EventSetFrontDistance:
		s.SetFrontDistance(e.Value)
	case EventSetBasePressure:
		s.SetBasePressure(e.Value)
	case EventSetTyrePressure:
		s.SetTyrePressure(e.Corner, e.Value)
	case EventToggleHeadlights:
		s.ToggleHeadlights()
	case EventToggleNightMode:
		s.ToggleNightMode()
	case EventToggleHands:
		s.ToggleHands()
	case EventToggleObstacle:
		s.ToggleObstacle()
	case EventToggleLeftIndicator:
		s.ToggleLeftIndicator()
	case EventToggleRightIndicator:
		s.ToggleRightIndicator()
	case EventRequestLaneChange:
		s.RequestLaneChange(t, now)
	case EventRequestDoorToggle:
		return s.RequestDoorToggle(e.Corner, t, now)
	}
	return DoorApplied
}

package warnings

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
)

func init() {
	config.MustInit("")
}

func TestFCWThresholdM(t *testing.T) {
	tests := []struct {
		speedKmh int
		want     int
	}{
		{0, 6},    // vehicle length + margin only
		{36, 31},  // 25.28 m stopping + 5.5, rounded up
		{54, 49},
		{60, 50},  // 55.7 would exceed the sensor range, capped
		{180, 50}, // cap holds across the whole range
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dkmh", tt.speedKmh), func(t *testing.T) {
			if got := FCWThresholdM(tt.speedKmh); got != tt.want {
				t.Errorf("FCWThresholdM(%d) = %d, want %d", tt.speedKmh, got, tt.want)
			}
		})
	}
}

func TestNoWarningsAtPowerOn(t *testing.T) {
	s := vehicle.NewState()
	tm := &vehicle.Timers{}

	rep := Evaluate(s, tm, 0)

	if len(rep.Warnings) != 0 {
		t.Errorf("warnings at power-on: %v", rep.Texts())
	}
	if rep.Priority != PriorityNone {
		t.Errorf("Priority = %v, want none", rep.Priority)
	}
}

func TestHeadlightRules(t *testing.T) {
	t.Run("off at night", func(t *testing.T) {
		s := vehicle.NewState()
		s.ToggleNightMode()

		rep := Evaluate(s, &vehicle.Timers{}, 0)
		if len(rep.Warnings) != 1 || rep.Warnings[0].Text != "Headlights OFF (night)" {
			t.Fatalf("warnings = %v", rep.Texts())
		}
		if rep.Priority != PriorityCaution {
			t.Errorf("Priority = %v, want caution", rep.Priority)
		}
	})

	t.Run("on in daylight", func(t *testing.T) {
		s := vehicle.NewState()
		s.ToggleHeadlights()

		rep := Evaluate(s, &vehicle.Timers{}, 0)
		if len(rep.Warnings) != 1 || rep.Warnings[0].Text != "Headlights ON (day)" {
			t.Fatalf("warnings = %v", rep.Texts())
		}
		if rep.Priority != PriorityAdvisory {
			t.Errorf("Priority = %v, want advisory", rep.Priority)
		}
	})

	t.Run("matched is silent", func(t *testing.T) {
		s := vehicle.NewState()
		s.ToggleNightMode()
		s.ToggleHeadlights()

		if rep := Evaluate(s, &vehicle.Timers{}, 0); len(rep.Warnings) != 0 {
			t.Errorf("warnings = %v", rep.Texts())
		}
	})
}

func TestForwardCollision(t *testing.T) {
	s := vehicle.NewState()
	s.SetSpeed(60)
	s.SetFrontDistance(20)

	rep := Evaluate(s, &vehicle.Timers{}, 0)

	want := "Forward Collision Warning (threshold 50 m)"
	if len(rep.Warnings) != 1 || rep.Warnings[0].Text != want {
		t.Fatalf("warnings = %v, want [%s]", rep.Texts(), want)
	}
	if rep.Priority != PriorityCritical {
		t.Errorf("Priority = %v, want critical", rep.Priority)
	}

	// Exactly at threshold is safe; strictly below it fires
	s.SetFrontDistance(50)
	if rep := Evaluate(s, &vehicle.Timers{}, 0); len(rep.Warnings) != 0 {
		t.Errorf("fired at threshold: %v", rep.Texts())
	}
	s.SetFrontDistance(49)
	if rep := Evaluate(s, &vehicle.Timers{}, 0); len(rep.Warnings) != 1 {
		t.Errorf("did not fire below threshold: %v", rep.Texts())
	}
}

func TestLowTyrePressureBoundary(t *testing.T) {
	s := vehicle.NewState() // base 32, delta 4

	s.SetTyrePressure(vehicle.FrontLeft, 28)
	if rep := Evaluate(s, &vehicle.Timers{}, 0); len(rep.Warnings) != 0 {
		t.Errorf("fired at base-delta exactly: %v", rep.Texts())
	}

	s.SetTyrePressure(vehicle.FrontLeft, 27)
	rep := Evaluate(s, &vehicle.Timers{}, 0)
	if len(rep.Warnings) != 1 || rep.Warnings[0].Rule != RuleLowTyrePressure {
		t.Fatalf("warnings = %v", rep.Texts())
	}
	if rep.Priority != PriorityCaution {
		t.Errorf("Priority = %v, want caution", rep.Priority)
	}
}

func TestLowTyrePressurePerCorner(t *testing.T) {
	s := vehicle.NewState()
	s.SetTyrePressure(vehicle.FrontLeft, 20)
	s.SetTyrePressure(vehicle.RearRight, 21)

	rep := Evaluate(s, &vehicle.Timers{}, 0)

	if len(rep.Warnings) != 2 {
		t.Fatalf("got %d warnings, want one per low corner: %v", len(rep.Warnings), rep.Texts())
	}
}

func TestHandsOff(t *testing.T) {
	s := vehicle.NewState()
	s.ToggleHands()

	rep := Evaluate(s, &vehicle.Timers{}, 0)
	if len(rep.Warnings) != 1 || rep.Warnings[0].Text != "Hands Off Steering" {
		t.Fatalf("warnings = %v", rep.Texts())
	}
}

func TestDoorWarnings(t *testing.T) {
	t.Run("open while moving", func(t *testing.T) {
		s := vehicle.NewState()
		s.DoorOpen[vehicle.RearLeft] = true
		s.SetSpeed(30)

		rep := Evaluate(s, &vehicle.Timers{}, 0)
		if len(rep.Warnings) != 1 || rep.Warnings[0].Text != "Door Open While Moving" {
			t.Fatalf("warnings = %v", rep.Texts())
		}
		if rep.Priority != PriorityCritical {
			t.Errorf("Priority = %v, want critical", rep.Priority)
		}
	})

	t.Run("open into obstacle", func(t *testing.T) {
		s := vehicle.NewState()
		s.DoorOpen[vehicle.FrontRight] = true
		s.ToggleObstacle()

		rep := Evaluate(s, &vehicle.Timers{}, 0)
		if len(rep.Warnings) != 1 || rep.Warnings[0].Rule != RuleExitObstacle {
			t.Fatalf("warnings = %v", rep.Texts())
		}
	})

	t.Run("obstacle with all doors closed is silent", func(t *testing.T) {
		s := vehicle.NewState()
		s.ToggleObstacle()

		if rep := Evaluate(s, &vehicle.Timers{}, 0); len(rep.Warnings) != 0 {
			t.Errorf("warnings = %v", rep.Texts())
		}
	})
}

func TestDoorBlockedBanner(t *testing.T) {
	s := vehicle.NewState()
	tm := &vehicle.Timers{DoorBlockWarnUntil: 2000}

	rep := Evaluate(s, tm, 1999)
	if len(rep.Warnings) != 1 || rep.Warnings[0].Rule != RuleDoorBlocked {
		t.Fatalf("warnings = %v", rep.Texts())
	}

	if rep := Evaluate(s, tm, 2000); len(rep.Warnings) != 0 {
		t.Errorf("banner survived its deadline: %v", rep.Texts())
	}
}

func TestLaneChangeWarning(t *testing.T) {
	s := vehicle.NewState()
	tm := &vehicle.Timers{}
	s.RequestLaneChange(tm, 0)

	rep := Evaluate(s, tm, 100)
	if len(rep.Warnings) != 1 || rep.Warnings[0].Text != "Lane Change! Please use indicator" {
		t.Fatalf("warnings = %v", rep.Texts())
	}
	if rep.Priority != PriorityAdvisory {
		t.Errorf("Priority = %v, want advisory", rep.Priority)
	}

	// An active indicator makes the request safe
	s.ToggleLeftIndicator()
	if rep := Evaluate(s, tm, 100); len(rep.Warnings) != 0 {
		t.Errorf("fired with indicator on: %v", rep.Texts())
	}
}

func TestRuleOrderAndMaxPriority(t *testing.T) {
	s := vehicle.NewState()
	tm := &vehicle.Timers{}

	s.ToggleNightMode() // headlights off at night
	s.SetSpeed(60)
	s.SetFrontDistance(10) // FCW
	s.SetTyrePressure(vehicle.RearLeft, 20)
	s.ToggleHands()
	s.RequestLaneChange(tm, 0)

	rep := Evaluate(s, tm, 100)

	want := []string{
		"Headlights OFF (night)",
		"Forward Collision Warning (threshold 50 m)",
		"Low Tyre Pressure",
		"Hands Off Steering",
		"Lane Change! Please use indicator",
	}
	if !reflect.DeepEqual(rep.Texts(), want) {
		t.Errorf("Texts() = %v, want %v", rep.Texts(), want)
	}
	if rep.Priority != PriorityCritical {
		t.Errorf("Priority = %v, want critical", rep.Priority)
	}
}

package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
)

func init() {
	config.MustInit("")
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.csv")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndDue(t *testing.T) {
	path := writeScript(t, `at_ms,event,value,corner
0,set_speed,60,0
1000,set_front_distance,15,0
1000,toggle_hands,0,0
2400,request_door_toggle,0,2
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", sc.Len())
	}

	events := sc.Due(0)
	if len(events) != 1 || events[0].Type != vehicle.EventSetSpeed || events[0].Value != 60 {
		t.Fatalf("Due(0) = %v", events)
	}

	// Nothing new until the next deadline
	if events := sc.Due(999); len(events) != 0 {
		t.Fatalf("Due(999) = %v", events)
	}

	// Both 1000 ms steps pop together, in script order
	events = sc.Due(1000)
	if len(events) != 2 {
		t.Fatalf("Due(1000) = %v", events)
	}
	if events[0].Type != vehicle.EventSetFrontDistance || events[1].Type != vehicle.EventToggleHands {
		t.Errorf("step order wrong: %v", events)
	}

	if sc.Done() {
		t.Error("Done() before last step")
	}

	// A coarse tick lands past the deadline; the step still pops
	events = sc.Due(2600)
	if len(events) != 1 || events[0].Type != vehicle.EventRequestDoorToggle || events[0].Corner != vehicle.RearLeft {
		t.Fatalf("Due(2600) = %v", events)
	}

	if !sc.Done() {
		t.Error("Done() = false after all steps consumed")
	}
}

func TestLoadSortsOutOfOrderSteps(t *testing.T) {
	path := writeScript(t, `at_ms,event,value,corner
2000,toggle_headlights,0,0
500,set_speed,30,0
`)

	sc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	events := sc.Due(500)
	if len(events) != 1 || events[0].Type != vehicle.EventSetSpeed {
		t.Errorf("Due(500) = %v, want the earlier step first", events)
	}
}

func TestLoadRejectsUnknownEvent(t *testing.T) {
	path := writeScript(t, `at_ms,event,value,corner
0,engage_autopilot,0,0
`)

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an unknown event name")
	}
}

func TestLoadRejectsBadCorner(t *testing.T) {
	path := writeScript(t, `at_ms,event,value,corner
0,request_door_toggle,0,7
`)

	if _, err := Load(path); err == nil {
		t.Error("Load accepted an out-of-range corner")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

// Package scenario replays scripted input events in headless runs. A script
// is a CSV file of timed events (at_ms,event,value,corner) applied when the
// simulated clock reaches each deadline.
package scenario

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
)

// Step is one scripted input event.
type Step struct {
	AtMs   int64  `csv:"at_ms"`
	Name   string `csv:"event"`
	Value  int    `csv:"value"`
	Corner int    `csv:"corner"`
}

// Event converts the step to a typed input event.
func (s Step) Event() (vehicle.Event, error) {
	t, err := vehicle.ParseEventType(s.Name)
	if err != nil {
		return vehicle.Event{}, err
	}
	if s.Corner < 0 || s.Corner >= int(vehicle.NumCorners) {
		return vehicle.Event{}, fmt.Errorf("corner %d out of range", s.Corner)
	}
	return vehicle.Event{Type: t, Value: s.Value, Corner: vehicle.Corner(s.Corner)}, nil
}

// Script is a loaded scenario, consumed in time order.
type Script struct {
	steps []Step
	next  int
}

// Load reads and validates a scenario CSV. Every step must name a known event
// and a valid corner; load fails on the first bad step.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()

	var steps []Step
	if err := gocsv.UnmarshalFile(f, &steps); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	for i, s := range steps {
		if _, err := s.Event(); err != nil {
			return nil, fmt.Errorf("scenario step %d (at %d ms): %w", i+1, s.AtMs, err)
		}
	}

	sort.SliceStable(steps, func(i, j int) bool { return steps[i].AtMs < steps[j].AtMs })

	return &Script{steps: steps}, nil
}

// Due pops all steps whose deadline has been reached and returns them as
// events, in script order.
func (sc *Script) Due(now int64) []vehicle.Event {
	var events []vehicle.Event
	for sc.next < len(sc.steps) && sc.steps[sc.next].AtMs <= now {
		// Validated at load time; conversion cannot fail here.
		e, _ := sc.steps[sc.next].Event()
		events = append(events, e)
		sc.next++
	}
	return events
}

// Done reports whether all steps have been consumed.
func (sc *Script) Done() bool {
	return sc.next >= len(sc.steps)
}

// Len returns the total number of steps.
func (sc *Script) Len() int {
	return len(sc.steps)
}

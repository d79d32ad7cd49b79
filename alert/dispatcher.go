package alert

import "github.com/ORKTech/ADAS-Level-1-Simulation/config"

// Player plays one complete beep pattern for a priority level. Play may block
// for the pattern duration; the dispatcher only ever calls it from its worker
// goroutine. Implementations must not touch simulator state.
type Player interface {
	Play(priority int)
}

// Dispatcher rate-limits audible alerts and hands them to a background
// worker through a one-slot mailbox. Dispatch never blocks; with the rate
// limit at least as long as the longest pattern, the mailbox cannot overflow
// in practice, and if it ever did the newer beep is simply dropped.
type Dispatcher struct {
	player        Player
	minIntervalMs int64
	lastBeepAt    int64
	mailbox       chan int
}

// NewDispatcher creates a dispatcher and starts its worker. A nil player
// disables audio; dispatch bookkeeping still runs so telemetry stays accurate.
func NewDispatcher(p Player) *Dispatcher {
	d := &Dispatcher{
		player:        p,
		minIntervalMs: int64(config.Cfg().Audio.BeepIntervalMs),
		mailbox:       make(chan int, 1),
	}
	go d.run()
	return d
}

// Dispatch requests the pattern for the given priority. It returns true when
// a pattern start was accepted, false when the priority is zero or the call
// landed inside the rate-limit window.
func (d *Dispatcher) Dispatch(priority int, now int64) bool {
	if priority <= 0 {
		return false
	}
	if now-d.lastBeepAt < d.minIntervalMs {
		return false
	}
	d.lastBeepAt = now

	select {
	case d.mailbox <- priority:
	default:
		// Worker still busy with a previous pattern; drop rather than block.
	}
	return true
}

// Close shuts down the worker. Any pattern in flight runs to completion.
func (d *Dispatcher) Close() {
	close(d.mailbox)
}

func (d *Dispatcher) run() {
	for priority := range d.mailbox {
		if d.player != nil {
			d.player.Play(priority)
		}
	}
}

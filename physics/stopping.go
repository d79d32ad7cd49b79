// Package physics holds the pure kinematic model behind the adaptive
// forward-collision threshold.
package physics

import "github.com/ORKTech/ADAS-Level-1-Simulation/config"

// StoppingDistanceM returns the total stopping distance in meters at the given
// speed: driver reaction travel plus friction-limited braking travel. The
// result is 0 at speed 0 and non-decreasing in speed.
func StoppingDistanceM(speedKmh int) float64 {
	cfg := config.Cfg().Physics

	v := float64(speedKmh) * (1000.0 / 3600.0) // m/s
	reaction := v * cfg.ReactionTimeS
	braking := (v * v) / (2.0 * cfg.Friction * cfg.GravityMS2)

	return reaction + braking
}

// Package orbit provides the simulated clock contract the orbital network simulator drives
// the scheduler with, and the position-source collaborator interface used to query current
// satellite positions.
package orbit

import "github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"

// PositionSource supplies the current (lat, long, altitude_km) of every satellite, indexed by
// its integer node name, for a given simulated tick.
type PositionSource interface {
	Positions(tick int) []model.Location
}

// Action is called once for a given simulated tick during Clock.Run, if one was registered
// for that tick.
type Action func(tick int)

// Clock manages the discrete simulated-time index that latencies and satellite positions are
// defined against.
type Clock struct {
	curr        int
	simDuration int
}

// NewClock constructs a Clock that will run for simDuration ticks.
func NewClock(simDuration int) *Clock {
	return &Clock{simDuration: simDuration}
}

// Tick returns the current simulated time index.
func (c *Clock) Tick() int {
	return c.curr
}

// SimDuration returns the total planned duration of the simulation.
func (c *Clock) SimDuration() int {
	return c.simDuration
}

// Advance increments the clock by one and returns the new tick, or -1 once the simulation has
// run past SimDuration.
func (c *Clock) Advance() int {
	c.curr++
	if c.curr <= c.simDuration {
		return c.curr
	}
	return -1
}

// Run drives the clock from tick 0 to completion, invoking actions[tick] (if registered) at
// each tick before advancing.
func (c *Clock) Run(actions map[int]Action) {
	tick := 0
	for tick != -1 {
		if action, ok := actions[tick]; ok {
			action(tick)
		}
		tick = c.Advance()
	}
}

// Package orchestrator defines the contract the scheduler uses to observe and mutate the
// fleet it places tasks onto, and a concrete implementation backed by an injected orbital
// network simulator.
package orchestrator

import (
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

// Client is the interface the scheduler core depends on. Concrete implementations connect it
// to whatever orbital/network simulator supplies live latency and satellite position data;
// the core never depends on that simulator directly.
type Client interface {
	// Lookup finds a node by name across every layer of the fleet.
	Lookup(name string) (*model.Node, bool)

	// Latency returns the current latency in milliseconds between src and dst, or -1 if no
	// path exists between them at the current tick.
	Latency(src, dst *model.Node) float64

	// SatellitePosition returns the current (lat, long, altitude_km) of a satellite node. It
	// is only valid to call this for nodes with Kind == model.SatelliteNodeKind.
	SatellitePosition(node *model.Node) (model.Location, error)

	// Assign atomically reserves task's required resources on node. It returns true and
	// decrements node's free resources only if every required resource kind has enough free
	// quantity; otherwise it returns false and leaves node untouched.
	Assign(task *model.Task, node *model.Node) bool
}

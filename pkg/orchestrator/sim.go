package orchestrator

import (
	"fmt"
	"strconv"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/netgraph"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/orbit"
)

// TickSource reports the orbital simulator's current simulated time index.
type TickSource interface {
	Tick() int
}

// SimOrchestrator is the Client implementation backed by an injected orbital network
// simulator: a DelayMatrixSource/PositionSource pair plus a shared TickSource (typically an
// *orbit.Clock). It owns the node Directory and the netgraph.Graph, rebuilding the graph and
// re-querying satellite positions at most once per observed tick.
type SimOrchestrator struct {
	dir    *Directory
	clock  TickSource
	graph  *netgraph.Graph
	pos    orbit.PositionSource
	posTick int
	posCache []model.Location
}

// NewSimOrchestrator constructs a SimOrchestrator over dir, with graph covering nodeCount
// integer-named vertices sourced from delays, and satellite positions sourced from pos.
func NewSimOrchestrator(dir *Directory, clock TickSource, nodeCount int, delays netgraph.DelayMatrixSource, pos orbit.PositionSource) *SimOrchestrator {
	return &SimOrchestrator{
		dir:     dir,
		clock:   clock,
		graph:   netgraph.New(nodeCount, delays),
		pos:     pos,
		posTick: -1,
	}
}

// Lookup implements Client.
func (o *SimOrchestrator) Lookup(name string) (*model.Node, bool) {
	return o.dir.Lookup(name)
}

// Latency implements Client.
func (o *SimOrchestrator) Latency(src, dst *model.Node) float64 {
	srcID, err := nodeID(src)
	if err != nil {
		return -1
	}
	dstID, err := nodeID(dst)
	if err != nil {
		return -1
	}

	o.graph.RefreshIfNeeded(o.clock.Tick())
	return o.graph.ShortestLatency(srcID, dstID)
}

// SatellitePosition implements Client.
func (o *SimOrchestrator) SatellitePosition(node *model.Node) (model.Location, error) {
	if !node.IsSatellite() {
		return model.Location{}, fmt.Errorf("node %q is not a satellite", node.Name)
	}

	tick := o.clock.Tick()
	if o.posTick != tick {
		o.posCache = o.pos.Positions(tick)
		o.posTick = tick
	}

	id, err := nodeID(node)
	if err != nil {
		return model.Location{}, err
	}
	if id < 0 || id >= len(o.posCache) {
		return model.Location{}, fmt.Errorf("no position reported for satellite %q at tick %d", node.Name, tick)
	}
	return o.posCache[id], nil
}

// Assign implements Client.
func (o *SimOrchestrator) Assign(task *model.Task, node *model.Node) bool {
	return node.TryAssign(task.ReqResources)
}

func nodeID(n *model.Node) (int, error) {
	id, err := strconv.Atoi(n.Name)
	if err != nil {
		return 0, fmt.Errorf("node name %q is not a valid integer node id: %w", n.Name, err)
	}
	return id, nil
}

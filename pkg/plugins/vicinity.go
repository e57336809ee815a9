// Package plugins implements the concrete SelectCandidates/Filter/Score/Commit plugins the
// scheduler driver composes.
package plugins

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

const earthRadiusKm = 6371.0

// VicinityConfig parameterizes the per-layer radii and candidate counts of
// SelectNodesInVicinityPlugin. None of its fields are process-wide defaults; every
// instance is constructed explicitly.
type VicinityConfig struct {
	RadiusGroundKm float64
	RadiusEdgeKm   float64
	RadiusSpaceKm  float64

	GroundNodesCount int
	EdgeNodesCount   int
	SpaceNodesCount  int
}

// SelectNodesInVicinityPlugin narrows the fleet down to nodes within a layer-specific
// geodesic radius of the placement of a task's first predecessor. When there is no such
// placement to anchor on, it falls back to a seeded random pick per layer.
type SelectNodesInVicinityPlugin struct {
	cfg VicinityConfig
	rng *rand.Rand
}

// NewSelectNodesInVicinityPlugin constructs a vicinity selector. rng must be seeded by the
// caller; it is never shared with any other plugin instance.
func NewSelectNodesInVicinityPlugin(cfg VicinityConfig, rng *rand.Rand) *SelectNodesInVicinityPlugin {
	return &SelectNodesInVicinityPlugin{cfg: cfg, rng: rng}
}

// SelectCandidates implements pipeline.SelectCandidatesPlugin.
func (p *SelectNodesInVicinityPlugin) SelectCandidates(task *model.Task, fleet *model.Fleet, ctx *pipeline.Context) (map[string]*model.Node, error) {
	refLoc, hasRef, err := p.referenceLocation(task, ctx)
	if err != nil {
		return nil, err
	}

	ret := make(map[string]*model.Node)
	if hasRef {
		p.scanGround(refLoc, fleet, ret)
		p.scanTerrestrialLayer(refLoc, p.cfg.RadiusEdgeKm, p.cfg.EdgeNodesCount, fleet.EdgeNodes, ret)
		p.scanSatellites(refLoc, fleet.Satellites, ctx, ret)
	} else {
		p.randomLayer(p.cfg.GroundNodesCount, fleet.GroundStations, ret)
		p.randomLayer(p.cfg.EdgeNodesCount, fleet.EdgeNodes, ret)
		p.randomLayer(p.cfg.SpaceNodesCount, fleet.Satellites, ret)
	}
	return ret, nil
}

// referenceLocation resolves the placement of task's first predecessor, if any. The second
// return value is false when task has no predecessor at all (not an error: the caller then
// falls back to random selection). An existing but unplaced predecessor is an error.
func (p *SelectNodesInVicinityPlugin) referenceLocation(task *model.Task, ctx *pipeline.Context) (model.Location, bool, error) {
	preds := ctx.Workflow.Predecessors(task)
	if len(preds) == 0 {
		return model.Location{}, false, nil
	}

	pred := preds[0]
	node, ok := ctx.Workflow.AssignedNode(pred)
	if !ok || node == nil {
		return model.Location{}, false, fmt.Errorf("predecessor not scheduled")
	}

	if node.HasLocation() {
		return *node.Location, true, nil
	}
	if node.IsSatellite() {
		loc, err := ctx.Orchestrator.SatellitePosition(node)
		if err != nil {
			return model.Location{}, false, err
		}
		return loc, true, nil
	}
	return model.Location{}, false, fmt.Errorf("node %q has neither a static location nor a satellite position", node.Name)
}

// scanGround adds up to cfg.GroundNodesCount ground stations within radius of ref, padding
// with cloud nodes within the same radius if there are not enough ground stations nearby.
func (p *SelectNodesInVicinityPlugin) scanGround(ref model.Location, fleet *model.Fleet, ret map[string]*model.Node) {
	found := withinRadius(ref, p.cfg.RadiusGroundKm, p.cfg.GroundNodesCount, fleet.GroundStations)
	for _, n := range found {
		ret[n.Name] = n
	}

	remaining := p.cfg.GroundNodesCount - len(found)
	if remaining <= 0 {
		return
	}
	for _, n := range withinRadius(ref, p.cfg.RadiusGroundKm, remaining, fleet.CloudNodes) {
		ret[n.Name] = n
	}
}

func (p *SelectNodesInVicinityPlugin) scanTerrestrialLayer(ref model.Location, radiusKm float64, count int, nodes []*model.Node, ret map[string]*model.Node) {
	for _, n := range withinRadius(ref, radiusKm, count, nodes) {
		ret[n.Name] = n
	}
}

func (p *SelectNodesInVicinityPlugin) scanSatellites(ref model.Location, satellites []*model.Node, ctx *pipeline.Context, ret map[string]*model.Node) {
	added := 0
	for _, n := range satellites {
		if added >= p.cfg.SpaceNodesCount {
			break
		}
		pos, err := ctx.Orchestrator.SatellitePosition(n)
		if err != nil {
			continue
		}
		if haversineKm(ref, pos) <= p.cfg.RadiusSpaceKm {
			ret[n.Name] = n
			added++
		}
	}
}

func (p *SelectNodesInVicinityPlugin) randomLayer(count int, nodes []*model.Node, ret map[string]*model.Node) {
	if count <= 0 || len(nodes) == 0 {
		return
	}
	perm := p.rng.Perm(len(nodes))
	if count > len(perm) {
		count = len(perm)
	}
	for _, idx := range perm[:count] {
		n := nodes[idx]
		ret[n.Name] = n
	}
}

// withinRadius returns, in fleet insertion order, up to count nodes from nodes whose Location
// is within radiusKm of ref. Nodes without a Location (should not occur for terrestrial
// layers) are skipped.
func withinRadius(ref model.Location, radiusKm float64, count int, nodes []*model.Node) []*model.Node {
	if count <= 0 {
		return nil
	}
	var out []*model.Node
	for _, n := range nodes {
		if len(out) >= count {
			break
		}
		if !n.HasLocation() {
			continue
		}
		if haversineKm(ref, *n.Location) <= radiusKm {
			out = append(out, n)
		}
	}
	return out
}

// haversineKm computes the great-circle surface distance between two points, ignoring
// altitude.
func haversineKm(a, b model.Location) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLong := (b.Long - a.Long) * math.Pi / 180

	sinHalfLat := math.Sin(dLat / 2)
	sinHalfLong := math.Sin(dLong / 2)
	h := sinHalfLat*sinHalfLat + math.Cos(lat1)*math.Cos(lat2)*sinHalfLong*sinHalfLong
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

package model

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// NodeKind tags which layer of the fleet a Node belongs to.
type NodeKind string

const (
	CloudNodeKind         NodeKind = "CloudNode"
	GroundStationNodeKind NodeKind = "GroundStationNode"
	EdgeNodeKind          NodeKind = "EdgeNode"
	SatelliteNodeKind     NodeKind = "SatelliteNode"
)

// Location describes a fixed point on (or above) Earth.
type Location struct {
	Lat        float64
	Long       float64
	AltitudeKm float64
}

// HeatInfo tracks the thermal state of a satellite node.
type HeatInfo struct {
	TemperatureC            float64
	MaxTempC                float64
	RecommendedHighTempC    float64
	TempIncPerCPUMinuteC    float64
	RadiatedHeatPerMinuteC  float64
	MockedMaxOrbitBaseTempC float64
}

// Node is a single compute node in the fleet. Cloud, ground-station and edge nodes carry a
// fixed Location; satellite nodes carry Heat and no Location (their position is queried from
// the orchestrator at the current tick). Capacity is the immutable total (free + used)
// snapshot taken at construction time; Resources is mutated in place by Assign.
type Node struct {
	Name      string
	Kind      NodeKind
	CPUArch   CPUArchitecture
	Resources ResourceSet
	Capacity  ResourceSet
	Location  *Location
	Heat      *HeatInfo

	mu sync.Mutex
}

// NewNode constructs a Node. If name is empty, a random UUID is used, matching the source
// scheduler's fallback for anonymous nodes.
func NewNode(name string, kind NodeKind, cpuArch CPUArchitecture, resources ResourceSet, loc *Location, heat *HeatInfo) *Node {
	if name == "" {
		name = uuid.NewString()
	}
	return &Node{
		Name:      name,
		Kind:      kind,
		CPUArch:   cpuArch,
		Resources: resources.Clone(),
		Capacity:  resources.Clone(),
		Location:  loc,
		Heat:      heat,
	}
}

// IsSatellite reports whether this node is a SatelliteNode.
func (n *Node) IsSatellite() bool {
	return n.Kind == SatelliteNodeKind
}

// HasLocation reports whether this node exposes a fixed, statically-known Location.
func (n *Node) HasLocation() bool {
	return n.Location != nil
}

// TryAssign atomically checks every resource in req against the node's current free
// quantities and, only if all of them suffice, decrements them and returns true. Otherwise
// it leaves the node's resources untouched and returns false. This is the single primitive
// through which all node resource state is mutated, satisfying the "atomic with respect to a
// single node" requirement of the scheduling model.
func (n *Node) TryAssign(req ResourceSet) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for kind, qty := range req {
		if n.Resources[kind] < qty {
			return false
		}
	}
	for kind, qty := range req {
		n.Resources[kind] -= qty
	}
	return true
}

// Free returns the current free quantity of kind, taking the node's lock.
func (n *Node) Free(kind ResourceKind) int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.Resources[kind]
}

func (n *Node) String() string {
	return fmt.Sprintf("%s(%s)", n.Name, n.Kind)
}

// NodeScore pairs a Node with an integer score in [0, 100].
type NodeScore struct {
	Node  *Node
	Score int
}

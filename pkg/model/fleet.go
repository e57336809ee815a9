package model

// Fleet groups the nodes of one experiment by layer, preserving insertion order within each
// layer so that plugins with order-sensitive tie-breaks (round-robin, vicinity padding) behave
// deterministically.
type Fleet struct {
	CloudNodes     []*Node
	GroundStations []*Node
	EdgeNodes      []*Node
	Satellites     []*Node
}

// All returns every node in the fleet, cloud first, then ground, edge, satellite — the fixed
// default layer order used when no candidate-selection plugin narrows the field.
func (f *Fleet) All() []*Node {
	out := make([]*Node, 0, len(f.CloudNodes)+len(f.GroundStations)+len(f.EdgeNodes)+len(f.Satellites))
	out = append(out, f.CloudNodes...)
	out = append(out, f.GroundStations...)
	out = append(out, f.EdgeNodes...)
	out = append(out, f.Satellites...)
	return out
}

// IndexedFleet is a Fleet indexed by node name within each layer.
type IndexedFleet struct {
	CloudNodes     map[string]*Node
	GroundStations map[string]*Node
	EdgeNodes      map[string]*Node
	Satellites     map[string]*Node
}

func indexNodes(nodes []*Node) map[string]*Node {
	out := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		out[n.Name] = n
	}
	return out
}

// NewIndexedFleet builds the by-name index of f.
func NewIndexedFleet(f *Fleet) *IndexedFleet {
	return &IndexedFleet{
		CloudNodes:     indexNodes(f.CloudNodes),
		GroundStations: indexNodes(f.GroundStations),
		EdgeNodes:      indexNodes(f.EdgeNodes),
		Satellites:     indexNodes(f.Satellites),
	}
}

// Lookup searches every layer for a node named name.
func (f *IndexedFleet) Lookup(name string) (*Node, bool) {
	if n, ok := f.Satellites[name]; ok {
		return n, true
	}
	if n, ok := f.GroundStations[name]; ok {
		return n, true
	}
	if n, ok := f.EdgeNodes[name]; ok {
		return n, true
	}
	if n, ok := f.CloudNodes[name]; ok {
		return n, true
	}
	return nil, false
}

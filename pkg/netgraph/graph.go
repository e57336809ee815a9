// Package netgraph maintains the live latency graph of the fleet: an undirected,
// latency-weighted graph over integer-named nodes that is rebuilt from a symmetric delay
// matrix whenever the simulated tick advances, and answers shortest-latency-path queries
// against the most recent snapshot.
package netgraph

import "container/heap"

// DelayMatrixSource supplies the authoritative, symmetric node-to-node delay matrix for a
// given simulated tick. A zero entry means "no edge between these two nodes at this tick".
type DelayMatrixSource interface {
	DelayMatrix(tick int) [][]float64
}

// Graph is the latency graph of the fleet at the most recently observed tick.
type Graph struct {
	nodeCount int
	source    DelayMatrixSource
	adjacency []map[int]float64
	tick      int
	built     bool
}

// New constructs a Graph over nodeCount vertices (named 0..nodeCount-1), sourcing its edges
// from source.
func New(nodeCount int, source DelayMatrixSource) *Graph {
	adjacency := make([]map[int]float64, nodeCount)
	for i := range adjacency {
		adjacency[i] = make(map[int]float64)
	}
	return &Graph{
		nodeCount: nodeCount,
		source:    source,
		adjacency: adjacency,
		tick:      -1,
	}
}

// RefreshIfNeeded rebuilds the graph from the delay matrix if tick has advanced since the
// last rebuild (or the graph has never been built). All existing edges are cleared first,
// since satellite connectivity can change completely from one tick to the next.
func (g *Graph) RefreshIfNeeded(tick int) {
	if g.built && g.tick == tick {
		return
	}

	for i := range g.adjacency {
		g.adjacency[i] = make(map[int]float64)
	}

	delays := g.source.DelayMatrix(tick)
	for i := 0; i < g.nodeCount; i++ {
		for j := i + 1; j < g.nodeCount; j++ {
			if i >= len(delays) || j >= len(delays[i]) {
				continue
			}
			latency := delays[i][j]
			if latency == 0 {
				continue
			}
			g.adjacency[i][j] = latency
			g.adjacency[j][i] = latency
		}
	}

	g.tick = tick
	g.built = true
}

// ShortestLatency returns the total latency of the shortest (by summed edge weight) path
// between src and dst, or -1 if no path exists in the current snapshot.
func (g *Graph) ShortestLatency(src, dst int) float64 {
	if src == dst {
		return 0
	}
	if src < 0 || src >= g.nodeCount || dst < 0 || dst >= g.nodeCount {
		return -1
	}

	dist := make([]float64, g.nodeCount)
	visited := make([]bool, g.nodeCount)
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0

	pq := &priorityQueue{{node: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		u := top.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			return dist[u]
		}

		for v, w := range g.adjacency[u] {
			if visited[v] {
				continue
			}
			cand := dist[u] + w
			if dist[v] == -1 || cand < dist[v] {
				dist[v] = cand
				heap.Push(pq, pqItem{node: v, dist: cand})
			}
		}
	}

	if dist[dst] == -1 {
		return -1
	}
	return dist[dst]
}

type pqItem struct {
	node int
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// baseline.go holds the three reference score plugins the driver can be configured with
// instead of NetworkQoS/HeatOpt, used to establish comparison points against the
// vicinity-aware scheduler: greedy first-fit, uniform random, and round-robin.
package plugins

import (
	"math/rand"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

// FirstFitPlugin always prefers the first eligible candidate in the order it was supplied.
type FirstFitPlugin struct{}

// NewFirstFitPlugin constructs a FirstFitPlugin.
func NewFirstFitPlugin() *FirstFitPlugin {
	return &FirstFitPlugin{}
}

// Score implements pipeline.ScorePlugin.
func (p *FirstFitPlugin) Score(node *model.Node, task *model.Task, ctx *pipeline.Context) int {
	return 0
}

// Normalize implements pipeline.ScorePlugin: the first candidate wins outright.
func (p *FirstFitPlugin) Normalize(task *model.Task, scores []model.NodeScore, ctx *pipeline.Context) {
	if len(scores) == 0 {
		return
	}
	scores[0].Score = 100
}

// RandomPlugin picks a uniformly random eligible candidate to prefer.
type RandomPlugin struct {
	rng *rand.Rand
}

// NewRandomPlugin constructs a RandomPlugin. rng must be seeded by the caller and must not be
// shared with any other plugin instance.
func NewRandomPlugin(rng *rand.Rand) *RandomPlugin {
	return &RandomPlugin{rng: rng}
}

// Score implements pipeline.ScorePlugin.
func (p *RandomPlugin) Score(node *model.Node, task *model.Task, ctx *pipeline.Context) int {
	return 0
}

// Normalize implements pipeline.ScorePlugin.
func (p *RandomPlugin) Normalize(task *model.Task, scores []model.NodeScore, ctx *pipeline.Context) {
	if len(scores) == 0 {
		return
	}
	idx := p.rng.Intn(len(scores))
	scores[idx].Score = 100
}

// RoundRobinPlugin cycles through candidates by the numeric value of their name, wrapping
// around the configured total node count.
type RoundRobinPlugin struct {
	totalNodes int
	lastNodeID int
}

// NewRoundRobinPlugin constructs a RoundRobinPlugin over totalNodes integer-named nodes.
func NewRoundRobinPlugin(totalNodes int) *RoundRobinPlugin {
	return &RoundRobinPlugin{totalNodes: totalNodes, lastNodeID: -1}
}

// Score implements pipeline.ScorePlugin.
func (p *RoundRobinPlugin) Score(node *model.Node, task *model.Task, ctx *pipeline.Context) int {
	return 0
}

// Normalize implements pipeline.ScorePlugin: selects the candidate with the lowest integer
// name that is >= last_id+1, wrapping around to the lowest name overall if none qualifies.
func (p *RoundRobinPlugin) Normalize(task *model.Task, scores []model.NodeScore, ctx *pipeline.Context) {
	if len(scores) == 0 {
		return
	}

	nextID := p.lastNodeID + 1
	if nextID == p.totalNodes {
		nextID = 0
	}

	lowestGEIdx := -1
	lowestGEID := p.totalNodes
	lowestIdx := -1
	lowestID := p.totalNodes

	for i := range scores {
		id := nodeIntID(scores[i].Node)
		if id >= nextID && id < lowestGEID {
			lowestGEID = id
			lowestGEIdx = i
		}
		if id < lowestID {
			lowestID = id
			lowestIdx = i
		}
	}

	if lowestGEIdx != -1 {
		scores[lowestGEIdx].Score = 100
		p.lastNodeID = lowestGEID
		return
	}

	scores[lowestIdx].Score = 100
	p.lastNodeID = lowestID
}

func nodeIntID(n *model.Node) int {
	id := 0
	for _, c := range n.Name {
		if c < '0' || c > '9' {
			return -1
		}
		id = id*10 + int(c-'0')
	}
	return id
}

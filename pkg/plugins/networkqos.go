package plugins

import (
	"math"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

// NetworkQoSPlugin is both a filter and a score plugin over incoming-edge and data-source
// latency SLOs. As a filter it rejects a node if any declared max-latency bound is violated.
// As a score plugin it favours nodes with lower worst-case incoming latency.
type NetworkQoSPlugin struct{}

// NewNetworkQoSPlugin constructs a NetworkQoSPlugin.
func NewNetworkQoSPlugin() *NetworkQoSPlugin {
	return &NetworkQoSPlugin{}
}

// Filter implements pipeline.FilterPlugin. Unreachable sources (latency -1) always fail the
// bound they are checked against.
func (p *NetworkQoSPlugin) Filter(node *model.Node, task *model.Task, ctx *pipeline.Context) bool {
	slos, err := ctx.Workflow.AllIncomingSLOs(task)
	if err != nil {
		panic(err)
	}

	for _, s := range slos {
		if s.SLO.MaxLatencyMsec == nil {
			continue
		}
		latency := math.Round(ctx.Orchestrator.Latency(s.Source, node))
		if latency < 0 || latency > float64(*s.SLO.MaxLatencyMsec) {
			return false
		}
	}
	return true
}

// Score implements pipeline.ScorePlugin, returning the rounded maximum incoming latency
// across every SLO source. Normalize then inverts and rescales these raw values.
func (p *NetworkQoSPlugin) Score(node *model.Node, task *model.Task, ctx *pipeline.Context) int {
	slos, err := ctx.Workflow.AllIncomingSLOs(task)
	if err != nil {
		panic(err)
	}

	highest := 0.0
	for _, s := range slos {
		latency := ctx.Orchestrator.Latency(s.Source, node)
		if latency > highest {
			highest = latency
		}
	}
	return int(math.Round(highest))
}

// Normalize implements pipeline.ScorePlugin: lower latency scores higher, linearly rescaled
// across the candidate set into [0, 100].
func (p *NetworkQoSPlugin) Normalize(task *model.Task, scores []model.NodeScore, ctx *pipeline.Context) {
	if len(scores) == 0 {
		return
	}

	lowest := scores[0].Score
	highest := scores[0].Score
	for _, s := range scores {
		if s.Score > highest {
			highest = s.Score
		}
		if s.Score < lowest {
			lowest = s.Score
		}
	}

	maxDiff := float64(highest - lowest)
	if maxDiff == 0 {
		maxDiff = 1
	}

	for i := range scores {
		diff := float64(highest - scores[i].Score)
		scores[i].Score = int(math.Floor(diff / maxDiff * 100))
	}
}

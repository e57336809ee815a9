package plugins

import (
	"math"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/heat"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

// HeatOptPlugin favours satellites that will not overheat while running a task. Terrestrial
// nodes always score top marks: they have no thermal constraint of this kind.
type HeatOptPlugin struct {
	estimator *heat.Estimator
}

// NewHeatOptPlugin constructs a HeatOptPlugin.
func NewHeatOptPlugin() *HeatOptPlugin {
	return &HeatOptPlugin{estimator: heat.NewEstimator()}
}

// Score implements pipeline.ScorePlugin. It is already in [0, 100]; Normalize is a no-op.
func (p *HeatOptPlugin) Score(node *model.Node, task *model.Task, ctx *pipeline.Context) int {
	if !node.IsSatellite() {
		return 100
	}

	expectedMaxTemp := p.estimator.EstimateMaxTemp(node, task)
	return computeHeatScore(expectedMaxTemp, node.Heat.RecommendedHighTempC, node.Heat.MaxTempC)
}

func computeHeatScore(expectedTemp, recommendedTemp, maxTemp float64) int {
	if expectedTemp <= recommendedTemp {
		return 100
	}
	if expectedTemp > maxTemp {
		return 0
	}

	span := maxTemp - recommendedTemp
	overRecommended := expectedTemp - recommendedTemp
	invPercentageOver := 1 - overRecommended/span
	return int(math.Floor(invPercentageOver * 100))
}

// Normalize implements pipeline.ScorePlugin. Scores are already normalized by construction.
func (p *HeatOptPlugin) Normalize(task *model.Task, scores []model.NodeScore, ctx *pipeline.Context) {
}

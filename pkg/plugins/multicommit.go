package plugins

import (
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

// NodesToTry caps how many candidates MultiCommitPlugin will attempt before giving up.
const NodesToTry = 3

// MultiCommitPlugin walks a sorted preference list and attempts an atomic resource
// reservation against each candidate in turn, since a higher-scored candidate's resources may
// have been consumed by another task between scoring and committing.
type MultiCommitPlugin struct{}

// NewMultiCommitPlugin constructs a MultiCommitPlugin.
func NewMultiCommitPlugin() *MultiCommitPlugin {
	return &MultiCommitPlugin{}
}

// Commit implements pipeline.CommitPlugin.
func (p *MultiCommitPlugin) Commit(task *model.Task, preference []model.NodeScore, ctx *pipeline.Context) *model.NodeScore {
	tried := 0
	for i := range preference {
		if tried == NodesToTry {
			break
		}
		if ctx.Orchestrator.Assign(task, preference[i].Node) {
			return &preference[i]
		}
		tried++
	}
	return nil
}

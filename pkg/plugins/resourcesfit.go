package plugins

import (
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

// ResourcesFitPlugin filters out nodes that cannot host a task's architecture or resource
// requirements.
type ResourcesFitPlugin struct{}

// NewResourcesFitPlugin constructs a ResourcesFitPlugin.
func NewResourcesFitPlugin() *ResourcesFitPlugin {
	return &ResourcesFitPlugin{}
}

// Filter implements pipeline.FilterPlugin.
func (p *ResourcesFitPlugin) Filter(node *model.Node, task *model.Task, ctx *pipeline.Context) bool {
	if !task.AcceptsArch(node.CPUArch) {
		return false
	}
	for kind, req := range task.ReqResources {
		if node.Resources.Get(kind) < req {
			return false
		}
	}
	return true
}

// Package pipeline declares the plugin interfaces the scheduler driver composes: candidate
// selection, filtering, scoring and commit. Each stage is an independent interface so the
// driver can hold ordered collections of plugins without any runtime type introspection.
package pipeline

import (
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/orchestrator"
)

// Context carries the per-call state a plugin needs: the workflow being scheduled into and
// the orchestrator client used to observe/mutate the fleet.
type Context struct {
	Workflow     *model.Workflow
	Orchestrator orchestrator.Client
}

// SelectCandidatesPlugin narrows the fleet down to a candidate set before filtering.
//
// A nil map with a nil error tells the driver to fall back to its default candidate set (the
// full fleet, layered cloud/ground/edge/satellite). A non-nil, empty map tells the driver
// there are no viable candidates at all and scheduling should fail immediately.
type SelectCandidatesPlugin interface {
	SelectCandidates(task *model.Task, fleet *model.Fleet, ctx *Context) (map[string]*model.Node, error)
}

// FilterPlugin decides whether a single candidate node can host a task at all.
type FilterPlugin interface {
	Filter(node *model.Node, task *model.Task, ctx *Context) bool
}

// ScorePlugin rates how well-suited an eligible node is to host a task. Score returns a raw,
// plugin-specific value for a single node; Normalize is then called once with every eligible
// node's raw score so the plugin can rescale them all into [0, 100] relative to each other
// (e.g. min-max normalisation, or "give the single best one 100").
type ScorePlugin interface {
	Score(node *model.Node, task *model.Task, ctx *Context) int
	Normalize(task *model.Task, scores []model.NodeScore, ctx *Context)
}

// CommitPlugin attempts to turn a sorted preference list into an actual resource
// reservation, returning the candidate it succeeded on, or nil if none accepted.
type CommitPlugin interface {
	Commit(task *model.Task, preference []model.NodeScore, ctx *Context) *model.NodeScore
}

// Package scheduler composes the selection/filter/score/commit plugins into the scheduler
// driver's two public entry points, Schedule and ForceSchedule.
package scheduler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/metrics"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/orchestrator"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

// PluginSet bundles the pipeline stages the driver composes. SelectCandidates may be nil, in
// which case the driver falls back to the full fleet, layered cloud, ground, edge, satellite.
type PluginSet struct {
	SelectCandidates pipeline.SelectCandidatesPlugin
	Filters          []pipeline.FilterPlugin
	Scorers          []pipeline.ScorePlugin
	Commit           pipeline.CommitPlugin
}

// Scheduler is the driver that places tasks onto a fixed fleet through an injected
// orchestrator client.
type Scheduler struct {
	plugins      PluginSet
	orchestrator orchestrator.Client
	fleet        *model.Fleet
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// New constructs a Scheduler. logger and rec may both be nil; a nil logger is replaced with
// one that discards output, so callers never need to guard their own logging calls on it
// being set.
func New(plugins PluginSet, orch orchestrator.Client, fleet *model.Fleet, logger *slog.Logger, rec *metrics.Recorder) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		plugins:      plugins,
		orchestrator: orch,
		fleet:        fleet,
		logger:       logger,
		metrics:      rec,
	}
}

// Schedule places task onto the fleet, updating workflow.ScheduledTasks in place.
func (s *Scheduler) Schedule(task *model.Task, workflow *model.Workflow) model.SchedulingResult {
	start := time.Now()
	ctx := &pipeline.Context{Workflow: workflow, Orchestrator: s.orchestrator}

	candidates, err := s.selectCandidates(task, ctx)
	if err != nil {
		return s.fail(task, workflow, start, err.Error())
	}

	eligible := s.filterNodes(task, ctx, candidates)
	if len(eligible) == 0 {
		return s.fail(task, workflow, start, "Filtering returned no eligible nodes")
	}

	s.scoreNodes(task, ctx, eligible)

	target := s.plugins.Commit.Commit(task, eligible, ctx)
	if target == nil {
		return s.fail(task, workflow, start, fmt.Sprintf("Could not commit task %s due to scheduling conflicts.", task.Name))
	}

	workflow.SetScheduled(task, target.Node)
	durationMsec := time.Since(start).Milliseconds()
	return s.successResult(task, workflow, target, durationMsec)
}

// ForceSchedule bypasses selection, filtering and scoring, directly committing task to node
// with a fixed score of 100. A commit failure here is a fatal invariant violation: the caller
// asked for an unconditional placement and the fleet could not honor it.
func (s *Scheduler) ForceSchedule(task *model.Task, workflow *model.Workflow, node *model.Node) model.SchedulingResult {
	ctx := &pipeline.Context{Workflow: workflow, Orchestrator: s.orchestrator}
	preference := []model.NodeScore{{Node: node, Score: 100}}

	target := s.plugins.Commit.Commit(task, preference, ctx)
	if target == nil {
		panic(&model.InvariantError{Msg: fmt.Sprintf("force_schedule: could not commit task %q to node %q", task.Name, node.Name)})
	}

	workflow.SetScheduled(task, target.Node)
	return s.successResult(task, workflow, target, 0)
}

func (s *Scheduler) selectCandidates(task *model.Task, ctx *pipeline.Context) (map[string]*model.Node, error) {
	var candidates map[string]*model.Node
	if s.plugins.SelectCandidates != nil {
		var err error
		candidates, err = s.plugins.SelectCandidates.SelectCandidates(task, s.fleet, ctx)
		if err != nil {
			return nil, err
		}
	}

	if candidates == nil {
		candidates = make(map[string]*model.Node)
		for _, n := range s.fleet.All() {
			candidates[n.Name] = n
		}
	}
	if len(candidates) == 0 {
		return nil, errors.New("No candidate nodes")
	}
	return candidates, nil
}

// filterNodes walks the fleet in its fixed layer order (cloud, ground, edge, satellite) so
// that the resulting eligible list is deterministic regardless of the candidate map's
// (unordered) iteration order, then keeps only the nodes present in candidates that pass
// every configured filter.
func (s *Scheduler) filterNodes(task *model.Task, ctx *pipeline.Context, candidates map[string]*model.Node) []model.NodeScore {
	var eligible []model.NodeScore
	for _, n := range s.fleet.All() {
		if _, ok := candidates[n.Name]; !ok {
			continue
		}
		if s.passesFilters(n, task, ctx) {
			eligible = append(eligible, model.NodeScore{Node: n, Score: 0})
		}
	}
	return eligible
}

func (s *Scheduler) passesFilters(node *model.Node, task *model.Task, ctx *pipeline.Context) bool {
	for _, f := range s.plugins.Filters {
		if !f.Filter(node, task, ctx) {
			return false
		}
	}
	return true
}

// scoreNodes runs every scorer over eligible, averages each node's per-plugin normalized
// scores with integer division, and stably sorts eligible descending by the result.
func (s *Scheduler) scoreNodes(task *model.Task, ctx *pipeline.Context, eligible []model.NodeScore) {
	if len(s.plugins.Scorers) == 0 {
		return
	}

	for _, scorer := range s.plugins.Scorers {
		raw := make([]model.NodeScore, len(eligible))
		for i, e := range eligible {
			raw[i] = model.NodeScore{Node: e.Node, Score: scorer.Score(e.Node, task, ctx)}
		}
		scorer.Normalize(task, raw, ctx)
		for i := range eligible {
			eligible[i].Score += raw[i].Score
		}
	}

	for i := range eligible {
		eligible[i].Score /= len(s.plugins.Scorers)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Score > eligible[j].Score
	})
}

func (s *Scheduler) fail(task *model.Task, workflow *model.Workflow, start time.Time, reason string) model.SchedulingResult {
	workflow.SetScheduled(task, nil)
	durationMsec := time.Since(start).Milliseconds()

	s.logger.Warn("scheduling failed", "task", task.Name, "reason", reason, "duration_msec", durationMsec)
	s.metrics.ObserveOutcome(false, reason, durationMsec)

	return model.SchedulingResult{
		Success:                false,
		Task:                   task.Name,
		SchedulingDurationMsec: durationMsec,
		FailureReason:          &reason,
	}
}

func (s *Scheduler) successResult(task *model.Task, workflow *model.Workflow, target *model.NodeScore, durationMsec int64) model.SchedulingResult {
	nodeName := target.Node.Name
	nodeType := string(target.Node.Kind)
	score := target.Score

	predSLOAvg, predActualAvg := avgLinkLatency(workflow.IncomingLinkSLOs(task), target.Node, s.orchestrator)
	dataSLOAvg, dataActualAvg := avgDataSourceLatency(task.DataSourceSLOs, target.Node, s.orchestrator)
	overRecommended, overMax := thermalDeltas(target.Node)

	s.logger.Info("scheduled task", "task", task.Name, "node", nodeName, "score", score, "duration_msec", durationMsec)
	s.metrics.ObserveOutcome(true, "", durationMsec)

	return model.SchedulingResult{
		Success:                true,
		Task:                   task.Name,
		SchedulingDurationMsec: durationMsec,
		TargetNode:             &nodeName,
		TargetNodeType:         &nodeType,
		Score:                  &score,
		AvgPredLatencySLO:      predSLOAvg,
		AvgPredLatency:         predActualAvg,
		AvgDataLatencySLO:      dataSLOAvg,
		AvgDataLatency:         dataActualAvg,
		DegCOverRecommended:    overRecommended,
		DegCOverMax:            overMax,
	}
}

func avgLinkLatency(links []model.IncomingLink, dst *model.Node, orch orchestrator.Client) (*float64, *float64) {
	var sloSum, actualSum float64
	count := 0
	for _, l := range links {
		if l.SLO.MaxLatencyMsec == nil || l.AssignedNode == nil {
			continue
		}
		sloSum += float64(*l.SLO.MaxLatencyMsec)
		actualSum += orch.Latency(l.AssignedNode, dst)
		count++
	}
	return avgPair(sloSum, actualSum, count)
}

func avgDataSourceLatency(dsSLOs []model.DataSourceSLO, dst *model.Node, orch orchestrator.Client) (*float64, *float64) {
	var sloSum, actualSum float64
	count := 0
	for _, ds := range dsSLOs {
		if ds.MaxLatencyMsec == nil {
			continue
		}
		sloSum += float64(*ds.MaxLatencyMsec)
		actualSum += orch.Latency(ds.DataSource, dst)
		count++
	}
	return avgPair(sloSum, actualSum, count)
}

func avgPair(sloSum, actualSum float64, count int) (*float64, *float64) {
	if count == 0 {
		return nil, nil
	}
	slo := sloSum / float64(count)
	actual := actualSum / float64(count)
	return &slo, &actual
}

func thermalDeltas(node *model.Node) (*float64, *float64) {
	if !node.IsSatellite() || node.Heat == nil {
		return nil, nil
	}
	overRecommended := node.Heat.TemperatureC - node.Heat.RecommendedHighTempC
	overMax := node.Heat.TemperatureC - node.Heat.MaxTempC
	return &overRecommended, &overMax
}

package model

import "fmt"

// InvariantError signals a violation of an invariant that the scheduler assumes always
// holds by the time it runs (an unscheduled predecessor when computing latencies, an unknown
// node variant, ...). These are never returned as scheduling failures; they indicate a bug in
// the caller or in the scheduler itself and are fatal.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return e.Msg
}

func newInvariantError(format string, args ...any) *InvariantError {
	return &InvariantError{Msg: fmt.Sprintf(format, args...)}
}

type edgeKey struct {
	from string
	to   string
}

// IncomingLink describes one in-edge of a task together with the SLO attached to it and,
// when known, the node the predecessor was placed on.
type IncomingLink struct {
	SLO          *NetworkSLO
	Predecessor  *Task
	AssignedNode *Node
}

// IncomingSLOSource pairs an SLO with the node it originates from, be it a scheduled
// predecessor or a fixed data source.
type IncomingSLOSource struct {
	SLO    *NetworkSLO
	Source *Node
}

// Workflow is a directed acyclic graph of Tasks. Edges carry an optional NetworkSLO
// describing the link from predecessor to successor. The first task added is the workflow's
// start task. ScheduledTasks records, per task name, the node it was placed on; a key that is
// present with a nil *Node means the task was attempted and failed, a key that is absent means
// the task has never been scheduled.
type Workflow struct {
	tasks          map[string]*Task
	order          []string
	predecessors   map[string][]string
	successors     map[string][]string
	edgeSLOs       map[edgeKey]*NetworkSLO
	ScheduledTasks map[string]*Node
}

// NewWorkflow constructs an empty workflow.
func NewWorkflow() *Workflow {
	return &Workflow{
		tasks:          make(map[string]*Task),
		predecessors:   make(map[string][]string),
		successors:     make(map[string][]string),
		edgeSLOs:       make(map[edgeKey]*NetworkSLO),
		ScheduledTasks: make(map[string]*Node),
	}
}

// AddTask adds task to the workflow. If predecessor is non-nil, it must already have been
// added, and the edge predecessor->task is recorded with the given (possibly nil) SLO.
func (w *Workflow) AddTask(task *Task, predecessor *Task, edgeSLO *NetworkSLO) error {
	if predecessor != nil {
		if _, ok := w.tasks[predecessor.Name]; !ok {
			return newConfigError("predecessor task %q does not exist in workflow", predecessor.Name)
		}
	}

	if _, exists := w.tasks[task.Name]; !exists {
		w.order = append(w.order, task.Name)
	}
	w.tasks[task.Name] = task

	if predecessor != nil {
		w.predecessors[task.Name] = append(w.predecessors[task.Name], predecessor.Name)
		w.successors[predecessor.Name] = append(w.successors[predecessor.Name], task.Name)
		w.edgeSLOs[edgeKey{from: predecessor.Name, to: task.Name}] = edgeSLO
	}
	return nil
}

// Start returns the first task added to the workflow, or nil if the workflow is empty.
func (w *Workflow) Start() *Task {
	if len(w.order) == 0 {
		return nil
	}
	return w.tasks[w.order[0]]
}

// Task looks up a task by name.
func (w *Workflow) Task(name string) (*Task, bool) {
	t, ok := w.tasks[name]
	return t, ok
}

// Predecessors returns task's direct predecessor tasks, in insertion order.
func (w *Workflow) Predecessors(task *Task) []*Task {
	names := w.predecessors[task.Name]
	out := make([]*Task, 0, len(names))
	for _, name := range names {
		out = append(out, w.tasks[name])
	}
	return out
}

// EdgeSLO returns the SLO attached to the predecessor->successor edge, if any.
func (w *Workflow) EdgeSLO(predecessor, successor *Task) *NetworkSLO {
	return w.edgeSLOs[edgeKey{from: predecessor.Name, to: successor.Name}]
}

// SetScheduled records the placement decision for task: node non-nil on success, nil on
// failure so that subsequent calls can detect the failed ancestor.
func (w *Workflow) SetScheduled(task *Task, node *Node) {
	w.ScheduledTasks[task.Name] = node
}

// AssignedNode returns the node task was placed on. The second return value is false if the
// task has never been scheduled at all (as opposed to scheduled-and-failed, which returns
// true, nil).
func (w *Workflow) AssignedNode(task *Task) (*Node, bool) {
	node, ok := w.ScheduledTasks[task.Name]
	return node, ok
}

// IncomingLinkSLOs yields one IncomingLink per in-edge of task whose SLO is non-nil,
// regardless of whether the predecessor has been placed yet.
func (w *Workflow) IncomingLinkSLOs(task *Task) []IncomingLink {
	var links []IncomingLink
	for _, predName := range w.predecessors[task.Name] {
		slo := w.edgeSLOs[edgeKey{from: predName, to: task.Name}]
		if slo == nil {
			continue
		}
		pred := w.tasks[predName]
		assigned, _ := w.AssignedNode(pred)
		links = append(links, IncomingLink{SLO: slo, Predecessor: pred, AssignedNode: assigned})
	}
	return links
}

// AllIncomingSLOs yields the latency-relevant SLOs that apply to placing task: one entry per
// non-nil predecessor-edge SLO (sourced from the predecessor's assigned node) plus one entry
// per task.DataSourceSLOs entry (sourced from its fixed DataSource node). It fails with an
// InvariantError if any predecessor with a non-nil edge SLO has not yet been assigned a node,
// since latency cannot be computed without a concrete source node.
func (w *Workflow) AllIncomingSLOs(task *Task) ([]IncomingSLOSource, error) {
	var out []IncomingSLOSource
	for _, predName := range w.predecessors[task.Name] {
		slo := w.edgeSLOs[edgeKey{from: predName, to: task.Name}]
		if slo == nil {
			continue
		}
		assigned, ok := w.AssignedNode(w.tasks[predName])
		if !ok || assigned == nil {
			return nil, newInvariantError("predecessor %q of task %q is not scheduled", predName, task.Name)
		}
		out = append(out, IncomingSLOSource{SLO: slo, Source: assigned})
	}
	for i := range task.DataSourceSLOs {
		slo := task.DataSourceSLOs[i]
		out = append(out, IncomingSLOSource{SLO: &slo.NetworkSLO, Source: slo.DataSource})
	}
	return out, nil
}

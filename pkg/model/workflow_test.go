package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T, name string) *Task {
	task, err := NewTask(name, "img", ResourceSet{MilliCPU: 100}, []CPUArchitecture{ARM64}, nil)
	require.NoError(t, err)
	return task
}

func TestWorkflowAddTaskRejectsUnknownPredecessor(t *testing.T) {
	wf := NewWorkflow()
	a := newTestTask(t, "a")
	b := newTestTask(t, "b")

	err := wf.AddTask(b, a, nil)
	require.Error(t, err)
}

func TestWorkflowStartIsFirstTaskAdded(t *testing.T) {
	wf := NewWorkflow()
	a := newTestTask(t, "a")
	b := newTestTask(t, "b")
	require.NoError(t, wf.AddTask(a, nil, nil))
	require.NoError(t, wf.AddTask(b, a, nil))

	assert.Equal(t, a, wf.Start())
}

func TestWorkflowAllIncomingSLOsFailsOnUnscheduledPredecessor(t *testing.T) {
	wf := NewWorkflow()
	a := newTestTask(t, "a")
	b := newTestTask(t, "b")
	maxLatency := int64(50)
	require.NoError(t, wf.AddTask(a, nil, nil))
	require.NoError(t, wf.AddTask(b, a, &NetworkSLO{MaxLatencyMsec: &maxLatency}))

	_, err := wf.AllIncomingSLOs(b)
	require.Error(t, err)
	var invErr *InvariantError
	assert.ErrorAs(t, err, &invErr)
}

func TestWorkflowAllIncomingSLOsSucceedsOnceScheduled(t *testing.T) {
	wf := NewWorkflow()
	a := newTestTask(t, "a")
	b := newTestTask(t, "b")
	maxLatency := int64(50)
	require.NoError(t, wf.AddTask(a, nil, nil))
	require.NoError(t, wf.AddTask(b, a, &NetworkSLO{MaxLatencyMsec: &maxLatency}))

	node := NewNode("n1", EdgeNodeKind, ARM64, ResourceSet{MilliCPU: 100}, &Location{}, nil)
	wf.SetScheduled(a, node)

	slos, err := wf.AllIncomingSLOs(b)
	require.NoError(t, err)
	require.Len(t, slos, 1)
	assert.Equal(t, node, slos[0].Source)
	assert.Equal(t, int64(50), *slos[0].SLO.MaxLatencyMsec)
}

func TestWorkflowAssignedNodeDistinguishesNeverFromFailed(t *testing.T) {
	wf := NewWorkflow()
	a := newTestTask(t, "a")
	require.NoError(t, wf.AddTask(a, nil, nil))

	_, ok := wf.AssignedNode(a)
	assert.False(t, ok, "a never-scheduled task must report ok=false")

	wf.SetScheduled(a, nil)
	node, ok := wf.AssignedNode(a)
	assert.True(t, ok)
	assert.Nil(t, node)
}

package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
)

func TestMultiCommitFallsThroughFailedCandidates(t *testing.T) {
	n1 := nodeNamed("n1")
	n2 := nodeNamed("n2")
	n3 := nodeNamed("n3")
	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 1}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)

	orch := newFakeOrchestrator()
	attempted := []string{}
	orch.assignFunc = func(task *model.Task, node *model.Node) bool {
		attempted = append(attempted, node.Name)
		return node.Name == "n2"
	}

	preference := []model.NodeScore{{Node: n1, Score: 90}, {Node: n2, Score: 80}, {Node: n3, Score: 70}}
	result := NewMultiCommitPlugin().Commit(task, preference, &pipeline.Context{Orchestrator: orch})

	require.NotNil(t, result)
	assert.Equal(t, "n2", result.Node.Name)
	assert.Equal(t, []string{"n1", "n2"}, attempted)
}

func TestMultiCommitGivesUpAfterNodesToTry(t *testing.T) {
	nodes := make([]model.NodeScore, 0, 5)
	for i := 0; i < 5; i++ {
		nodes = append(nodes, model.NodeScore{Node: nodeNamed(string(rune('a' + i)))})
	}
	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 1}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)

	orch := newFakeOrchestrator()
	attempts := 0
	orch.assignFunc = func(task *model.Task, node *model.Node) bool {
		attempts++
		return false
	}

	result := NewMultiCommitPlugin().Commit(task, nodes, &pipeline.Context{Orchestrator: orch})

	assert.Nil(t, result)
	assert.Equal(t, NodesToTry, attempts)
}

package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

func TestDirectoryLookupAcrossLayers(t *testing.T) {
	edge := model.NewNode("edge-1", model.EdgeNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)
	sat := model.NewNode("sat-1", model.SatelliteNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, nil, &model.HeatInfo{})

	dir := NewDirectory(&model.Fleet{EdgeNodes: []*model.Node{edge}, Satellites: []*model.Node{sat}})

	got, ok := dir.Lookup("edge-1")
	require.True(t, ok)
	assert.Same(t, edge, got)

	got, ok = dir.Lookup("sat-1")
	require.True(t, ok)
	assert.Same(t, sat, got)

	_, ok = dir.Lookup("missing")
	assert.False(t, ok)
}

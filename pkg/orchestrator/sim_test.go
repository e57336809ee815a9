package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

type constTick int

func (c constTick) Tick() int { return int(c) }

type matrixSource [][]float64

func (m matrixSource) DelayMatrix(tick int) [][]float64 { return m }

type posSource [][]model.Location

func (p posSource) Positions(tick int) []model.Location {
	if tick < 0 || tick >= len(p) {
		return nil
	}
	return p[tick]
}

func TestSimOrchestratorLatencyByNumericName(t *testing.T) {
	n0 := model.NewNode("0", model.EdgeNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)
	n1 := model.NewNode("1", model.GroundStationNodeKind, model.Intel64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)

	dir := NewDirectory(&model.Fleet{EdgeNodes: []*model.Node{n0}, GroundStations: []*model.Node{n1}})
	delays := matrixSource{{0, 42}, {42, 0}}
	orch := NewSimOrchestrator(dir, constTick(0), 2, delays, posSource(nil))

	assert.Equal(t, float64(42), orch.Latency(n0, n1))
}

func TestSimOrchestratorLatencyNonNumericNameIsUnreachable(t *testing.T) {
	n0 := model.NewNode("not-a-number", model.EdgeNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)
	n1 := model.NewNode("1", model.GroundStationNodeKind, model.Intel64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)

	dir := NewDirectory(&model.Fleet{EdgeNodes: []*model.Node{n0}, GroundStations: []*model.Node{n1}})
	orch := NewSimOrchestrator(dir, constTick(0), 2, matrixSource{{0, 1}, {1, 0}}, posSource(nil))

	assert.Equal(t, float64(-1), orch.Latency(n0, n1))
}

func TestSimOrchestratorSatellitePositionRejectsNonSatellite(t *testing.T) {
	n0 := model.NewNode("0", model.EdgeNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)
	dir := NewDirectory(&model.Fleet{EdgeNodes: []*model.Node{n0}})
	orch := NewSimOrchestrator(dir, constTick(0), 1, matrixSource{{0}}, posSource(nil))

	_, err := orch.SatellitePosition(n0)
	require.Error(t, err)
}

func TestSimOrchestratorSatellitePositionReadsCurrentTick(t *testing.T) {
	sat := model.NewNode("0", model.SatelliteNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, nil, &model.HeatInfo{})
	dir := NewDirectory(&model.Fleet{Satellites: []*model.Node{sat}})
	positions := posSource{
		{{Lat: 1, Long: 2}},
		{{Lat: 3, Long: 4}},
	}
	orch := NewSimOrchestrator(dir, constTick(0), 1, matrixSource{{0}}, positions)

	loc, err := orch.SatellitePosition(sat)
	require.NoError(t, err)
	assert.Equal(t, 1.0, loc.Lat)
}

func TestSimOrchestratorAssignDelegatesToNode(t *testing.T) {
	n0 := model.NewNode("0", model.EdgeNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 100}, &model.Location{}, nil)
	dir := NewDirectory(&model.Fleet{EdgeNodes: []*model.Node{n0}})
	orch := NewSimOrchestrator(dir, constTick(0), 1, matrixSource{{0}}, posSource(nil))

	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 50}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)

	assert.True(t, orch.Assign(task, n0))
	assert.Equal(t, int64(50), n0.Free(model.MilliCPU))
}

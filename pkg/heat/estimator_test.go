package heat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

func satWithHeat(heat model.HeatInfo) *model.Node {
	return model.NewNode("s1", model.SatelliteNodeKind, model.ARM64, model.ResourceSet{model.MilliCPU: 2000}, nil, &heat)
}

func TestEstimateMaxTempNoRuntimePredictionReturnsCurrentTemp(t *testing.T) {
	node := satWithHeat(model.HeatInfo{TemperatureC: 12.5})
	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 1000}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)

	got := NewEstimator().EstimateMaxTemp(node, task)
	assert.Equal(t, 12.5, got)
}

func TestEstimateMaxTempCombinesOrbitPeakAndCPUGain(t *testing.T) {
	node := satWithHeat(model.HeatInfo{
		MaxTempC:                60,
		MockedMaxOrbitBaseTempC: 10,
		TempIncPerCPUMinuteC:    2,
		RadiatedHeatPerMinuteC:  1,
	})
	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 2000}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)
	task.ExpectedExecTimeMsec = map[model.CPUArchitecture]int64{model.ARM64: 60_000}

	// mins = 1.0
	// orbitPeak = floor(10*1) mod floor(60) = 10
	// cpuCores = 2.0, cpuMinutes = 1*2 = 2, increase = 2*2 = 4, cooling = 1*1 = 1
	// gain = 4 - 1 = 3
	// total = 10 + 3 = 13
	got := NewEstimator().EstimateMaxTemp(node, task)
	assert.Equal(t, 13.0, got)
}

func TestEstimateMaxTempOrbitPeakWrapsModuloMaxTemp(t *testing.T) {
	node := satWithHeat(model.HeatInfo{
		MaxTempC:                7,
		MockedMaxOrbitBaseTempC: 10,
	})
	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 1000}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)
	task.ExpectedExecTimeMsec = map[model.CPUArchitecture]int64{model.ARM64: 180_000}

	// mins = 3.0, base = floor(10*3) = 30, mod 7 = 2
	got := NewEstimator().EstimateMaxTemp(node, task)
	assert.Equal(t, 2.0, got)
}

func TestEstimateMaxTempZeroMaxTempSkipsOrbitTerm(t *testing.T) {
	node := satWithHeat(model.HeatInfo{
		MaxTempC:                0,
		MockedMaxOrbitBaseTempC: 10,
		TempIncPerCPUMinuteC:    1,
	})
	task, err := model.NewTask("t", "img", model.ResourceSet{model.MilliCPU: 1000}, []model.CPUArchitecture{model.ARM64}, nil)
	require.NoError(t, err)
	task.ExpectedExecTimeMsec = map[model.CPUArchitecture]int64{model.ARM64: 60_000}

	got := NewEstimator().EstimateMaxTemp(node, task)
	assert.Equal(t, 1.0, got)
}

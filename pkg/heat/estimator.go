// Package heat estimates the peak hardware temperature a satellite node will reach while
// executing a given task.
package heat

import (
	"math"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

// Estimator predicts the peak temperature a satellite node will reach over a task's
// projected runtime. The orbit-peak term is a deliberately coarse proxy for the radiative
// environment the satellite is exposed to; it is kept exactly as specified rather than
// replaced with a physically motivated model, because downstream scoring decisions are
// calibrated against it.
type Estimator struct{}

// NewEstimator constructs a heat Estimator. It holds no state.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// EstimateMaxTemp estimates the maximum temperature node is expected to reach while running
// task. If task has no expected runtime recorded for node's CPU architecture, no prediction
// is possible and the node's current temperature is returned unchanged.
func (e *Estimator) EstimateMaxTemp(node *model.Node, task *model.Task) float64 {
	runtimeMsec, ok := task.ExpectedExecTimeMsec[node.CPUArch]
	if !ok {
		return node.Heat.TemperatureC
	}

	mins := float64(runtimeMsec) / 1000.0 / 60.0
	orbitPeak := e.orbitPeak(node, mins)
	gain := e.computeTempIncrease(node, task, mins)
	return orbitPeak + gain
}

func (e *Estimator) orbitPeak(node *model.Node, mins float64) float64 {
	maxTemp := int64(math.Floor(node.Heat.MaxTempC))
	if maxTemp == 0 {
		return 0
	}
	base := int64(math.Floor(node.Heat.MockedMaxOrbitBaseTempC * mins))
	mod := base % maxTemp
	if mod < 0 {
		mod += maxTemp
	}
	return float64(mod)
}

func (e *Estimator) computeTempIncrease(node *model.Node, task *model.Task, mins float64) float64 {
	cpuCores := float64(task.ReqResources.Get(model.MilliCPU)) / 1000.0
	cpuMinutes := mins * cpuCores
	increase := node.Heat.TempIncPerCPUMinuteC * cpuMinutes
	cooling := node.Heat.RadiatedHeatPerMinuteC * mins
	return increase - cooling
}

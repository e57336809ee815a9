package plugins

import (
	"fmt"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

// fakeOrchestrator is a hand-stubbed orchestrator.Client for exercising plugins without
// standing up a full simulator.
type fakeOrchestrator struct {
	latencies  map[[2]string]float64
	positions  map[string]model.Location
	assignFunc func(task *model.Task, node *model.Node) bool
}

func newFakeOrchestrator() *fakeOrchestrator {
	return &fakeOrchestrator{
		latencies: make(map[[2]string]float64),
		positions: make(map[string]model.Location),
	}
}

func (f *fakeOrchestrator) Lookup(name string) (*model.Node, bool) { return nil, false }

func (f *fakeOrchestrator) Latency(src, dst *model.Node) float64 {
	if l, ok := f.latencies[[2]string{src.Name, dst.Name}]; ok {
		return l
	}
	if l, ok := f.latencies[[2]string{dst.Name, src.Name}]; ok {
		return l
	}
	return -1
}

func (f *fakeOrchestrator) SatellitePosition(node *model.Node) (model.Location, error) {
	loc, ok := f.positions[node.Name]
	if !ok {
		return model.Location{}, fmt.Errorf("no position for %q", node.Name)
	}
	return loc, nil
}

func (f *fakeOrchestrator) Assign(task *model.Task, node *model.Node) bool {
	if f.assignFunc != nil {
		return f.assignFunc(task, node)
	}
	return node.TryAssign(task.ReqResources)
}

// Command schedulerctl is a thin demonstration harness around the scheduler core. It is not
// the scenario driver described in the project's design notes (that remains an external
// collaborator); it exists to wire the core's pieces together end to end against a small,
// hardcoded fleet so the package can be exercised from a terminal.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/polaris-slo-cloud/hyperdrive-go/internal/config"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/metrics"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/orchestrator"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/pipeline"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/plugins"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/results"
	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/scheduler"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "schedulerctl",
		Short:   "Orbital/edge workflow scheduler demonstration CLI",
		Version: version,
	}

	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func demoCmd() *cobra.Command {
	var configPath string
	var resultsPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a two-task workflow against a small built-in fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if configPath != "" {
				loaded, err := config.LoadFromYAML(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if resultsPath != "" {
				cfg.ResultsCSVPath = resultsPath
			}
			return runDemo(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Optional YAML configuration file path")
	cmd.Flags().StringVarP(&resultsPath, "results", "r", "", "Override the results CSV output path")

	return cmd
}

// fixedDelaySource is a single-tick delay matrix for the demo fleet: node 0 is the edge node,
// node 1 is the ground station.
type fixedDelaySource struct{}

func (fixedDelaySource) DelayMatrix(tick int) [][]float64 {
	return [][]float64{
		{0, 150},
		{150, 0},
	}
}

type noSatellitePositions struct{}

func (noSatellitePositions) Positions(tick int) []model.Location { return nil }

type fixedTick struct{}

func (fixedTick) Tick() int { return 0 }

func runDemo(cfg *config.SchedulerConfig) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	edge := model.NewNode("0", model.EdgeNodeKind, model.ARM64,
		model.ResourceSet{model.MilliCPU: 4000, model.MemoryMiB: 4096},
		&model.Location{Lat: 39.49, Long: -122.98}, nil)
	ground := model.NewNode("1", model.GroundStationNodeKind, model.Intel64,
		model.ResourceSet{model.MilliCPU: 8000, model.MemoryMiB: 16384},
		&model.Location{Lat: 50.00, Long: 5.15}, nil)

	fleet := &model.Fleet{EdgeNodes: []*model.Node{edge}, GroundStations: []*model.Node{ground}}
	dir := orchestrator.NewDirectory(fleet)
	orch := orchestrator.NewSimOrchestrator(dir, fixedTick{}, 2, fixedDelaySource{}, noSatellitePositions{})

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	pluginSet := scheduler.PluginSet{
		SelectCandidates: plugins.NewSelectNodesInVicinityPlugin(plugins.VicinityConfig(cfg.Vicinity), rng),
		Filters:          []pipeline.FilterPlugin{plugins.NewResourcesFitPlugin(), plugins.NewNetworkQoSPlugin()},
		Scorers:          []pipeline.ScorePlugin{plugins.NewNetworkQoSPlugin()},
		Commit:           plugins.NewMultiCommitPlugin(),
	}

	rec := metrics.NewRecorder()
	sched := scheduler.New(pluginSet, orch, fleet, logger, rec)

	workflow := model.NewWorkflow()
	taskA, err := model.NewTask("A", "ingest:latest", model.ResourceSet{model.MilliCPU: 500, model.MemoryMiB: 256}, []model.CPUArchitecture{model.ARM64, model.Intel64}, nil)
	if err != nil {
		return err
	}
	maxLatency := int64(100)
	taskB, err := model.NewTask("B", "analyze:latest", model.ResourceSet{model.MilliCPU: 500, model.MemoryMiB: 256}, []model.CPUArchitecture{model.ARM64, model.Intel64}, nil)
	if err != nil {
		return err
	}

	if err := workflow.AddTask(taskA, nil, nil); err != nil {
		return err
	}
	if err := workflow.AddTask(taskB, taskA, &model.NetworkSLO{MaxLatencyMsec: &maxLatency}); err != nil {
		return err
	}

	seedResult := sched.ForceSchedule(taskA, workflow, edge)
	scheduleResult := sched.Schedule(taskB, workflow)

	return results.WriteCSV(cfg.ResultsCSVPath, []model.SchedulingResult{seedResult, scheduleResult})
}

// Package config assembles the scheduler's construction-time configuration: vicinity radii
// and per-layer candidate counts, the round-robin node count, and the random seed that makes
// the random scheduler and vicinity fallback reproducible. Nothing here is a process-wide
// global; Load returns a value the caller threads explicitly into the plugin constructors.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// VicinityConfig mirrors plugins.VicinityConfig; it is duplicated here (rather than imported)
// so that this package has no dependency on pkg/plugins, keeping the config layer a leaf.
type VicinityConfig struct {
	RadiusGroundKm float64 `json:"radius_ground_km" yaml:"radius_ground_km"`
	RadiusEdgeKm   float64 `json:"radius_edge_km" yaml:"radius_edge_km"`
	RadiusSpaceKm  float64 `json:"radius_space_km" yaml:"radius_space_km"`

	GroundNodesCount int `json:"ground_nodes_count" yaml:"ground_nodes_count"`
	EdgeNodesCount   int `json:"edge_nodes_count" yaml:"edge_nodes_count"`
	SpaceNodesCount  int `json:"space_nodes_count" yaml:"space_nodes_count"`
}

// SchedulerConfig is the full set of construction-time parameters for the scheduler driver
// and its plugins.
type SchedulerConfig struct {
	Vicinity VicinityConfig `json:"vicinity" yaml:"vicinity"`

	// RoundRobinTotalNodes is the total-node-count RoundRobinPlugin cycles through.
	RoundRobinTotalNodes int `json:"round_robin_total_nodes" yaml:"round_robin_total_nodes"`

	// RandomSeed seeds every plugin that needs a seeded generator (RandomPlugin, the
	// vicinity selector's random fallback). Fixing it makes a run reproducible.
	RandomSeed int64 `json:"random_seed" yaml:"random_seed"`

	// ResultsCSVPath is where the scheduler's results are written, if the caller asks for a
	// CSV to be written at all.
	ResultsCSVPath string `json:"results_csv_path" yaml:"results_csv_path"`
}

// Default returns the configuration used when no environment variables or config file
// override it, matching the radii and counts the reference scenarios in scenarios/util were
// built with.
func Default() *SchedulerConfig {
	return &SchedulerConfig{
		Vicinity: VicinityConfig{
			RadiusGroundKm:   500,
			RadiusEdgeKm:     100,
			RadiusSpaceKm:    500,
			GroundNodesCount: 3,
			EdgeNodesCount:   3,
			SpaceNodesCount:  3,
		},
		RoundRobinTotalNodes: 1,
		RandomSeed:           1,
		ResultsCSVPath:       "results.csv",
	}
}

// Load builds a SchedulerConfig from Default, overridden by any HYPERDRIVE_* environment
// variables that are set.
func Load() *SchedulerConfig {
	cfg := Default()

	cfg.Vicinity.RadiusGroundKm = getEnvFloatOrDefault("HYPERDRIVE_RADIUS_GROUND_KM", cfg.Vicinity.RadiusGroundKm)
	cfg.Vicinity.RadiusEdgeKm = getEnvFloatOrDefault("HYPERDRIVE_RADIUS_EDGE_KM", cfg.Vicinity.RadiusEdgeKm)
	cfg.Vicinity.RadiusSpaceKm = getEnvFloatOrDefault("HYPERDRIVE_RADIUS_SPACE_KM", cfg.Vicinity.RadiusSpaceKm)
	cfg.Vicinity.GroundNodesCount = getEnvIntOrDefault("HYPERDRIVE_GROUND_NODES_COUNT", cfg.Vicinity.GroundNodesCount)
	cfg.Vicinity.EdgeNodesCount = getEnvIntOrDefault("HYPERDRIVE_EDGE_NODES_COUNT", cfg.Vicinity.EdgeNodesCount)
	cfg.Vicinity.SpaceNodesCount = getEnvIntOrDefault("HYPERDRIVE_SPACE_NODES_COUNT", cfg.Vicinity.SpaceNodesCount)

	cfg.RoundRobinTotalNodes = getEnvIntOrDefault("HYPERDRIVE_ROUND_ROBIN_TOTAL_NODES", cfg.RoundRobinTotalNodes)
	cfg.RandomSeed = getEnvInt64OrDefault("HYPERDRIVE_RANDOM_SEED", cfg.RandomSeed)
	cfg.ResultsCSVPath = getEnvOrDefault("HYPERDRIVE_RESULTS_CSV_PATH", cfg.ResultsCSVPath)

	return cfg
}

// LoadFromYAML reads a YAML file at path and overlays it on top of Default, for scenario
// drivers that want a plugin configuration checked into source control rather than
// passed through the environment.
func LoadFromYAML(path string) (*SchedulerConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Package results writes scheduling outcomes to disk as a flat CSV, one row per
// model.SchedulingResult.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

var columns = []string{
	"success",
	"task",
	"scheduling_duration_msec",
	"target_node",
	"target_node_type",
	"score",
	"avg_pred_latency_slo",
	"avg_pred_latency",
	"avg_data_latency_slo",
	"avg_data_latency",
	"deg_c_over_recommended",
	"deg_c_over_max",
	"failure_reason",
}

// WriteCSV writes rows to path, creating the parent directory if needed and writing the file
// atomically (write to a temp file in the same directory, then rename into place).
func WriteCSV(path string, rows []model.SchedulingResult) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp results file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i := range rows {
		if err := w.Write(rowOf(&rows[i])); err != nil {
			tmp.Close()
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flushing CSV: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp results file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming results file into place: %w", err)
	}
	return nil
}

func rowOf(r *model.SchedulingResult) []string {
	return []string{
		strconv.FormatBool(r.Success),
		r.Task,
		strconv.FormatInt(r.SchedulingDurationMsec, 10),
		stringOrEmpty(r.TargetNode),
		stringOrEmpty(r.TargetNodeType),
		intOrEmpty(r.Score),
		floatOrEmpty(r.AvgPredLatencySLO),
		floatOrEmpty(r.AvgPredLatency),
		floatOrEmpty(r.AvgDataLatencySLO),
		floatOrEmpty(r.AvgDataLatency),
		floatOrEmpty(r.DegCOverRecommended),
		floatOrEmpty(r.DegCOverMax),
		stringOrEmpty(r.FailureReason),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

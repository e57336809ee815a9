package results

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polaris-slo-cloud/hyperdrive-go/pkg/model"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "results.csv")

	node := "n1"
	nodeType := "EdgeNode"
	score := 87
	reason := "Filtering returned no eligible nodes"

	rows := []model.SchedulingResult{
		{Success: true, Task: "a", SchedulingDurationMsec: 12, TargetNode: &node, TargetNodeType: &nodeType, Score: &score},
		{Success: false, Task: "b", SchedulingDurationMsec: 3, FailureReason: &reason},
	}

	require.NoError(t, WriteCSV(path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, columns, records[0])
	assert.Equal(t, "true", records[1][0])
	assert.Equal(t, "n1", records[1][3])
	assert.Equal(t, "87", records[1][5])
	assert.Equal(t, "", records[1][12])

	assert.Equal(t, "false", records[2][0])
	assert.Equal(t, "", records[2][3])
	assert.Equal(t, reason, records[2][12])
}

func TestWriteCSVCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c", "results.csv")

	require.NoError(t, WriteCSV(path, nil))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteCSVLeavesNoTempFileBehindOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	require.NoError(t, WriteCSV(path, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "results.csv", entries[0].Name())
}

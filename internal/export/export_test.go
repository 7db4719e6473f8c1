package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/sysinfo"
)

func TestSliceSeriesCSV(t *testing.T) {
	cpu := benchmark.CpuRunSummary{SliceSeries: []int64{100, 250, 175}}
	rates := []float64{100.5, 250.25}
	path := filepath.Join(t.TempDir(), "slices.csv")

	require.NoError(t, SliceSeriesCSV(cpu, rates, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per slice")

	assert.Equal(t, []string{"Slice", "Operations", "OpsPerSec"}, rows[0])
	assert.Equal(t, []string{"1", "100", "100.50"}, rows[1])
	assert.Equal(t, []string{"2", "250", "250.25"}, rows[2])
	assert.Equal(t, []string{"3", "175", ""}, rows[3], "missing rate leaves the cell empty")
}

func TestSliceSeriesCSVBadPath(t *testing.T) {
	err := SliceSeriesCSV(benchmark.CpuRunSummary{}, nil, "/nonexistent/out.csv")
	require.Error(t, err)
}

func TestSuiteJSONRoundTrip(t *testing.T) {
	drive := 170
	res := benchmark.SuiteResult{
		RunID:     ulid.Make().String(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Host:      sysinfo.Collect(),
		CPU: benchmark.CpuRunSummary{
			Mode:        "single",
			Workers:     1,
			Operations:  4200,
			Score:       420,
			SliceSeries: []int64{2100, 2100},
		},
		Sequential: &benchmark.SequentialIOSummary{WriteSpeedMBps: 100, ReadSpeedMBps: 200, FileSizeMB: 10},
		Random:     &benchmark.RandomIOSummary{ReadIOPS: 1000, WriteIOPS: 900, Operations: 100},
		Scores:     benchmark.OverallScore{CPUScore: 420, DriveScore: &drive, Overall: 295},
	}

	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, SuiteJSON(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded benchmark.SuiteResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.RunID, decoded.RunID)
	assert.Equal(t, res.CPU, decoded.CPU)
	assert.Equal(t, res.Sequential, decoded.Sequential)
	assert.Equal(t, res.Random, decoded.Random)
	assert.Equal(t, *res.Scores.DriveScore, *decoded.Scores.DriveScore)
	assert.Nil(t, decoded.SequentialDeviceIO, "absent counters stay absent")
}

func TestSuiteJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is much longer than the replacement"), 0o644))

	require.NoError(t, SuiteJSON(benchmark.SuiteResult{RunID: "x"}, path))

	var decoded benchmark.SuiteResult
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded), "previous content fully replaced")
	assert.Equal(t, "x", decoded.RunID)
}

package display

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/sysinfo"
)

func sampleResult() benchmark.SuiteResult {
	drive := 170
	return benchmark.SuiteResult{
		RunID: "01JTEST",
		Host:  sysinfo.Info{Hostname: "testhost", LogicalCPUs: 8, OS: "linux", Arch: "amd64", GoVersion: "go1.25.3"},
		CPU: benchmark.CpuRunSummary{
			Mode:            "single",
			Workers:         1,
			Elapsed:         1200 * time.Millisecond,
			Operations:      54321,
			PrimesFound:     678,
			Score:           45267,
			SliceSeries:     []int64{27000, 27321},
			PlannedDuration: time.Second,
		},
		Sequential: &benchmark.SequentialIOSummary{
			WriteSeconds: 0.5, ReadSeconds: 0.25,
			WriteSpeedMBps: 200, ReadSpeedMBps: 400, FileSizeMB: 100,
		},
		Random: &benchmark.RandomIOSummary{
			ReadSeconds: 0.1, WriteSeconds: 0.2,
			ReadIOPS: 10000, WriteIOPS: 5000, Operations: 1000,
		},
		Scores: benchmark.OverallScore{CPUScore: 45267, DriveScore: &drive, Overall: 22719},
	}
}

func TestBreakdownListsEverySummaryField(t *testing.T) {
	var buf bytes.Buffer
	Breakdown(&buf, sampleResult())
	out := buf.String()

	for _, want := range []string{
		"single (1 worker(s))",
		"Operations:", "54321",
		"Primes found:", "678",
		"45267 ops/sec",
		"File size:", "100 MB",
		"200.0 MB/s", "400.0 MB/s",
		"10000 IOPS", "5000 IOPS",
	} {
		assert.Contains(t, out, want)
	}
}

func TestBreakdownSkippedDrive(t *testing.T) {
	res := sampleResult()
	res.Sequential = nil
	res.Random = nil

	var buf bytes.Buffer
	Breakdown(&buf, res)
	out := buf.String()

	assert.NotContains(t, out, "Sequential I/O")
	assert.NotContains(t, out, "Random I/O")
}

func TestScoresWithAndWithoutDrive(t *testing.T) {
	var buf bytes.Buffer
	Scores(&buf, sampleResult().Scores)
	out := buf.String()
	assert.Contains(t, out, "45267 ops/sec")
	assert.Contains(t, out, "170 composite")
	assert.Contains(t, out, "22719 combined")

	buf.Reset()
	Scores(&buf, benchmark.OverallScore{CPUScore: 42, Overall: 42})
	assert.Contains(t, buf.String(), "(CPU only)")
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "01JRUNID", sampleResult().Host)
	out := buf.String()

	assert.Contains(t, out, "01JRUNID")
	assert.Contains(t, out, "testhost")
	assert.Contains(t, out, "8 logical CPUs")
	assert.Contains(t, out, "go1.25.3 linux/amd64")
}

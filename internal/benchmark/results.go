package benchmark

import (
	"time"

	"github.com/google/uuid"

	"github.com/moguls753/sysmark/internal/sysinfo"
)

// WorkloadResult contains the raw counts from one time-boxed CPU run
type WorkloadResult struct {
	Operations  int64         `json:"operations"`
	PrimesFound int64         `json:"primes_found"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	SliceCounts []int64       `json:"slice_counts"`
}

// WorkerResult is one worker process's contribution to a single multi-core slice
type WorkerResult struct {
	ID uuid.UUID `json:"worker_id"`
	WorkloadResult
}

// CpuRunSummary contains the aggregated outcome of the CPU benchmark,
// single- or multi-core
type CpuRunSummary struct {
	Mode            string        `json:"mode"`
	Workers         int           `json:"workers"`
	Elapsed         time.Duration `json:"elapsed_ns"`
	Operations      int64         `json:"operations"`
	PrimesFound     int64         `json:"primes_found"`
	Score           int           `json:"score"`
	SliceSeries     []int64       `json:"slice_series"`
	PlannedDuration time.Duration `json:"planned_duration_ns"`
}

// SequentialIOSummary contains results for the sequential drive benchmark
type SequentialIOSummary struct {
	WriteSeconds   float64 `json:"write_seconds"`
	ReadSeconds    float64 `json:"read_seconds"`
	WriteSpeedMBps float64 `json:"write_speed_mbps"`
	ReadSpeedMBps  float64 `json:"read_speed_mbps"`
	FileSizeMB     int     `json:"file_size_mb"`
}

// RandomIOSummary contains results for the random-access drive benchmark
type RandomIOSummary struct {
	ReadSeconds  float64 `json:"read_seconds"`
	WriteSeconds float64 `json:"write_seconds"`
	ReadIOPS     float64 `json:"read_iops"`
	WriteIOPS    float64 `json:"write_iops"`
	Operations   int     `json:"operations"`
}

// OverallScore combines the per-domain scores. DriveScore is nil when the
// drive benchmarks were skipped; Overall then equals CPUScore.
type OverallScore struct {
	CPUScore   int  `json:"cpu_score"`
	DriveScore *int `json:"drive_score,omitempty"`
	Overall    int  `json:"overall_score"`
}

// IOCounters are cumulative device-level I/O byte counts for this process,
// as reported by the OS (see disk.ReadSelfIO)
type IOCounters struct {
	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`
}

// Delta returns the counter movement since prev
func (c IOCounters) Delta(prev IOCounters) IOCounters {
	return IOCounters{
		ReadBytes:  c.ReadBytes - prev.ReadBytes,
		WriteBytes: c.WriteBytes - prev.WriteBytes,
	}
}

// SuiteResult is the complete record of one benchmark invocation, the
// document written by --json
type SuiteResult struct {
	RunID      string               `json:"run_id"`
	StartedAt  time.Time            `json:"started_at"`
	Host       sysinfo.Info         `json:"host"`
	CPU        CpuRunSummary        `json:"cpu"`
	Sequential *SequentialIOSummary `json:"sequential,omitempty"`
	Random     *RandomIOSummary     `json:"random,omitempty"`

	// Device-level byte counters observed around each drive workload,
	// absent when the OS does not expose them.
	SequentialDeviceIO *IOCounters `json:"sequential_device_io,omitempty"`
	RandomDeviceIO     *IOCounters `json:"random_device_io,omitempty"`

	Scores OverallScore `json:"scores"`
}

package scenarios

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/benchmark/cpu"
)

func TestCPUSingleCoreEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("one-second burn skipped in short mode")
	}

	summary, rates, err := CPUSingleCore(context.Background(), io.Discard, time.Second)
	require.NoError(t, err)

	assert.Equal(t, "single", summary.Mode)
	assert.Equal(t, 1, summary.Workers)
	assert.GreaterOrEqual(t, summary.Elapsed.Seconds(), 1.0)
	assert.Less(t, summary.Elapsed.Seconds(), 2.0)
	assert.Positive(t, summary.Score)
	assert.Equal(t, time.Second, summary.PlannedDuration)

	require.Len(t, summary.SliceSeries, cpuSlices)
	require.Len(t, rates, cpuSlices)
	var sum int64
	for _, ops := range summary.SliceSeries {
		sum += ops
	}
	assert.Equal(t, summary.Operations, sum)
}

func TestCPUSingleCoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, _, err := CPUSingleCore(ctx, io.Discard, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "single", summary.Mode)
	assert.Zero(t, summary.Operations, "partial counts, canceled before any work")
}

// fakePool satisfies cpu.WorkerPool with canned per-worker results, so the
// coordinator's aggregation rules are checkable without real processes.
type fakePool struct {
	workers     int
	perWorker   benchmark.WorkloadResult
	failOnSlice int // 1-based slice index to fail on, 0 = never
	slicesRun   int
	shutdowns   int
}

func (p *fakePool) Start(n int) error {
	p.workers = n
	return nil
}

func (p *fakePool) RunSlice(d time.Duration) ([]benchmark.WorkerResult, error) {
	p.slicesRun++
	if p.failOnSlice != 0 && p.slicesRun == p.failOnSlice {
		return nil, errors.New("worker 0: read result: unexpected EOF")
	}
	out := make([]benchmark.WorkerResult, p.workers)
	for i := range out {
		out[i] = benchmark.WorkerResult{ID: uuid.New(), WorkloadResult: p.perWorker}
		// Stagger elapsed so the max-across-workers rule is observable.
		out[i].Elapsed += time.Duration(i) * 10 * time.Millisecond
	}
	return out, nil
}

func (p *fakePool) Shutdown() error {
	p.shutdowns++
	return nil
}

func TestCPUMultiCoreAggregation(t *testing.T) {
	pool := &fakePool{perWorker: benchmark.WorkloadResult{
		Operations:  100,
		PrimesFound: 25,
		Elapsed:     100 * time.Millisecond,
		SliceCounts: []int64{100},
	}}

	summary, rates, err := CPUMultiCore(context.Background(), io.Discard, time.Second, 3, pool)
	require.NoError(t, err)

	assert.Equal(t, "multi", summary.Mode)
	assert.Equal(t, 3, summary.Workers)
	assert.Equal(t, int64(3000), summary.Operations, "operations sum across workers and slices")
	assert.Equal(t, int64(750), summary.PrimesFound)

	// Slowest worker runs 120 ms, so each slice contributes its max.
	assert.Equal(t, 10*120*time.Millisecond, summary.Elapsed)

	require.Len(t, summary.SliceSeries, cpuSlices)
	for _, ops := range summary.SliceSeries {
		assert.Equal(t, int64(300), ops)
	}
	require.Len(t, rates, cpuSlices)
	assert.InDelta(t, 300.0/0.12, rates[0], 1e-6)

	assert.Equal(t, cpuSlices, pool.slicesRun)
	assert.Positive(t, pool.shutdowns, "pool torn down after the run")
}

func TestCPUMultiCoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := &fakePool{perWorker: benchmark.WorkloadResult{
		Operations:  100,
		Elapsed:     50 * time.Millisecond,
		SliceCounts: []int64{100},
	}}

	// The fake pool cannot see the cancellation, so only the
	// coordinator's own check between slices can cut the run short.
	summary, _, err := CPUMultiCore(ctx, io.Discard, time.Second, 2, pool)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, pool.slicesRun, "no slice may start after the interrupt")
	assert.Equal(t, "multi", summary.Mode)
	assert.Zero(t, summary.Operations, "partial counts, canceled before any work")
	assert.Positive(t, pool.shutdowns, "pool torn down on the interrupted path")
}

func TestCPUMultiCoreWorkerFailureIsFatal(t *testing.T) {
	pool := &fakePool{
		perWorker:   benchmark.WorkloadResult{Operations: 100, Elapsed: 50 * time.Millisecond, SliceCounts: []int64{100}},
		failOnSlice: 3,
	}

	_, _, err := CPUMultiCore(context.Background(), io.Discard, time.Second, 2, pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cpu slice 3")
	assert.Positive(t, pool.shutdowns, "pool torn down on the failure path")
}

type brokenPool struct{ fakePool }

func (p *brokenPool) Start(n int) error { return errors.New("fork failed") }

func TestCPUMultiCoreStartFailure(t *testing.T) {
	_, _, err := CPUMultiCore(context.Background(), io.Discard, time.Second, 2, &brokenPool{})
	require.ErrorContains(t, err, "start worker pool")
}

func TestCPUMultiCoreDefaultsWorkerCount(t *testing.T) {
	pool := &fakePool{perWorker: benchmark.WorkloadResult{Operations: 1, Elapsed: time.Millisecond, SliceCounts: []int64{1}}}

	summary, _, err := CPUMultiCore(context.Background(), io.Discard, time.Second, 0, pool)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, summary.Workers, 1, "zero workers falls back to the CPU count")
	assert.Equal(t, summary.Workers, pool.workers)
}

// Interface check against the real pool type.
var _ cpu.WorkerPool = (*fakePool)(nil)

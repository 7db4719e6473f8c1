package scenarios

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/benchmark/cpu"
	"github.com/moguls753/sysmark/internal/benchmark/score"
	"github.com/moguls753/sysmark/internal/benchmark/statistics"
	"github.com/moguls753/sysmark/internal/display"
)

// cpuSlices is the number of sub-intervals the CPU benchmarks split their
// total duration into for the throughput time series.
const cpuSlices = 10

// CPUSingleCore measures single-core throughput: cpuSlices sequential
// one-slice burns on the calling goroutine, each rendered as a bar against
// the fastest slice seen so far. On interruption the summary accumulated so
// far is returned together with the context error.
func CPUSingleCore(ctx context.Context, out io.Writer, duration time.Duration) (benchmark.CpuRunSummary, []float64, error) {
	fmt.Fprintln(out, "Testing CPU Single-Core Performance...")

	sliceDur := duration / cpuSlices
	if sliceDur <= 0 {
		sliceDur = time.Second
	}

	var (
		series      []int64
		rates       []float64
		totalOps    int64
		totalPrimes int64
		maxRate     float64
	)

	fmt.Fprintln(out, "   CPU ops/sec over time:")
	startTotal := time.Now()
	for i := 0; i < cpuSlices; i++ {
		res, err := cpu.Run(ctx, sliceDur, 1)
		totalOps += res.Operations
		totalPrimes += res.PrimesFound
		series = append(series, res.Operations)
		if err != nil {
			elapsed := time.Since(startTotal)
			return singleCoreSummary(duration, elapsed, totalOps, totalPrimes, series), rates, err
		}

		rate := 0.0
		if el := res.Elapsed.Seconds(); el > 0 {
			rate = float64(res.Operations) / el
		}
		if rate > maxRate {
			maxRate = rate
		}
		rates = append(rates, rate)
		display.SliceLine(out, i, cpuSlices, rate, maxRate)
	}
	cpuTime := time.Since(startTotal)

	fmt.Fprintf(out, "    peak %d ops/s\n", int(maxRate))
	if len(rates) > 0 {
		display.SliceStats(out, statistics.Calculate(rates))
		if comp, declined := statistics.Decline(rates); declined {
			display.DeclineNote(out, comp)
		}
	}

	summary := singleCoreSummary(duration, cpuTime, totalOps, totalPrimes, series)
	fmt.Fprintf(out, "✓ Duration: %.2fs\n", summary.Elapsed.Seconds())
	fmt.Fprintf(out, "✓ Operations: %d\n", summary.Operations)
	fmt.Fprintf(out, "✓ CPU Score: %d ops/sec\n", summary.Score)
	return summary, rates, nil
}

func singleCoreSummary(planned, elapsed time.Duration, ops, primes int64, series []int64) benchmark.CpuRunSummary {
	return benchmark.CpuRunSummary{
		Mode:            "single",
		Workers:         1,
		Elapsed:         elapsed,
		Operations:      ops,
		PrimesFound:     primes,
		Score:           score.CPU(ops, elapsed),
		SliceSeries:     series,
		PlannedDuration: planned,
	}
}

// CPUMultiCore measures aggregate throughput with `workers` parallel worker
// processes driven by pool. Each of the cpuSlices slices fans one burn out
// to every worker and waits for all of them; a slice is as slow as its
// slowest worker. A non-positive workers falls back to the logical CPU
// count. The pool is started here and torn down on every exit path.
func CPUMultiCore(ctx context.Context, out io.Writer, duration time.Duration, workers int, pool cpu.WorkerPool) (benchmark.CpuRunSummary, []float64, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	fmt.Fprintf(out, "Testing CPU Multi-Core Performance with %d workers...\n", workers)

	sliceDur := duration / cpuSlices
	if sliceDur <= 0 {
		sliceDur = time.Second
	}

	if err := pool.Start(workers); err != nil {
		return benchmark.CpuRunSummary{}, nil, fmt.Errorf("start worker pool: %w", err)
	}
	defer pool.Shutdown()

	var (
		series      []int64
		rates       []float64
		totalOps    int64
		totalPrimes int64
		totalWall   time.Duration
		maxRate     float64
	)

	fmt.Fprintln(out, "   CPU ops/sec over time:")
	for i := 0; i < cpuSlices; i++ {
		// The workers run in their own processes, so an interrupt that
		// reaches only this process would otherwise go unnoticed until
		// the next phase.
		if err := ctx.Err(); err != nil {
			return multiCoreSummary(duration, totalWall, workers, totalOps, totalPrimes, series), rates, err
		}

		results, err := pool.RunSlice(sliceDur)
		if err != nil {
			summary := multiCoreSummary(duration, totalWall, workers, totalOps, totalPrimes, series)
			if ctx.Err() != nil {
				return summary, rates, ctx.Err()
			}
			return summary, rates, fmt.Errorf("cpu slice %d: %w", i+1, err)
		}

		var sliceOps, slicePrimes int64
		var sliceTime time.Duration
		for _, r := range results {
			sliceOps += r.Operations
			slicePrimes += r.PrimesFound
			if r.Elapsed > sliceTime {
				sliceTime = r.Elapsed
			}
		}
		totalOps += sliceOps
		totalPrimes += slicePrimes
		totalWall += sliceTime
		series = append(series, sliceOps)

		rate := 0.0
		if st := sliceTime.Seconds(); st > 0 {
			rate = float64(sliceOps) / st
		}
		if rate > maxRate {
			maxRate = rate
		}
		rates = append(rates, rate)
		display.SliceLine(out, i, cpuSlices, rate, maxRate)
	}

	if err := pool.Shutdown(); err != nil {
		return multiCoreSummary(duration, totalWall, workers, totalOps, totalPrimes, series), rates, fmt.Errorf("shutdown worker pool: %w", err)
	}

	fmt.Fprintf(out, "    peak %d ops/s\n", int(maxRate))
	if len(rates) > 0 {
		display.SliceStats(out, statistics.Calculate(rates))
		if comp, declined := statistics.Decline(rates); declined {
			display.DeclineNote(out, comp)
		}
	}

	summary := multiCoreSummary(duration, totalWall, workers, totalOps, totalPrimes, series)
	fmt.Fprintf(out, "✓ Duration: %.2fs\n", summary.Elapsed.Seconds())
	fmt.Fprintf(out, "✓ Total operations: %d\n", summary.Operations)
	fmt.Fprintf(out, "✓ Aggregate CPU Score: %d ops/sec\n", summary.Score)
	return summary, rates, nil
}

func multiCoreSummary(planned, wall time.Duration, workers int, ops, primes int64, series []int64) benchmark.CpuRunSummary {
	return benchmark.CpuRunSummary{
		Mode:            "multi",
		Workers:         workers,
		Elapsed:         wall,
		Operations:      ops,
		PrimesFound:     primes,
		Score:           score.CPU(ops, wall),
		SliceSeries:     series,
		PlannedDuration: planned,
	}
}

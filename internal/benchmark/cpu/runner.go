package cpu

import (
	"context"
	"math"
	"time"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// fibonacciDepth is the fixed recursion depth of the Fibonacci padding in
// every benchmark operation.
const fibonacciDepth = 20

// Sink receives each run's accumulated side computations so the compiler
// cannot discard the floating-point work.
var Sink float64

// Run executes the primality workload on a counter that starts at 2 and
// increments by one per operation, until d of wall-clock time has elapsed.
// Each operation is counted into one of `slices` equal sub-intervals of d,
// index floor(elapsed/(d/slices)) clamped to the last, giving a coarse
// throughput time series. The returned SliceCounts always has exactly
// `slices` entries and sums to Operations.
//
// A non-positive d keeps a one-second per-slice length for bucketing, but
// the loop condition still exits immediately, so such runs report zero
// operations. When ctx is canceled mid-run the partial result is returned
// together with ctx.Err().
func Run(ctx context.Context, d time.Duration, slices int) (benchmark.WorkloadResult, error) {
	if slices < 1 {
		slices = 1
	}
	res := benchmark.WorkloadResult{SliceCounts: make([]int64, slices)}

	sliceLen := d / time.Duration(slices)
	if sliceLen <= 0 {
		sliceLen = time.Second
	}

	var acc float64
	current := int64(2)
	start := time.Now()
	for time.Since(start) < d {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(start)
			Sink = acc
			return res, err
		}

		if IsPrime(current) {
			res.PrimesFound++
		}
		x := float64(current)
		acc += math.Sin(x)*math.Cos(x) + math.Sqrt(x)
		acc += float64(Fibonacci(fibonacciDepth))
		res.Operations++
		current++

		idx := int(time.Since(start) / sliceLen)
		if idx >= slices {
			idx = slices - 1
		}
		res.SliceCounts[idx]++
	}

	res.Elapsed = time.Since(start)
	Sink = acc
	return res, nil
}

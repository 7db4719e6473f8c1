package score

import (
	"math"
	"time"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// Weighting knobs for the composite scores, kept as package values rather
// than literals buried in the formulas. SequentialWeight folds the two
// streaming speeds into one figure (0.5 = their mean); IOPSDivisor rescales
// random-I/O rates into the same magnitude range as MB/s figures;
// DriveShare sets the drive side's fraction of the overall score. The
// defaults are the suite's historical weighting, not a derived truth.
var (
	SequentialWeight = 0.5
	IOPSDivisor      = 100.0
	DriveShare       = 0.5
)

// CPU converts total operations over elapsed wall time into the integer CPU
// score, in operations per second. Degenerate elapsed time yields 0.
func CPU(operations int64, elapsed time.Duration) int {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return int(math.Round(float64(operations) / secs))
}

// Drive folds sequential throughput and random IOPS into one composite
// number: the two streaming speeds scaled by SequentialWeight plus both
// IOPS figures scaled down by IOPSDivisor.
func Drive(seq benchmark.SequentialIOSummary, rnd benchmark.RandomIOSummary) int {
	v := (seq.WriteSpeedMBps+seq.ReadSpeedMBps)*SequentialWeight + (rnd.ReadIOPS+rnd.WriteIOPS)/IOPSDivisor
	return int(math.Round(v))
}

// Overall blends the CPU and drive scores by DriveShare. A nil drive score
// (drive benchmarks skipped) passes the CPU score through unchanged.
func Overall(cpuScore int, driveScore *int) int {
	if driveScore == nil {
		return cpuScore
	}
	v := float64(cpuScore)*(1-DriveShare) + float64(*driveScore)*DriveShare
	return int(math.Round(v))
}

// Compute assembles the suite's OverallScore from the CPU summary and the
// drive summaries, which are nil when the drive benchmarks were skipped.
func Compute(cpu benchmark.CpuRunSummary, seq *benchmark.SequentialIOSummary, rnd *benchmark.RandomIOSummary) benchmark.OverallScore {
	out := benchmark.OverallScore{CPUScore: cpu.Score}
	if seq != nil && rnd != nil {
		d := Drive(*seq, *rnd)
		out.DriveScore = &d
	}
	out.Overall = Overall(out.CPUScore, out.DriveScore)
	return out
}

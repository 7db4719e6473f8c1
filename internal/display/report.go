package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/benchmark/statistics"
	"github.com/moguls753/sysmark/internal/sysinfo"
)

// Header prints the suite banner and the host the run is measuring
func Header(w io.Writer, runID string, host sysinfo.Info) {
	fmt.Fprintln(w, "Starting sysmark performance suite")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Run ID:  %s\n", runID)
	if host.Hostname != "" {
		fmt.Fprintf(w, "Host:    %s\n", host.Hostname)
	}
	if host.CPUModel != "" {
		fmt.Fprintf(w, "CPU:     %s (%d logical CPUs)\n", host.CPUModel, host.LogicalCPUs)
	} else {
		fmt.Fprintf(w, "CPU:     %d logical CPUs\n", host.LogicalCPUs)
	}
	if host.MemTotalBytes > 0 {
		fmt.Fprintf(w, "Memory:  %s\n", benchmark.FormatBytes(int64(host.MemTotalBytes)))
	}
	fmt.Fprintf(w, "Runtime: %s %s/%s\n", host.GoVersion, host.OS, host.Arch)
	fmt.Fprintln(w)
}

// Breakdown prints every field of every summary in the suite result, one
// labeled line each
func Breakdown(w io.Writer, res benchmark.SuiteResult) {
	fmt.Fprintln(w, "DETAILED BREAKDOWN")
	fmt.Fprintln(w, strings.Repeat("-", 30))

	cpu := res.CPU
	fmt.Fprintln(w, "CPU:")
	fmt.Fprintf(w, "  %-20s %s (%d worker(s))\n", "Mode:", cpu.Mode, cpu.Workers)
	fmt.Fprintf(w, "  %-20s %.2fs\n", "Planned duration:", cpu.PlannedDuration.Seconds())
	fmt.Fprintf(w, "  %-20s %.2fs\n", "Elapsed:", cpu.Elapsed.Seconds())
	fmt.Fprintf(w, "  %-20s %d\n", "Operations:", cpu.Operations)
	fmt.Fprintf(w, "  %-20s %d\n", "Primes found:", cpu.PrimesFound)
	fmt.Fprintf(w, "  %-20s %d ops/sec\n", "Score:", cpu.Score)
	fmt.Fprintf(w, "  %-20s %v\n", "Slice series:", cpu.SliceSeries)

	if res.Sequential != nil {
		seq := res.Sequential
		fmt.Fprintln(w, "Sequential I/O:")
		fmt.Fprintf(w, "  %-20s %d MB\n", "File size:", seq.FileSizeMB)
		fmt.Fprintf(w, "  %-20s %.2fs\n", "Write time:", seq.WriteSeconds)
		fmt.Fprintf(w, "  %-20s %.1f MB/s\n", "Write speed:", seq.WriteSpeedMBps)
		fmt.Fprintf(w, "  %-20s %.2fs\n", "Read time:", seq.ReadSeconds)
		fmt.Fprintf(w, "  %-20s %.1f MB/s\n", "Read speed:", seq.ReadSpeedMBps)
		deviceIOLine(w, res.SequentialDeviceIO)
	}

	if res.Random != nil {
		rnd := res.Random
		fmt.Fprintln(w, "Random I/O:")
		fmt.Fprintf(w, "  %-20s %d\n", "Operations:", rnd.Operations)
		fmt.Fprintf(w, "  %-20s %.2fs\n", "Read time:", rnd.ReadSeconds)
		fmt.Fprintf(w, "  %-20s %.0f IOPS\n", "Read rate:", rnd.ReadIOPS)
		fmt.Fprintf(w, "  %-20s %.2fs\n", "Write time:", rnd.WriteSeconds)
		fmt.Fprintf(w, "  %-20s %.0f IOPS\n", "Write rate:", rnd.WriteIOPS)
		deviceIOLine(w, res.RandomDeviceIO)
	}
	fmt.Fprintln(w)
}

func deviceIOLine(w io.Writer, c *benchmark.IOCounters) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "  %-20s read %s, written %s\n", "Device bytes:",
		benchmark.FormatBytes(int64(c.ReadBytes)), benchmark.FormatBytes(int64(c.WriteBytes)))
}

// Scores prints the final score block
func Scores(w io.Writer, s benchmark.OverallScore) {
	fmt.Fprintln(w, "PERFORMANCE RESULTS")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "CPU Performance Score:    %8d ops/sec\n", s.CPUScore)
	if s.DriveScore != nil {
		fmt.Fprintf(w, "Drive Performance Score:  %8d composite\n", *s.DriveScore)
		fmt.Fprintf(w, "Overall Performance Score: %8d combined\n", s.Overall)
	} else {
		fmt.Fprintf(w, "Overall Performance Score: %8d (CPU only)\n", s.Overall)
	}
}

// SliceStats prints the distribution of the per-slice throughput rates
func SliceStats(w io.Writer, s statistics.Stats) {
	fmt.Fprintln(w, "   Slice rate statistics (ops/sec):")
	fmt.Fprintln(w, "   ┌──────────┬──────────┬──────────┬──────────┬──────────┬───────┐")
	fmt.Fprintln(w, "   │ Median   │ Mean     │ StdDev   │ Min      │ Max      │ CV %  │")
	fmt.Fprintln(w, "   ├──────────┼──────────┼──────────┼──────────┼──────────┼───────┤")
	fmt.Fprintf(w, "   │ %8.0f │ %8.0f │ %8.1f │ %8.0f │ %8.0f │ %5.1f │\n",
		s.Median, s.Mean, s.StdDev, s.Min, s.Max, s.CV)
	fmt.Fprintln(w, "   └──────────┴──────────┴──────────┴──────────┴──────────┴───────┘")
}

// DeclineNote prints the slowdown warning produced by the first-half vs
// second-half rate comparison
func DeclineNote(w io.Writer, c statistics.Comparison) {
	fmt.Fprintf(w, "   Warning: throughput declined %.1f%% from first to second half of the run (p=%.4f), possible thermal throttling or background load\n",
		-c.MedianDiffPct, c.PValue)
}

package scenarios

import (
	"context"
	"fmt"
	"io"

	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/benchmark/disk"
)

// SequentialDrive measures streaming write and read throughput with a
// sizeMB-megabyte test file inside dir. Device-level byte counters are
// snapshotted around the workload; the returned delta is nil on hosts that
// do not expose them.
func SequentialDrive(ctx context.Context, out io.Writer, dir string, sizeMB int) (benchmark.SequentialIOSummary, *benchmark.IOCounters, error) {
	fmt.Fprintln(out, "Testing Drive Sequential Performance...")
	fmt.Fprintf(out, "→ Writing and reading back a %d MB test file...\n", sizeMB)

	before, haveIO := disk.ReadSelfIO()
	summary, err := disk.Sequential(ctx, dir, sizeMB)
	if err != nil {
		return summary, nil, err
	}

	var delta *benchmark.IOCounters
	if after, ok := disk.ReadSelfIO(); haveIO && ok {
		d := after.Delta(before)
		delta = &d
	}

	fmt.Fprintf(out, "✓ Write: %.1f MB/s (%.2fs)\n", summary.WriteSpeedMBps, summary.WriteSeconds)
	fmt.Fprintf(out, "✓ Read:  %.1f MB/s (%.2fs)\n", summary.ReadSpeedMBps, summary.ReadSeconds)
	return summary, delta, nil
}

// RandomDrive measures random-access read and write operation rates with
// ops 4 KB operations per phase inside dir. Counter handling matches
// SequentialDrive.
func RandomDrive(ctx context.Context, out io.Writer, dir string, ops int) (benchmark.RandomIOSummary, *benchmark.IOCounters, error) {
	fmt.Fprintln(out, "Testing Drive Random Access Performance...")
	fmt.Fprintf(out, "→ Performing %d random 4 KB reads and writes...\n", ops)

	before, haveIO := disk.ReadSelfIO()
	summary, err := disk.Random(ctx, dir, ops)
	if err != nil {
		return summary, nil, err
	}

	var delta *benchmark.IOCounters
	if after, ok := disk.ReadSelfIO(); haveIO && ok {
		d := after.Delta(before)
		delta = &d
	}

	fmt.Fprintf(out, "✓ Read:  %.0f IOPS (%.2fs)\n", summary.ReadIOPS, summary.ReadSeconds)
	fmt.Fprintf(out, "✓ Write: %.0f IOPS (%.2fs)\n", summary.WriteIOPS, summary.WriteSeconds)
	return summary, delta, nil
}

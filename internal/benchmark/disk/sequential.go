package disk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// blockSize is the unit of sequential I/O, 1 MB per block.
const blockSize = 1 << 20

// Sequential measures streaming write and then read throughput using a
// sizeMB-megabyte file of constant bytes inside dir. Each phase is timed
// through its final close. The test file is removed before return on every
// path, success or error.
func Sequential(ctx context.Context, dir string, sizeMB int) (benchmark.SequentialIOSummary, error) {
	var summary benchmark.SequentialIOSummary
	if sizeMB < 1 {
		return summary, fmt.Errorf("file size must be at least 1 MB, got %d", sizeMB)
	}

	f, err := os.CreateTemp(dir, "sequential-*.dat")
	if err != nil {
		return summary, fmt.Errorf("create test file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	block := bytes.Repeat([]byte{'A'}, blockSize)

	writeStart := time.Now()
	for i := 0; i < sizeMB; i++ {
		if err := ctx.Err(); err != nil {
			f.Close()
			return summary, err
		}
		if _, err := f.Write(block); err != nil {
			f.Close()
			return summary, fmt.Errorf("sequential write: %w", err)
		}
	}
	closeErr := f.Close()
	writeSeconds := time.Since(writeStart).Seconds()
	if closeErr != nil {
		return summary, fmt.Errorf("close after write: %w", closeErr)
	}

	f, err = os.Open(path)
	if err != nil {
		return summary, fmt.Errorf("reopen test file: %w", err)
	}

	buf := make([]byte, blockSize)
	readStart := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			f.Close()
			return summary, err
		}
		_, rerr := f.Read(buf)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			f.Close()
			return summary, fmt.Errorf("sequential read: %w", rerr)
		}
	}
	closeErr = f.Close()
	readSeconds := time.Since(readStart).Seconds()
	if closeErr != nil {
		return summary, fmt.Errorf("close after read: %w", closeErr)
	}

	summary = benchmark.SequentialIOSummary{
		WriteSeconds:   writeSeconds,
		ReadSeconds:    readSeconds,
		WriteSpeedMBps: mbps(sizeMB, writeSeconds),
		ReadSpeedMBps:  mbps(sizeMB, readSeconds),
		FileSizeMB:     sizeMB,
	}
	return summary, nil
}

// mbps returns megabytes per second, zero when the elapsed time is
// degenerate.
func mbps(sizeMB int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(sizeMB) / seconds
}

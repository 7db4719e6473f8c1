package disk

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/moguls753/sysmark/internal/benchmark"
)

const (
	// randomFileSize is the fixed size of the backing file for random-access
	// measurements, large enough to defeat most drive caches.
	randomFileSize = 50 << 20

	// randomBlock is the transfer size of one random-access operation.
	randomBlock = 4096
)

// Random measures random-access read and then write operation rates (IOPS)
// against a randomFileSize file of random bytes inside dir: ops reads of
// randomBlock bytes at uniform offsets, then ops writes of fresh random
// bytes at fresh offsets, each phase timed independently through its close.
// The test file is removed before return on every path.
func Random(ctx context.Context, dir string, ops int) (benchmark.RandomIOSummary, error) {
	var summary benchmark.RandomIOSummary
	if ops < 1 {
		return summary, fmt.Errorf("operation count must be at least 1, got %d", ops)
	}

	f, err := os.CreateTemp(dir, "random-*.dat")
	if err != nil {
		return summary, fmt.Errorf("create test file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	fill := make([]byte, blockSize)
	for written := 0; written < randomFileSize; written += blockSize {
		if err := ctx.Err(); err != nil {
			f.Close()
			return summary, err
		}
		if _, err := crand.Read(fill); err != nil {
			f.Close()
			return summary, fmt.Errorf("generate random data: %w", err)
		}
		if _, err := f.Write(fill); err != nil {
			f.Close()
			return summary, fmt.Errorf("fill test file: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return summary, fmt.Errorf("close after fill: %w", err)
	}

	const maxOffset = randomFileSize - randomBlock
	buf := make([]byte, randomBlock)

	f, err = os.Open(path)
	if err != nil {
		return summary, fmt.Errorf("reopen for reads: %w", err)
	}
	readStart := time.Now()
	for i := 0; i < ops; i++ {
		if err := ctx.Err(); err != nil {
			f.Close()
			return summary, err
		}
		off := int64(rand.IntN(maxOffset + 1))
		if _, err := f.ReadAt(buf, off); err != nil {
			f.Close()
			return summary, fmt.Errorf("random read: %w", err)
		}
	}
	closeErr := f.Close()
	readSeconds := time.Since(readStart).Seconds()
	if closeErr != nil {
		return summary, fmt.Errorf("close after reads: %w", closeErr)
	}

	f, err = os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return summary, fmt.Errorf("reopen for writes: %w", err)
	}
	writeStart := time.Now()
	for i := 0; i < ops; i++ {
		if err := ctx.Err(); err != nil {
			f.Close()
			return summary, err
		}
		if _, err := crand.Read(buf); err != nil {
			f.Close()
			return summary, fmt.Errorf("generate random data: %w", err)
		}
		off := int64(rand.IntN(maxOffset + 1))
		if _, err := f.WriteAt(buf, off); err != nil {
			f.Close()
			return summary, fmt.Errorf("random write: %w", err)
		}
	}
	closeErr = f.Close()
	writeSeconds := time.Since(writeStart).Seconds()
	if closeErr != nil {
		return summary, fmt.Errorf("close after writes: %w", closeErr)
	}

	summary = benchmark.RandomIOSummary{
		ReadSeconds:  readSeconds,
		WriteSeconds: writeSeconds,
		ReadIOPS:     iops(ops, readSeconds),
		WriteIOPS:    iops(ops, writeSeconds),
		Operations:   ops,
	}
	return summary, nil
}

// iops returns operations per second, zero when the elapsed time is
// degenerate.
func iops(ops int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(ops) / seconds
}

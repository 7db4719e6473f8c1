package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/moguls753/sysmark/cmd/sysmark/scenarios"
	"github.com/moguls753/sysmark/internal/benchmark"
	"github.com/moguls753/sysmark/internal/benchmark/cpu"
	"github.com/moguls753/sysmark/internal/benchmark/score"
	"github.com/moguls753/sysmark/internal/display"
	"github.com/moguls753/sysmark/internal/export"
	"github.com/moguls753/sysmark/internal/sysinfo"
)

func main() {
	os.Exit(run())
}

// run carries the whole suite so that every deferred cleanup fires before
// the process picks its exit code. A caught interrupt is a graceful exit
// (0); a workload failure exits 1.
func run() int {
	// Command-line flags
	cpuMode := flag.String("cpu-mode", "single", "CPU benchmark mode (single, multi)")
	cpuDuration := flag.Int("cpu-duration", 10, "Total CPU benchmark duration in seconds")
	cpuWorkers := flag.Int("cpu-workers", 0, "Worker processes for multi mode (0 = logical CPU count)")
	skipDrive := flag.Bool("skip-drive", false, "Skip the drive benchmarks; overall score equals CPU score")
	fileSizeMB := flag.Int("file-size-mb", 100, "Sequential test file size in MB")
	randomOps := flag.Int("random-ops", 1000, "Random-access operations per phase")
	csvPath := flag.String("csv", "", "Write the CPU slice time series to this CSV file")
	jsonPath := flag.String("json", "", "Write the full suite result to this JSON file")
	burnWorker := flag.Bool("burn-worker", false, "Internal: serve burn requests on stdin/stdout")
	flag.Parse()

	// Child half of the multi-core benchmark. Must come before anything
	// that writes to stdout, which carries the result protocol.
	if *burnWorker {
		return serveBurnWorker()
	}

	if *cpuMode != "single" && *cpuMode != "multi" {
		log.Printf("Invalid cpu-mode: %s (must be 'single' or 'multi')", *cpuMode)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runID := ulid.Make().String()
	host := sysinfo.Collect()
	display.Header(os.Stdout, runID, host)

	// One temp dir per invocation; every workload file lives inside it.
	tmpDir, err := os.MkdirTemp(benchmark.GetEnv("SYSMARK_TMPDIR", ""), "sysmark-*")
	if err != nil {
		log.Printf("Failed to create temp directory: %v", err)
		return 1
	}
	defer os.RemoveAll(tmpDir)

	result := benchmark.SuiteResult{
		RunID:     runID,
		StartedAt: time.Now(),
		Host:      host,
	}

	duration := time.Duration(*cpuDuration) * time.Second
	var cpuRates []float64
	if *cpuMode == "multi" {
		result.CPU, cpuRates, err = scenarios.CPUMultiCore(ctx, os.Stdout, duration, *cpuWorkers, &cpu.ProcessPool{})
	} else {
		result.CPU, cpuRates, err = scenarios.CPUSingleCore(ctx, os.Stdout, duration)
	}
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		log.Printf("CPU benchmark failed: %v", err)
		return 1
	}
	fmt.Println()

	if !*skipDrive && !interrupted {
		var seq benchmark.SequentialIOSummary
		seq, result.SequentialDeviceIO, err = scenarios.SequentialDrive(ctx, os.Stdout, tmpDir, *fileSizeMB)
		if interrupted = errors.Is(err, context.Canceled); err != nil && !interrupted {
			log.Printf("Sequential drive benchmark failed: %v", err)
			return 1
		}
		if err == nil {
			result.Sequential = &seq
			fmt.Println()

			var rnd benchmark.RandomIOSummary
			rnd, result.RandomDeviceIO, err = scenarios.RandomDrive(ctx, os.Stdout, tmpDir, *randomOps)
			if interrupted = errors.Is(err, context.Canceled); err != nil && !interrupted {
				log.Printf("Random drive benchmark failed: %v", err)
				return 1
			}
			if err == nil {
				result.Random = &rnd
			}
			fmt.Println()
		}
	}

	if interrupted {
		fmt.Println()
		fmt.Println("Benchmark interrupted, reporting partial results")
		fmt.Println()
	}

	result.Scores = score.Compute(result.CPU, result.Sequential, result.Random)
	display.Breakdown(os.Stdout, result)
	display.Scores(os.Stdout, result.Scores)

	if *csvPath != "" {
		if err := export.SliceSeriesCSV(result.CPU, cpuRates, *csvPath); err != nil {
			log.Printf("CSV export failed: %v", err)
			return 1
		}
		fmt.Printf("✓ Slice series written to %s\n", *csvPath)
	}
	if *jsonPath != "" {
		if err := export.SuiteJSON(result, *jsonPath); err != nil {
			log.Printf("JSON export failed: %v", err)
			return 1
		}
		fmt.Printf("✓ Results written to %s\n", *jsonPath)
	}
	return 0
}

// serveBurnWorker runs the worker side of the multi-core protocol until the
// coordinator closes stdin. Diagnostics go to stderr only; stdout belongs
// to the protocol.
func serveBurnWorker() int {
	id, err := uuid.Parse(os.Getenv(cpu.WorkerIDEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "burn worker: bad %s: %v\n", cpu.WorkerIDEnv, err)
		return 1
	}
	if err := cpu.ServeWorker(context.Background(), id, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "burn worker: %v\n", err)
		return 1
	}
	return 0
}

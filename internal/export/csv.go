package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// SliceSeriesCSV exports the CPU throughput time series to CSV format for
// plotting: one row per slice with its operation count and measured rate.
// rates is parallel to the summary's slice series; missing entries leave the
// rate cell empty.
func SliceSeriesCSV(cpu benchmark.CpuRunSummary, rates []float64, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"Slice", "Operations", "OpsPerSec"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, ops := range cpu.SliceSeries {
		rate := ""
		if i < len(rates) {
			rate = fmt.Sprintf("%.2f", rates[i])
		}
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(ops, 10),
			rate,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

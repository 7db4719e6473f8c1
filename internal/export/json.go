package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/moguls753/sysmark/internal/benchmark"
)

// SuiteJSON writes the complete suite result document to outputPath,
// replacing any previous content. One document per run; the suite keeps no
// history of its own.
func SuiteJSON(res benchmark.SuiteResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

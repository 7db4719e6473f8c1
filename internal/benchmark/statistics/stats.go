package statistics

import (
	"math"
	"sort"
)

// Stats summarizes one sample of measurements, here per-slice throughput
// rates
type Stats struct {
	Median float64
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	CV     float64 // Coefficient of Variation (%)
	Values []float64
}

// Mean calculates the arithmetic mean
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev calculates the sample standard deviation; below two points it is 0
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	mean := Mean(values)
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	return math.Sqrt(variance / float64(len(values)-1))
}

// Calculate computes all summary measures for a sample. The input slice is
// copied, never retained.
func Calculate(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := Mean(values)
	sd := StdDev(values)
	cv := 0.0
	if mean != 0 {
		cv = sd / math.Abs(mean) * 100
	}

	return Stats{
		Median: median(sorted),
		Mean:   mean,
		StdDev: sd,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		CV:     cv,
		Values: append([]float64(nil), values...),
	}
}

// median expects its input sorted
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// HasOverlap checks if two sample ranges overlap
func HasOverlap(a, b Stats) bool {
	// No overlap if: Min A > Max B OR Min B > Max A
	return !(a.Min > b.Max || b.Min > a.Max)
}

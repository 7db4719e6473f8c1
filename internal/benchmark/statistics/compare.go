package statistics

import (
	"math"
	"sort"
)

// Comparison describes how sample B moved relative to sample A
type Comparison struct {
	MedianDiffPct float64 // percent change of B's median vs A's
	PValue        float64 // Mann-Whitney U p-value, two-tailed
	HasOverlap    bool    // whether the sample ranges overlap
	Significant   bool    // whether p < 0.05
}

// Compare performs a Mann-Whitney U comparison between two samples
func Compare(a, b Stats) Comparison {
	medianDiff := 0.0
	if a.Median != 0 {
		medianDiff = (b.Median - a.Median) / a.Median * 100
	}

	pValue := MannWhitneyU(a.Values, b.Values)

	return Comparison{
		MedianDiffPct: medianDiff,
		PValue:        pValue,
		HasOverlap:    HasOverlap(a, b),
		Significant:   pValue < 0.05,
	}
}

// Decline compares the first and second half of a rate series and reports
// whether the second half is significantly slower, the signature of a run
// that degraded while it was running (thermal throttling, background
// load). Series shorter than four points carry too little signal and always
// report false.
func Decline(rates []float64) (Comparison, bool) {
	if len(rates) < 4 {
		return Comparison{}, false
	}
	half := len(rates) / 2
	comp := Compare(Calculate(rates[:half]), Calculate(rates[half:]))
	return comp, comp.Significant && comp.MedianDiffPct < 0
}

// MannWhitneyU performs a Mann-Whitney U test on two groups and returns the
// approximate two-tailed p-value (normal approximation).
// H0: the groups come from the same distribution; p < 0.05 rejects H0.
func MannWhitneyU(groupA, groupB []float64) float64 {
	if len(groupA) == 0 || len(groupB) == 0 {
		return 1.0 // No difference if empty
	}

	n1 := len(groupA)
	n2 := len(groupB)

	type rankItem struct {
		value float64
		group int // 0 for A, 1 for B
	}

	combined := make([]rankItem, n1+n2)
	for i, v := range groupA {
		combined[i] = rankItem{v, 0}
	}
	for i, v := range groupB {
		combined[n1+i] = rankItem{v, 1}
	}

	sort.Slice(combined, func(i, j int) bool {
		return combined[i].value < combined[j].value
	})

	// Assign ranks, averaging over ties
	ranks := make([]float64, len(combined))
	for i := 0; i < len(combined); {
		j := i
		for j < len(combined) && combined[j].value == combined[i].value {
			j++
		}
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[k] = avgRank
		}
		i = j
	}

	rankSumA := 0.0
	for i, item := range combined {
		if item.group == 0 {
			rankSumA += ranks[i]
		}
	}

	U1 := rankSumA - float64(n1*(n1+1))/2.0
	U2 := float64(n1*n2) - U1
	U := math.Min(U1, U2)

	meanU := float64(n1*n2) / 2.0
	stdU := math.Sqrt(float64(n1*n2*(n1+n2+1)) / 12.0)
	if stdU == 0 {
		return 1.0
	}

	z := (U - meanU) / stdU
	return 2.0 * normalCDF(-math.Abs(z))
}

// normalCDF approximates the standard normal cumulative distribution
// function
func normalCDF(z float64) float64 {
	return 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
}

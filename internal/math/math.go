// Package math implements descriptive statistics over in-memory samples.
//
// Every function leaves its input untouched; functions that need ordered
// data sort a private copy.
package math

import (
	"errors"
	"fmt"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidInput is returned for empty samples and out-of-range arguments.
var ErrInvalidInput = errors.New("invalid input")

// Summary holds the descriptive statistics of a single sample.
type Summary struct {
	Count      int
	Min        float64
	Max        float64
	Mean       float64
	Mode       float64
	Median     float64
	P          float64 // percentile rank used for Percentile
	Percentile float64
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mean of empty sample: %w", ErrInvalidInput)
	}
	return floats.Sum(values) / float64(len(values)), nil
}

// Mode returns the most frequent value. When several values share the
// highest count the smallest of them wins.
func Mode(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("mode of empty sample: %w", ErrInvalidInput)
	}
	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	mode, best := values[0], 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, nil
}

// Median calculates the median value of a slice of float64 values
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("median of empty sample: %w", ErrInvalidInput)
	}
	return median(sorted(values)), nil
}

// Percentile returns the p-th percentile (0 <= p <= 100), interpolating
// linearly between the two closest ranks.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("percentile of empty sample: %w", ErrInvalidInput)
	}
	if gomath.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %v out of range [0, 100]: %w", p, ErrInvalidInput)
	}
	return percentile(sorted(values), p), nil
}

// Quartile finds the value at quantile q (0 <= q <= 1) of a slice of float64 values
func Quartile(values []float64, q float64) (float64, error) {
	return Percentile(values, q*100)
}

// Variance calculates the sample variance of a slice of float64 values.
// At least two values are required.
func Variance(values []float64) (float64, error) {
	if len(values) <= 1 {
		return 0, fmt.Errorf("variance needs at least 2 values, got %d: %w", len(values), ErrInvalidInput)
	}
	avg, _ := Mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - avg) * (v - avg)
	}
	return sum / float64(len(values)-1), nil
}

// Describe computes all statistics of values, sharing a single
// sorted copy. Nothing is returned unless every statistic succeeds.
func Describe(values []float64, p float64) (Summary, error) {
	mean, err := Mean(values)
	if err != nil {
		return Summary{}, err
	}
	mode, err := Mode(values)
	if err != nil {
		return Summary{}, err
	}
	if gomath.IsNaN(p) || p < 0 || p > 100 {
		return Summary{}, fmt.Errorf("percentile %v out of range [0, 100]: %w", p, ErrInvalidInput)
	}
	s := sorted(values)
	return Summary{
		Count:      len(s),
		Min:        floats.Min(s),
		Max:        floats.Max(s),
		Mean:       mean,
		Mode:       mode,
		Median:     median(s),
		P:          p,
		Percentile: percentile(s, p),
	}, nil
}

func sorted(values []float64) []float64 {
	s := make([]float64, len(values))
	copy(s, values)
	sort.Float64s(s)
	return s
}

// median expects a sorted, non-empty slice.
func median(s []float64) float64 {
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// percentile expects a sorted, non-empty slice and p in [0, 100].
func percentile(s []float64, p float64) float64 {
	rank := p / 100 * float64(len(s)-1)
	lo := int(gomath.Floor(rank))
	hi := int(gomath.Ceil(rank))
	if lo == hi {
		return s[lo]
	}
	return s[lo] + (s[hi]-s[lo])*(rank-float64(lo))
}

// Package metric estimates column statistics for data reports
package metric

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Measure reduces a sample to a single statistic
type Measure func([]float64) float64

// Mean is the arithmetic mean, 0 for an empty sample
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Median is the empirical 50% quantile, 0 for an empty sample
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Interval is a bootstrap confidence interval of a measure
type Interval struct {
	Confidence float64
	Lower      float64
	Upper      float64
	Mean       float64 // mean of the resampled measures
	StdDev     float64 // standard deviation of the resampled measures
}

// Bootstrap resamples values with replacement rounds times, applies measure
// to every resample and returns the central interval holding the requested
// confidence (e.g. 0.95). An empty sample or no rounds yields a zero Interval.
func Bootstrap(values []float64, measure Measure, rounds int, confidence float64) Interval {
	if len(values) == 0 || rounds <= 0 {
		return Interval{}
	}

	measures := make([]float64, rounds)
	sample := make([]float64, len(values))
	for i := range rounds {
		for j := range sample {
			sample[j] = lo.Sample(values)
		}
		measures[i] = measure(sample)
	}
	sort.Float64s(measures)

	tail := (1 - confidence) / 2
	mean, stdDev := stat.MeanStdDev(measures, nil)

	return Interval{
		Confidence: confidence,
		Lower:      stat.Quantile(tail, stat.LinInterp, measures, nil),
		Upper:      stat.Quantile(1-tail, stat.LinInterp, measures, nil),
		Mean:       mean,
		StdDev:     stdDev,
	}
}

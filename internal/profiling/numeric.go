package profiling

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"vizlens/domain/profile"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// numericStats computes the five-number summary for a numeric column.
// Non-coercible values are dropped before computation. Quartiles are the
// sorted values at floor(N*0.25) and floor(N*0.75), no interpolation.
func numericStats(values []string) *profile.NumericStats {
	numbers := coerceNumbers(values)
	if len(numbers) == 0 {
		return nil
	}

	sort.Float64s(numbers)

	mean, _ := stats.Mean(numbers)
	median, _ := stats.Median(numbers)
	stdDev, _ := stats.StandardDeviationPopulation(numbers)

	q1 := numbers[int(math.Floor(float64(len(numbers))*0.25))]
	q3 := numbers[int(math.Floor(float64(len(numbers))*0.75))]

	result := &profile.NumericStats{
		Count:  len(numbers),
		Min:    numbers[0],
		Max:    numbers[len(numbers)-1],
		Mean:   round4(mean),
		Median: median,
		StdDev: round4(stdDev),
		Q1:     q1,
		Q3:     q3,
		Range:  numbers[len(numbers)-1] - numbers[0],
	}

	// Distribution shape needs spread; constant columns have none
	if len(numbers) > 2 && stdDev > 0 {
		result.Skewness = round4(stat.Skew(numbers, nil))
		result.Kurtosis = round4(stat.ExKurtosis(numbers, nil))
	}

	return result
}

// coerceNumbers parses every numeric-coercible value, dropping the rest
func coerceNumbers(values []string) []float64 {
	numbers := make([]float64, 0, len(values))
	for _, v := range values {
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(num) {
			continue
		}
		numbers = append(numbers, num)
	}
	return numbers
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

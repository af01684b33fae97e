package helpers

import "math"

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

// StdDev is the population standard deviation of numbers around mean.
func StdDev(numbers []float64, mean float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers))
	return math.Sqrt(variance)
}

// PctChanges returns the period-over-period percentage change of a series.
// The first element has no predecessor and is skipped.
func PctChanges(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}
	changes := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		if series[i-1] == 0 {
			changes = append(changes, 0)
			continue
		}
		changes = append(changes, (series[i]/series[i-1]-1)*100)
	}
	return changes
}

package transform

import (
	"math/rand"

	"vizlens/domain/dataset"
)

// SampleMethod selects a down-sampling strategy for large datasets
type SampleMethod string

const (
	SampleSystematic SampleMethod = "systematic"
	SampleRandom     SampleMethod = "random"
	SampleHead       SampleMethod = "head"
)

// SampleRows reduces a row set to at most maxSize rows. Systematic sampling
// takes every nth row and preserves order; random sampling does not.
func SampleRows(rows []dataset.Row, maxSize int, method SampleMethod) []dataset.Row {
	if maxSize <= 0 || len(rows) <= maxSize {
		return rows
	}

	switch method {
	case SampleRandom:
		picked := rand.Perm(len(rows))[:maxSize]
		result := make([]dataset.Row, maxSize)
		for i, idx := range picked {
			result[i] = rows[idx]
		}
		return result
	case SampleSystematic:
		step := len(rows) / maxSize
		result := make([]dataset.Row, 0, maxSize)
		for i := 0; i < len(rows) && len(result) < maxSize; i += step {
			result = append(result, rows[i])
		}
		return result
	}
	return rows[:maxSize]
}

package profiling

import (
	"fmt"

	"vizlens/domain/dataset"
	"vizlens/domain/profile"
)

// validityScore is a fixed placeholder, not the result of real constraint
// checks against the schema.
const validityScore = 95

// Quality issue thresholds, evaluated independently per column
const (
	nullWarningThreshold   = 50 // percent missing
	duplicateInfoThreshold = 80 // percent duplicate
)

// assessQuality derives the overall quality score and per-column issue list.
// Issues are emitted in header order so reports are stable across runs.
func assessQuality(table *dataset.Table, columns map[string]profile.ColumnProfile) profile.Quality {
	totalCells := len(table.Rows) * len(table.Headers)
	nullCells := 0
	for _, col := range columns {
		nullCells += col.NullCount
	}

	completeness := 100.0
	if totalCells > 0 {
		completeness = round2(float64(totalCells-nullCells) / float64(totalCells) * 100)
	}

	quality := profile.Quality{
		Completeness: completeness,
		Validity:     validityScore,
		Overall:      round2((completeness + validityScore) / 2),
		Issues:       []profile.Issue{},
	}

	for _, header := range table.Headers {
		col, ok := columns[header]
		if !ok {
			continue
		}

		if col.NullPercentage > nullWarningThreshold {
			quality.Issues = append(quality.Issues, profile.Issue{
				Severity: profile.SeverityWarning,
				Column:   header,
				Message:  fmt.Sprintf("%.2f%% missing values", col.NullPercentage),
			})
		}

		if col.DuplicatePercentage > duplicateInfoThreshold {
			quality.Issues = append(quality.Issues, profile.Issue{
				Severity: profile.SeverityInfo,
				Column:   header,
				Message:  fmt.Sprintf("%.2f%% duplicate values", col.DuplicatePercentage),
			})
		}

		if col.Type.IsNumeric() && col.Numeric != nil && col.Numeric.StdDev == 0 {
			quality.Issues = append(quality.Issues, profile.Issue{
				Severity: profile.SeverityInfo,
				Column:   header,
				Message:  "column has no variance (constant value)",
			})
		}
	}

	return quality
}

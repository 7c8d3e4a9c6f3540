package profiling

import (
	"fmt"
	"sort"
	"strings"

	"vizlens/domain/profile"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// SummaryMarkdown renders a human-readable profile report as markdown
func SummaryMarkdown(report *profile.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Data Profile\n\n")
	fmt.Fprintf(&b, "Dataset with %d rows and %d columns.\n\n",
		report.Summary.TotalRows, report.Summary.TotalColumns)
	if !report.Summary.Timestamp.IsZero() {
		fmt.Fprintf(&b, "Profiled at %s.\n\n", report.Summary.Timestamp.ISO8601())
	}
	fmt.Fprintf(&b, "**Quality score:** %.2f%% (%.2f%% complete)\n\n",
		report.Quality.Overall, report.Quality.Completeness)

	numericCols, categoricalCols, temporalCols, missingCols := 0, 0, 0, 0
	for _, col := range report.Columns {
		switch {
		case col.Type.IsNumeric():
			numericCols++
		case col.Type.IsTemporal():
			temporalCols++
		case col.Type.IsCategorical():
			categoricalCols++
		}
		if col.NullCount > 0 {
			missingCols++
		}
	}

	fmt.Fprintf(&b, "## Overview\n\n")
	if numericCols > 0 {
		fmt.Fprintf(&b, "- %d numeric column(s)\n", numericCols)
	}
	if categoricalCols > 0 {
		fmt.Fprintf(&b, "- %d categorical column(s)\n", categoricalCols)
	}
	if temporalCols > 0 {
		fmt.Fprintf(&b, "- %d temporal column(s)\n", temporalCols)
	}
	if missingCols > 0 {
		fmt.Fprintf(&b, "- %d column(s) with missing values\n", missingCols)
	}
	fmt.Fprintf(&b, "\n")

	if len(report.Quality.Issues) > 0 {
		fmt.Fprintf(&b, "## Issues\n\n")
		for _, issue := range report.Quality.Issues {
			fmt.Fprintf(&b, "- **%s** `%s`: %s\n", issue.Severity, issue.Column, issue.Message)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Columns\n\n")
	fmt.Fprintf(&b, "| Column | Type | Nulls | Unique | Detail |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	names := make([]string, 0, len(report.Columns))
	for name := range report.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		col := report.Columns[name]
		fmt.Fprintf(&b, "| %s | %s | %.2f%% | %d | %s |\n",
			col.Name, col.Type.Label(), col.NullPercentage, col.UniqueCount, columnDetail(col))
	}

	return b.String()
}

// SummaryHTML renders the profile report as a standalone HTML fragment
func SummaryHTML(report *profile.Report) []byte {
	md := SummaryMarkdown(report)
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func columnDetail(col profile.ColumnProfile) string {
	switch {
	case col.Numeric != nil:
		return fmt.Sprintf("min %.4g, max %.4g, mean %.4g, σ %.4g",
			col.Numeric.Min, col.Numeric.Max, col.Numeric.Mean, col.Numeric.StdDev)
	case col.Categorical != nil && len(col.Categorical.TopValues) > 0:
		top := col.Categorical.TopValues[0]
		return fmt.Sprintf("top %q (%d, %.2f%%)", top.Value, top.Count, top.Percentage)
	case col.Temporal != nil:
		return fmt.Sprintf("%s to %s (%d days)", col.Temporal.MinDate, col.Temporal.MaxDate, col.Temporal.SpanDays)
	}
	return ""
}

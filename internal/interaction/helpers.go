package interaction

import (
	"strconv"
	"strings"
)

// numericRange returns the min/max over values when every value coerces to a
// number; a single non-numeric value makes the selection categorical.
func numericRange(values []string) (min, max float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	for i, v := range values {
		num, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, 0, false
		}
		if i == 0 || num < min {
			min = num
		}
		if i == 0 || num > max {
			max = num
		}
	}
	return min, max, true
}

// distinct preserves first-occurrence order
func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

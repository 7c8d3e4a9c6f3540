package transform

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"vizlens/domain/chart"
	"vizlens/domain/dataset"
)

// fallbackColor is returned for out-of-range or unresolvable inputs
const fallbackColor = "#cccccc"

// ColorValue positions one data point's value within its column's range
type ColorValue struct {
	Value      float64 `json:"value"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Normalized float64 `json:"normalized"`
}

// ColorValueFor normalizes a value against the color field's numeric range
// over the given rows. Returns false when the field has no numeric values.
func ColorValueFor(value float64, colorField string, rows []dataset.Row) (ColorValue, bool) {
	if colorField == "" {
		return ColorValue{}, false
	}

	min := math.Inf(1)
	max := math.Inf(-1)
	found := false
	for _, row := range rows {
		num, err := strconv.ParseFloat(row[colorField], 64)
		if err != nil {
			continue
		}
		found = true
		if num < min {
			min = num
		}
		if num > max {
			max = num
		}
	}
	if !found {
		return ColorValue{}, false
	}

	cv := ColorValue{Value: value, Min: min, Max: max}
	if max > min {
		cv.Normalized = (value - min) / (max - min)
	}
	return cv, true
}

var hexPattern = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

type rgb struct{ r, g, b int }

// ColorFromScale maps a normalized [0,1] position onto a named scale.
// Two-stop scales interpolate linearly; three-stop scales are diverging,
// splitting interpolation at the midpoint. Reversed scales flip the position.
func ColorFromScale(normalized float64, scale chart.ColorScaleConfig) string {
	if normalized < 0 || normalized > 1 || math.IsNaN(normalized) {
		return fallbackColor
	}
	if scale.Reverse {
		normalized = 1 - normalized
	}

	meta, ok := chart.ScaleFor(scale.Type)
	if !ok || len(meta.Colors) == 0 {
		return fallbackColor
	}
	colors := meta.Colors

	switch {
	case len(colors) == 2:
		return lerpHex(colors[0], colors[1], normalized)
	case len(colors) == 3:
		if normalized < 0.5 {
			return lerpHex(colors[0], colors[1], normalized*2)
		}
		return lerpHex(colors[1], colors[2], (normalized-0.5)*2)
	}
	return colors[0]
}

func lerpHex(from, to string, t float64) string {
	a := hexToRGB(from)
	b := hexToRGB(to)
	return rgbToHex(rgb{
		r: int(math.Round(float64(a.r) + float64(b.r-a.r)*t)),
		g: int(math.Round(float64(a.g) + float64(b.g-a.g)*t)),
		b: int(math.Round(float64(a.b) + float64(b.b-a.b)*t)),
	})
}

func hexToRGB(hex string) rgb {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return rgb{r: 200, g: 200, b: 200}
	}
	r, _ := strconv.ParseInt(m[1], 16, 0)
	g, _ := strconv.ParseInt(m[2], 16, 0)
	b, _ := strconv.ParseInt(m[3], 16, 0)
	return rgb{r: int(r), g: int(g), b: int(b)}
}

func rgbToHex(c rgb) string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

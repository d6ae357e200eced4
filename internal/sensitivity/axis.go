package sensitivity

import (
	"strconv"
	"strings"

	"buyrent-sim/internal/model"
)

// LabelFunc renders an axis value for display.
type LabelFunc func(float64) string

// RangeAxis builds an axis from start to stop inclusive, stepping by step.
// The epsilon on the stop bound absorbs float drift so that e.g.
// 0.03..0.06 step 0.005 really yields 7 points.
func RangeAxis(field string, start, stop, step float64, label LabelFunc) Axis {
	var pts []AxisPoint
	for v := start; v <= stop+step*1e-9; v += step {
		pts = append(pts, AxisPoint{Label: label(v), Value: v})
	}
	return Axis{Field: field, Points: pts}
}

// ValuesAxis builds an axis from explicit values, preserving order.
func ValuesAxis(field string, values []float64, label LabelFunc) Axis {
	pts := make([]AxisPoint, len(values))
	for i, v := range values {
		pts[i] = AxisPoint{Label: label(v), Value: v}
	}
	return Axis{Field: field, Points: pts}
}

// PercentLabel formats a fractional rate: 0.045 -> "4.5%", 0.05 -> "5%".
func PercentLabel(v float64) string {
	s := strconv.FormatFloat(v*100, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + "%"
}

// PlainLabel formats a value as-is (prices, term years).
func PlainLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// LabelFor picks the natural label style for a parameter field.
// Rates read as percentages; prices and years read as plain numbers.
func LabelFor(field string) LabelFunc {
	switch field {
	case model.FieldHousePrice, model.FieldTermYears:
		return PlainLabel
	default:
		return PercentLabel
	}
}

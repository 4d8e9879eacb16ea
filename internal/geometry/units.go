package geometry

import (
	"math"
	"strconv"
)

// Px renders a pixel value for an inline style. Zero is emitted as the
// bare literal "0" to match the adapter contract.
func Px(v float64) string {
	if v == 0 {
		return "0"
	}
	return formatFloat(v) + "px"
}

// Percent renders a percentage rounded to two decimal places, without
// trailing zeros ("33.33%", "50%").
func Percent(v float64) string {
	rounded := math.Round(v*100) / 100
	return formatFloat(rounded) + "%"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

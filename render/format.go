package render

import (
	"fmt"
	"math"
	"strconv"
)

func percent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

// wholeNumber rounds half away from zero.
func wholeNumber(value float64) string {
	return strconv.FormatFloat(math.Round(value), 'f', 0, 64)
}

// plainNumber prints value with the fewest digits that represent it.
func plainNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

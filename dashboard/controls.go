package dashboard

import (
	"math"
	"strconv"

	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

type ControlID string

const (
	ControlMinROE ControlID = "minRoe"
	ControlYears  ControlID = "years"
	ControlLimit  ControlID = "limit"
)

// ControlOrder is the focus order of the inputs.
var ControlOrder = []ControlID{ControlMinROE, ControlYears, ControlLimit}

// Slider ranges and select options of the inputs.
const (
	MinROESliderMin = 5
	MinROESliderMax = 30
	YearsSliderMin  = 5
	YearsSliderMax  = 10
)

var LimitOptions = []int{10, 20, 30, 50}

type Controls struct {
	MinROE float64
	Years  int
	Limit  int
}

// NewControls clamps the values into the input ranges and snaps the limit to
// the closest option.
func NewControls(minROE float64, years int, limit int) Controls {
	return Controls{
		MinROE: math.Max(MinROESliderMin, math.Min(MinROESliderMax, math.Round(minROE))),
		Years:  clampInt(years, YearsSliderMin, YearsSliderMax),
		Limit:  closestLimit(limit),
	}
}

func (c Controls) Request() models.AnalysisRequest {
	return models.NewAnalysisRequest(c.MinROE, c.Years, c.Limit)
}

func (c Controls) Display(control ControlID) string {
	switch control {
	case ControlMinROE:
		return strconv.FormatFloat(c.MinROE, 'f', -1, 64)
	case ControlYears:
		return strconv.Itoa(c.Years)
	case ControlLimit:
		return strconv.Itoa(c.Limit)
	}
	return ""
}

// Adjust moves a control by steps slider ticks or select options and reports
// whether the value changed.
func (c *Controls) Adjust(control ControlID, steps int) bool {
	switch control {
	case ControlMinROE:
		next := math.Max(MinROESliderMin, math.Min(MinROESliderMax, c.MinROE+float64(steps)))
		changed := next != c.MinROE
		c.MinROE = next
		return changed
	case ControlYears:
		next := clampInt(c.Years+steps, YearsSliderMin, YearsSliderMax)
		changed := next != c.Years
		c.Years = next
		return changed
	case ControlLimit:
		index := 0
		for i, option := range LimitOptions {
			if option == closestLimit(c.Limit) {
				index = i
			}
		}
		next := LimitOptions[clampInt(index+steps, 0, len(LimitOptions)-1)]
		changed := next != c.Limit
		c.Limit = next
		return changed
	}
	return false
}

func clampInt(value int, min int, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func closestLimit(limit int) int {
	best := LimitOptions[0]
	for _, option := range LimitOptions {
		if abs(option-limit) < abs(best-limit) {
			best = option
		}
	}
	return best
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

package render

import (
	"fmt"

	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

const (
	ROEColor    = "#28a745"
	ReturnColor = "#007bff"
	// OverlayColor paints the investment value labels.
	OverlayColor = "#dc3545"

	ROEAxisID    = "y"
	ReturnAxisID = "y1"

	ROEDatasetIndex    = 0
	ReturnDatasetIndex = 1
)

type AxisPosition string

const (
	AxisLeft  AxisPosition = "left"
	AxisRight AxisPosition = "right"
)

type Axis struct {
	ID       string
	Position AxisPosition
	Title    string
	Color    string
	// DrawGrid is false for axes whose grid would clutter the plot area.
	DrawGrid bool
}

type Dataset struct {
	Label  string
	Data   []float64
	AxisID string
	Color  string
}

// Overlay is a text label drawn just above point Index of the return dataset.
type Overlay struct {
	Index int
	Text  string
}

type ChartSpec struct {
	Title            string
	Subtitle         string
	XAxisTitle       string
	Labels           []string
	Datasets         []Dataset
	Axes             []Axis
	Overlays         []Overlay
	InvestmentValues []float64
}

func ChartTitle(info models.StockInfo) string {
	return fmt.Sprintf("%s (%s) - ROE vs 주가수익률", info.CompanyName, info.Symbol)
}

// BuildChart lays out the ROE series on the left axis and the cumulative
// return on the right one, both indexed by year.
func BuildChart(result models.AnalysisResult) ChartSpec {
	data := result.ChartData
	n := data.Len()

	labels := make([]string, n)
	for i := 0; i < n; i++ {
		labels[i] = string(data.Labels[i])
	}

	spec := ChartSpec{
		Title:      ChartTitle(result.StockInfo),
		Subtitle:   "ROE와 주가수익률의 상관관계",
		XAxisTitle: "연도",
		Labels:     labels,
		Datasets: []Dataset{
			{Label: "ROE (%)", Data: data.ROEData[:n], AxisID: ROEAxisID, Color: ROEColor},
			{Label: "누적 주가수익률 (%)", Data: data.ReturnData[:n], AxisID: ReturnAxisID, Color: ReturnColor},
		},
		Axes: []Axis{
			{ID: ROEAxisID, Position: AxisLeft, Title: "ROE (%)", Color: ROEColor, DrawGrid: true},
			{ID: ReturnAxisID, Position: AxisRight, Title: "누적 주가수익률 (%)", Color: ReturnColor},
		},
		InvestmentValues: data.InvestmentValue,
	}

	for i := 0; i < n; i++ {
		if value := data.InvestmentValueAt(i); value != 0 {
			spec.Overlays = append(spec.Overlays, Overlay{Index: i, Text: InvestmentLabel(value)})
		}
	}
	return spec
}

func InvestmentLabel(value float64) string {
	return fmt.Sprintf("%.1f억", value)
}

// Tooltip returns the lines shown while hovering point index.
func (c ChartSpec) Tooltip(index int) []string {
	if index < 0 || index >= len(c.Labels) {
		return nil
	}
	lines := []string{c.Labels[index]}
	for _, dataset := range c.Datasets {
		lines = append(lines, fmt.Sprintf("%s: %s", dataset.Label, plainNumber(dataset.Data[index])))
	}
	if index < len(c.InvestmentValues) {
		lines = append(lines, "", fmt.Sprintf("💰 1억 투자시: %.1f억원", c.InvestmentValues[index]))
	}
	return lines
}

// Len is the number of points on the x axis.
func (c ChartSpec) Len() int {
	return len(c.Labels)
}

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

func TestBuildChartLayout(t *testing.T) {
	spec := BuildChart(result("AAPL", 90, models.GradeAPlus))

	assert.Equal(t, "AAPL Corp. (AAPL) - ROE vs 주가수익률", spec.Title)
	assert.Equal(t, "ROE와 주가수익률의 상관관계", spec.Subtitle)
	assert.Equal(t, "연도", spec.XAxisTitle)
	assert.Equal(t, []string{"2022", "2023", "2024"}, spec.Labels)

	require.Len(t, spec.Datasets, 2)
	assert.Equal(t, "ROE (%)", spec.Datasets[ROEDatasetIndex].Label)
	assert.Equal(t, ROEAxisID, spec.Datasets[ROEDatasetIndex].AxisID)
	assert.Equal(t, "#28a745", spec.Datasets[ROEDatasetIndex].Color)
	assert.Equal(t, "누적 주가수익률 (%)", spec.Datasets[ReturnDatasetIndex].Label)
	assert.Equal(t, ReturnAxisID, spec.Datasets[ReturnDatasetIndex].AxisID)
	assert.Equal(t, "#007bff", spec.Datasets[ReturnDatasetIndex].Color)

	require.Len(t, spec.Axes, 2)
	assert.Equal(t, AxisLeft, spec.Axes[0].Position)
	assert.Equal(t, AxisRight, spec.Axes[1].Position)
	assert.False(t, spec.Axes[1].DrawGrid)
}

func TestBuildChartOverlaysInvestmentValues(t *testing.T) {
	spec := BuildChart(result("AAPL", 90, models.GradeAPlus))

	require.Len(t, spec.Overlays, 3)
	last := spec.Overlays[2]
	assert.Equal(t, 2, last.Index)
	assert.Equal(t, "1.5억", last.Text)
}

func TestBuildChartSkipsZeroInvestmentValues(t *testing.T) {
	r := result("AAPL", 90, models.GradeAPlus)
	r.ChartData.InvestmentValue = []float64{0, 1.2}

	spec := BuildChart(r)

	require.Len(t, spec.Overlays, 1)
	assert.Equal(t, 1, spec.Overlays[0].Index)
	assert.Equal(t, "1.2억", spec.Overlays[0].Text)
}

func TestBuildChartTruncatesToCommonLength(t *testing.T) {
	r := result("AAPL", 90, models.GradeAPlus)
	r.ChartData.ReturnData = r.ChartData.ReturnData[:2]

	spec := BuildChart(r)

	assert.Equal(t, 2, spec.Len())
	assert.Len(t, spec.Datasets[ROEDatasetIndex].Data, 2)
}

func TestTooltip(t *testing.T) {
	spec := BuildChart(result("AAPL", 90, models.GradeAPlus))

	assert.Equal(t, []string{
		"2024",
		"ROE (%): 21",
		"누적 주가수익률 (%): 50",
		"",
		"💰 1억 투자시: 1.5억원",
	}, spec.Tooltip(2))
	assert.Nil(t, spec.Tooltip(3))
}

package ui

import (
	"testing"

	"github.com/gizak/termui/v3/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/ROEAnalyzer/dashboard"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

func sampleRows() []render.TableRow {
	return render.BuildTableRows([]models.AnalysisResult{
		sampleResult("MSFT", 71, models.GradeB),
		sampleResult("AAPL", 88, models.GradeAPlus),
		sampleResult("KO", 52, models.GradeC),
	})
}

func TestUserInterfaceSelection(t *testing.T) {
	ui := NewUserInterface()
	ui.RenderTable(sampleRows())

	_, ok := ui.SelectedSymbol()
	assert.False(t, ok, "hidden results cannot be selected")

	ui.SetSectionVisible(dashboard.SectionResults, true)
	symbol, ok := ui.SelectedSymbol()
	assert.True(t, ok)
	assert.Equal(t, "AAPL", symbol)

	ui.handleKey("<Down>")
	ui.handleKey("<Down>")
	ui.handleKey("<Down>")
	symbol, _ = ui.SelectedSymbol()
	assert.Equal(t, "KO", symbol)

	ui.handleKey("<Up>")
	symbol, _ = ui.SelectedSymbol()
	assert.Equal(t, "MSFT", symbol)

	ui.RenderTable(sampleRows()[:1])
	symbol, _ = ui.SelectedSymbol()
	assert.Equal(t, "AAPL", symbol)
}

func TestUserInterfaceFocusCyclesControls(t *testing.T) {
	ui := NewUserInterface()
	for _, control := range dashboard.ControlOrder {
		ui.SetControlValue(control, "10")
	}

	assert.Contains(t, ui.controlsText(), "최소 ROE (%): [10](mod:reverse)")
	ui.handleKey("<Tab>")
	assert.Contains(t, ui.controlsText(), "분석 기간 (년): [10](mod:reverse)")
	ui.handleKey("<Tab>")
	ui.handleKey("<Tab>")
	assert.Contains(t, ui.controlsText(), "최소 ROE (%): [10](mod:reverse)")
}

func TestChartHandleOnlyDestroysItsOwnChart(t *testing.T) {
	ui := NewUserInterface()
	first := ui.CreateChart(render.BuildChart(sampleResult("AAPL", 88, models.GradeAPlus)))
	second := ui.CreateChart(render.BuildChart(sampleResult("MSFT", 71, models.GradeB)))

	first.Destroy()
	assert.NotNil(t, ui.chart)
	assert.Contains(t, ui.chart.Spec.Title, "MSFT")

	second.Destroy()
	assert.Nil(t, ui.chart)
}

func TestUserInterfaceLayout(t *testing.T) {
	ui := NewUserInterface()
	ui.ShowMessage(dashboard.Message{ID: 1, Kind: dashboard.MessageSuccess, Text: "3개 기업 분석이 완료되었습니다."})
	assert.Len(t, ui.layout(120, 40), 3, "controls, banner and help line")

	ui.ClearMessages()
	ui.ShowLoading(true)
	assert.Len(t, ui.layout(120, 40), 3, "controls, loading and help line")

	ui.ShowLoading(false)
	ui.SetSectionVisible(dashboard.SectionResults, true)
	ui.SetSectionVisible(dashboard.SectionChart, true)
	ui.SetSectionVisible(dashboard.SectionDetails, true)
	ui.RenderTable(sampleRows())
	ui.CreateChart(render.BuildChart(sampleResult("AAPL", 88, models.GradeAPlus)))
	ui.RenderDetails(render.BuildDetails(sampleResult("AAPL", 88, models.GradeAPlus)))
	assert.Len(t, ui.layout(120, 40), 6, "controls, table, chart, tooltip, details and help line")

	ui.SetSectionVisible(dashboard.SectionChart, false)
	ui.SetSectionVisible(dashboard.SectionDetails, false)
	assert.Len(t, ui.layout(120, 40), 3)
}

func TestUserInterfaceKeepsEmptyResultsTable(t *testing.T) {
	ui := NewUserInterface()
	ui.SetSectionVisible(dashboard.SectionResults, true)
	ui.SetResultCount("0개 기업")
	ui.RenderTable(nil)

	drawables := ui.layout(120, 40)
	require.Len(t, drawables, 3, "controls, table and help line")
	table, ok := drawables[1].(*widgets.Table)
	require.True(t, ok)
	assert.Equal(t, "분석 결과 (0개 기업)", table.Title)
	assert.Equal(t, [][]string{tableHeader}, table.Rows)
}

func TestResultsTableColorsScoreByGrade(t *testing.T) {
	ui := NewUserInterface()
	ui.SetSectionVisible(dashboard.SectionResults, true)
	ui.RenderTable(sampleRows())

	table := ui.resultsTable(120, 20)
	require.Len(t, table.Rows, 4)
	for i, row := range ui.rows {
		cells := table.Rows[i+1]
		assert.Equal(t, gradeMarkup(row), cells[len(cells)-1])
		assert.Equal(t, scoreMarkup(row), cells[len(cells)-2])
	}
	assert.Equal(t, "[88점](fg:green,mod:bold)", table.Rows[1][7])
	assert.Equal(t, "[52점](fg:yellow,mod:bold)", table.Rows[3][7])
}

func TestUserInterfaceRequestsRedraw(t *testing.T) {
	ui := NewUserInterface()
	ui.SetResultCount("분석 중...")
	ui.SetResultCount("20개 기업")

	assert.Len(t, ui.redraw, 1)
	assert.Equal(t, "20개 기업", ui.resultCount)
}

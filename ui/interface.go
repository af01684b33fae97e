package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/ROEAnalyzer/dashboard"
	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

var controlLabels = map[dashboard.ControlID]string{
	dashboard.ControlMinROE: "최소 ROE (%)",
	dashboard.ControlYears:  "분석 기간 (년)",
	dashboard.ControlLimit:  "표시 개수",
}

var tableHeader = []string{"순위", "심볼", "회사명", "섹터", "평균 ROE", "10년 수익률", "상관계수", "점수", "등급"}

const helpText = "a: 분석  Tab: 항목 이동  ←/→: 값 변경  ↑/↓: 기업 선택  Enter: 차트  [/]: 연도  q: 종료"

// UserInterface is the terminal dashboard. The controller paints on it from
// any goroutine; drawing itself only happens on the Run loop.
type UserInterface struct {
	controller *dashboard.Controller

	mu            sync.Mutex
	controlValues map[dashboard.ControlID]string
	focused       int
	loading       bool
	visible       map[dashboard.Section]bool
	resultCount   string
	rows          []render.TableRow
	selected      int
	chart         *DualAxisChart
	details       render.Details
	message       *dashboard.Message

	redraw chan struct{}
}

var _ dashboard.View = (*UserInterface)(nil)

func NewUserInterface() *UserInterface {
	return &UserInterface{
		controlValues: make(map[dashboard.ControlID]string),
		visible:       make(map[dashboard.Section]bool),
		redraw:        make(chan struct{}, 1),
	}
}

func (ui *UserInterface) SetController(controller *dashboard.Controller) {
	ui.controller = controller
}

func (ui *UserInterface) ShowMessage(message dashboard.Message) {
	ui.update(func() { ui.message = &message })
}

func (ui *UserInterface) ClearMessages() {
	ui.update(func() { ui.message = nil })
}

func (ui *UserInterface) SetControlValue(control dashboard.ControlID, display string) {
	ui.update(func() { ui.controlValues[control] = display })
}

func (ui *UserInterface) ShowLoading(show bool) {
	ui.update(func() { ui.loading = show })
}

func (ui *UserInterface) SetSectionVisible(section dashboard.Section, visible bool) {
	ui.update(func() { ui.visible[section] = visible })
}

func (ui *UserInterface) SetResultCount(text string) {
	ui.update(func() { ui.resultCount = text })
}

func (ui *UserInterface) RenderTable(rows []render.TableRow) {
	ui.update(func() {
		ui.rows = rows
		if ui.selected >= len(rows) {
			ui.selected = 0
		}
	})
}

func (ui *UserInterface) CreateChart(spec render.ChartSpec) dashboard.Chart {
	chart := NewDualAxisChart(spec)
	ui.update(func() { ui.chart = chart })
	return &chartHandle{ui: ui, chart: chart}
}

func (ui *UserInterface) RenderDetails(details render.Details) {
	ui.update(func() { ui.details = details })
}

type chartHandle struct {
	ui    *UserInterface
	chart *DualAxisChart
}

// Destroy removes the chart unless a newer one already replaced it.
func (h *chartHandle) Destroy() {
	h.ui.update(func() {
		if h.ui.chart == h.chart {
			h.ui.chart = nil
		}
	})
}

func (ui *UserInterface) update(change func()) {
	ui.mu.Lock()
	change()
	ui.mu.Unlock()

	select {
	case ui.redraw <- struct{}{}:
	default:
	}
}

// Run owns the terminal until the user quits.
func (ui *UserInterface) Run() error {
	if err := termui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer termui.Close()

	ui.controller.Init()
	ui.UpdateUI()

	uiEvents := termui.PollEvents()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				helpers.Logger.Infoln("Exited by keyboard interrupt")
				return nil
			case "<Resize>":
				termui.Clear()
			default:
				ui.handleKey(e.ID)
			}
			ui.UpdateUI()
		case <-ui.redraw:
			ui.UpdateUI()
		case <-ticker.C:
			ui.UpdateUI()
		}
	}
}

// handleKey must not hold ui.mu while calling the controller, which paints
// back on the view.
func (ui *UserInterface) handleKey(id string) {
	switch id {
	case "a":
		ui.controller.Analyze()
	case "<Tab>":
		ui.update(func() { ui.focused = (ui.focused + 1) % len(dashboard.ControlOrder) })
	case "<Left>", "<Right>":
		steps := 1
		if id == "<Left>" {
			steps = -1
		}
		ui.mu.Lock()
		control := dashboard.ControlOrder[ui.focused]
		ui.mu.Unlock()
		ui.controller.AdjustControl(control, steps)
	case "<Up>", "<Down>":
		ui.update(func() {
			if len(ui.rows) == 0 {
				return
			}
			if id == "<Up>" && ui.selected > 0 {
				ui.selected--
			}
			if id == "<Down>" && ui.selected < len(ui.rows)-1 {
				ui.selected++
			}
		})
	case "<Enter>":
		if symbol, ok := ui.SelectedSymbol(); ok {
			ui.controller.ShowChart(symbol)
		}
	case "[", "]":
		ui.mu.Lock()
		chart := ui.chart
		ui.mu.Unlock()
		if chart == nil {
			return
		}
		if id == "[" {
			chart.MoveCursor(-1)
		} else {
			chart.MoveCursor(1)
		}
	}
}

func (ui *UserInterface) SelectedSymbol() (string, bool) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if !ui.visible[dashboard.SectionResults] || ui.selected >= len(ui.rows) {
		return "", false
	}
	return ui.rows[ui.selected].Symbol, true
}

func (ui *UserInterface) UpdateUI() {
	ui.mu.Lock()
	drawables := ui.layout(termui.TerminalDimensions())
	ui.mu.Unlock()

	termui.Clear()
	termui.Render(drawables...)
}

func (ui *UserInterface) layout(width int, height int) []termui.Drawable {
	var drawables []termui.Drawable

	controlsParagraph := widgets.NewParagraph()
	controlsParagraph.Title = "분석 조건"
	controlsParagraph.Text = ui.controlsText()
	controlsParagraph.SetRect(0, 0, width*2/3, 3)
	drawables = append(drawables, controlsParagraph)

	if ui.message != nil {
		banner := widgets.NewParagraph()
		banner.BorderStyle.Fg = messageColor(ui.message.Kind)
		banner.TextStyle.Fg = messageColor(ui.message.Kind)
		banner.Text = ui.message.Text
		banner.SetRect(width*2/3, 0, width, 3)
		drawables = append(drawables, banner)
	}

	middle := height / 2
	if ui.loading {
		loading := widgets.NewParagraph()
		loading.Border = false
		loading.TextStyle.Fg = termui.ColorYellow
		loading.Text = "분석 중입니다. 잠시만 기다려주세요..."
		loading.SetRect(0, 3, width, 5)
		drawables = append(drawables, loading)
	}

	if ui.visible[dashboard.SectionResults] {
		drawables = append(drawables, ui.resultsTable(width, middle))
	}

	if ui.visible[dashboard.SectionChart] && ui.chart != nil {
		ui.chart.SetRect(0, middle, width*2/3, height-1)
		drawables = append(drawables, ui.chart)

		tooltip := widgets.NewParagraph()
		tooltip.Title = "선택 연도"
		tooltip.Text = strings.Join(ui.chart.Tooltip(), "\n")
		tooltip.SetRect(width*2/3, middle, width, middle+8)
		drawables = append(drawables, tooltip)
	}

	if ui.visible[dashboard.SectionDetails] && ui.details.Symbol != "" {
		details := widgets.NewParagraph()
		details.Title = ui.details.Symbol + " 상세 정보"
		details.Text = detailsText(ui.details)
		details.SetRect(width*2/3, middle+8, width, height-1)
		drawables = append(drawables, details)
	}

	help := widgets.NewParagraph()
	help.Border = false
	help.Text = helpText
	help.SetRect(0, height-1, width, height)
	drawables = append(drawables, help)

	return drawables
}

func (ui *UserInterface) controlsText() string {
	parts := make([]string, 0, len(dashboard.ControlOrder))
	for i, control := range dashboard.ControlOrder {
		value := ui.controlValues[control]
		if i == ui.focused {
			value = fmt.Sprintf("[%s](mod:reverse)", value)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", controlLabels[control], value))
	}
	return strings.Join(parts, "   ")
}

func (ui *UserInterface) resultsTable(width int, bottom int) *widgets.Table {
	table := widgets.NewTable()
	table.Title = "분석 결과 (" + ui.resultCount + ")"
	table.RowSeparator = false
	table.FillRow = true
	table.TextStyle = termui.NewStyle(termui.ColorWhite)

	capacity := bottom - 5 - 1
	if capacity < 1 {
		capacity = 1
	}
	offset := 0
	if ui.selected >= capacity {
		offset = ui.selected - capacity + 1
	}

	table.Rows = [][]string{tableHeader}
	table.RowStyles[0] = termui.NewStyle(termui.ColorWhite, termui.ColorClear, termui.ModifierBold)
	for i := offset; i < len(ui.rows) && i < offset+capacity; i++ {
		row := ui.rows[i]
		table.Rows = append(table.Rows, []string{
			fmt.Sprint(row.Rank),
			row.Symbol,
			row.CompanyName,
			row.Sector,
			row.ROEAverage,
			row.TenYearReturn,
			correlationMarkup(row),
			scoreMarkup(row),
			gradeMarkup(row),
		})
		if i == ui.selected {
			table.RowStyles[len(table.Rows)-1] = termui.NewStyle(termui.ColorWhite, termui.ColorBlue)
		}
	}
	table.SetRect(0, 5, width, bottom)
	return table
}

func detailsText(details render.Details) string {
	var builder strings.Builder
	for i, section := range details.Sections {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("[%s](fg:cyan,mod:bold)\n", section.Title))
		for _, line := range section.Lines {
			builder.WriteString(fmt.Sprintf("%s: %s\n", line.Label, line.Value))
		}
	}
	return builder.String()
}

package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"gitlab.com/aoterocom/ROEAnalyzer/dashboard"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

// TextView prints what the controller renders as plain tables, for the
// headless commands.
type TextView struct {
	mu     sync.Mutex
	out    io.Writer
	failed bool
}

var _ dashboard.View = (*TextView)(nil)

func NewTextView(out io.Writer) *TextView {
	return &TextView{out: out}
}

// Failed reports whether an error banner was shown.
func (v *TextView) Failed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.failed
}

func (v *TextView) ShowMessage(message dashboard.Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if message.Kind == dashboard.MessageError {
		v.failed = true
		fmt.Fprintf(v.out, "ERROR: %s\n", message.Text)
		return
	}
	fmt.Fprintln(v.out, message.Text)
}

func (v *TextView) ClearMessages() {}

func (v *TextView) SetControlValue(dashboard.ControlID, string) {}

func (v *TextView) ShowLoading(bool) {}

func (v *TextView) SetSectionVisible(dashboard.Section, bool) {}

func (v *TextView) SetResultCount(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.out, "분석 결과: %s\n", text)
}

func (v *TextView) RenderTable(rows []render.TableRow) {
	v.mu.Lock()
	defer v.mu.Unlock()

	table := newTable(v.out, tableHeader)
	for _, row := range rows {
		table.Append([]string{
			fmt.Sprint(row.Rank), row.Symbol, row.CompanyName, row.Sector, row.ROEAverage,
			row.TenYearReturn, row.Correlation, row.Score, row.Grade,
		})
	}
	table.Render()
}

func (v *TextView) CreateChart(spec render.ChartSpec) dashboard.Chart {
	v.mu.Lock()
	defer v.mu.Unlock()

	fmt.Fprintf(v.out, "\n%s\n%s\n", spec.Title, spec.Subtitle)
	header := []string{spec.XAxisTitle}
	for _, dataset := range spec.Datasets {
		header = append(header, dataset.Label)
	}
	header = append(header, "1억 투자시")

	overlays := make(map[int]string, len(spec.Overlays))
	for _, overlay := range spec.Overlays {
		overlays[overlay.Index] = overlay.Text
	}

	table := newTable(v.out, header)
	for i, label := range spec.Labels {
		line := []string{label}
		for _, dataset := range spec.Datasets {
			line = append(line, fmt.Sprintf("%.2f", dataset.Data[i]))
		}
		line = append(line, overlays[i])
		table.Append(line)
	}
	table.Render()
	return textChart{}
}

func (v *TextView) RenderDetails(details render.Details) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, strings.TrimRight(plainDetails(details), "\n"))
}

type textChart struct{}

func (textChart) Destroy() {}

func newTable(out io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func plainDetails(details render.Details) string {
	var builder strings.Builder
	for _, section := range details.Sections {
		builder.WriteString("\n[" + section.Title + "]\n")
		for _, line := range section.Lines {
			builder.WriteString(fmt.Sprintf("  %s: %s\n", line.Label, line.Value))
		}
	}
	return builder.String()
}

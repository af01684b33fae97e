package ui

import (
	"image"
	"math"
	"strconv"

	"github.com/gizak/termui/v3"
	rw "github.com/mattn/go-runewidth"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

const (
	axisLabelWidth = 8
	gridLines      = 4
)

// DualAxisChart plots two series sharing the x axis, each one scaled on its
// own y axis, plus the text overlays of the chart spec.
type DualAxisChart struct {
	termui.Block
	Spec   render.ChartSpec
	Cursor int
}

func NewDualAxisChart(spec render.ChartSpec) *DualAxisChart {
	chart := &DualAxisChart{
		Block: *termui.NewBlock(),
		Spec:  spec,
	}
	chart.Title = spec.Title
	chart.Cursor = spec.Len() - 1
	return chart
}

// MoveCursor shifts the hovered point and keeps it inside the series.
func (c *DualAxisChart) MoveCursor(steps int) {
	c.Lock()
	defer c.Unlock()
	c.Cursor += steps
	if c.Cursor >= c.Spec.Len() {
		c.Cursor = c.Spec.Len() - 1
	}
	if c.Cursor < 0 {
		c.Cursor = 0
	}
}

func (c *DualAxisChart) Tooltip() []string {
	c.Lock()
	defer c.Unlock()
	return c.Spec.Tooltip(c.Cursor)
}

func (c *DualAxisChart) Draw(buf *termui.Buffer) {
	c.Block.Draw(buf)

	n := c.Spec.Len()
	// one row on top for overlays, one at the bottom for the x labels
	plot := image.Rect(
		c.Inner.Min.X+axisLabelWidth,
		c.Inner.Min.Y+1,
		c.Inner.Max.X-axisLabelWidth,
		c.Inner.Max.Y-1,
	)
	if n == 0 || plot.Dx() < 2 || plot.Dy() < 2 {
		return
	}

	if c.drawsGrid() {
		drawGrid(buf, plot)
	}

	canvas := termui.NewCanvas()
	canvas.Rectangle = plot
	points := make([][]image.Point, len(c.Spec.Datasets))
	for d, dataset := range c.Spec.Datasets {
		low, high := bounds(dataset.Data)
		points[d] = make([]image.Point, n)
		for i := 0; i < n; i++ {
			points[d][i] = brailleAt(plot, i, n, (dataset.Data[i]-low)/(high-low))
			if i > 0 {
				canvas.SetLine(points[d][i-1], points[d][i], colorOf(dataset.Color))
			} else {
				canvas.SetPoint(points[d][i], colorOf(dataset.Color))
			}
		}
		c.drawAxisLabels(buf, plot, dataset, low, high)
	}
	canvas.Draw(buf)

	c.drawXLabels(buf, plot)

	if len(points) > render.ReturnDatasetIndex {
		style := termui.NewStyle(colorOf(render.OverlayColor), termui.ColorClear, termui.ModifierBold)
		for _, overlay := range c.Spec.Overlays {
			if overlay.Index < 0 || overlay.Index >= n {
				continue
			}
			anchor := points[render.ReturnDatasetIndex][overlay.Index]
			width := rw.StringWidth(overlay.Text)
			x := anchor.X/2 - width/2
			if x+width > plot.Max.X {
				x = plot.Max.X - width
			}
			if x < plot.Min.X {
				x = plot.Min.X
			}
			buf.SetString(overlay.Text, style, image.Pt(x, anchor.Y/4-1))
		}
	}
}

func (c *DualAxisChart) drawsGrid() bool {
	for _, axis := range c.Spec.Axes {
		if axis.DrawGrid {
			return true
		}
	}
	return false
}

// drawGrid rules evenly spaced rows of the plot area. The canvas is drawn on
// top, so the series lines stay visible where they cross it.
func drawGrid(buf *termui.Buffer, plot image.Rectangle) {
	style := termui.NewStyle(termui.Color(8))
	for k := 1; k < gridLines; k++ {
		y := plot.Min.Y + k*(plot.Dy()-1)/gridLines
		for x := plot.Min.X; x < plot.Max.X; x++ {
			buf.SetCell(termui.NewCell('┈', style), image.Pt(x, y))
		}
	}
}

func (c *DualAxisChart) drawAxisLabels(buf *termui.Buffer, plot image.Rectangle, dataset render.Dataset, low, high float64) {
	style := termui.NewStyle(colorOf(dataset.Color))
	var axis render.Axis
	for _, candidate := range c.Spec.Axes {
		if candidate.ID == dataset.AxisID {
			axis = candidate
		}
	}
	top := termui.TrimString(strconv.FormatFloat(high, 'f', 1, 64), axisLabelWidth-1)
	bottom := termui.TrimString(strconv.FormatFloat(low, 'f', 1, 64), axisLabelWidth-1)
	x := c.Inner.Min.X
	if axis.Position == render.AxisRight {
		x = plot.Max.X + 1
	}
	buf.SetString(top, style, image.Pt(x, plot.Min.Y))
	buf.SetString(bottom, style, image.Pt(x, plot.Max.Y-1))
}

func (c *DualAxisChart) drawXLabels(buf *termui.Buffer, plot image.Rectangle) {
	n := c.Spec.Len()
	nextFree := plot.Min.X
	for i, label := range c.Spec.Labels {
		x := brailleAt(plot, i, n, 0).X / 2
		style := termui.StyleClear
		if i == c.Cursor {
			style = termui.NewStyle(termui.ColorYellow, termui.ColorClear, termui.ModifierReverse)
			buf.SetString(label, style, image.Pt(x, plot.Max.Y))
			nextFree = x + rw.StringWidth(label) + 1
			continue
		}
		if x < nextFree || x+rw.StringWidth(label) > c.Inner.Max.X {
			continue
		}
		buf.SetString(label, style, image.Pt(x, plot.Max.Y))
		nextFree = x + rw.StringWidth(label) + 1
	}
}

// brailleAt maps point i of n and its relative height into braille dots of
// the plot area.
func brailleAt(plot image.Rectangle, i int, n int, ratio float64) image.Point {
	width := plot.Dx()*2 - 1
	height := plot.Dy()*4 - 1
	x := width / 2
	if n > 1 {
		x = i * width / (n - 1)
	}
	y := int(math.Round((1 - ratio) * float64(height)))
	return image.Pt(plot.Min.X*2+x, plot.Min.Y*4+y)
}

func bounds(data []float64) (float64, float64) {
	low, high := math.Inf(1), math.Inf(-1)
	for _, value := range data {
		low = math.Min(low, value)
		high = math.Max(high, value)
	}
	if high-low < 1e-9 {
		return low - 1, high + 1
	}
	return low, high
}

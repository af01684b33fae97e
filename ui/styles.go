package ui

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"gitlab.com/aoterocom/ROEAnalyzer/dashboard"
	"gitlab.com/aoterocom/ROEAnalyzer/render"
)

var hexColors = map[string]termui.Color{
	render.ROEColor:     termui.ColorGreen,
	render.ReturnColor:  termui.ColorBlue,
	render.OverlayColor: termui.ColorRed,
}

var gradeColors = map[string]string{
	"grade-A-plus": "green",
	"grade-A":      "green",
	"grade-B-plus": "cyan",
	"grade-B":      "cyan",
	"grade-C-plus": "yellow",
	"grade-C":      "yellow",
	"grade-D":      "red",
}

var correlationColors = map[render.CorrelationClass]string{
	render.CorrelationPositive: "green",
	render.CorrelationNegative: "red",
	render.CorrelationNeutral:  "white",
}

func colorOf(hex string) termui.Color {
	if color, ok := hexColors[hex]; ok {
		return color
	}
	return termui.ColorWhite
}

func gradeColor(row render.TableRow) string {
	if color, ok := gradeColors[row.GradeClass]; ok {
		return color
	}
	return "white"
}

func gradeMarkup(row render.TableRow) string {
	return fmt.Sprintf("[%s](fg:%s,mod:bold)", row.Grade, gradeColor(row))
}

// scoreMarkup colors the score like the grade it maps to.
func scoreMarkup(row render.TableRow) string {
	return fmt.Sprintf("[%s](fg:%s,mod:bold)", row.Score, gradeColor(row))
}

func correlationMarkup(row render.TableRow) string {
	return fmt.Sprintf("[%s](fg:%s)", row.Correlation, correlationColors[row.CorrelationClass])
}

func messageColor(kind dashboard.MessageKind) termui.Color {
	if kind == dashboard.MessageSuccess {
		return termui.ColorGreen
	}
	return termui.ColorRed
}

package render

import (
	"fmt"
	"sort"

	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

type CorrelationClass string

const (
	CorrelationPositive CorrelationClass = "correlation-positive"
	CorrelationNegative CorrelationClass = "correlation-negative"
	CorrelationNeutral  CorrelationClass = "correlation-neutral"
)

const DefaultGradeClass = "bg-secondary"

var gradeClasses = map[models.Grade]string{
	models.GradeAPlus: "grade-A-plus",
	models.GradeA:     "grade-A",
	models.GradeBPlus: "grade-B-plus",
	models.GradeB:     "grade-B",
	models.GradeCPlus: "grade-C-plus",
	models.GradeC:     "grade-C",
	models.GradeD:     "grade-D",
}

func GradeClass(grade models.Grade) string {
	if class, ok := gradeClasses[grade]; ok {
		return class
	}
	return DefaultGradeClass
}

func CorrelationClassOf(coefficient float64) CorrelationClass {
	switch {
	case coefficient > 0.3:
		return CorrelationPositive
	case coefficient < -0.3:
		return CorrelationNegative
	default:
		return CorrelationNeutral
	}
}

type TableRow struct {
	Rank             int
	Symbol           string
	CompanyName      string
	Sector           string
	ROEAverage       string
	TenYearReturn    string
	Correlation      string
	CorrelationClass CorrelationClass
	Score            string
	Grade            string
	GradeClass       string
}

// SortByScore orders results by descending total score, in place.
func SortByScore(results []models.AnalysisResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].InvestmentScore.TotalScore > results[j].InvestmentScore.TotalScore
	})
}

// BuildTableRows sorts results in place and formats one row per result.
func BuildTableRows(results []models.AnalysisResult) []TableRow {
	SortByScore(results)

	rows := make([]TableRow, 0, len(results))
	for i, result := range results {
		score := result.InvestmentScore
		correlation := result.CorrelationAnalysis.CorrelationCoefficient
		rows = append(rows, TableRow{
			Rank:             i + 1,
			Symbol:           result.StockInfo.Symbol,
			CompanyName:      result.StockInfo.CompanyName,
			Sector:           orDash(result.StockInfo.Sector),
			ROEAverage:       percent(result.TenYearROEAvg),
			TenYearReturn:    percent(result.TenYearReturn),
			Correlation:      fmt.Sprintf("%.3f", correlation),
			CorrelationClass: CorrelationClassOf(correlation),
			Score:            wholeNumber(score.TotalScore) + "점",
			Grade:            string(score.Grade),
			GradeClass:       GradeClass(score.Grade),
		})
	}
	return rows
}

func ResultCountText(count int) string {
	return fmt.Sprintf("%d개 기업", count)
}

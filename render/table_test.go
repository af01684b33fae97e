package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

func TestBuildTableRowsSortsByScoreDescending(t *testing.T) {
	results := []models.AnalysisResult{
		result("KO", 71, models.GradeBPlus),
		result("AAPL", 92.5, models.GradeAPlus),
		result("XOM", 40, models.GradeC),
		result("MSFT", 92.5, models.GradeAPlus),
	}

	rows := BuildTableRows(results)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"AAPL", "MSFT", "KO", "XOM"}, []string{rows[0].Symbol, rows[1].Symbol, rows[2].Symbol, rows[3].Symbol})
	assert.Equal(t, "AAPL", results[0].Symbol(), "results are sorted in place")
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
	}
	assert.Equal(t, "93점", rows[0].Score)
}

func TestBuildTableRowsFormatting(t *testing.T) {
	r := result("NVDA", 88.4, models.GradeA)
	r.TenYearROEAvg = 41.9
	r.TenYearReturn = 2835.666
	r.CorrelationAnalysis.CorrelationCoefficient = 0.7519

	rows := BuildTableRows([]models.AnalysisResult{r})

	row := rows[0]
	assert.Equal(t, "NVDA Corp.", row.CompanyName)
	assert.Equal(t, "-", row.Sector)
	assert.Equal(t, "41.90%", row.ROEAverage)
	assert.Equal(t, "2835.67%", row.TenYearReturn)
	assert.Equal(t, "0.752", row.Correlation)
	assert.Equal(t, CorrelationPositive, row.CorrelationClass)
	assert.Equal(t, "88점", row.Score)
	assert.Equal(t, "A", row.Grade)
	assert.Equal(t, "grade-A", row.GradeClass)
}

func TestGradeClass(t *testing.T) {
	assert.Equal(t, "grade-A-plus", GradeClass(models.GradeAPlus))
	assert.Equal(t, "grade-B-plus", GradeClass(models.GradeBPlus))
	assert.Equal(t, "grade-C-plus", GradeClass(models.GradeCPlus))
	assert.Equal(t, "grade-D", GradeClass(models.GradeD))
	assert.Equal(t, DefaultGradeClass, GradeClass("F"))
	assert.Equal(t, DefaultGradeClass, GradeClass(""))
}

func TestCorrelationClassOf(t *testing.T) {
	assert.Equal(t, CorrelationPositive, CorrelationClassOf(0.31))
	assert.Equal(t, CorrelationNeutral, CorrelationClassOf(0.3))
	assert.Equal(t, CorrelationNeutral, CorrelationClassOf(-0.3))
	assert.Equal(t, CorrelationNegative, CorrelationClassOf(-0.31))
}

func TestResultCountText(t *testing.T) {
	assert.Equal(t, "20개 기업", ResultCountText(20))
}

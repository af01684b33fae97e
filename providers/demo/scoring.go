package demo

import (
	"math"

	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// analyzeCorrelation correlates each year's ROE with that year's price change.
func analyzeCorrelation(roe []float64, closes []float64) models.CorrelationAnalysis {
	yearlyReturns := helpers.PctChanges(closes)
	if len(yearlyReturns) < 3 || len(roe) < len(yearlyReturns)+1 {
		return models.CorrelationAnalysis{PValue: 1, Significance: models.SignificanceInsufficient}
	}

	roeValues := roe[1 : len(yearlyReturns)+1]
	r := stat.Correlation(roeValues, yearlyReturns, nil)
	if math.IsNaN(r) {
		// one of the series is constant
		return models.CorrelationAnalysis{PValue: 1, Significance: models.SignificanceNone}
	}
	r = math.Max(-1, math.Min(1, r))
	pValue := pearsonPValue(r, len(yearlyReturns))
	return models.CorrelationAnalysis{
		CorrelationCoefficient: r,
		PValue:                 pValue,
		Significance:           models.SignificanceFromPValue(pValue),
	}
}

// pearsonPValue is the two-sided p-value of r over n samples, from a Student t
// distribution with n-2 degrees of freedom.
func pearsonPValue(r float64, n int) float64 {
	df := float64(n - 2)
	if df <= 0 {
		return 1
	}
	if math.Abs(r) >= 1 {
		return 0
	}
	t := math.Abs(r) * math.Sqrt(df/(1-r*r))
	studentsT := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - studentsT.CDF(t))
}

// consistencyScore rewards a low coefficient of variation.
func consistencyScore(roe []float64) float64 {
	mean := helpers.Mean(roe)
	if mean <= 0 {
		return 5
	}
	cv := helpers.StdDev(roe, mean) / mean
	switch {
	case cv < 0.2:
		return 25
	case cv < 0.4:
		return 20
	case cv < 0.6:
		return 15
	case cv < 0.8:
		return 10
	default:
		return 5
	}
}

// growthScore compares the average of the last three years with the first three.
func growthScore(roe []float64) float64 {
	if len(roe) < 5 {
		return 10
	}
	early := helpers.Mean(roe[:3])
	recent := helpers.Mean(roe[len(roe)-3:])
	if early <= 0 {
		return 10
	}
	growth := (recent/early - 1) * 100
	switch {
	case growth > 20:
		return 25
	case growth > 10:
		return 20
	case growth > 0:
		return 15
	case growth > -10:
		return 10
	default:
		return 5
	}
}

// annualizedReturn is the compound yearly growth, in percent, of an investment
// that ended at finalValue times its initial value.
func annualizedReturn(finalValue float64, years float64) float64 {
	if finalValue <= 0 || years <= 0 {
		return 0
	}
	return (math.Pow(finalValue, 1/years) - 1) * 100
}

func priceReturnScore(annualReturn float64) float64 {
	switch {
	case annualReturn > 15:
		return 25
	case annualReturn > 12:
		return 20
	case annualReturn > 9:
		return 15
	case annualReturn > 6:
		return 10
	case annualReturn > 0:
		return 5
	default:
		return 0
	}
}

// correlationScore only grades coefficients backed by p < 0.05.
func correlationScore(correlation models.CorrelationAnalysis) float64 {
	if !correlation.Significance.IsSignificant() {
		return 5
	}
	r := correlation.CorrelationCoefficient
	switch {
	case r > 0.7:
		return 25
	case r > 0.5:
		return 20
	case r > 0.3:
		return 15
	case r > 0.1:
		return 10
	default:
		return 5
	}
}

func investmentScore(roe []float64, annualReturn float64, correlation models.CorrelationAnalysis) models.InvestmentScore {
	score := models.InvestmentScore{
		ROEConsistencyScore: consistencyScore(roe),
		ROEGrowthScore:      growthScore(roe),
		PriceReturnScore:    priceReturnScore(annualReturn),
		CorrelationScore:    correlationScore(correlation),
	}
	score.TotalScore = score.ROEConsistencyScore + score.ROEGrowthScore + score.PriceReturnScore + score.CorrelationScore
	score.Grade = models.GradeFromScore(score.TotalScore)
	return score
}

// qualifies applies the screening rules: the average over the last years
// reaches minROE, or enough individual years do.
func qualifies(roe []float64, minROE float64, years int) bool {
	if len(roe) == 0 {
		return false
	}
	recent := roe
	if years > 0 && years < len(roe) {
		recent = roe[len(roe)-years:]
	}
	if helpers.Mean(recent) >= minROE {
		return true
	}

	goodYears := 0
	for _, value := range roe {
		if value >= minROE {
			goodYears++
		}
	}
	return float64(goodYears) >= math.Min(7, float64(len(roe))*0.7)
}

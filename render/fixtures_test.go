package render

import (
	"fmt"

	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

func result(symbol string, total float64, grade models.Grade) models.AnalysisResult {
	return models.AnalysisResult{
		StockInfo: models.StockInfo{Symbol: symbol, CompanyName: fmt.Sprintf("%s Corp.", symbol)},
		InvestmentScore: models.InvestmentScore{
			TotalScore: total,
			Grade:      grade,
		},
		ChartData: models.ChartData{
			Labels:          []models.ChartLabel{"2022", "2023", "2024"},
			ROEData:         []float64{18.2, 19.5, 21},
			ReturnData:      []float64{0, 20, 50},
			InvestmentValue: []float64{1.0, 1.2, 1.5},
		},
	}
}

package render

import (
	"fmt"

	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

var significanceTexts = map[models.Significance]string{
	models.SignificanceHigh:         "매우 유의함 (p < 0.01)",
	models.SignificanceSignificant:  "유의함 (p < 0.05)",
	models.SignificanceModerate:     "보통 유의함 (p < 0.1)",
	models.SignificanceNone:         "유의하지 않음 (p ≥ 0.1)",
	models.SignificanceInsufficient: "데이터 부족",
	models.SignificanceError:        "계산 오류",
}

// SignificanceText falls back to the raw value for unknown classifications.
func SignificanceText(significance models.Significance) string {
	if text, ok := significanceTexts[significance]; ok {
		return text
	}
	return string(significance)
}

func MarketCapText(marketCap float64) string {
	if marketCap == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1fB USD", marketCap/1e9)
}

type DetailLine struct {
	Label string
	Value string
}

type DetailSection struct {
	Title string
	Lines []DetailLine
}

type Details struct {
	Symbol   string
	Sections []DetailSection
}

func BuildDetails(result models.AnalysisResult) Details {
	info := result.StockInfo
	correlation := result.CorrelationAnalysis
	score := result.InvestmentScore

	return Details{
		Symbol: info.Symbol,
		Sections: []DetailSection{
			{Title: "기업 정보", Lines: []DetailLine{
				{"회사명", info.CompanyName},
				{"심볼", info.Symbol},
				{"섹터", orDash(info.Sector)},
				{"시가총액", MarketCapText(info.MarketCap)},
			}},
			{Title: "수익성 지표", Lines: []DetailLine{
				{"10년 평균 ROE", percent(result.TenYearROEAvg)},
				{"10년 총수익률", percent(result.TenYearReturn)},
				{"연평균 수익률", percent(result.TenYearReturn / 10)},
			}},
			{Title: "상관관계 분석", Lines: []DetailLine{
				{"상관계수", fmt.Sprintf("%.4f", correlation.CorrelationCoefficient)},
				{"P-값", fmt.Sprintf("%.4f", correlation.PValue)},
				{"유의성", SignificanceText(correlation.Significance)},
			}},
			{Title: "투자 점수 상세", Lines: []DetailLine{
				{"ROE 일관성", plainNumber(score.ROEConsistencyScore) + "/25"},
				{"ROE 성장성", plainNumber(score.ROEGrowthScore) + "/25"},
				{"주가 수익률", plainNumber(score.PriceReturnScore) + "/25"},
				{"상관관계", plainNumber(score.CorrelationScore) + "/25"},
				{"총점", fmt.Sprintf("%s/100 (%s)", plainNumber(score.TotalScore), score.Grade)},
			}},
		},
	}
}

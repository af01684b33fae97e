package demo

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/aoterocom/ROEAnalyzer/helpers"
	"gitlab.com/aoterocom/ROEAnalyzer/interfaces"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

const (
	messageNoMatch = "조건에 맞는 기업을 찾을 수 없습니다."
	messageInvalid = "분석 조건이 올바르지 않습니다."
)

// DemoService screens and scores a built-in universe with generated
// histories, so the dashboard works without the analysis backend.
type DemoService struct {
	latency time.Duration
}

var _ interfaces.AnalysisProvider = (*DemoService)(nil)

func NewDemoService(latency time.Duration) *DemoService {
	return &DemoService{latency: latency}
}

func (ds *DemoService) Analyze(ctx context.Context, request models.AnalysisRequest) (models.AnalysisResponse, error) {
	if ds.latency > 0 {
		select {
		case <-ctx.Done():
			return models.AnalysisResponse{}, ctx.Err()
		case <-time.After(ds.latency):
		}
	}

	if err := request.Validate(); err != nil {
		helpers.Logger.Debugln("demo: " + err.Error())
		return models.AnalysisResponse{Success: false, Message: messageInvalid, Data: []models.AnalysisResult{}}, nil
	}

	results := make([]models.AnalysisResult, 0, request.Limit)
	for i, c := range universe {
		if len(results) >= request.Limit {
			break
		}
		h := generateHistory(i, c)
		fullYears := h.roe[:len(h.roe)-1]
		if !qualifies(fullYears, request.MinROE, request.Years) {
			helpers.Logger.Traceln(fmt.Sprintf("demo: %s below %.0f%% ROE", c.symbol, request.MinROE))
			continue
		}
		results = append(results, analyzeCompany(c, h))
	}

	if len(results) == 0 {
		return models.AnalysisResponse{Success: false, Message: messageNoMatch, Data: []models.AnalysisResult{}}, nil
	}
	return models.AnalysisResponse{
		Success: true,
		Data:    results,
		Message: fmt.Sprintf("%d개 기업 분석 완료", len(results)),
	}, nil
}

func analyzeCompany(c company, h history) models.AnalysisResult {
	chart := h.chartData()
	closes := h.closes()
	fullYears := h.roe[:len(h.roe)-1]

	correlation := analyzeCorrelation(h.roe, closes)
	annualReturn := annualizedReturn(closes[len(closes)-1]/closes[0], h.elapsedYears())

	return models.AnalysisResult{
		StockInfo: models.StockInfo{
			Symbol:      c.symbol,
			CompanyName: c.name,
			Sector:      c.sector,
			MarketCap:   c.marketCap,
		},
		TenYearROEAvg:       round(helpers.Mean(fullYears), 2),
		TenYearReturn:       chart.ReturnData[len(chart.ReturnData)-1],
		CorrelationAnalysis: correlation,
		InvestmentScore:     investmentScore(fullYears, annualReturn, correlation),
		ChartData:           chart,
	}
}

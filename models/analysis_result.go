package models

type StockInfo struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	Sector      string  `json:"sector,omitempty"`
	MarketCap   float64 `json:"market_cap,omitempty"`
}

type CorrelationAnalysis struct {
	CorrelationCoefficient float64      `json:"correlation_coefficient"`
	PValue                 float64      `json:"p_value"`
	Significance           Significance `json:"significance"`
}

// InvestmentScore sub-scores range 0-25 each, TotalScore 0-100.
type InvestmentScore struct {
	ROEConsistencyScore float64 `json:"roe_consistency_score"`
	ROEGrowthScore      float64 `json:"roe_growth_score"`
	PriceReturnScore    float64 `json:"price_return_score"`
	CorrelationScore    float64 `json:"correlation_score"`
	TotalScore          float64 `json:"total_score"`
	Grade               Grade   `json:"grade"`
}

type AnalysisResult struct {
	StockInfo           StockInfo           `json:"stock_info"`
	TenYearROEAvg       float64             `json:"ten_year_roe_avg"`
	TenYearReturn       float64             `json:"ten_year_return"`
	CorrelationAnalysis CorrelationAnalysis `json:"correlation_analysis"`
	InvestmentScore     InvestmentScore     `json:"investment_score"`
	ChartData           ChartData           `json:"chart_data"`
}

func (r AnalysisResult) Symbol() string {
	return r.StockInfo.Symbol
}

// AnalysisResponse is the envelope returned by every analysis provider.
type AnalysisResponse struct {
	Success bool             `json:"success"`
	Data    []AnalysisResult `json:"data"`
	Message string           `json:"message"`
}

package models

// Significance classifies the p-value of a correlation test
type Significance string

const (
	SignificanceHigh         Significance = "highly_significant"
	SignificanceSignificant  Significance = "significant"
	SignificanceModerate     Significance = "moderately_significant"
	SignificanceNone         Significance = "not_significant"
	SignificanceInsufficient Significance = "insufficient_data"
	SignificanceError        Significance = "error"
)

func SignificanceFromPValue(pValue float64) Significance {
	switch {
	case pValue < 0.01:
		return SignificanceHigh
	case pValue < 0.05:
		return SignificanceSignificant
	case pValue < 0.1:
		return SignificanceModerate
	default:
		return SignificanceNone
	}
}

// IsSignificant reports p < 0.05.
func (s Significance) IsSignificant() bool {
	return s == SignificanceHigh || s == SignificanceSignificant
}

package models

import (
	"errors"
	"fmt"
)

// Lower bounds every analysis parameter has to reach before a request is sent.
const (
	MinROEFloor = 5.0
	MinYears    = 5
	MinLimit    = 5
)

var ErrInvalidRequest = errors.New("invalid analysis request")

type AnalysisRequest struct {
	MinROE float64 `json:"min_roe"`
	Years  int     `json:"years"`
	Limit  int     `json:"limit"`
}

func NewAnalysisRequest(minROE float64, years int, limit int) AnalysisRequest {
	return AnalysisRequest{
		MinROE: minROE,
		Years:  years,
		Limit:  limit,
	}
}

// Validate rejects NaN values too, since NaN never compares as >= floor.
func (r AnalysisRequest) Validate() error {
	if !(r.MinROE >= MinROEFloor) || r.Years < MinYears || r.Limit < MinLimit {
		return fmt.Errorf("%w: min_roe=%.2f years=%d limit=%d", ErrInvalidRequest, r.MinROE, r.Years, r.Limit)
	}
	return nil
}

func (r AnalysisRequest) String() string {
	return fmt.Sprintf("min_roe=%.0f years=%d limit=%d", r.MinROE, r.Years, r.Limit)
}

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ChartLabel is a year label. Backends send plain years as numbers and
// partial years as strings ("2025 YTD"); both decode to text.
type ChartLabel string

func (l *ChartLabel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = ""
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*l = ChartLabel(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("chart label %s: %w", string(data), err)
	}
	*l = ChartLabel(number.String())
	return nil
}

// ChartData holds parallel per-year series.
type ChartData struct {
	Labels          []ChartLabel `json:"labels"`
	ROEData         []float64    `json:"roe_data"`
	ReturnData      []float64    `json:"return_data"`
	InvestmentValue []float64    `json:"investment_value"`
}

// Len is the number of points every plotted series can provide.
func (c ChartData) Len() int {
	n := len(c.Labels)
	if len(c.ROEData) < n {
		n = len(c.ROEData)
	}
	if len(c.ReturnData) < n {
		n = len(c.ReturnData)
	}
	return n
}

// InvestmentValueAt returns the value of a 1억 investment at index i, or 0 if absent.
func (c ChartData) InvestmentValueAt(i int) float64 {
	if i < 0 || i >= len(c.InvestmentValue) {
		return 0
	}
	return c.InvestmentValue[i]
}

package demo

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
)

const (
	firstYear = 2015
	lastYear  = 2024
	ytdLabel  = "2025 YTD"
	// the partial year covers nine months
	ytdWeight = 0.75
)

// history is a generated ROE path together with yearly price candles.
type history struct {
	labels []models.ChartLabel
	roe    []float64
	series *techan.TimeSeries
}

// generateHistory builds a reproducible ROE cycle around the company base ROE
// and compounds a price path out of it, one candle per year.
func generateHistory(index int, c company) history {
	h := history{series: techan.NewTimeSeries()}
	price := 100.0

	years := lastYear - firstYear + 1
	for yearIdx := 0; yearIdx <= years; yearIdx++ {
		weight := 1.0
		label := models.ChartLabel(strconv.Itoa(firstYear + yearIdx))
		start := time.Date(firstYear+yearIdx, 1, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)
		if yearIdx == years {
			weight = ytdWeight
			label = ytdLabel
			end = start.AddDate(0, 9, 0)
		}

		rng := rand.New(rand.NewSource(int64(42 + index*100 + yearIdx*10)))
		cycle := math.Sin(float64(yearIdx)*0.7+float64(index)) * 3
		noise := rng.Float64()*4 - 2
		roe := math.Max(8, c.baseROE+cycle+noise)
		if c.baseROE < 8 {
			roe = math.Max(1, c.baseROE+cycle+noise)
		}

		open := price
		if yearIdx > 0 {
			marketNoise := rng.Float64()*0.24 - 0.12
			price *= 1 + (roe/100+marketNoise)*weight
		}

		candle := techan.NewCandle(techan.NewTimePeriod(start, end.Sub(start)))
		candle.OpenPrice = big.NewDecimal(open)
		candle.ClosePrice = big.NewDecimal(price)
		candle.MaxPrice = big.NewDecimal(math.Max(open, price))
		candle.MinPrice = big.NewDecimal(math.Min(open, price))
		h.series.AddCandle(candle)

		h.labels = append(h.labels, label)
		h.roe = append(h.roe, round(roe, 1))
	}
	return h
}

func (h history) closes() []float64 {
	indicator := techan.NewClosePriceIndicator(h.series)
	closes := make([]float64, len(h.series.Candles))
	for i := range h.series.Candles {
		closes[i] = indicator.Calculate(i).Float()
	}
	return closes
}

// elapsedYears is the time between the first and the last close.
func (h history) elapsedYears() float64 {
	if len(h.series.Candles) < 2 {
		return 0
	}
	first := h.series.Candles[0].Period.End
	last := h.series.LastCandle().Period.End
	return last.Sub(first).Hours() / 24 / 365.25
}

// chartData expresses closes as cumulative return since the first close.
func (h history) chartData() models.ChartData {
	closes := h.closes()
	data := models.ChartData{
		Labels:          h.labels,
		ROEData:         h.roe,
		ReturnData:      make([]float64, len(closes)),
		InvestmentValue: make([]float64, len(closes)),
	}
	for i, price := range closes {
		data.ReturnData[i] = round((price/closes[0]-1)*100, 1)
		data.InvestmentValue[i] = round(price/closes[0], 2)
	}
	return data
}

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}

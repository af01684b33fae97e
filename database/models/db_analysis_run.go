package database

import (
	"time"

	"gorm.io/gorm"
)

// AnalysisRun is one attempted analysis with the parameters it was run with
type AnalysisRun struct {
	gorm.Model
	RequestID   string             `json:"requestId" gorm:"uniqueIndex;size:36"`
	Trigger     string             `json:"trigger" gorm:"size:16"`
	MinROE      float64            `json:"minRoe"`
	Years       int                `json:"years"`
	Limit       int                `json:"limit"`
	Outcome     string             `json:"outcome" gorm:"size:16"`
	Message     string             `json:"message"`
	ResultCount int                `json:"resultCount"`
	StartedAt   time.Time          `json:"startedAt"`
	DurationMs  int64              `json:"durationMs"`
	Entries     []AnalysisRunEntry `gorm:"foreignKey:AnalysisRunID"`
}

// AnalysisRunEntry is one ranked company of a successful run
type AnalysisRunEntry struct {
	gorm.Model
	AnalysisRunID uint
	Rank          int     `json:"rank"`
	Symbol        string  `json:"symbol" gorm:"size:16"`
	CompanyName   string  `json:"companyName"`
	TotalScore    float64 `json:"totalScore"`
	Grade         string  `json:"grade" gorm:"size:4"`
	Correlation   float64 `json:"correlation"`
}

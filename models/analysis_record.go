package models

import "time"

type AnalysisTrigger string

type AnalysisOutcome string

const (
	TriggerManual AnalysisTrigger = "manual"
	TriggerAuto   AnalysisTrigger = "auto"

	OutcomeSucceeded AnalysisOutcome = "success"
	OutcomeRejected  AnalysisOutcome = "rejected"
	OutcomeFailed    AnalysisOutcome = "failed"
)

// AnalysisRecord describes one request sent to a provider and how it ended.
type AnalysisRecord struct {
	RequestID string
	Trigger   AnalysisTrigger
	Request   AnalysisRequest
	Outcome   AnalysisOutcome
	Message   string
	Results   []AnalysisResult
	StartedAt time.Time
	Duration  time.Duration
}

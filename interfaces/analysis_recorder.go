package interfaces

import "gitlab.com/aoterocom/ROEAnalyzer/models"

type AnalysisRecorder interface {
	RecordAnalysis(record models.AnalysisRecord) error
}

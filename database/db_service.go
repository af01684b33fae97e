package database

import (
	"fmt"

	database "gitlab.com/aoterocom/ROEAnalyzer/database/models"
	"gitlab.com/aoterocom/ROEAnalyzer/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewDBServiceFromDB(db)
}

// NewDBServiceFromDB migrates the history tables on an already opened
// connection.
func NewDBServiceFromDB(db *gorm.DB) (*DBService, error) {
	dbs := &DBService{
		DB: db,
	}

	err := dbs.DB.AutoMigrate(&database.AnalysisRun{}, &database.AnalysisRunEntry{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func (dbs *DBService) RecordAnalysis(record models.AnalysisRecord) error {
	run := AnalysisRunFromRecord(record)
	if err := dbs.DB.Create(&run).Error; err != nil {
		return fmt.Errorf("storing analysis run %s: %w", record.RequestID, err)
	}
	return nil
}

// RecentRuns returns the last limit runs, newest first, with their entries.
func (dbs *DBService) RecentRuns(limit int) ([]database.AnalysisRun, error) {
	var runs []database.AnalysisRun
	err := dbs.DB.
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("`rank`") }).
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("loading analysis runs: %w", err)
	}
	return runs, nil
}

func AnalysisRunFromRecord(record models.AnalysisRecord) database.AnalysisRun {
	run := database.AnalysisRun{
		RequestID:   record.RequestID,
		Trigger:     string(record.Trigger),
		MinROE:      record.Request.MinROE,
		Years:       record.Request.Years,
		Limit:       record.Request.Limit,
		Outcome:     string(record.Outcome),
		Message:     record.Message,
		ResultCount: len(record.Results),
		StartedAt:   record.StartedAt,
		DurationMs:  record.Duration.Milliseconds(),
	}
	for i, result := range record.Results {
		run.Entries = append(run.Entries, database.AnalysisRunEntry{
			Rank:        i + 1,
			Symbol:      result.StockInfo.Symbol,
			CompanyName: result.StockInfo.CompanyName,
			TotalScore:  result.InvestmentScore.TotalScore,
			Grade:       string(result.InvestmentScore.Grade),
			Correlation: result.CorrelationAnalysis.CorrelationCoefficient,
		})
	}
	return run
}
